package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Procedural fallback tones. When an effect file is missing or fails to
// decode, the cue still fires with a generated sound so presenter
// feedback is never silently dropped.

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a raw wave with attack/release envelope
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	amp      float64
}

// NewOscillator creates a finite oscillator streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate, amp float64) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		amp:      amp,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		// Short attack, exponential release
		t := float64(o.position) / float64(o.rate)
		attack := math.Min(t/0.01, 1.0)
		release := 1.0 - float64(o.position)/float64(o.duration)
		val *= o.amp * attack * release

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// generateCue renders the fallback tone for a cue into a buffer
func generateCue(cue Cue, rate beep.SampleRate) *beep.Buffer {
	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	buf := beep.NewBuffer(format)

	switch cue {
	case CueCorrect:
		// Two ascending chime notes
		buf.Append(NewOscillator(880, 140*time.Millisecond, WaveSine, rate, 0.35))
		buf.Append(NewOscillator(1318.5, 220*time.Millisecond, WaveSine, rate, 0.35))
	case CueIncorrect:
		// Harsh low buzz
		buf.Append(NewOscillator(120, 250*time.Millisecond, WaveSquare, rate, 0.22))
	case CueTimeout:
		// Low gong
		buf.Append(NewOscillator(160, 500*time.Millisecond, WaveSine, rate, 0.4))
	case CueSkip:
		// Short noise swoosh
		buf.Append(NewOscillator(0, 150*time.Millisecond, WaveNoise, rate, 0.15))
	case CueAdvance:
		buf.Append(NewOscillator(660, 80*time.Millisecond, WaveSine, rate, 0.2))
	}

	return buf
}

// renderSamples drains up to n samples of a streamer into a slice
func renderSamples(s beep.Streamer, n int) [][2]float64 {
	out := make([][2]float64, n)
	filled := 0
	for filled < n {
		got, ok := s.Stream(out[filled:])
		filled += got
		if !ok {
			break
		}
	}
	return out[:filled]
}
