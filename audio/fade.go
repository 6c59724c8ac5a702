package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// fade wraps a streamer with a per-sample linear gain ramp. Each fade
// advances independently inside the speaker callback, so two tracks
// cross-fading never block or observe each other.
//
// All mutation (FadeTo, FadeOutAndClose) must happen under speaker.Lock.
type fade struct {
	s         beep.Streamer
	gain      float64
	step      float64 // per-sample delta, signed
	target    float64
	dieSilent bool   // end the stream once gain ramps down to zero
	onDone    func() // invoked once when the stream ends
	doneFired bool
}

// newFade wraps s starting at the given gain
func newFade(s beep.Streamer, initial float64) *fade {
	return &fade{s: s, gain: initial, target: initial}
}

// FadeTo ramps gain linearly to target over d
func (f *fade) FadeTo(target float64, d time.Duration, sr beep.SampleRate) {
	f.target = target
	n := sr.N(d)
	if n <= 0 {
		f.gain = target
		f.step = 0
		return
	}
	f.step = (target - f.gain) / float64(n)
}

// FadeOutAndClose ramps to silence and ends the stream when it gets there
func (f *fade) FadeOutAndClose(d time.Duration, sr beep.SampleRate) {
	f.dieSilent = true
	f.FadeTo(0, d, sr)
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.s.Stream(samples)

	for i := 0; i < n; i++ {
		if f.step != 0 {
			f.gain += f.step
			if (f.step > 0 && f.gain >= f.target) || (f.step < 0 && f.gain <= f.target) {
				f.gain = f.target
				f.step = 0
			}
		}

		if f.dieSilent && f.gain <= 0 {
			// Reached silence: cut the stream here
			for j := i; j < n; j++ {
				samples[j][0] = 0
				samples[j][1] = 0
			}
			f.fireDone()
			return i, false
		}

		samples[i][0] *= f.gain
		samples[i][1] *= f.gain
	}

	if !ok {
		f.fireDone()
	}
	return n, ok
}

func (f *fade) Err() error {
	return f.s.Err()
}

// Gain returns the current gain, for tests and debugging
func (f *fade) Gain() float64 {
	return f.gain
}

func (f *fade) fireDone() {
	if f.onDone != nil && !f.doneFired {
		f.doneFired = true
		f.onDone()
	}
}
