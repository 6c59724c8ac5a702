package audio

import (
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"quizdeck/constants"
)

// tickStreamer emits one click at the start of every period, forever.
// It is a single independent instance on the mixer: background fades
// never touch it and it never pauses unrelated tracks.
type tickStreamer struct {
	click  [][2]float64
	period int // samples per tick period
	pos    int
}

func newTickStreamer(rate beep.SampleRate) *tickStreamer {
	return &tickStreamer{
		click:  renderSamples(NewOscillator(1200, constants.TickClickDuration, WaveSine, rate, 0.3), rate.N(constants.TickClickDuration)),
		period: rate.N(constants.TickPeriod),
	}
}

func (t *tickStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		offset := t.pos % t.period
		if offset < len(t.click) {
			samples[i] = t.click[offset]
		} else {
			samples[i][0] = 0
			samples[i][1] = 0
		}
		t.pos++
	}
	return len(samples), true
}

func (t *tickStreamer) Err() error { return nil }

// Reset rewinds to the start of a period so the first click lands
// immediately on the next Start
func (t *tickStreamer) Reset() {
	t.pos = 0
}

// tickLoop wraps the tick streamer in a pausable mixer entry
type tickLoop struct {
	src  *tickStreamer
	ctrl *beep.Ctrl

	mixer *beep.Mixer
	added bool
}

func newTickLoop(mixer *beep.Mixer, rate beep.SampleRate) *tickLoop {
	src := newTickStreamer(rate)
	return &tickLoop{
		src:   src,
		ctrl:  &beep.Ctrl{Streamer: src, Paused: true},
		mixer: mixer,
	}
}

// Start begins the loop from the top of a period. Idempotent.
func (t *tickLoop) Start() {
	speaker.Lock()
	defer speaker.Unlock()

	if !t.added {
		t.mixer.Add(t.ctrl)
		t.added = true
	}
	if t.ctrl.Paused {
		t.src.Reset()
		t.ctrl.Paused = false
	}
}

// Stop silences the loop without touching any other mixer entry. Idempotent.
func (t *tickLoop) Stop() {
	speaker.Lock()
	defer speaker.Unlock()
	t.ctrl.Paused = true
}

// Running reports whether the loop is audible
func (t *tickLoop) Running() bool {
	speaker.Lock()
	defer speaker.Unlock()
	return t.added && !t.ctrl.Paused
}
