package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// constStreamer emits a constant sample value forever
type constStreamer struct {
	value float64
}

func (c *constStreamer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0] = c.value
		samples[i][1] = c.value
	}
	return len(samples), true
}

func (c *constStreamer) Err() error { return nil }

func drain(s beep.Streamer, n int) ([][2]float64, bool) {
	out := make([][2]float64, n)
	filled := 0
	ok := true
	for filled < n && ok {
		var got int
		got, ok = s.Stream(out[filled:])
		filled += got
	}
	return out[:filled], ok
}

// TestFade_RampReachesTarget verifies the linear ramp lands exactly on
// target and holds there
func TestFade_RampReachesTarget(t *testing.T) {
	rate := beep.SampleRate(1000)
	f := newFade(&constStreamer{value: 1}, 0)
	f.FadeTo(1, 100*time.Millisecond, rate) // 100 samples

	samples, ok := drain(f, 200)
	if !ok {
		t.Fatal("Fade ended a live stream")
	}

	// Monotonic rise across the ramp
	for i := 1; i < 100; i++ {
		if samples[i][0] < samples[i-1][0] {
			t.Fatalf("Gain not monotonic at sample %d: %f < %f", i, samples[i][0], samples[i-1][0])
		}
	}

	// At and past the ramp end, full gain
	if samples[150][0] != 1 {
		t.Errorf("Expected unity gain after ramp, got %f", samples[150][0])
	}
	if f.Gain() != 1 {
		t.Errorf("Expected gain setpoint 1, got %f", f.Gain())
	}
}

// TestFade_ZeroDurationSnaps verifies an instant fade applies immediately
func TestFade_ZeroDurationSnaps(t *testing.T) {
	rate := beep.SampleRate(1000)
	f := newFade(&constStreamer{value: 1}, 0.2)
	f.FadeTo(0.8, 0, rate)

	if f.Gain() != 0.8 {
		t.Errorf("Expected instant gain 0.8, got %f", f.Gain())
	}

	samples, _ := drain(f, 4)
	if samples[0][0] != 0.8 {
		t.Errorf("Expected first sample at 0.8, got %f", samples[0][0])
	}
}

// TestFade_FadeOutAndCloseEndsStream verifies the stream cuts at silence
// and fires its completion hook once
func TestFade_FadeOutAndCloseEndsStream(t *testing.T) {
	rate := beep.SampleRate(1000)
	f := newFade(&constStreamer{value: 1}, 1)

	done := 0
	f.onDone = func() { done++ }

	f.FadeOutAndClose(50*time.Millisecond, rate) // 50 samples

	samples, ok := drain(f, 200)
	if ok {
		t.Fatal("Expected stream to end after fading to silence")
	}
	if len(samples) > 60 {
		t.Errorf("Expected stream cut near sample 50, got %d samples", len(samples))
	}
	if done != 1 {
		t.Errorf("Expected completion hook fired once, got %d", done)
	}

	// Further calls stay ended without re-firing
	if n, ok := f.Stream(make([][2]float64, 8)); ok || n != 0 {
		t.Errorf("Expected ended stream, got n=%d ok=%v", n, ok)
	}
	if done != 1 {
		t.Errorf("Completion hook re-fired, count %d", done)
	}
}

// TestFade_IndependentRamps verifies two fades sharing a mixer advance
// their gains without affecting each other
func TestFade_IndependentRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	outgoing := newFade(&constStreamer{value: 1}, 1)
	incoming := newFade(&constStreamer{value: 1}, 0)

	outgoing.FadeOutAndClose(100*time.Millisecond, rate)
	incoming.FadeTo(1, 100*time.Millisecond, rate)

	mixer := &beep.Mixer{}
	mixer.Add(outgoing)
	mixer.Add(incoming)

	// Halfway through the cross-fade the two gains sum near unity
	drain(mixer, 50)
	if g := outgoing.Gain() + incoming.Gain(); g < 0.9 || g > 1.1 {
		t.Errorf("Expected cross-fade gains to sum near 1 at midpoint, got %f", g)
	}

	// After the fade window only the incoming track remains
	drain(mixer, 100)
	if outgoing.Gain() != 0 {
		t.Errorf("Expected outgoing gain 0, got %f", outgoing.Gain())
	}
	if incoming.Gain() != 1 {
		t.Errorf("Expected incoming gain 1, got %f", incoming.Gain())
	}
}
