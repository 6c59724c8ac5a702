package engine

import (
	"testing"
	"time"
)

// TestPausableClock_FreezesDuringPause verifies Now() stands still while paused
func TestPausableClock_FreezesDuringPause(t *testing.T) {
	pc := NewPausableClock()

	pc.Pause()
	t1 := pc.Now()
	time.Sleep(20 * time.Millisecond)
	t2 := pc.Now()

	if !t2.Equal(t1) {
		t.Errorf("Clock advanced during pause: %s -> %s", t1, t2)
	}
}

// TestPausableClock_ResumeExcludesPausedTime verifies pause duration is
// subtracted from session time
func TestPausableClock_ResumeExcludesPausedTime(t *testing.T) {
	pc := NewPausableClock()

	pc.Pause()
	time.Sleep(30 * time.Millisecond)
	pc.Resume()

	if total := pc.TotalPauseDuration(); total < 25*time.Millisecond {
		t.Errorf("Expected at least 25ms tracked pause, got %s", total)
	}

	// Session clock advances again after resume
	t1 := pc.Now()
	time.Sleep(10 * time.Millisecond)
	t2 := pc.Now()
	if !t2.After(t1) {
		t.Error("Expected session clock to advance after resume")
	}

	// And lags real time by at least the paused duration
	if lag := time.Now().Sub(pc.Now()); lag < 25*time.Millisecond {
		t.Errorf("Expected session clock to lag real time by the pause, lag=%s", lag)
	}
}

// TestPausableClock_DoublePauseIsNoop verifies idempotent transitions
func TestPausableClock_DoublePauseIsNoop(t *testing.T) {
	pc := NewPausableClock()

	pc.Pause()
	pc.Pause()
	if !pc.IsPaused() {
		t.Error("Expected paused")
	}

	pc.Resume()
	pc.Resume()
	if pc.IsPaused() {
		t.Error("Expected resumed")
	}
}
