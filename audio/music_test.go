package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// fakeOpener records opened tracks and serves endless silence
type fakeOpener struct {
	opened []string
	closed []string
	fail   map[string]error
}

func (f *fakeOpener) open(name string) (beep.Streamer, func(), error) {
	if err := f.fail[name]; err != nil {
		return nil, nil, err
	}
	f.opened = append(f.opened, name)
	return &constStreamer{}, func() { f.closed = append(f.closed, name) }, nil
}

func newTestMusicPlayer(opener *fakeOpener) (*musicPlayer, *beep.Mixer) {
	mixer := &beep.Mixer{}
	p := newMusicPlayer(mixer, beep.SampleRate(1000), "", 100*time.Millisecond)
	p.open = opener.open
	return p, mixer
}

// TestMusicPlayer_PlayAndCurrent verifies a track starts and is reported
func TestMusicPlayer_PlayAndCurrent(t *testing.T) {
	opener := &fakeOpener{}
	p, mixer := newTestMusicPlayer(opener)

	if err := p.Play("intro.mp3"); err != nil {
		t.Fatalf("Play failed: %v", err)
	}
	if p.Current() != "intro.mp3" {
		t.Errorf("Expected current track intro.mp3, got %q", p.Current())
	}
	if mixer.Len() != 1 {
		t.Errorf("Expected 1 mixer entry, got %d", mixer.Len())
	}
}

// TestMusicPlayer_SameTrackNoRestart verifies requesting the playing
// track is a no-op
func TestMusicPlayer_SameTrackNoRestart(t *testing.T) {
	opener := &fakeOpener{}
	p, _ := newTestMusicPlayer(opener)

	p.Play("loop.mp3")
	p.Play("loop.mp3")
	p.Play("loop.mp3")

	if len(opener.opened) != 1 {
		t.Errorf("Expected a single open, got %d", len(opener.opened))
	}
}

// TestMusicPlayer_CrossfadeReplacesTrack verifies the outgoing track
// fades out, ends, and releases its source
func TestMusicPlayer_CrossfadeReplacesTrack(t *testing.T) {
	opener := &fakeOpener{}
	p, mixer := newTestMusicPlayer(opener)

	p.Play("a.mp3")
	p.Play("b.mp3")

	if p.Current() != "b.mp3" {
		t.Errorf("Expected current track b.mp3, got %q", p.Current())
	}
	if mixer.Len() != 2 {
		t.Fatalf("Expected both tracks on the mixer mid-fade, got %d", mixer.Len())
	}

	// Stream past the cross-fade window: outgoing ends and drops off
	drain(mixer, 300)
	if mixer.Len() != 1 {
		t.Errorf("Expected outgoing track dropped, got %d entries", mixer.Len())
	}
	if len(opener.closed) != 1 || opener.closed[0] != "a.mp3" {
		t.Errorf("Expected a.mp3 source released, got %v", opener.closed)
	}
}

// TestMusicPlayer_OpenFailureKeepsCurrent verifies a bad track leaves
// the playing track untouched
func TestMusicPlayer_OpenFailureKeepsCurrent(t *testing.T) {
	opener := &fakeOpener{fail: map[string]error{
		"missing.mp3": errors.New("no such file"),
	}}
	p, _ := newTestMusicPlayer(opener)

	p.Play("a.mp3")
	if err := p.Play("missing.mp3"); err == nil {
		t.Fatal("Expected error for missing track")
	}
	if p.Current() != "a.mp3" {
		t.Errorf("Expected current track unchanged, got %q", p.Current())
	}
}

// TestMusicPlayer_Stop verifies stop clears the current track
func TestMusicPlayer_Stop(t *testing.T) {
	opener := &fakeOpener{}
	p, mixer := newTestMusicPlayer(opener)

	p.Play("a.mp3")
	p.Stop()

	if p.Current() != "" {
		t.Errorf("Expected no current track, got %q", p.Current())
	}

	drain(mixer, 300)
	if mixer.Len() != 0 {
		t.Errorf("Expected mixer emptied after fade-out, got %d", mixer.Len())
	}

	// Stop when idle is a no-op
	p.Stop()
}
