package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

// musicTrack is one background track inside the player
type musicTrack struct {
	name string
	fade *fade
}

// musicPlayer owns the background music layer of the mixer.
// Transitions cross-fade: the outgoing track ramps to silence and the
// incoming ramps from silence over the configured duration, as two
// independent per-sample gain ramps. Requesting the already-playing
// track is a no-op.
type musicPlayer struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	rate  beep.SampleRate
	dir   string
	cross time.Duration

	current *musicTrack

	// open loads a named track as an endless streamer at the engine
	// rate. Swappable in tests.
	open func(name string) (beep.Streamer, func(), error)
}

func newMusicPlayer(mixer *beep.Mixer, rate beep.SampleRate, dir string, cross time.Duration) *musicPlayer {
	p := &musicPlayer{
		mixer: mixer,
		rate:  rate,
		dir:   dir,
		cross: cross,
	}
	p.open = p.openFile
	return p
}

// Play transitions to the named track. Same-name requests do not
// restart playback.
func (p *musicPlayer) Play(name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil && p.current.name == name {
		return nil
	}

	src, closer, err := p.open(name)
	if err != nil {
		return fmt.Errorf("open track %s: %w", name, err)
	}

	incoming := newFade(src, 0)
	incoming.onDone = closer

	speaker.Lock()
	incoming.FadeTo(1, p.cross, p.rate)
	if p.current != nil {
		p.current.fade.FadeOutAndClose(p.cross, p.rate)
	}
	p.mixer.Add(incoming)
	speaker.Unlock()

	p.current = &musicTrack{name: name, fade: incoming}
	return nil
}

// Stop fades the current track to silence
func (p *musicPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current == nil {
		return
	}
	speaker.Lock()
	p.current.fade.FadeOutAndClose(p.cross, p.rate)
	speaker.Unlock()
	p.current = nil
}

// Current returns the playing track name, empty when stopped
func (p *musicPlayer) Current() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return ""
	}
	return p.current.name
}

// openFile decodes an mp3 from the background directory, resampled to
// the engine rate and looped forever
func (p *musicPlayer) openFile(name string) (beep.Streamer, func(), error) {
	f, err := os.Open(filepath.Join(p.dir, "background", name))
	if err != nil {
		return nil, nil, err
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	var src beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != p.rate {
		src = beep.Resample(resampleQuality, format.SampleRate, p.rate, src)
	}

	closer := func() {
		streamer.Close()
		f.Close()
	}
	return src, closer, nil
}
