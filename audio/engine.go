package audio

import (
	"fmt"
	"log"
	"math"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"quizdeck/constants"
)

const (
	sampleRate      = beep.SampleRate(constants.AudioSampleRate)
	resampleQuality = constants.ResampleQuality
)

// Engine is the single audio entry point: background music with
// cross-fades, polyphonic one-shot effects, and the countdown tick
// loop, all mixed onto one speaker stream. Every failure is non-fatal;
// on device or decode errors the engine degrades to silent mode and
// the show continues.
type Engine struct {
	config *Config

	mixer  *beep.Mixer
	master *effects.Volume

	music *musicPlayer
	sfx   *sfxPlayer
	tick  *tickLoop

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool
}

// NewEngine creates an engine; Start must be called before playback
func NewEngine(cfg ...*Config) *Engine {
	config := DefaultConfig()
	if len(cfg) > 0 && cfg[0] != nil {
		config = cfg[0]
	}

	// effects.Volume is exponential: Base^Volume, so 0 is unity gain
	vol := 0.0
	if config.MasterVolume > 0 && config.MasterVolume < 1 {
		vol = math.Log2(config.MasterVolume)
	}

	mixer := &beep.Mixer{}
	e := &Engine{
		config: config,
		mixer:  mixer,
		master: &effects.Volume{Streamer: mixer, Base: 2, Volume: vol},
		music:  newMusicPlayer(mixer, sampleRate, config.AssetDir, config.Crossfade),
		tick:   newTickLoop(mixer, sampleRate),
	}
	e.muted.Store(!config.Enabled || config.MasterVolume <= 0)
	e.master.Silent = e.muted.Load()
	return e
}

// Start initializes the speaker and preloads effects. A failed device
// puts the engine in silent mode rather than returning an error.
func (e *Engine) Start() error {
	if e.running.Load() {
		return fmt.Errorf("audio engine already running")
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferLength)); err != nil {
		log.Printf("audio: speaker init failed (%v), continuing silent", err)
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil
	}

	e.sfx = newSfxPlayer(e.mixer, sampleRate, e.config.AssetDir, e.config.MaxPolyphony)

	speaker.Play(e.master)
	e.running.Store(true)
	return nil
}

// Stop silences and releases the speaker
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	if e.silentMode.Load() {
		return
	}
	speaker.Clear()
	speaker.Close()
}

// PlayMusic cross-fades to the named background track; requesting the
// playing track is a no-op. Errors are logged and swallowed.
func (e *Engine) PlayMusic(name string) {
	if !e.active() || name == "" {
		return
	}
	if err := e.music.Play(name); err != nil {
		log.Printf("audio: %v", err)
	}
}

// StopMusic fades the background track out
func (e *Engine) StopMusic() {
	if !e.active() {
		return
	}
	e.music.Stop()
}

// CurrentTrack returns the playing background track name
func (e *Engine) CurrentTrack() string {
	return e.music.Current()
}

// PlayEffect fires a one-shot effect instance
func (e *Engine) PlayEffect(cue Cue) {
	if !e.active() || e.sfx == nil {
		return
	}
	e.sfx.Play(cue)
}

// StartTick begins the countdown tick loop
func (e *Engine) StartTick() {
	if !e.active() {
		return
	}
	e.tick.Start()
}

// StopTick silences the countdown tick loop
func (e *Engine) StopTick() {
	if !e.active() {
		return
	}
	e.tick.Stop()
}

// ToggleMute flips the mute flag, returns true if audio is now audible
func (e *Engine) ToggleMute() bool {
	newMute := !e.muted.Load()
	e.muted.Store(newMute)

	if e.running.Load() && !e.silentMode.Load() {
		speaker.Lock()
		e.master.Silent = newMute
		speaker.Unlock()
	}
	return !newMute
}

// IsMuted returns current mute state
func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsRunning returns true if the engine started (even in silent mode)
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// active reports whether playback calls should do anything
func (e *Engine) active() bool {
	return e.running.Load() && !e.silentMode.Load()
}
