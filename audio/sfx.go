package audio

import (
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

// Cue identifies a one-shot sound effect
type Cue int

const (
	CueCorrect Cue = iota
	CueIncorrect
	CueTimeout
	CueSkip
	CueAdvance
)

// cueFiles maps cues to effect filenames under effects/
var cueFiles = map[Cue]string{
	CueCorrect:   "correct.mp3",
	CueIncorrect: "incorrect.mp3",
	CueTimeout:   "timeout.mp3",
	CueSkip:      "skip.mp3",
	CueAdvance:   "advance.mp3",
}

// sfxPlayer plays fire-and-forget effects. Instances overlap freely;
// past the polyphony cap the oldest live instance is evicted.
type sfxPlayer struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	rate    beep.SampleRate
	cap     int
	buffers map[Cue]*beep.Buffer
	active  []*beep.Ctrl
}

func newSfxPlayer(mixer *beep.Mixer, rate beep.SampleRate, dir string, polyphony int) *sfxPlayer {
	p := &sfxPlayer{
		mixer:   mixer,
		rate:    rate,
		cap:     polyphony,
		buffers: make(map[Cue]*beep.Buffer, len(cueFiles)),
	}
	p.preload(dir)
	return p
}

// preload decodes each effect into a reusable buffer; failures fall
// back to generated tones so every cue remains audible
func (p *sfxPlayer) preload(dir string) {
	for cue, file := range cueFiles {
		buf, err := p.loadFile(filepath.Join(dir, "effects", file))
		if err != nil {
			log.Printf("audio: effect %s unavailable (%v), using generated tone", file, err)
			buf = generateCue(cue, p.rate)
		}
		p.buffers[cue] = buf
	}
}

func (p *sfxPlayer) loadFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != p.rate {
		src = beep.Resample(resampleQuality, format.SampleRate, p.rate, src)
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: p.rate, NumChannels: 2, Precision: 2})
	buf.Append(src)
	return buf, nil
}

// Play starts a new instance of the cue. Never blocks on playback.
func (p *sfxPlayer) Play(cue Cue) {
	buf, ok := p.buffers[cue]
	if !ok || buf.Len() == 0 {
		return
	}

	ctrl := &beep.Ctrl{Streamer: buf.Streamer(0, buf.Len())}

	p.mu.Lock()
	p.active = append(p.active, ctrl)
	var evicted *beep.Ctrl
	if len(p.active) > p.cap {
		evicted = p.active[0]
		p.active = p.active[1:]
	}
	p.mu.Unlock()

	speaker.Lock()
	if evicted != nil {
		// A Ctrl with a nil streamer reports drained; the mixer drops it
		evicted.Streamer = nil
	}
	p.mixer.Add(ctrl)
	speaker.Unlock()
}

// ActiveCount returns tracked instances, for tests
func (p *sfxPlayer) ActiveCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.active)
}
