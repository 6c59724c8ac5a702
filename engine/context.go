package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"quizdeck/audio"
	"quizdeck/emoji"
	"quizdeck/events"
	"quizdeck/quiz"
)

// AudioSink is the audio surface the session drives. Satisfied by
// *audio.Engine; a nil sink disables audio feedback.
type AudioSink interface {
	PlayMusic(name string)
	PlayEffect(cue audio.Cue)
	StartTick()
	StopTick()
	ToggleMute() bool
	IsMuted() bool
	CurrentTrack() string
}

// Context is the session state shared by the scheduler, input handler
// and renderers: deck position, the active question state machine, the
// score, and handles to the audio engine and emoji manager.
type Context struct {
	Deck     *quiz.Deck
	Clock    *PausableClock
	Queue    *events.Queue
	Audio    AudioSink // may be nil when audio failed to start
	Emoji    *emoji.Manager
	Settings *audio.Settings

	IsPaused atomic.Bool

	mu         sync.RWMutex
	slideIndex int
	selection  int
	questions  map[int]*QuestionState // keyed by slide index, survives navigation
	score      Score

	width, height int
}

// Snapshot is a point-in-time view for the render pipeline, taken once
// per frame so renderers never hold the context lock.
type Snapshot struct {
	Now time.Time

	SlideIndex int
	SlideCount int
	Slide      *quiz.Slide

	HasQuestion bool
	Phase       Phase
	Selection   int
	Remaining   time.Duration
	Limit       time.Duration
	PointsNow   int
	Resolution  *Resolution

	Score  ScoreSnapshot
	Paused bool
	Muted  bool
	Track  string

	Width, Height int
}

// NewContext creates a session positioned at the first slide
func NewContext(deck *quiz.Deck, audioEng AudioSink, em *emoji.Manager, settings *audio.Settings, width, height int) *Context {
	ctx := &Context{
		Deck:      deck,
		Clock:     NewPausableClock(),
		Queue:     events.NewQueue(),
		Audio:     audioEng,
		Emoji:     em,
		Settings:  settings,
		questions: make(map[int]*QuestionState),
		width:     width,
		height:    height,
	}
	ctx.enterSlide(0)
	return ctx
}

// Resize updates screen dimensions for placement and rendering
func (ctx *Context) Resize(width, height int) {
	ctx.mu.Lock()
	ctx.width = width
	ctx.height = height
	ctx.mu.Unlock()

	if ctx.Emoji != nil {
		ctx.Emoji.Resize(width, height)
	}
}

// Advance moves to the next slide. An unresolved quiz slide resolves
// as skipped first, including on the last slide, so a deck ending on
// a question still settles its score.
func (ctx *Context) Advance() {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	now := ctx.Clock.Now()
	if q := ctx.questions[ctx.slideIndex]; q != nil {
		if res, ok := q.Skip(now); ok {
			ctx.applyResolution(q, res)
		}
	}

	if ctx.slideIndex >= len(ctx.Deck.Slides)-1 {
		return
	}
	ctx.enterSlide(ctx.slideIndex + 1)
}

// Retreat moves to the previous slide. Question state is kept, so a
// resolved quiz slide shows its outcome and an unresolved one keeps
// its clock running.
func (ctx *Context) Retreat() {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	if ctx.slideIndex == 0 {
		return
	}
	ctx.enterSlide(ctx.slideIndex - 1)
}

// MoveSelection shifts the choice highlight on the active quiz slide
func (ctx *Context) MoveSelection(delta int) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	q := ctx.currentQuestion()
	if q == nil || q.Resolution() != nil {
		return
	}

	n := len(q.Slide().Choices)
	ctx.selection = ((ctx.selection+delta)%n + n) % n
}

// AnswerCurrent commits a choice on the active quiz slide.
// choice -1 means the current selection. Resolving twice is a no-op.
func (ctx *Context) AnswerCurrent(choice int) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	q := ctx.currentQuestion()
	if q == nil {
		return
	}
	if choice < 0 {
		choice = ctx.selection
	}
	if res, ok := q.Answer(choice, ctx.Clock.Now()); ok {
		ctx.applyResolution(q, res)
	}
}

// SkipCurrent resolves the active quiz slide as skipped
func (ctx *Context) SkipCurrent() {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	q := ctx.currentQuestion()
	if q == nil {
		return
	}
	if res, ok := q.Skip(ctx.Clock.Now()); ok {
		ctx.applyResolution(q, res)
	}
}

// TogglePause freezes or resumes the session clock. The tick loop is
// silenced while paused and restarted by the next Tick after resume.
func (ctx *Context) TogglePause() {
	if ctx.IsPaused.CompareAndSwap(false, true) {
		ctx.Clock.Pause()
		if ctx.Audio != nil {
			ctx.Audio.StopTick()
		}
		return
	}
	if ctx.IsPaused.CompareAndSwap(true, false) {
		ctx.Clock.Resume()
	}
}

// ToggleMute flips the audio mute flag and persists it
func (ctx *Context) ToggleMute() {
	if ctx.Audio == nil {
		return
	}
	audible := ctx.Audio.ToggleMute()
	if ctx.Settings != nil {
		ctx.Settings.Muted = !audible
		ctx.Settings.Save()
	}
}

// Tick advances time-driven state: question expiry, tick-loop phase
// tracking and emoji lifetime sweeping. Called by the scheduler.
func (ctx *Context) Tick(now time.Time) {
	ctx.mu.Lock()
	// Every started question keeps its clock, so one left mid-countdown
	// still expires while a different slide is showing
	for _, q := range ctx.questions {
		if res, ok := q.Update(now); ok {
			ctx.applyResolution(q, res)
		}
	}

	// Tick loop is audible exactly while the visible question counts down
	if ctx.Audio != nil {
		if q := ctx.currentQuestion(); q != nil && q.Phase(now) == PhaseCountdown {
			ctx.Audio.StartTick()
		} else {
			ctx.Audio.StopTick()
		}
	}
	ctx.mu.Unlock()

	if ctx.Emoji != nil {
		ctx.Emoji.Sweep(now)
	}
}

// Score returns the session score accumulator
func (ctx *Context) Score() *Score {
	return &ctx.score
}

// Snapshot captures current state for one rendered frame
func (ctx *Context) Snapshot() Snapshot {
	ctx.mu.RLock()
	defer ctx.mu.RUnlock()

	now := ctx.Clock.Now()
	snap := Snapshot{
		Now:        now,
		SlideIndex: ctx.slideIndex,
		SlideCount: len(ctx.Deck.Slides),
		Slide:      &ctx.Deck.Slides[ctx.slideIndex],
		Selection:  ctx.selection,
		Score:      ctx.score.Snapshot(),
		Paused:     ctx.IsPaused.Load(),
		Width:      ctx.width,
		Height:     ctx.height,
	}

	if ctx.Audio != nil {
		snap.Muted = ctx.Audio.IsMuted()
		snap.Track = ctx.Audio.CurrentTrack()
	}

	if q := ctx.currentQuestion(); q != nil {
		snap.HasQuestion = true
		snap.Phase = q.Phase(now)
		snap.Remaining = q.Remaining(now)
		snap.Limit = q.Slide().TimeLimit
		snap.PointsNow = q.PointsAt(now)
		snap.Resolution = q.Resolution()
	}

	return snap
}

// currentQuestion returns the active slide's question state, nil for
// content slides. Callers hold ctx.mu.
func (ctx *Context) currentQuestion() *QuestionState {
	return ctx.questions[ctx.slideIndex]
}

// enterSlide positions the session on a slide, creating question state
// and requesting its background track. Callers hold ctx.mu (or are the
// constructor).
func (ctx *Context) enterSlide(index int) {
	ctx.slideIndex = index
	ctx.selection = 0

	slide := &ctx.Deck.Slides[index]
	if slide.IsQuiz() {
		if _, ok := ctx.questions[index]; !ok {
			ctx.questions[index] = NewQuestionState(slide.Quiz, ctx.Clock.Now())
		}
	}

	if ctx.Audio != nil && slide.Music != "" {
		ctx.Audio.PlayMusic(slide.Music)
	}
}

// applyResolution runs scoring and feedback side effects exactly once
// per question. Callers hold ctx.mu.
func (ctx *Context) applyResolution(q *QuestionState, res Resolution) {
	ctx.score.Apply(res, q.Slide().Points)

	if ctx.Audio != nil {
		ctx.Audio.StopTick()
		switch res.Outcome {
		case OutcomeCorrect:
			ctx.Audio.PlayEffect(audio.CueCorrect)
		case OutcomeIncorrect:
			ctx.Audio.PlayEffect(audio.CueIncorrect)
		case OutcomeTimedOut:
			ctx.Audio.PlayEffect(audio.CueTimeout)
		case OutcomeSkipped:
			ctx.Audio.PlayEffect(audio.CueSkip)
		}
	}

	if ctx.Emoji != nil {
		switch res.Outcome {
		case OutcomeCorrect:
			ctx.Emoji.Spawn(true, ctx.Clock.Now())
		case OutcomeIncorrect:
			ctx.Emoji.Spawn(false, ctx.Clock.Now())
		}
	}
}
