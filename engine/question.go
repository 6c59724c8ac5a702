package engine

import (
	"math"
	"time"

	"quizdeck/constants"
	"quizdeck/quiz"
)

// Phase is the lifecycle stage of the active quiz slide
type Phase int

const (
	// PhasePreCountdown is the grace period: full points shown, no
	// deduction, tick loop silent
	PhasePreCountdown Phase = iota

	// PhaseCountdown decays points linearly per elapsed second with the
	// tick loop active
	PhaseCountdown

	// PhaseAnswered, PhaseExpired and PhaseSkipped are terminal; the
	// clock is stopped and the tick loop silenced
	PhaseAnswered
	PhaseExpired
	PhaseSkipped
)

// Terminal reports whether the phase is a resolution state
func (p Phase) Terminal() bool {
	return p == PhaseAnswered || p == PhaseExpired || p == PhaseSkipped
}

func (p Phase) String() string {
	switch p {
	case PhasePreCountdown:
		return "pre-countdown"
	case PhaseCountdown:
		return "countdown"
	case PhaseAnswered:
		return "answered"
	case PhaseExpired:
		return "expired"
	case PhaseSkipped:
		return "skipped"
	}
	return "unknown"
}

// Outcome classifies how a quiz slide resolved
type Outcome int

const (
	OutcomeCorrect Outcome = iota
	OutcomeIncorrect
	OutcomeTimedOut
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeTimedOut:
		return "timed-out"
	case OutcomeSkipped:
		return "skipped"
	}
	return "unknown"
}

// Resolution records how the active question ended.
// Points is zero for every outcome except correct.
type Resolution struct {
	Outcome Outcome
	Choice  int // chosen index, -1 for timeout/skip
	Points  int
}

// QuestionState owns the per-question lifecycle:
// pre-countdown -> countdown -> expired, interrupted at any point by
// Answer or Skip. All methods take the current session time so the
// state machine stays deterministic and testable.
type QuestionState struct {
	slide *quiz.QuizSlide
	limit time.Duration
	grace time.Duration

	started    time.Time // entered pre-countdown
	phase      Phase
	resolvedAt time.Time
	resolution *Resolution
}

// NewQuestionState starts the lifecycle at pre-countdown.
func NewQuestionState(slide *quiz.QuizSlide, now time.Time) *QuestionState {
	return &QuestionState{
		slide:   slide,
		limit:   slide.TimeLimit,
		grace:   constants.PreCountdownGrace,
		started: now,
		phase:   PhasePreCountdown,
	}
}

// Slide returns the question being played.
func (q *QuestionState) Slide() *quiz.QuizSlide {
	return q.slide
}

// Phase returns the current lifecycle phase at the given time,
// advancing pre-countdown -> countdown implicitly. Terminal phases are
// sticky regardless of time.
func (q *QuestionState) Phase(now time.Time) Phase {
	if q.phase.Terminal() {
		return q.phase
	}
	if now.Sub(q.started) < q.grace {
		return PhasePreCountdown
	}
	return PhaseCountdown
}

// Elapsed returns countdown time consumed, excluding the grace period,
// clamped to [0, limit]. For resolved questions it is frozen at the
// resolution instant.
func (q *QuestionState) Elapsed(now time.Time) time.Duration {
	at := now
	if q.phase.Terminal() {
		at = q.resolvedAt
	}
	elapsed := at.Sub(q.started) - q.grace
	if elapsed < 0 {
		return 0
	}
	if elapsed > q.limit {
		return q.limit
	}
	return elapsed
}

// Remaining returns countdown time left, clamped to [0, limit].
func (q *QuestionState) Remaining(now time.Time) time.Duration {
	return q.limit - q.Elapsed(now)
}

// PointsAt returns the time-adjusted award for a correct answer at the
// given instant: round(base * (1 - elapsedSeconds/limitSeconds)),
// floored at zero. During pre-countdown the full base value is shown.
// The award is monotonically non-increasing in elapsed time.
func (q *QuestionState) PointsAt(now time.Time) int {
	elapsed := q.Elapsed(now).Seconds()
	limit := q.limit.Seconds()
	if limit <= 0 {
		return q.slide.Points
	}

	pts := int(math.Round(float64(q.slide.Points) * (1 - elapsed/limit)))
	if pts < constants.MinAwardedPoints {
		pts = constants.MinAwardedPoints
	}
	return pts
}

// Update advances time-driven transitions. Returns the resolution and
// true exactly once, on the tick that crosses the time limit.
func (q *QuestionState) Update(now time.Time) (Resolution, bool) {
	if q.phase.Terminal() {
		return Resolution{}, false
	}

	q.phase = q.Phase(now)
	if q.phase == PhaseCountdown && q.Remaining(now) <= 0 {
		res := Resolution{Outcome: OutcomeTimedOut, Choice: -1, Points: 0}
		q.resolve(PhaseExpired, res, now)
		return res, true
	}
	return Resolution{}, false
}

// Answer resolves the question with the given choice. Returns false if
// the question already resolved (answering twice is a no-op).
func (q *QuestionState) Answer(choice int, now time.Time) (Resolution, bool) {
	if q.phase.Terminal() {
		return Resolution{}, false
	}
	if choice < 0 || choice >= len(q.slide.Choices) {
		return Resolution{}, false
	}

	res := Resolution{Outcome: OutcomeIncorrect, Choice: choice, Points: 0}
	if choice == q.slide.Correct {
		res.Outcome = OutcomeCorrect
		res.Points = q.PointsAt(now)
	}
	q.resolve(PhaseAnswered, res, now)
	return res, true
}

// Skip resolves the question as skipped for zero points. Returns false
// if the question already resolved.
func (q *QuestionState) Skip(now time.Time) (Resolution, bool) {
	if q.phase.Terminal() {
		return Resolution{}, false
	}

	res := Resolution{Outcome: OutcomeSkipped, Choice: -1, Points: 0}
	q.resolve(PhaseSkipped, res, now)
	return res, true
}

// Resolution returns the recorded outcome, nil while unresolved.
func (q *QuestionState) Resolution() *Resolution {
	return q.resolution
}

func (q *QuestionState) resolve(phase Phase, res Resolution, now time.Time) {
	q.phase = phase
	q.resolvedAt = now
	r := res
	q.resolution = &r
}
