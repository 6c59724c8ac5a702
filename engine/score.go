package engine

import (
	"sync"
)

// Score accumulates awarded points alongside the maximum-possible
// total. Earned only ever grows; Possible grows by each resolved quiz
// slide's base value regardless of outcome.
type Score struct {
	mu       sync.RWMutex
	earned   int
	possible int
	correct  int
	resolved int
}

// ScoreSnapshot is a point-in-time copy for rendering.
type ScoreSnapshot struct {
	Earned   int
	Possible int
	Correct  int
	Resolved int
}

// Apply records a resolution against a question worth basePoints.
func (s *Score) Apply(res Resolution, basePoints int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if res.Points > 0 {
		s.earned += res.Points
	}
	s.possible += basePoints
	s.resolved++
	if res.Outcome == OutcomeCorrect {
		s.correct++
	}
}

// Snapshot returns a copy of current totals.
func (s *Score) Snapshot() ScoreSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ScoreSnapshot{
		Earned:   s.earned,
		Possible: s.possible,
		Correct:  s.correct,
		Resolved: s.resolved,
	}
}
