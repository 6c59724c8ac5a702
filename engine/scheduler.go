package engine

import (
	"sync"
	"sync/atomic"
	"time"

	"quizdeck/core"
	"quizdeck/events"
)

// Scheduler drives session logic on a fixed tick: it dispatches queued
// input events, advances the question state machine, and sweeps
// expired emoji. Rendering stays on the main goroutine; the scheduler
// is the single consumer of the event queue.
type Scheduler struct {
	ctx      *Context
	interval time.Duration
	router   *events.Router[*Context]

	tickCount atomic.Uint64

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
}

// NewScheduler creates a scheduler for the session context
func NewScheduler(ctx *Context, interval time.Duration) *Scheduler {
	s := &Scheduler{
		ctx:      ctx,
		interval: interval,
		router:   events.NewRouter[*Context](ctx.Queue),
		stopChan: make(chan struct{}),
	}
	s.router.Register(sessionHandler{})
	return s
}

// Start begins the scheduler loop
func (s *Scheduler) Start() {
	if s.running.CompareAndSwap(false, true) {
		s.wg.Add(1)
		// core.Go restores the terminal if the loop panics
		core.Go(s.loop)
	}
}

// Stop halts the scheduler loop and waits for it to drain
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		if s.running.CompareAndSwap(true, false) {
			close(s.stopChan)
			s.wg.Wait()
		}
	})
}

// TickCount returns ticks elapsed, for tests and debugging
func (s *Scheduler) TickCount() uint64 {
	return s.tickCount.Load()
}

func (s *Scheduler) loop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.tickCount.Add(1)

			// Input events dispatch even while paused so the operator
			// can unpause, mute or quit
			s.router.DispatchAll(s.ctx)

			if !s.ctx.IsPaused.Load() {
				s.ctx.Tick(s.ctx.Clock.Now())
			}
		}
	}
}

// sessionHandler routes queued input events onto context operations
type sessionHandler struct{}

func (sessionHandler) EventTypes() []events.Type {
	return []events.Type{
		events.TypeSelectionMove,
		events.TypeAnswer,
		events.TypeSkip,
		events.TypeAdvance,
		events.TypeRetreat,
		events.TypeTogglePause,
		events.TypeToggleMute,
	}
}

func (sessionHandler) HandleEvent(ctx *Context, ev events.Event) {
	switch ev.Type {
	case events.TypeSelectionMove:
		if delta, ok := ev.Payload.(int); ok {
			ctx.MoveSelection(delta)
		}
	case events.TypeAnswer:
		choice := -1
		if c, ok := ev.Payload.(int); ok {
			choice = c
		}
		ctx.AnswerCurrent(choice)
	case events.TypeSkip:
		ctx.SkipCurrent()
	case events.TypeAdvance:
		ctx.Advance()
	case events.TypeRetreat:
		ctx.Retreat()
	case events.TypeTogglePause:
		ctx.TogglePause()
	case events.TypeToggleMute:
		ctx.ToggleMute()
	}
}
