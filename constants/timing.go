package constants

import "time"

// Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickInterval is the session logic update interval (clock tick)
	TickInterval = 50 * time.Millisecond

	// PreCountdownGrace is the grace period before point decay begins
	PreCountdownGrace = 1 * time.Second

	// DefaultTimeLimit applies to quiz slides without an explicit limit
	DefaultTimeLimit = 30 * time.Second
)
