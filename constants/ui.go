package constants

// UI Constants
const (
	// EventQueueSize is the input/session event ring capacity (power of two)
	EventQueueSize = 256

	// EventBufferMask wraps ring indices
	EventBufferMask = EventQueueSize - 1

	// SlideMarginX is the horizontal margin around slide content
	SlideMarginX = 6

	// SlideMarginY is the vertical margin around slide content
	SlideMarginY = 2

	// TimerBarHeight is the rows reserved for the countdown bar
	TimerBarHeight = 1

	// StatusBarHeight is the rows reserved for the bottom status bar
	StatusBarHeight = 1

	// MinScreenWidth and MinScreenHeight are the smallest usable terminal
	MinScreenWidth  = 40
	MinScreenHeight = 12
)
