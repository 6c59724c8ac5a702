package events

import (
	"time"
)

// Type identifies a session event
type Type int

const (
	// TypeSelectionMove moves the choice highlight on a quiz slide
	// Trigger: InputHandler (arrows, j/k) | Payload: delta int
	TypeSelectionMove Type = iota

	// TypeAnswer commits an answer on the active quiz slide
	// Trigger: InputHandler (enter, 1-4, a-d)
	// Payload: choice index int, or -1 for the current selection
	TypeAnswer

	// TypeSkip resolves the active quiz slide as skipped
	// Trigger: InputHandler (s) | Payload: nil
	TypeSkip

	// TypeAdvance moves to the next slide; an unresolved quiz slide
	// is resolved as skipped first
	// Trigger: InputHandler (n, space, right) | Payload: nil
	TypeAdvance

	// TypeRetreat moves to the previous slide
	// Trigger: InputHandler (p, left) | Payload: nil
	TypeRetreat

	// TypeTogglePause freezes/unfreezes the session clock
	// Trigger: InputHandler (tab) | Payload: nil
	TypeTogglePause

	// TypeToggleMute flips and persists the audio mute flag
	// Trigger: InputHandler (m) | Payload: nil
	TypeToggleMute
)

// Event is a single session event with metadata
type Event struct {
	Type      Type
	Payload   any
	Timestamp time.Time
}
