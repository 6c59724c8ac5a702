package constants

import "time"

// Audio Constants
const (
	// AudioSampleRate is the speaker sample rate shared by all streamers
	AudioSampleRate = 48000

	// AudioBufferLength is the speaker buffer duration
	AudioBufferLength = 100 * time.Millisecond

	// CrossfadeDuration is the background track transition length.
	// Outgoing and incoming ramps run for this long, independently.
	CrossfadeDuration = 2 * time.Second

	// MaxPolyphony caps concurrently playing sound effect instances.
	// The oldest instance is evicted when the cap is exceeded.
	MaxPolyphony = 8

	// ResampleQuality is passed to beep.Resample for rate conversion
	ResampleQuality = 4

	// TickPeriod is the countdown tick loop interval
	TickPeriod = 1 * time.Second

	// TickClickDuration is the audible portion of each tick
	TickClickDuration = 40 * time.Millisecond

	// DefaultAssetDir is the root of the audio asset tree
	// (background tracks under background/, effects under effects/)
	DefaultAssetDir = "data/sfx"
)
