package audio

import (
	"time"

	"quizdeck/constants"
)

// Config holds audio engine tunables
type Config struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0

	// AssetDir is the root of the audio tree: background tracks under
	// background/, one-shot effects under effects/
	AssetDir string

	// Crossfade is the background track transition length
	Crossfade time.Duration

	// MaxPolyphony caps concurrent effect instances
	MaxPolyphony int
}

// DefaultConfig returns production defaults
func DefaultConfig() *Config {
	return &Config{
		Enabled:      true,
		MasterVolume: 1.0,
		AssetDir:     constants.DefaultAssetDir,
		Crossfade:    constants.CrossfadeDuration,
		MaxPolyphony: constants.MaxPolyphony,
	}
}
