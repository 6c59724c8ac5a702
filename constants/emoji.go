package constants

import "time"

// Emoji Feedback Constants
const (
	// EmojiLifetime is animation plus display duration before auto-removal
	EmojiLifetime = 2 * time.Second

	// EmojiRecentWindow is how many preceding glyph picks to bias against
	EmojiRecentWindow = 2

	// EmojiPlacementRetries bounds the overlap-rejection sampling loop
	EmojiPlacementRetries = 8

	// EmojiOverlapThreshold is the tolerated overlap area in cells between
	// two concurrently displayed emoji footprints
	EmojiOverlapThreshold = 1

	// EmojiFootprintWidth and EmojiFootprintHeight define the screen area
	// an emoji instance occupies for overlap purposes
	EmojiFootprintWidth  = 4
	EmojiFootprintHeight = 2
)
