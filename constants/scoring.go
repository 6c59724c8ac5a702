package constants

// Scoring Constants
const (
	// DefaultBasePoints applies to quiz slides without an explicit value
	DefaultBasePoints = 100

	// MinAwardedPoints floors the time-adjusted award for a correct answer
	MinAwardedPoints = 0
)
