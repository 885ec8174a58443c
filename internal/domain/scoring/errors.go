package scoring

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrNoScorableMetrics means the supplied weights intersect no metric
	// present on the records. Scoring aborts for that request only.
	ErrNoScorableMetrics = errors.New("no scorable metrics")

	// ErrPlayerIndex means a contribution breakdown was requested for an
	// index outside the player population.
	ErrPlayerIndex = errors.New("player index out of range")

	// ErrUnknownCategory means a scoring request named a category that is
	// not configured.
	ErrUnknownCategory = errors.New("unknown category")
)
