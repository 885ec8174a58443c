package source

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrSourceUnavailable means a required input file is missing or
	// unreadable. Fatal to the run.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrMalformedSource means an input parsed but carries none of the
	// structure this system needs. Partially malformed rows degrade
	// gracefully instead of raising this.
	ErrMalformedSource = errors.New("malformed source")
)
