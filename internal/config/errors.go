package config

import (
	"errors"
)

// Sentinel error kinds, matchable with errors.Is from callers.
var (
	// ErrInvalidConfig marks a loaded configuration that fails validation,
	// e.g. an empty listen address, roster path or column list.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrLoadConfig marks a failure in the defaults/file/env merge itself.
	ErrLoadConfig = errors.New("load config failed")
)
