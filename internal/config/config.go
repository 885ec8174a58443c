// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"

	"github.com/okian/gelora/internal/domain/model"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// RosterPath points at the roster JSON. The roster is required; the
	// process refuses to start without it.
	RosterPath string `koanf:"roster_path"`

	// StatsPath optionally points at a wide statistics CSV preloaded at
	// startup as synthetic batches, one per column.
	StatsPath string `koanf:"stats_path"`

	// BatchQueueSize bounds the in-memory ingest queue.
	BatchQueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of ingest workers.
	WorkerCount int `koanf:"worker_count"`

	// DedupeSize sets the size of the batch deduplication cache.
	DedupeSize int `koanf:"dedupe_size"`

	// MaxTableLimit caps GET /players?limit.
	MaxTableLimit int `koanf:"max_table_limit"`

	// LooseMatch enables the lower-confidence cascade that ignores team
	// identity when every team-validated strategy fails.
	LooseMatch bool `koanf:"loose_match"`

	// Columns lists the statistic columns merged into the table, in
	// output order.
	Columns []string `koanf:"columns"`

	// NegativeMetrics lists metrics where lower raw values are better.
	NegativeMetrics []string `koanf:"negative_metrics"`

	// Categories maps preset profile names to their metric weights.
	Categories map[string]map[string]float64 `koanf:"categories"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use.
func New(_ context.Context) *Config {
	c := &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		RosterPath:     "data/roster.json",
		StatsPath:      "",
		BatchQueueSize: 4096,
		WorkerCount:    4,
		DedupeSize:     100_000,
		MaxTableLimit:  1000,
		LooseMatch:     false,
		Columns:        append([]string(nil), model.StatColumns...),
		NegativeMetrics: []string{
			"Own Goal",
			"Yellow Card",
			"Foul",
			"Shoot Off Target",
		},
		Categories: map[string]map[string]float64{
			"Attacking Score": {
				"Goal":            0.35,
				"Assist":          0.25,
				"Shoot On Target": 0.20,
				"Create Chance":   0.15,
				"Penalty Goal":    0.05,
			},
			"Playmaking Score": {
				"Passing":       0.30,
				"Assist":        0.25,
				"Create Chance": 0.20,
				"Cross":         0.15,
				"Free Kick":     0.10,
			},
			"Build up Score": {
				"Passing":         0.35,
				"Dribble Success": 0.25,
				"Ball Recovery":   0.20,
				"Cross":           0.20,
			},
			"Defensive Score": {
				"Tackle":        0.25,
				"Clearance":     0.20,
				"Intercept":     0.20,
				"Block":         0.15,
				"Header Won":    0.10,
				"Ball Recovery": 0.10,
			},
		},
	}
	return c
}
