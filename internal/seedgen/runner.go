package seedgen

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/gelora/pkg/logger"
)

// Run generates a synthetic league and writes it to the configured
// outputs; with Submit enabled it also posts one batch per column to the
// service at BaseURL.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}

	league := generateLeague(ctx, config, stats)

	if config.RosterFile != "" {
		if err := writeRoster(league, config.RosterFile); err != nil {
			return fmt.Errorf("roster output: %w", err)
		}
		logger.Get().Info(ctx, "roster written", logger.String("file", config.RosterFile))
	}

	if config.StatsFile != "" {
		if err := writeStatsCSV(league, config.Columns, config.StatsFile); err != nil {
			return fmt.Errorf("stats output: %w", err)
		}
		logger.Get().Info(ctx, "statistics written", logger.String("file", config.StatsFile))
	}

	if config.Submit {
		client := newHTTPClient(config.BaseURL, config.Timeout)
		if err := submitBatches(ctx, client, league, config.Columns, stats); err != nil {
			return fmt.Errorf("submit: %w", err)
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	logger.Get().Info(ctx, "seed generation complete",
		logger.Int("teams", stats.TeamsGenerated),
		logger.Int("players", stats.PlayersGenerated),
		logger.Int("records", stats.RecordsGenerated),
		logger.Int("batchesSubmitted", stats.BatchesSubmitted),
		logger.Int("batchesSuccessful", stats.BatchesSuccessful),
		logger.Int("batchesFailed", stats.BatchesFailed),
		logger.Duration("duration", stats.Duration),
	)
	return nil
}
