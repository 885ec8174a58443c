// Package repository defines the in-run keyed table of roster players and
// scraped statistic candidate pools.
package repository

import (
	"context"

	"github.com/okian/gelora/internal/domain/model"
)

// Store provides read/write access to the run's reconciliation inputs.
// The roster is set once per run; statistic records accumulate as ingest
// workers fold batches in. Readers always see consistent snapshots.
type Store interface {
	// SetRoster replaces the roster for the current run.
	SetRoster(ctx context.Context, roster []model.RosterPlayer)

	// Roster returns the roster in load order.
	Roster(ctx context.Context) []model.RosterPlayer

	// PlayerIndex returns the roster position of the player identified by
	// (fullName-or-name, teamName). Returns ErrNotFound when unknown.
	PlayerIndex(ctx context.Context, name, team string) (int, error)

	// AddRecords appends statistic records to a column's candidate pool.
	AddRecords(ctx context.Context, column string, records []model.StatRecord)

	// StatsByColumn returns a snapshot of every column's candidate pool.
	StatsByColumn(ctx context.Context) map[string][]model.StatRecord

	// RecordCount returns the total number of stored statistic records.
	RecordCount(ctx context.Context) int

	// Version increases on every write. Callers cache derived state (such
	// as a merge result) keyed by this value.
	Version(ctx context.Context) uint64
}
