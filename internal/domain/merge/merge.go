// Package merge joins the roster with per-statistic candidate pools into
// one fixed-shape record per roster player.
package merge

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/okian/gelora/internal/domain/match"
	"github.com/okian/gelora/internal/domain/model"
)

// Summary reports match quality for one merge pass. It is advisory output
// for diagnostics and never gates the merge itself.
type Summary struct {
	TotalPlayers  int            `json:"total_players"`
	TeamValidated int            `json:"team_validated"`
	LooseOnly     int            `json:"loose_only"`
	Unmatched     int            `json:"unmatched"`
	TierCounts    map[string]int `json:"tier_counts"`
	// UnmatchedPlayers lists "Name (FullName) from Team" for every roster
	// player with zero matches across all columns.
	UnmatchedPlayers []string `json:"unmatched_players"`
}

// Merger applies the identity-resolution cascade across all players and
// statistic columns.
type Merger struct {
	columns       []string
	looseFallback bool
}

// New creates a Merger with configuration options.
func New(opts ...Option) *Merger {
	m := &Merger{
		columns: model.StatColumns,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Merge produces exactly one MergedPlayer per roster entry, in roster
// order. Every configured column is present on every output record;
// unresolved or unparseable values become exactly 0. The context parameter
// exists for interface consistency; the merge itself is a pure, synchronous
// computation and never blocks.
func (m *Merger) Merge(_ context.Context, roster []model.RosterPlayer, statsByColumn map[string][]model.StatRecord) ([]model.MergedPlayer, Summary) {
	merged := make([]model.MergedPlayer, 0, len(roster))
	summary := Summary{
		TotalPlayers: len(roster),
		TierCounts:   make(map[string]int),
	}

	for _, player := range roster {
		target := match.Target{
			Name:     player.Name,
			FullName: player.FullName,
			Team:     player.TeamName,
		}

		stats := make(map[string]float64, len(m.columns))
		strongest := match.TierNone
		for _, column := range m.columns {
			rec, tier := match.Resolve(target, statsByColumn[column])
			if tier == match.TierNone && m.looseFallback {
				rec, tier = match.ResolveLoose(target, statsByColumn[column])
			}

			var value float64
			if rec != nil {
				value = coerceValue(rec.RawValue)
			}
			stats[column] = value
			strongest = match.Stronger(strongest, tier)
		}

		summary.TierCounts[strongest.String()]++
		switch {
		case strongest.TeamValidated():
			summary.TeamValidated++
		case strongest.Matched():
			summary.LooseOnly++
		default:
			summary.Unmatched++
			summary.UnmatchedPlayers = append(summary.UnmatchedPlayers,
				fmt.Sprintf("%s (%s) from %s", player.Name, player.FullName, player.TeamName))
		}

		merged = append(merged, model.MergedPlayer{
			RosterPlayer: player,
			Stats:        stats,
			MatchTier:    strongest.String(),
		})
	}

	return merged, summary
}

// Columns returns the configured statistic column list.
func (m *Merger) Columns() []string {
	return m.columns
}

// coerceValue converts a scraped raw value to a non-negative float.
// Empty, non-numeric, NaN, infinite and negative inputs all yield exactly
// 0; coercion never produces an error.
func coerceValue(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
