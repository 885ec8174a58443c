// Package match resolves a roster player against a pool of scraped
// statistic records using a fixed cascade of strategies.
//
// The cascade returns on the first strategy that finds a candidate, so an
// exact match always beats a fuzzy one even when both exist. Within one
// strategy, ties break on the smallest (name, team) pair, which makes the
// result independent of candidate enumeration order.
package match

import (
	"strings"

	"github.com/okian/gelora/internal/domain/model"
	"github.com/okian/gelora/internal/domain/namekey"
)

// Target is the roster side of a resolution request.
type Target struct {
	Name     string
	FullName string
	Team     string
}

// Resolve runs the team-validated cascade against the candidate pool and
// returns the matching record with its tier, or (nil, TierNone).
//
// Team equality is always checked against the unnormalized team string: a
// candidate whose name matches under a different team is rejected rather
// than cross-matched, so two same-named players on different clubs never
// swap statistics. Resolve is a pure query and never fails.
func Resolve(target Target, pool []model.StatRecord) (*model.StatRecord, Tier) {
	cleanFullName := namekey.Normalize(target.FullName)
	cleanName := namekey.Normalize(target.Name)

	strategies := []struct {
		tier Tier
		ok   func(model.StatRecord) bool
	}{
		{TierExactFullNameTeam, func(c model.StatRecord) bool {
			return target.FullName != "" && c.PlayerName == target.FullName && c.Team == target.Team
		}},
		{TierExactNameTeam, func(c model.StatRecord) bool {
			return target.Name != "" && c.PlayerName == target.Name && c.Team == target.Team
		}},
		{TierCleanFullNameTeam, func(c model.StatRecord) bool {
			return cleanFullName != "" && c.Team == target.Team && namekey.Normalize(c.PlayerName) == cleanFullName
		}},
		{TierCleanNameTeam, func(c model.StatRecord) bool {
			return cleanName != "" && c.Team == target.Team && namekey.Normalize(c.PlayerName) == cleanName
		}},
	}

	for _, s := range strategies {
		if best := pickBest(pool, s.ok); best != nil {
			return best, s.tier
		}
	}
	return nil, TierNone
}

// ResolveLoose runs the lower-confidence cascade that drops the team
// constraint: exact fullName, exact name, then substring containment in
// either direction between the normalized target names and the normalized
// candidate name. Used only when scraped data carries no reliable team
// tag; results must be reported separately from team-validated matches.
func ResolveLoose(target Target, pool []model.StatRecord) (*model.StatRecord, Tier) {
	cleanFullName := namekey.Normalize(target.FullName)
	cleanName := namekey.Normalize(target.Name)

	strategies := []struct {
		tier Tier
		ok   func(model.StatRecord) bool
	}{
		{TierLooseExactFullName, func(c model.StatRecord) bool {
			return target.FullName != "" && c.PlayerName == target.FullName
		}},
		{TierLooseExactName, func(c model.StatRecord) bool {
			return target.Name != "" && c.PlayerName == target.Name
		}},
		{TierLooseContains, func(c model.StatRecord) bool {
			clean := namekey.Normalize(c.PlayerName)
			return containsEither(cleanFullName, clean) || containsEither(cleanName, clean)
		}},
	}

	for _, s := range strategies {
		if best := pickBest(pool, s.ok); best != nil {
			return best, s.tier
		}
	}
	return nil, TierNone
}

// containsEither reports substring containment in either direction between
// two normalized names. Empty strings never match.
func containsEither(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// pickBest scans the pool for candidates satisfying ok and returns the one
// with the smallest (PlayerName, Team) pair, or nil when none qualifies.
func pickBest(pool []model.StatRecord, ok func(model.StatRecord) bool) *model.StatRecord {
	var best *model.StatRecord
	for i := range pool {
		c := &pool[i]
		if !ok(*c) {
			continue
		}
		if best == nil || lessCandidate(c, best) {
			best = c
		}
	}
	return best
}

func lessCandidate(a, b *model.StatRecord) bool {
	if a.PlayerName != b.PlayerName {
		return a.PlayerName < b.PlayerName
	}
	return a.Team < b.Team
}
