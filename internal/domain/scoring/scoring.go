// Package scoring computes weighted composite scores and percent-rank
// percentiles over merged player records.
//
// All functions here are pure, synchronous computations over their inputs;
// concurrent calls on disjoint inputs are safe.
package scoring

import (
	"sort"

	"github.com/okian/gelora/internal/domain/model"
)

const (
	midpointScore = 50.0
	maxScoreValue = 100.0
)

// Category is a named set of metric weights. Weights need not sum to 1;
// normalization happens at scoring time.
type Category struct {
	Name    string             `json:"name"`
	Weights map[string]float64 `json:"weights"`
}

// ScoredPlayer is a merged record plus its composite score, 1-based rank
// and percent-rank percentile for one scoring request.
type ScoredPlayer struct {
	model.MergedPlayer
	Score      float64 `json:"score"`
	Percentile float64 `json:"percentile"`
	Rank       int     `json:"rank"`
}

// Contribution explains one metric's share of a player's composite score.
// The terms numerically equal the corresponding terms of the population
// pass: same min/max baseline, same normalized weights.
type Contribution struct {
	RawValue             float64 `json:"raw_value"`
	NormalizedScore      float64 `json:"normalized_score"`
	Weight               float64 `json:"weight"`
	WeightedContribution float64 `json:"weighted_contribution"`
}

// NormalizeMetric min-max scales a numeric column across the population to
// a 0-100 range. With no variance (single player or all-equal values)
// every output is exactly 50. For negative-polarity metrics the scale is
// inverted so that lower raw values score higher.
func NormalizeMetric(values []float64, negativePolarity bool) []float64 {
	if len(values) == 0 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	out := make([]float64, len(values))
	if hi == lo {
		for i := range out {
			out[i] = midpointScore
		}
		return out
	}

	span := hi - lo
	for i, v := range values {
		scaled := (v - lo) / span * maxScoreValue
		if negativePolarity {
			scaled = maxScoreValue - scaled
		}
		out[i] = scaled
	}
	return out
}

// Scorer computes composite scores. Polarity classification is injected
// configuration, not a package constant, so alternate leagues and metric
// sets substitute without code changes.
type Scorer struct {
	negative map[string]struct{}
}

// New creates a Scorer with configuration options.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		negative: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// IsNegative reports whether the metric is classified as negative
// polarity (lower raw value is better).
func (s *Scorer) IsNegative(metric string) bool {
	_, ok := s.negative[metric]
	return ok
}

// Score computes one composite score per player for the given weights and
// returns the ranked result together with the normalized weights actually
// used.
//
// Weights are first filtered to metrics present on the records; an empty
// intersection yields ErrNoScorableMetrics. The filtered weights are
// normalized to sum to 1 unless their total is 0, in which case they stay
// unmodified and every score comes out 0. Ranking is a stable descending
// sort (equal scores keep roster-relative order); percentile is the
// fraction of the population with a strictly lower score, as a 0-100
// value.
func (s *Scorer) Score(players []model.MergedPlayer, weights map[string]float64) ([]ScoredPlayer, map[string]float64, error) {
	if len(players) == 0 {
		return nil, nil, nil
	}

	used, metrics, err := s.normalizeWeights(players[0].Stats, weights)
	if err != nil {
		return nil, nil, err
	}

	// Population-normalized 0-100 scores per included metric.
	normalized := make(map[string][]float64, len(metrics))
	for _, metric := range metrics {
		values := make([]float64, len(players))
		for i, p := range players {
			values[i] = p.Stats[metric]
		}
		normalized[metric] = NormalizeMetric(values, s.IsNegative(metric))
	}

	scored := make([]ScoredPlayer, len(players))
	for i, p := range players {
		var composite float64
		for _, metric := range metrics {
			composite += normalized[metric][i] * used[metric]
		}
		scored[i] = ScoredPlayer{MergedPlayer: p, Score: composite}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	// Ascending score list for strictly-lower counting.
	ascending := make([]float64, len(scored))
	for i, sp := range scored {
		ascending[len(scored)-1-i] = sp.Score
	}
	total := float64(len(scored))
	for i := range scored {
		scored[i].Rank = i + 1
		below := sort.SearchFloat64s(ascending, scored[i].Score)
		scored[i].Percentile = float64(below) / total * maxScoreValue
	}

	return scored, used, nil
}

// Contributions recomputes the scoring terms for a single player in
// isolation and exposes the per-metric breakdown used by explain views.
func (s *Scorer) Contributions(players []model.MergedPlayer, index int, weights map[string]float64) (map[string]Contribution, map[string]float64, error) {
	if index < 0 || index >= len(players) {
		return nil, nil, ErrPlayerIndex
	}

	used, metrics, err := s.normalizeWeights(players[index].Stats, weights)
	if err != nil {
		return nil, nil, err
	}

	contributions := make(map[string]Contribution, len(metrics))
	for _, metric := range metrics {
		values := make([]float64, len(players))
		for i, p := range players {
			values[i] = p.Stats[metric]
		}
		normalized := NormalizeMetric(values, s.IsNegative(metric))
		weight := used[metric]
		contributions[metric] = Contribution{
			RawValue:             players[index].Stats[metric],
			NormalizedScore:      normalized[index],
			Weight:               weight,
			WeightedContribution: normalized[index] * weight,
		}
	}

	return contributions, used, nil
}

// normalizeWeights filters weights to metrics present on the record shape
// and scales them to sum to 1. A zero filtered total is degenerate but
// non-fatal: the weights pass through unmodified and scores come out 0
// instead of dividing by zero. The metric list comes back sorted so that
// float accumulation order is reproducible across runs.
func (s *Scorer) normalizeWeights(shape map[string]float64, weights map[string]float64) (map[string]float64, []string, error) {
	used := make(map[string]float64, len(weights))
	var total float64
	for metric, weight := range weights {
		if _, ok := shape[metric]; !ok {
			continue
		}
		used[metric] = weight
		total += weight
	}
	if len(used) == 0 {
		return nil, nil, ErrNoScorableMetrics
	}

	metrics := make([]string, 0, len(used))
	for metric := range used {
		metrics = append(metrics, metric)
	}
	sort.Strings(metrics)

	if total > 0 {
		for metric := range used {
			used[metric] /= total
		}
	}
	return used, metrics, nil
}
