package scoring

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithNegativeMetrics sets the metrics for which lower raw values are
// better. The set replaces any previous classification.
func WithNegativeMetrics(metrics []string) Option {
	return func(s *Scorer) {
		s.negative = make(map[string]struct{}, len(metrics))
		for _, m := range metrics {
			s.negative[m] = struct{}{}
		}
	}
}
