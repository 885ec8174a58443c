package merge

// Option applies a configuration option to the Merger.
type Option func(*Merger)

// WithColumns overrides the statistic column list.
func WithColumns(columns []string) Option {
	return func(m *Merger) {
		if len(columns) > 0 {
			m.columns = columns
		}
	}
}

// WithLooseFallback enables the lower-confidence no-team cascade for
// players the team-validated cascade cannot resolve. Off by default;
// loose matches stay separately counted in the Summary.
func WithLooseFallback(enabled bool) Option {
	return func(m *Merger) {
		m.looseFallback = enabled
	}
}
