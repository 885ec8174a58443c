package repository

import "github.com/okian/gelora/internal/domain/model"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithColumnCapacity pre-sizes each candidate pool map.
func WithColumnCapacity(n int) Option {
	return func(s *MemStore) {
		if n > 0 {
			s.stats = make(map[string][]model.StatRecord, n)
		}
	}
}
