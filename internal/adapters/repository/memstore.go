package repository

import (
	"context"
	"sync"

	"github.com/okian/gelora/internal/domain/model"
)

type playerKey struct {
	name string
	team string
}

// MemStore implements Store with an RWMutex-guarded in-memory table.
type MemStore struct {
	mu      sync.RWMutex
	roster  []model.RosterPlayer
	index   map[playerKey]int
	stats   map[string][]model.StatRecord
	records int
	version uint64
}

// NewMemStore creates an empty in-memory store.
func NewMemStore(_ context.Context, opts ...Option) *MemStore {
	s := &MemStore{
		index: make(map[playerKey]int),
		stats: make(map[string][]model.StatRecord),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemStore) SetRoster(_ context.Context, roster []model.RosterPlayer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.roster = make([]model.RosterPlayer, len(roster))
	copy(s.roster, roster)

	s.index = make(map[playerKey]int, len(roster)*2)
	for i, p := range roster {
		// Index under both display and full name so either resolves.
		if p.Name != "" {
			s.index[playerKey{p.Name, p.TeamName}] = i
		}
		if p.FullName != "" {
			s.index[playerKey{p.FullName, p.TeamName}] = i
		}
	}
	s.version++
}

func (s *MemStore) Roster(_ context.Context) []model.RosterPlayer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.RosterPlayer, len(s.roster))
	copy(out, s.roster)
	return out
}

func (s *MemStore) PlayerIndex(_ context.Context, name, team string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i, ok := s.index[playerKey{name, team}]; ok {
		return i, nil
	}
	return 0, ErrNotFound
}

func (s *MemStore) AddRecords(_ context.Context, column string, records []model.StatRecord) {
	if len(records) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stats[column] = append(s.stats[column], records...)
	s.records += len(records)
	s.version++
}

func (s *MemStore) StatsByColumn(_ context.Context) map[string][]model.StatRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string][]model.StatRecord, len(s.stats))
	for column, pool := range s.stats {
		cp := make([]model.StatRecord, len(pool))
		copy(cp, pool)
		out[column] = cp
	}
	return out
}

func (s *MemStore) RecordCount(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

func (s *MemStore) Version(_ context.Context) uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
