// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/okian/gelora/internal/adapters/http/api"
	batchqueue "github.com/okian/gelora/internal/adapters/mq/queue"
	workerpool "github.com/okian/gelora/internal/adapters/mq/worker"
	repository "github.com/okian/gelora/internal/adapters/repository"
	"github.com/okian/gelora/internal/domain/dedupe"
	"github.com/okian/gelora/internal/domain/merge"
	"github.com/okian/gelora/internal/domain/model"
	"github.com/okian/gelora/internal/domain/scoring"
	"github.com/okian/gelora/pkg/logger"
	"github.com/okian/gelora/pkg/metrics"
)

// Service implements the API dependencies for the reconciliation system.
type Service struct {
	mu sync.RWMutex

	// Core components
	store      repository.Store
	deduper    dedupe.Deduper
	batchQueue batchqueue.Queue
	workerPool *workerpool.Pool
	merger     *merge.Merger
	scorer     *scoring.Scorer

	// Configuration
	workerCount     int
	queueSize       int
	dedupeSize      int
	columns         []string
	negativeMetrics []string
	categories      map[string]map[string]float64
	looseMatch      bool

	// Merge cache, keyed by the store's write version. Recomputed lazily
	// on the first read after a write.
	cacheMu       sync.Mutex
	cacheVersion  uint64
	cacheValid    bool
	cachedPlayers []model.MergedPlayer
	cachedSummary merge.Summary

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of ingest workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the batch queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithDedupeSize sets the size of the batch deduplication cache.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.dedupeSize = size
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithColumns sets the statistic columns merged into the table.
func WithColumns(columns []string) Option {
	return func(s *Service) {
		if len(columns) > 0 {
			s.columns = columns
		}
	}
}

// WithNegativeMetrics sets the metrics where lower raw values are better.
func WithNegativeMetrics(metrics []string) Option {
	return func(s *Service) {
		s.negativeMetrics = metrics
	}
}

// WithCategories sets the preset scoring categories.
func WithCategories(categories map[string]map[string]float64) Option {
	return func(s *Service) {
		s.categories = categories
	}
}

// WithLooseMatch enables the lower-confidence cascade that ignores team
// identity when every team-validated strategy fails.
func WithLooseMatch(enabled bool) Option {
	return func(s *Service) {
		s.looseMatch = enabled
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: 4,
		queueSize:   4096,
		dedupeSize:  100_000,
		columns:     append([]string(nil), model.StatColumns...),
		categories:  map[string]map[string]float64{},
		logger:      nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting reconciliation service...")

	// Initialize components
	s.store = repository.NewMemStore(ctx, repository.WithColumnCapacity(len(s.columns)))
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)
	s.batchQueue = batchqueue.NewInMemoryQueue(
		batchqueue.WithCapacity(s.queueSize),
	)
	s.merger = merge.New(
		merge.WithColumns(s.columns),
		merge.WithLooseFallback(s.looseMatch),
	)
	s.scorer = scoring.New(
		scoring.WithNegativeMetrics(s.negativeMetrics),
	)

	// Create and start the ingest worker pool
	s.workerPool = workerpool.NewPool(s.workerCount, s.batchQueue, s.store)
	s.workerPool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "reconciliation service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("dedupeSize", s.dedupeSize),
		logger.Int("columns", len(s.columns)),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping reconciliation service...")

	// Close the queue first so workers drain what is left, then stop them
	if s.batchQueue != nil {
		_ = s.batchQueue.Close()
	}
	if s.workerPool != nil {
		s.workerPool.Stop()
	}

	s.started = false
	s.logger.Info(context.Background(), "reconciliation service stopped")
}

// SetRoster installs the authoritative roster for this run. Called once at
// startup, before traffic is served.
func (s *Service) SetRoster(ctx context.Context, roster []model.RosterPlayer) {
	s.store.SetRoster(ctx, roster)
	metrics.UpdateRosterSize(len(roster))

	s.logger.Info(ctx, "roster loaded", logger.Int("players", len(roster)))
}

// SeenAndRecord atomically checks if a batch id was seen and records it if
// not. Returns true if the batch was already seen.
func (s *Service) SeenAndRecord(ctx context.Context, id string) bool {
	return s.deduper.SeenAndRecord(ctx, id)
}

// Unrecord removes a batch ID from the seen list, allowing it to be retried.
func (s *Service) Unrecord(ctx context.Context, id string) {
	s.deduper.Unrecord(ctx, id)
}

// Size returns the current number of entries in the deduper.
func (s *Service) Size() int {
	if s.deduper == nil {
		return 0
	}
	return s.deduper.Size()
}

// Enqueue submits a statistic batch for asynchronous ingestion.
func (s *Service) Enqueue(ctx context.Context, b model.StatBatch) bool {
	s.logger.Debug(ctx, "received batch",
		logger.String("batchID", b.BatchID),
		logger.String("column", b.Column),
		logger.Int("records", len(b.Records)),
	)

	return s.batchQueue.Enqueue(ctx, b)
}

// Columns returns the statistic columns in output order.
func (s *Service) Columns() []string {
	return s.columns
}

// MergedPlayers returns the merged table and its reconciliation summary,
// recomputing only when ingest has advanced the store version.
func (s *Service) MergedPlayers(ctx context.Context) ([]model.MergedPlayer, merge.Summary) {
	version := s.store.Version(ctx)

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()

	if s.cacheValid && s.cacheVersion == version {
		return s.cachedPlayers, s.cachedSummary
	}

	roster := s.store.Roster(ctx)
	stats := s.store.StatsByColumn(ctx)

	start := time.Now()
	players, summary := s.merger.Merge(ctx, roster, stats)
	metrics.RecordMergeRun(float64(time.Since(start).Milliseconds()))
	metrics.UpdateMergeSummary(summary.TierCounts, summary.Unmatched)

	s.cacheVersion = version
	s.cacheValid = true
	s.cachedPlayers = players
	s.cachedSummary = summary

	s.logger.Debug(ctx, "merge recomputed",
		logger.Int("players", summary.TotalPlayers),
		logger.Int("teamValidated", summary.TeamValidated),
		logger.Int("unmatched", summary.Unmatched),
	)

	return players, summary
}

// ScoreCategory ranks the merged table by a weighted composite. Explicit
// weights take precedence; otherwise category must name a configured
// preset.
func (s *Service) ScoreCategory(ctx context.Context, category string, weights map[string]float64) ([]scoring.ScoredPlayer, map[string]float64, error) {
	label := category
	if label == "" {
		label = "custom"
	}
	metrics.RecordScoringRequest(label)

	resolved, err := s.resolveWeights(category, weights)
	if err != nil {
		metrics.RecordScoringError()
		return nil, nil, err
	}

	players, _ := s.MergedPlayers(ctx)
	scored, used, err := s.scorer.Score(players, resolved)
	if err != nil {
		metrics.RecordScoringError()
		return nil, nil, err
	}
	return scored, used, nil
}

// Contributions returns one player's scored entry plus the per-metric
// breakdown of its composite. The terms equal the corresponding terms of
// the full population pass.
func (s *Service) Contributions(ctx context.Context, name, team, category string) (scoring.ScoredPlayer, map[string]scoring.Contribution, error) {
	resolved, err := s.resolveWeights(category, nil)
	if err != nil {
		return scoring.ScoredPlayer{}, nil, err
	}

	players, _ := s.MergedPlayers(ctx)
	index, err := s.findPlayer(ctx, players, name, team)
	if err != nil {
		return scoring.ScoredPlayer{}, nil, err
	}

	contribs, _, err := s.scorer.Contributions(players, index, resolved)
	if err != nil {
		return scoring.ScoredPlayer{}, nil, err
	}

	scored, _, err := s.scorer.Score(players, resolved)
	if err != nil {
		return scoring.ScoredPlayer{}, nil, err
	}
	target := players[index]
	for _, sp := range scored {
		if sp.Name == target.Name && sp.TeamName == target.TeamName {
			return sp, contribs, nil
		}
	}
	return scoring.ScoredPlayer{}, nil, repository.ErrNotFound
}

// Categories returns the preset categories sorted by name.
func (s *Service) Categories(_ context.Context) []scoring.Category {
	names := make([]string, 0, len(s.categories))
	for name := range s.categories {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]scoring.Category, 0, len(names))
	for _, name := range names {
		weights := make(map[string]float64, len(s.categories[name]))
		for metric, w := range s.categories[name] {
			weights[metric] = w
		}
		out = append(out, scoring.Category{Name: name, Weights: weights})
	}
	return out
}

// GetStats returns the monitoring snapshot served on GET /stats and
// refreshes the queue-size gauge along the way.
func (s *Service) GetStats(ctx context.Context) api.ServiceStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := api.ServiceStats{
		Started:       s.started,
		WorkerCount:   s.workerCount,
		QueueCapacity: s.queueSize,
	}

	if s.started {
		stats.QueueLength = s.batchQueue.Len(ctx)
		stats.RosterSize = len(s.store.Roster(ctx))
		stats.RecordCount = s.store.RecordCount(ctx)
		stats.DedupeEntries = s.deduper.Size()

		metrics.UpdateQueueSize(stats.QueueLength)
	}

	return stats
}

// resolveWeights picks explicit weights when supplied, otherwise looks up
// the named preset category.
func (s *Service) resolveWeights(category string, weights map[string]float64) (map[string]float64, error) {
	if len(weights) > 0 {
		return weights, nil
	}
	preset, ok := s.categories[category]
	if !ok {
		return nil, scoring.ErrUnknownCategory
	}
	return preset, nil
}

// findPlayer resolves a roster position from name and optional team. With
// a team the lookup is exact via the store index; without one the first
// roster entry whose name or full name matches wins.
func (s *Service) findPlayer(ctx context.Context, players []model.MergedPlayer, name, team string) (int, error) {
	if team != "" {
		return s.store.PlayerIndex(ctx, name, team)
	}
	for i, p := range players {
		if p.Name == name || p.FullName == name {
			return i, nil
		}
	}
	return 0, repository.ErrNotFound
}
