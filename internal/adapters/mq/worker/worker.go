// Package worker defines the ingest workers that fold scraped statistic
// batches into the repository.
package worker

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/okian/gelora/internal/adapters/mq/queue"
	"github.com/okian/gelora/internal/domain/model"
	"github.com/okian/gelora/pkg/logger"
	"github.com/okian/gelora/pkg/metrics"
)

// Default worker configuration constants.
const (
	defaultWorkerCount    = 4
	workerShutdownTimeout = 5 * time.Second
	poolShutdownTimeout   = 30 * time.Second
)

// Batch is what workers read off the queue.
type Batch = queue.Batch

// Sink receives the records of a processed batch.
type Sink interface {
	AddRecords(ctx context.Context, column string, records []model.StatRecord)
}

// Queue defines how workers receive batches.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Batch
}

// IngestWorker folds batches from the queue into the sink.
type IngestWorker struct {
	queue Queue
	sink  Sink
	name  string

	shutdown chan struct{}
	done     chan struct{}

	logger logger.Logger
}

// NewIngestWorker creates a worker with configuration options.
func NewIngestWorker(q Queue, sink Sink, opts ...Option) *IngestWorker {
	w := &IngestWorker{
		queue:    q,
		sink:     sink,
		name:     "ingest",
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = logger.Get().Named(w.name)
	}
	return w
}

// Run starts the worker loop until ctx is canceled or the queue closes.
func (w *IngestWorker) Run(ctx context.Context) {
	defer close(w.done)

	batches := w.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.shutdown:
			return
		case batch, ok := <-batches:
			if !ok {
				return
			}
			w.processBatch(ctx, batch)
		}
	}
}

// Shutdown gracefully stops the worker.
func (w *IngestWorker) Shutdown(ctx context.Context) error {
	close(w.shutdown)

	select {
	case <-w.done:
		return nil
	case <-ctx.Done():
		w.logger.Warn(ctx, "shutdown timed out")
		return fmt.Errorf("shutdown timed out: %w", ctx.Err())
	}
}

// processBatch tags each record with the batch's column and team, then
// appends them to the sink. The batch's slices are owned by the worker
// from dequeue onward, so tagging in place is safe.
func (w *IngestWorker) processBatch(ctx context.Context, batch Batch) {
	for i := range batch.Records {
		batch.Records[i].Column = batch.Column
		if batch.Records[i].Team == "" {
			batch.Records[i].Team = batch.Team
		}
	}

	w.sink.AddRecords(ctx, batch.Column, batch.Records)
	metrics.AddRecordsIngested(len(batch.Records))

	w.logger.Debug(ctx, "batch ingested",
		logger.String("batchID", batch.BatchID),
		logger.String("column", batch.Column),
		logger.String("team", batch.Team),
		logger.Int("records", len(batch.Records)),
	)
}

// Pool manages multiple ingest workers.
type Pool struct {
	workers []*IngestWorker

	logger logger.Logger
}

// NewPool creates a pool of workerCount ingest workers.
func NewPool(workerCount int, q Queue, sink Sink) *Pool {
	if workerCount < 1 {
		workerCount = min(runtime.NumCPU(), defaultWorkerCount)
	}

	pool := &Pool{
		workers: make([]*IngestWorker, workerCount),
		logger:  logger.Get().Named("ingest-pool"),
	}
	for i := 0; i < workerCount; i++ {
		pool.workers[i] = NewIngestWorker(q, sink, WithName("ingest-"+strconv.Itoa(i)))
	}

	metrics.UpdateWorkerCount(workerCount)
	return pool
}

// Start starts all workers in the pool.
func (p *Pool) Start(ctx context.Context) {
	for _, w := range p.workers {
		go w.Run(ctx)
	}
}

// Stop gracefully stops all workers.
func (p *Pool) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), workerShutdownTimeout)
	defer cancel()
	for _, w := range p.workers {
		_ = w.Shutdown(ctx)
	}
}

// Shutdown closes the queue, then waits for workers to drain it.
func (p *Pool) Shutdown(ctx context.Context) error {
	if closer, ok := p.workers[0].queue.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			p.logger.Error(ctx, "error closing queue", logger.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, poolShutdownTimeout)
	defer cancel()

	for i, w := range p.workers {
		select {
		case <-w.done:
		case <-shutdownCtx.Done():
			p.logger.Warn(ctx, "worker shutdown timed out", logger.Int("worker_id", i))
		}
	}
	return nil
}
