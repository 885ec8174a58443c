// Package metrics provides Prometheus metrics for the gelora service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the metric instruments and their registry.
type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	// Ingest metrics.
	batchesAccepted  prometheus.Counter
	batchesDuplicate prometheus.Counter
	batchesRejected  prometheus.Counter
	recordsIngested  prometheus.Counter

	// Merge metrics.
	mergeRuns        prometheus.Counter
	mergeDuration    prometheus.Histogram
	playersByTier    *prometheus.GaugeVec
	unmatchedPlayers prometheus.Gauge
	rosterSize       prometheus.Gauge

	// Scoring metrics.
	scoringRequests *prometheus.CounterVec
	scoringErrors   prometheus.Counter
	scoringDuration prometheus.Histogram

	// Queue and worker metrics.
	queueSize          prometheus.Gauge
	queueCapacity      prometheus.Gauge
	queueUtilization   prometheus.Gauge
	queueEnqueueErrors *prometheus.CounterVec
	workerCount        prometheus.Gauge

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System metrics.
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPause        prometheus.Histogram
}

// NewManager creates a Manager with its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "gelora",
		buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500},
		registry:  prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.batchesAccepted = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "ingest", Name: "batches_accepted_total",
		Help: "Statistic batches accepted for processing.",
	})
	m.batchesDuplicate = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "ingest", Name: "batches_duplicate_total",
		Help: "Statistic batches skipped as already-seen resubmissions.",
	})
	m.batchesRejected = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "ingest", Name: "batches_rejected_total",
		Help: "Statistic batches rejected due to queue backpressure.",
	})
	m.recordsIngested = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "ingest", Name: "records_total",
		Help: "Individual statistic records folded into the repository.",
	})

	m.mergeRuns = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "merge", Name: "runs_total",
		Help: "Roster/statistics merge passes executed.",
	})
	m.mergeDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: "merge", Name: "duration_ms",
		Help: "Merge pass duration in milliseconds.", Buckets: m.buckets,
	})
	m.playersByTier = factory.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: "merge", Name: "players_by_tier",
		Help: "Players per strongest match tier from the last merge pass.",
	}, []string{"tier"})
	m.unmatchedPlayers = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: "merge", Name: "unmatched_players",
		Help: "Players with zero statistic matches in the last merge pass.",
	})
	m.rosterSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: "merge", Name: "roster_size",
		Help: "Roster players loaded for the current run.",
	})

	m.scoringRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "scoring", Name: "requests_total",
		Help: "Scoring requests by category.",
	}, []string{"category"})
	m.scoringErrors = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "scoring", Name: "errors_total",
		Help: "Scoring requests that failed.",
	})
	m.scoringDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: "scoring", Name: "duration_ms",
		Help: "Scoring request duration in milliseconds.", Buckets: m.buckets,
	})

	m.queueSize = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: "queue", Name: "size",
		Help: "Batches currently queued for ingestion.",
	})
	m.queueCapacity = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: "queue", Name: "capacity",
		Help: "Configured ingest queue capacity.",
	})
	m.queueUtilization = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: "queue", Name: "utilization",
		Help: "Ingest queue fill ratio (0-1).",
	})
	m.queueEnqueueErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "queue", Name: "enqueue_errors_total",
		Help: "Failed enqueue attempts by reason.",
	}, []string{"reason"})
	m.workerCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: "worker", Name: "count",
		Help: "Ingest workers running.",
	})

	m.httpRequests = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: "http", Name: "requests_total",
		Help: "HTTP requests by endpoint, method and status.",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: "http", Name: "request_duration_ms",
		Help: "HTTP request duration in milliseconds.", Buckets: m.buckets,
	}, []string{"endpoint", "method", "status"})

	m.systemMemoryUsage = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: "system", Name: "memory_bytes",
		Help: "Heap bytes currently allocated.",
	})
	m.systemGoroutineCount = factory.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: "system", Name: "goroutines",
		Help: "Goroutines currently running.",
	})
	m.systemGCPause = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: "system", Name: "gc_pause_ms",
		Help: "Average GC pause time in milliseconds.", Buckets: m.buckets,
	})

	return m
}

// Registry returns the manager's Prometheus registry.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

var defaultManager = NewManager()

// GetRegistry returns the default registry served on /healthz.
func GetRegistry() *prometheus.Registry { return defaultManager.Registry() }

// Package-level recording helpers against the default manager.

func RecordBatchAccepted()  { defaultManager.batchesAccepted.Inc() }
func RecordBatchDuplicate() { defaultManager.batchesDuplicate.Inc() }
func RecordBatchRejected()  { defaultManager.batchesRejected.Inc() }

func AddRecordsIngested(n int) { defaultManager.recordsIngested.Add(float64(n)) }

func RecordMergeRun(durationMs float64) {
	defaultManager.mergeRuns.Inc()
	defaultManager.mergeDuration.Observe(durationMs)
}

// UpdateMergeSummary publishes per-tier player counts from the last merge.
func UpdateMergeSummary(tierCounts map[string]int, unmatched int) {
	defaultManager.playersByTier.Reset()
	for tier, count := range tierCounts {
		defaultManager.playersByTier.WithLabelValues(tier).Set(float64(count))
	}
	defaultManager.unmatchedPlayers.Set(float64(unmatched))
}

func UpdateRosterSize(n int) { defaultManager.rosterSize.Set(float64(n)) }

func RecordScoringRequest(category string) {
	defaultManager.scoringRequests.WithLabelValues(category).Inc()
}
func RecordScoringError()               { defaultManager.scoringErrors.Inc() }
func ObserveScoringDuration(ms float64) { defaultManager.scoringDuration.Observe(ms) }

func UpdateQueueSize(n int)            { defaultManager.queueSize.Set(float64(n)) }
func UpdateQueueCapacity(n int)        { defaultManager.queueCapacity.Set(float64(n)) }
func UpdateQueueUtilization(f float64) { defaultManager.queueUtilization.Set(f) }
func RecordQueueEnqueueError(reason string) {
	defaultManager.queueEnqueueErrors.WithLabelValues(reason).Inc()
}
func UpdateWorkerCount(n int) { defaultManager.workerCount.Set(float64(n)) }

func RecordHTTPRequest(endpoint, method, status string) {
	defaultManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

func RecordHTTPRequestDuration(endpoint, method, status string, ms float64) {
	defaultManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(ms)
}

func UpdateSystemMemoryUsage(bytes uint64)  { defaultManager.systemMemoryUsage.Set(float64(bytes)) }
func UpdateSystemGoroutineCount(n int)      { defaultManager.systemGoroutineCount.Set(float64(n)) }
func RecordSystemGCPauseTime(avgMs float64) { defaultManager.systemGCPause.Observe(avgMs) }
