// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/okian/gelora/internal/domain/dedupe"
	"github.com/okian/gelora/internal/domain/model"
	"github.com/okian/gelora/pkg/metrics"
)

// BatchDependencies defines the interface for batch ingestion dependencies.
type BatchDependencies interface {
	dedupe.Deduper
	Enqueue(ctx context.Context, b model.StatBatch) bool
	Columns() []string
}

// BatchesHandler handles scraped statistic batch submissions.
type BatchesHandler struct {
	deps BatchDependencies
}

// NewBatchesHandler creates a new batches handler.
func NewBatchesHandler(deps BatchDependencies) *BatchesHandler {
	return &BatchesHandler{deps: deps}
}

// HandlePostBatch handles POST /batches requests.
func (h *BatchesHandler) HandlePostBatch(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_batch"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordBatchRejected()
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(h.deps.Columns()); err != nil {
		metrics.RecordBatchRejected()
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if req.BatchID == "" {
		req.BatchID = uuid.NewString()
	}

	// Idempotency check - mark as seen first
	if h.deps.SeenAndRecord(r.Context(), req.BatchID) {
		metrics.RecordBatchDuplicate()
		writeJSON(w, http.StatusOK, ackResponse{Status: "duplicate", Duplicate: true, BatchID: req.BatchID})
		return
	}

	// Try to enqueue for async ingestion
	if ok := h.deps.Enqueue(r.Context(), toBatch(req)); !ok {
		// Rollback the "seen" status since enqueue failed
		h.deps.Unrecord(r.Context(), req.BatchID)
		metrics.RecordBatchRejected()
		writeError(w, http.StatusTooManyRequests, "backpressure", NewKind(op, ErrBackpressure))
		return
	}
	metrics.RecordBatchAccepted()
	writeJSON(w, http.StatusAccepted, ackResponse{Status: "accepted", Duplicate: false, BatchID: req.BatchID})
}

// toBatch converts a validated request into the domain batch shape. Records
// with an empty player name are dropped here so the pipeline never carries
// them.
func toBatch(req batchRequest) model.StatBatch {
	scrapedAt := time.Now().UTC()
	if req.ScrapedAt != "" {
		if ts, err := time.Parse(time.RFC3339, req.ScrapedAt); err == nil {
			scrapedAt = ts
		}
	}

	records := make([]model.StatRecord, 0, len(req.Records))
	for _, rec := range req.Records {
		if rec.PlayerName == "" {
			continue
		}
		records = append(records, model.StatRecord{
			PlayerName: rec.PlayerName,
			Team:       rec.Team,
			RawValue:   string(rec.Value),
		})
	}

	return model.StatBatch{
		BatchID:   req.BatchID,
		Column:    req.Column,
		Team:      req.Team,
		Records:   records,
		ScrapedAt: scrapedAt,
	}
}
