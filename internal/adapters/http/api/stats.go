// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// ServiceStats is the monitoring snapshot served on GET /stats.
type ServiceStats struct {
	Started       bool `json:"started"`
	WorkerCount   int  `json:"worker_count"`
	QueueCapacity int  `json:"queue_capacity"`
	QueueLength   int  `json:"queue_length"`
	DedupeEntries int  `json:"dedupe_entries"`
	RosterSize    int  `json:"roster_size"`
	RecordCount   int  `json:"record_count"`
}

// StatsProvider supplies the current ServiceStats snapshot.
type StatsProvider interface {
	GetStats(ctx context.Context) ServiceStats
}

// StatsHandler serves the monitoring snapshot.
type StatsHandler struct {
	statsProvider StatsProvider
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsProvider StatsProvider) *StatsHandler {
	return &StatsHandler{statsProvider: statsProvider}
}

// HandleGetStats handles GET /stats requests.
func (h *StatsHandler) HandleGetStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.statsProvider.GetStats(r.Context()))
}
