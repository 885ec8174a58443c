// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/gelora/internal/domain/merge"
	"github.com/okian/gelora/internal/domain/model"
)

// SummaryDependencies defines the interface for merge summary reads.
type SummaryDependencies interface {
	MergedPlayers(ctx context.Context) ([]model.MergedPlayer, merge.Summary)
}

// SummaryHandler handles merge summary requests.
type SummaryHandler struct {
	deps SummaryDependencies
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(deps SummaryDependencies) *SummaryHandler {
	return &SummaryHandler{deps: deps}
}

// HandleGetSummary handles GET /summary requests.
func (h *SummaryHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	_, summary := h.deps.MergedPlayers(r.Context())
	writeJSON(w, http.StatusOK, summary)
}
