// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/gelora/internal/adapters/source"
	"github.com/okian/gelora/internal/domain/merge"
	"github.com/okian/gelora/internal/domain/model"
)

// PlayerDependencies defines the interface for merged table reads.
type PlayerDependencies interface {
	MergedPlayers(ctx context.Context) ([]model.MergedPlayer, merge.Summary)
	Columns() []string
}

// PlayersHandler handles merged table requests.
type PlayersHandler struct {
	deps     PlayerDependencies
	maxLimit int
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayerDependencies, maxLimit int) *PlayersHandler {
	return &PlayersHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// HandleGetPlayers handles GET /players?limit=N requests. The limit is
// optional; without it the whole table returns up to the configured cap.
func (h *PlayersHandler) HandleGetPlayers(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_players"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n := h.maxLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if parsed > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		n = parsed
	}
	players, _ := h.deps.MergedPlayers(r.Context())
	if len(players) > n {
		players = players[:n]
	}
	writeJSON(w, http.StatusOK, players)
}

// HandleExport handles GET /players/export requests, streaming the merged
// table as CSV in roster order.
func (h *PlayersHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	players, _ := h.deps.MergedPlayers(r.Context())

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="merged_players.csv"`)
	// Headers are already out by the first write, so a mid-stream failure
	// can only truncate the body.
	_ = source.WriteMergedCSV(w, players, h.deps.Columns())
}
