// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/okian/gelora/internal/adapters/repository"
	"github.com/okian/gelora/internal/domain/scoring"
	"github.com/okian/gelora/pkg/metrics"
)

// ScoreDependencies defines the interface for scoring operations.
type ScoreDependencies interface {
	ScoreCategory(ctx context.Context, category string, weights map[string]float64) ([]scoring.ScoredPlayer, map[string]float64, error)
}

// ScoreHandler handles composite scoring requests.
type ScoreHandler struct {
	deps ScoreDependencies
}

// NewScoreHandler creates a new score handler.
func NewScoreHandler(deps ScoreDependencies) *ScoreHandler {
	return &ScoreHandler{deps: deps}
}

// scoreRequest mirrors the request schema for POST /score. Either a preset
// category name or an explicit weight map must be supplied; explicit
// weights win when both are present.
type scoreRequest struct {
	Category string             `json:"category"`
	Weights  map[string]float64 `json:"weights"`
}

func (s scoreRequest) validate() error {
	if s.Category == "" && len(s.Weights) == 0 {
		return errors.New("missing category or weights")
	}
	return nil
}

type scoreResponse struct {
	Category    string                 `json:"category,omitempty"`
	WeightsUsed map[string]float64     `json:"weights_used"`
	Players     []scoring.ScoredPlayer `json:"players"`
}

// HandlePostScore handles POST /score requests.
func (h *ScoreHandler) HandlePostScore(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_score"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	start := time.Now()
	players, used, err := h.deps.ScoreCategory(r.Context(), req.Category, req.Weights)
	switch {
	case errors.Is(err, scoring.ErrUnknownCategory):
		writeError(w, http.StatusBadRequest, "unknown_category", Wrap(op, err))
		return
	case errors.Is(err, scoring.ErrNoScorableMetrics):
		writeError(w, http.StatusUnprocessableEntity, "no_scorable_metrics", Wrap(op, err))
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	metrics.ObserveScoringDuration(float64(time.Since(start).Milliseconds()))

	writeJSON(w, http.StatusOK, scoreResponse{
		Category:    req.Category,
		WeightsUsed: used,
		Players:     players,
	})
}

// CategoryDependencies defines the interface for listing preset categories.
type CategoryDependencies interface {
	Categories(ctx context.Context) []scoring.Category
}

// CategoriesHandler handles preset category listing.
type CategoriesHandler struct {
	deps CategoryDependencies
}

// NewCategoriesHandler creates a new categories handler.
func NewCategoriesHandler(deps CategoryDependencies) *CategoriesHandler {
	return &CategoriesHandler{deps: deps}
}

// HandleGetCategories handles GET /categories requests.
func (h *CategoriesHandler) HandleGetCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Categories(r.Context()))
}

// ContributionDependencies defines the interface for per-player score
// breakdowns.
type ContributionDependencies interface {
	Contributions(ctx context.Context, name, team, category string) (scoring.ScoredPlayer, map[string]scoring.Contribution, error)
}

// ContributionsHandler handles per-player score breakdown requests.
type ContributionsHandler struct {
	deps ContributionDependencies
}

// NewContributionsHandler creates a new contributions handler.
func NewContributionsHandler(deps ContributionDependencies) *ContributionsHandler {
	return &ContributionsHandler{deps: deps}
}

type contributionsResponse struct {
	Player        scoring.ScoredPlayer            `json:"player"`
	Contributions map[string]scoring.Contribution `json:"contributions"`
}

// HandleGetContributions handles GET /players/contributions requests. The
// name and category query parameters are required; team narrows the lookup
// when roster names collide across teams.
func (h *ContributionsHandler) HandleGetContributions(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_contributions"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	name := q.Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	player, contribs, err := h.deps.Contributions(r.Context(), name, q.Get("team"), q.Get("category"))
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
		return
	case errors.Is(err, scoring.ErrUnknownCategory):
		writeError(w, http.StatusBadRequest, "unknown_category", Wrap(op, err))
		return
	case errors.Is(err, scoring.ErrNoScorableMetrics):
		writeError(w, http.StatusUnprocessableEntity, "no_scorable_metrics", Wrap(op, err))
		return
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, contributionsResponse{Player: player, Contributions: contribs})
}
