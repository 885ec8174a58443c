// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/okian/gelora/internal/domain/dedupe"
	"github.com/okian/gelora/internal/domain/merge"
	"github.com/okian/gelora/internal/domain/model"
	"github.com/okian/gelora/internal/domain/scoring"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	dedupe.Deduper

	// Enqueue pushes a statistic batch for async ingestion. Returns false
	// on backpressure.
	Enqueue(ctx context.Context, b model.StatBatch) bool

	// Read operations expose the merged table and scoring results.
	MergedPlayers(ctx context.Context) ([]model.MergedPlayer, merge.Summary)
	ScoreCategory(ctx context.Context, category string, weights map[string]float64) ([]scoring.ScoredPlayer, map[string]float64, error)
	Contributions(ctx context.Context, name, team, category string) (scoring.ScoredPlayer, map[string]scoring.Contribution, error)
	Categories(ctx context.Context) []scoring.Category
	Columns() []string
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler        *HealthHandler
	statsHandler         *StatsHandler
	batchesHandler       *BatchesHandler
	playersHandler       *PlayersHandler
	scoreHandler         *ScoreHandler
	categoriesHandler    *CategoriesHandler
	contributionsHandler *ContributionsHandler
	summaryHandler       *SummaryHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	return &Server{
		healthHandler:        NewHealthHandler(),
		statsHandler:         NewStatsHandler(statsProvider),
		batchesHandler:       NewBatchesHandler(deps),
		playersHandler:       NewPlayersHandler(deps, maxLimit),
		scoreHandler:         NewScoreHandler(deps),
		categoriesHandler:    NewCategoriesHandler(deps),
		contributionsHandler: NewContributionsHandler(deps),
		summaryHandler:       NewSummaryHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleGetStats, "stats"))
	mux.HandleFunc("/batches", MetricsMiddleware(s.batchesHandler.HandlePostBatch, "batches"))
	mux.HandleFunc("/players/export", MetricsMiddleware(s.playersHandler.HandleExport, "players_export"))
	mux.HandleFunc("/players/contributions", MetricsMiddleware(s.contributionsHandler.HandleGetContributions, "contributions"))
	mux.HandleFunc("/players", MetricsMiddleware(s.playersHandler.HandleGetPlayers, "players"))
	mux.HandleFunc("/score", MetricsMiddleware(s.scoreHandler.HandlePostScore, "score"))
	mux.HandleFunc("/categories", MetricsMiddleware(s.categoriesHandler.HandleGetCategories, "categories"))
	mux.HandleFunc("/summary", MetricsMiddleware(s.summaryHandler.HandleGetSummary, "summary"))
}

// rawValue tolerates scraped cell values arriving as JSON strings, numbers
// or null; the merge layer owns numeric coercion, so everything stays a
// string here.
type rawValue string

func (v *rawValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*v = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return Wrap("api.raw_value", err)
		}
		*v = rawValue(s)
		return nil
	}
	*v = rawValue(trimmed)
	return nil
}

// batchRequest mirrors the request schema for POST /batches.
type batchRequest struct {
	BatchID   string          `json:"batch_id"`
	Column    string          `json:"column"`
	Team      string          `json:"team"`
	ScrapedAt string          `json:"scraped_at"`
	Records   []recordPayload `json:"records"`
}

type recordPayload struct {
	PlayerName string   `json:"player_name"`
	Team       string   `json:"team"`
	Value      rawValue `json:"value"`
}

func (b batchRequest) validate(columns []string) error {
	if strings.TrimSpace(b.Column) == "" {
		return errors.New("missing column")
	}
	known := false
	for _, c := range columns {
		if c == b.Column {
			known = true
			break
		}
	}
	if !known {
		return errors.New("unknown column: " + b.Column)
	}
	if len(b.Records) == 0 {
		return errors.New("missing records")
	}
	if b.ScrapedAt != "" {
		if _, err := time.Parse(time.RFC3339, b.ScrapedAt); err != nil {
			return errors.New("invalid scraped_at; must be RFC3339")
		}
	}
	return nil
}

type ackResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
	BatchID   string `json:"batch_id"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
