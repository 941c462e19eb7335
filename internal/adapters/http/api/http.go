// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/keelan/gridiron/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// RefreshBoard fetches all feeds and assembles a fresh board.
	RefreshBoard(ctx context.Context, leagueID string) (model.BoardRun, error)

	// Board returns the latest stored board, truncated to limit when
	// limit is positive.
	Board(ctx context.Context, leagueID string, limit int) (model.BoardRun, error)

	// Lineup allocates the acting team's starters and bench.
	Lineup(ctx context.Context, leagueID string) (model.Lineup, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	refreshHandler *RefreshHandler
	boardHandler   *BoardHandler
	lineupHandler  *LineupHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxBoardLimit int) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		refreshHandler: NewRefreshHandler(deps),
		boardHandler:   NewBoardHandler(deps, maxBoardLimit),
		lineupHandler:  NewLineupHandler(deps),
	}
}

// Register attaches all HTTP routes to the router.
func (s *Server) Register(ctx context.Context, r chi.Router) {
	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	r.Post("/board/refresh", MetricsMiddleware(s.refreshHandler.HandleRefresh, "board_refresh"))
	r.Get("/board", MetricsMiddleware(s.boardHandler.HandleGetBoard, "board"))
	r.Get("/lineup", MetricsMiddleware(s.lineupHandler.HandleGetLineup, "lineup"))
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
