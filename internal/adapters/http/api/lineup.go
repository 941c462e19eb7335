// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/keelan/gridiron/internal/adapters/repository"
	"github.com/keelan/gridiron/internal/domain/model"
)

// LineupDependencies defines the interface for lineup allocation.
type LineupDependencies interface {
	Lineup(ctx context.Context, leagueID string) (model.Lineup, error)
}

// LineupHandler handles lineup requests.
type LineupHandler struct {
	deps LineupDependencies
}

// NewLineupHandler creates a new lineup handler.
func NewLineupHandler(deps LineupDependencies) *LineupHandler {
	return &LineupHandler{deps: deps}
}

// HandleGetLineup handles GET /lineup?league=ID requests.
func (h *LineupHandler) HandleGetLineup(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")
	if league == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingLeague)
		return
	}

	lineup, err := h.deps.Lineup(r.Context(), league)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, lineup)
}
