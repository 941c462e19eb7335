// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/keelan/gridiron/internal/domain/model"
)

// RefreshDependencies defines the interface for board refresh runs.
type RefreshDependencies interface {
	RefreshBoard(ctx context.Context, leagueID string) (model.BoardRun, error)
}

// RefreshHandler handles board refresh requests.
type RefreshHandler struct {
	deps RefreshDependencies
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(deps RefreshDependencies) *RefreshHandler {
	return &RefreshHandler{deps: deps}
}

// refreshResponse summarizes a completed run; the full board is read
// back via GET /board.
type refreshResponse struct {
	RunID   string             `json:"run_id"`
	Entries int                `json:"entries"`
	Feeds   []model.FeedStatus `json:"feeds,omitempty"`
}

// HandleRefresh handles POST /board/refresh?league=ID requests.
func (h *RefreshHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")
	if league == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingLeague)
		return
	}

	run, err := h.deps.RefreshBoard(r.Context(), league)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, refreshResponse{
		RunID:   run.RunID,
		Entries: len(run.Entries),
		Feeds:   run.Feeds,
	})
}
