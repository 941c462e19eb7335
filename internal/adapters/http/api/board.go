// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/keelan/gridiron/internal/adapters/repository"
	"github.com/keelan/gridiron/internal/domain/model"
)

// BoardDependencies defines the interface for board reads.
type BoardDependencies interface {
	Board(ctx context.Context, leagueID string, limit int) (model.BoardRun, error)
}

// BoardHandler handles board requests.
type BoardHandler struct {
	deps     BoardDependencies
	maxLimit int
}

// NewBoardHandler creates a new board handler.
func NewBoardHandler(deps BoardDependencies, maxLimit int) *BoardHandler {
	return &BoardHandler{deps: deps, maxLimit: maxLimit}
}

// HandleGetBoard handles GET /board?league=ID&limit=N requests.
func (h *BoardHandler) HandleGetBoard(w http.ResponseWriter, r *http.Request) {
	league := r.URL.Query().Get("league")
	if league == "" {
		writeError(w, http.StatusBadRequest, "bad_request", ErrMissingLeague)
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
			return
		}
		limit = n
	}
	if h.maxLimit > 0 && limit > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded", ErrBadRequest)
		return
	}

	run, err := h.deps.Board(r.Context(), league, limit)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", err)
		return
	}
	writeJSON(w, http.StatusOK, run)
}
