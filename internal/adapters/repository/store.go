// Package repository defines the board store interface and errors. Only
// the latest board per league is retained; a new run fully replaces the
// previous one.
package repository

import (
	"context"

	"github.com/keelan/gridiron/internal/domain/model"
)

// Store provides read/write access to assembled boards.
type Store interface {
	// SaveBoard replaces the league's stored board with a new run.
	SaveBoard(ctx context.Context, run model.BoardRun) error

	// Board returns the latest stored board for a league.
	// Returns ErrNotFound when no board has been assembled yet.
	Board(ctx context.Context, leagueID string) (model.BoardRun, error)

	// Leagues returns the number of leagues with a stored board.
	Leagues(ctx context.Context) int
}
