package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/keelan/gridiron/internal/domain/model"
	"github.com/keelan/gridiron/pkg/metrics"
)

// defaultLeagueCapacity sizes the board map for the common single-digit
// league case.
const defaultLeagueCapacity = 8

// MemoryStore implements Store with an in-memory map of latest boards
// keyed by league. Boards are stored as-is; callers never mutate a run
// after saving it, so reads hand back the stored value directly.
type MemoryStore struct {
	mu     sync.RWMutex
	boards map[string]model.BoardRun
}

// NewMemoryStore creates an empty in-memory board store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		boards: make(map[string]model.BoardRun, defaultLeagueCapacity),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveBoard replaces the league's stored board.
func (s *MemoryStore) SaveBoard(ctx context.Context, run model.BoardRun) error {
	if run.LeagueID == "" {
		return fmt.Errorf("save board: %w", ErrMissingLeague)
	}
	s.mu.Lock()
	s.boards[run.LeagueID] = run
	leagues := len(s.boards)
	s.mu.Unlock()

	metrics.UpdateLeaguesTracked(leagues)
	return nil
}

// Board returns the latest stored board for a league.
func (s *MemoryStore) Board(ctx context.Context, leagueID string) (model.BoardRun, error) {
	s.mu.RLock()
	run, ok := s.boards[leagueID]
	s.mu.RUnlock()
	if !ok {
		return model.BoardRun{}, fmt.Errorf("board for league %q: %w", leagueID, ErrNotFound)
	}
	return run, nil
}

// Leagues returns the number of leagues with a stored board.
func (s *MemoryStore) Leagues(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.boards)
}
