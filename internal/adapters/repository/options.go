package repository

import "github.com/keelan/gridiron/internal/domain/model"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithLeagueCapacity pre-sizes the board map.
func WithLeagueCapacity(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.boards = make(map[string]model.BoardRun, n)
		}
	}
}
