package app

import (
	"time"

	"github.com/keelan/gridiron/internal/adapters/feeds"
	"github.com/keelan/gridiron/internal/adapters/repository"
	"github.com/keelan/gridiron/internal/domain/board"
	"github.com/keelan/gridiron/internal/domain/roster"
	"github.com/keelan/gridiron/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSource sets the feed source. Required before Start.
func WithSource(src feeds.Source) Option {
	return func(s *Service) {
		if src != nil {
			s.source = src
		}
	}
}

// WithStore sets the board store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithAssembler sets a custom board assembler.
func WithAssembler(a *board.Assembler) Option {
	return func(s *Service) {
		if a != nil {
			s.assembler = a
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithLeague sets the league size and ordered starter slots.
func WithLeague(numTeams int, slots []roster.Slot) Option {
	return func(s *Service) {
		if numTeams > 0 {
			s.numTeams = numTeams
		}
		if len(slots) > 0 {
			s.slots = slots
		}
	}
}

// WithByeExcludeThreshold tags byes at or before the given week; 0
// disables the check.
func WithByeExcludeThreshold(week int) Option {
	return func(s *Service) {
		if week >= 0 {
			s.byeExcludeThreshold = week
		}
	}
}

// WithPlayoffWeeks sets the 1-based fantasy playoff weeks.
func WithPlayoffWeeks(weeks []int) Option {
	return func(s *Service) {
		if len(weeks) > 0 {
			s.playoffWeeks = weeks
		}
	}
}

// WithFetchWindow sets the projection season and week (0 = full season).
func WithFetchWindow(season, week int) Option {
	return func(s *Service) {
		if season > 0 {
			s.season = season
		}
		if week >= 0 {
			s.week = week
		}
	}
}

// WithExpert selects the ranking source.
func WithExpert(expert string) Option {
	return func(s *Service) {
		if expert != "" {
			s.expert = expert
		}
	}
}

// WithADPQuery sets the ADP snapshot window and draft format.
func WithADPQuery(days int, adpType string) Option {
	return func(s *Service) {
		if days > 0 {
			s.adpDays = days
		}
		if adpType != "" {
			s.adpType = adpType
		}
	}
}

// WithFeedTimeout bounds each feed fetch.
func WithFeedTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.feedTimeout = d
		}
	}
}
