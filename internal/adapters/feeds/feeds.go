// Package feeds declares the external data-source contracts the engine
// consumes and an HTTP client implementing them. Feed failures are
// reported, not fatal: the caller degrades a failed source to an empty
// dataset so a partial board still ships.
package feeds

import (
	"context"

	"github.com/keelan/gridiron/internal/domain/model"
	"github.com/keelan/gridiron/internal/domain/roster"
)

// Feed source names used in logs and metrics.
const (
	SourcePlayers     = "players"
	SourceProjections = "projections"
	SourceADP         = "adp"
	SourceRankings    = "rankings"
	SourceRoster      = "roster"
)

// PlayerSource supplies the identity pool.
type PlayerSource interface {
	Players(ctx context.Context) ([]model.PlayerRecord, error)
}

// ProjectionSource supplies scoring-weighted projections for a season or
// week range.
type ProjectionSource interface {
	Projections(ctx context.Context, season, weekFrom, weekTo int) ([]model.ProjectionEntry, error)
}

// ADPSource supplies average-draft-position snapshots.
type ADPSource interface {
	ADP(ctx context.Context, days int, adpType string) ([]model.ADPEntry, error)
}

// RankingSource supplies one expert's ranking list.
type RankingSource interface {
	Rankings(ctx context.Context, expert string, pos roster.Position, week int) (model.RankingFeed, error)
}

// RosterSource supplies a league's drafted/ownership state.
type RosterSource interface {
	RosterState(ctx context.Context, leagueID string) (model.RosterState, error)
}

// Source bundles every feed the board pipeline reads.
type Source interface {
	PlayerSource
	ProjectionSource
	ADPSource
	RankingSource
	RosterSource
}
