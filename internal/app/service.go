// Package app provides the core service that implements the dependencies
// required by the HTTP API: feed fan-out, valuation runs, board storage
// and lineup allocation.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/keelan/gridiron/internal/adapters/feeds"
	"github.com/keelan/gridiron/internal/adapters/repository"
	"github.com/keelan/gridiron/internal/domain/board"
	"github.com/keelan/gridiron/internal/domain/lineup"
	"github.com/keelan/gridiron/internal/domain/model"
	"github.com/keelan/gridiron/internal/domain/replacement"
	"github.com/keelan/gridiron/internal/domain/roster"
	"github.com/keelan/gridiron/internal/domain/valuation"
	"github.com/keelan/gridiron/pkg/logger"
	"github.com/keelan/gridiron/pkg/metrics"
)

// Default service configuration constants.
const (
	defaultNumTeams    = 12
	defaultFeedTimeout = 10 * time.Second
	defaultADPDays     = 7
	defaultADPType     = "ppr"
	defaultExpert      = "consensus"
)

// defaultSlotLabels is the standard single-QB starter configuration.
var defaultSlotLabels = []string{"QB", "RB", "RB", "WR", "WR", "TE", "FLEX", "K", "DEF"}

// Service implements the API dependencies for the valuation engine.
type Service struct {
	mu sync.RWMutex

	// Core components
	store     repository.Store
	source    feeds.Source
	assembler *board.Assembler

	// League configuration
	numTeams            int
	slots               []roster.Slot
	byeExcludeThreshold int
	playoffWeeks        []int

	// Fetch configuration
	season      int
	week        int
	expert      string
	adpDays     int
	adpType     string
	feedTimeout time.Duration

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	slots, _ := roster.ParseSlots(defaultSlotLabels)
	s := &Service{
		numTeams:    defaultNumTeams,
		slots:       slots,
		adpDays:     defaultADPDays,
		adpType:     defaultADPType,
		expert:      defaultExpert,
		feedTimeout: defaultFeedTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start validates wiring and initializes defaulted components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	if s.source == nil {
		return ErrNoFeedSource
	}
	if s.numTeams <= 0 || len(s.slots) == 0 {
		return ErrInvalidLeagueConfig
	}
	if s.store == nil {
		s.store = repository.NewMemoryStore()
	}
	if s.assembler == nil {
		s.assembler = board.New(board.WithLogger(s.logger.Named("board")))
	}

	s.started = true
	s.logger.Info(ctx, "valuation service started",
		logger.Int("numTeams", s.numTeams),
		logger.Int("starterSlots", len(s.slots)),
	)
	return nil
}

// Stop marks the service stopped. Runs in flight finish on their own;
// there is no background state to tear down.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.started = false
}

// runInputs holds the fan-out results for one board run.
type runInputs struct {
	players     []model.PlayerRecord
	projections []model.ProjectionEntry
	adp         []model.ADPEntry
	rankings    model.RankingFeed
	roster      model.RosterState
	feeds       []model.FeedStatus
}

// RefreshBoard fetches every feed, runs the valuation pipeline and stores
// a fresh board for the league. Failed feeds degrade to empty datasets;
// only an invalid league configuration fails the run.
func (s *Service) RefreshBoard(ctx context.Context, leagueID string) (model.BoardRun, error) {
	start := time.Now()

	in, err := s.fetchAll(ctx, leagueID)
	if err != nil {
		return model.BoardRun{}, err
	}

	drafted := make(map[string]bool, len(in.roster.Drafted))
	for id := range in.roster.Drafted {
		drafted[id] = true
	}

	repl, err := replacement.Build(in.projections, s.slots, s.numTeams,
		replacement.WithDraftedSet(drafted))
	if err != nil {
		return model.BoardRun{}, fmt.Errorf("replacement model: %w", err)
	}

	var valuationOpts []valuation.Option
	if len(s.playoffWeeks) > 0 {
		valuationOpts = append(valuationOpts, valuation.WithPlayoffWeeks(s.playoffWeeks))
	}
	valuations := valuation.New(repl, valuationOpts...).Evaluate()

	players := make(map[string]model.PlayerRecord, len(in.players))
	for _, p := range in.players {
		players[p.PlayerID] = p
	}
	projections := make(map[string]model.ProjectionEntry, len(in.projections))
	for _, p := range in.projections {
		projections[p.PlayerID] = p
	}

	run, err := s.assembler.Assemble(ctx, board.Input{
		LeagueID:            leagueID,
		NumTeams:            s.numTeams,
		ByeExcludeThreshold: s.byeExcludeThreshold,
		Players:             players,
		ADP:                 in.adp,
		Rankings:            in.rankings,
		Roster:              in.roster,
		Projections:         projections,
		Valuations:          valuations,
	})
	if err != nil {
		return model.BoardRun{}, fmt.Errorf("assemble board: %w", err)
	}
	run.Feeds = in.feeds
	for i := range run.Feeds {
		// ADP rows that resolved no player were skipped during assembly.
		if run.Feeds[i].Source == feeds.SourceADP {
			run.Feeds[i].Skipped = len(in.adp) - len(run.Entries)
		}
	}

	if err := s.store.SaveBoard(ctx, run); err != nil {
		return model.BoardRun{}, fmt.Errorf("save board: %w", err)
	}

	elapsed := time.Since(start)
	metrics.RecordBoardBuild(elapsed.Seconds())
	s.logger.Info(ctx, "board refreshed",
		logger.String("leagueID", leagueID),
		logger.String("runID", run.RunID),
		logger.Int("entries", len(run.Entries)),
		logger.Duration("elapsed", elapsed),
	)
	return run, nil
}

// fetchAll fans out every feed fetch concurrently and waits for all of
// them. A failed or timed-out source resolves to an empty dataset with a
// warning: a partial board beats no board. Valuation starts only after
// every fetch has settled.
func (s *Service) fetchAll(ctx context.Context, leagueID string) (*runInputs, error) {
	in := &runInputs{}
	var mu sync.Mutex

	record := func(source string, records int, err error) {
		mu.Lock()
		defer mu.Unlock()
		status := model.FeedStatus{Source: source, Records: records}
		if err != nil {
			status.Err = err.Error()
			s.logger.Warn(ctx, "feed degraded to empty dataset",
				logger.String("source", source),
				logger.Error(err),
			)
		}
		in.feeds = append(in.feeds, status)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		fctx, cancel := context.WithTimeout(gctx, s.feedTimeout)
		defer cancel()
		players, err := s.source.Players(fctx)
		in.players = players
		record(feeds.SourcePlayers, len(players), err)
		return nil
	})
	g.Go(func() error {
		fctx, cancel := context.WithTimeout(gctx, s.feedTimeout)
		defer cancel()
		weekFrom, weekTo := 0, 0
		if s.week > 0 {
			weekFrom, weekTo = s.week, s.week
		}
		projections, err := s.source.Projections(fctx, s.season, weekFrom, weekTo)
		in.projections = projections
		record(feeds.SourceProjections, len(projections), err)
		return nil
	})
	g.Go(func() error {
		fctx, cancel := context.WithTimeout(gctx, s.feedTimeout)
		defer cancel()
		adp, err := s.source.ADP(fctx, s.adpDays, s.adpType)
		in.adp = adp
		record(feeds.SourceADP, len(adp), err)
		return nil
	})
	g.Go(func() error {
		fctx, cancel := context.WithTimeout(gctx, s.feedTimeout)
		defer cancel()
		rankings, err := s.source.Rankings(fctx, s.expert, "", s.week)
		in.rankings = rankings
		record(feeds.SourceRankings, len(rankings.Players), err)
		return nil
	})
	g.Go(func() error {
		fctx, cancel := context.WithTimeout(gctx, s.feedTimeout)
		defer cancel()
		state, err := s.source.RosterState(fctx, leagueID)
		in.roster = state
		record(feeds.SourceRoster, len(state.Drafted), err)
		return nil
	})

	if err := g.Wait(); err != nil {
		// Feed errors are absorbed above; only context failure lands here.
		return nil, fmt.Errorf("feed fan-out: %w", err)
	}
	return in, nil
}

// Board returns the latest stored board for a league, truncated to limit
// when limit is positive.
func (s *Service) Board(ctx context.Context, leagueID string, limit int) (model.BoardRun, error) {
	run, err := s.store.Board(ctx, leagueID)
	if err != nil {
		return model.BoardRun{}, err
	}
	if limit > 0 && limit < len(run.Entries) {
		truncated := run
		truncated.Entries = run.Entries[:limit]
		return truncated, nil
	}
	return run, nil
}

// Lineup allocates the acting team's starters and bench from the latest
// board and the current ownership state.
func (s *Service) Lineup(ctx context.Context, leagueID string) (model.Lineup, error) {
	run, err := s.store.Board(ctx, leagueID)
	if err != nil {
		return model.Lineup{}, err
	}

	fctx, cancel := context.WithTimeout(ctx, s.feedTimeout)
	defer cancel()
	state, err := s.source.RosterState(fctx, leagueID)
	if err != nil {
		return model.Lineup{}, fmt.Errorf("roster state: %w", err)
	}

	owned := state.OwnedIDs()
	mine := make([]model.BoardEntry, 0, len(owned))
	for _, entry := range run.Entries {
		if owned[entry.PlayerID] {
			mine = append(mine, entry)
		}
	}

	starters, bench := lineup.Allocate(mine, s.slots)
	empty := 0
	for _, slot := range starters {
		if slot.PlayerID == "" {
			empty++
		}
	}
	metrics.RecordLineupAllocation(empty)

	return model.Lineup{Starters: starters, Bench: bench}, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":             s.started,
		"numTeams":            s.numTeams,
		"starterSlots":        len(s.slots),
		"byeExcludeThreshold": s.byeExcludeThreshold,
	}
	if s.store != nil {
		stats["leagues"] = s.store.Leagues(context.Background())
	}
	return stats
}
