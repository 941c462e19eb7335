// Package board assembles the draft board: ADP, identity, expert rank,
// valuation, drafted state and advisory tags joined into one sorted
// BoardEntry list. Every run produces a fresh board; single bad source
// records are skipped with a warning and never abort the run.
package board

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/keelan/gridiron/internal/domain/identity"
	"github.com/keelan/gridiron/internal/domain/model"
	"github.com/keelan/gridiron/internal/domain/roster"
	"github.com/keelan/gridiron/internal/domain/tier"
	"github.com/keelan/gridiron/internal/domain/valuation"
	"github.com/keelan/gridiron/pkg/logger"
	"github.com/keelan/gridiron/pkg/metrics"
)

// Rank fallbacks.
const (
	// rankFallback is assigned when no ranking source matches a player.
	rankFallback = 9999
	// dstKickerPenalty demotes defense/kicker ranks into a separate,
	// lower-priority pool below every positional player.
	dstKickerPenalty = 1000
	// adpDeltaMin is the full-pick movement required before a player is
	// tagged rising or falling.
	adpDeltaMin = 1.0
)

// goodOffenses is the fixed high-scoring-offense allowlist behind the
// good_offense tag.
var goodOffenses = map[string]bool{
	"BAL": true,
	"BUF": true,
	"CIN": true,
	"DET": true,
	"KC":  true,
	"MIA": true,
	"PHI": true,
	"SF":  true,
}

// Input bundles everything one board run consumes. Feeds that failed
// upstream arrive here as empty slices and degrade the board rather than
// failing it.
type Input struct {
	LeagueID            string
	NumTeams            int
	ByeExcludeThreshold int

	Players     map[string]model.PlayerRecord
	ADP         []model.ADPEntry
	Rankings    model.RankingFeed
	Roster      model.RosterState
	Projections map[string]model.ProjectionEntry
	Valuations  map[string]model.ValuationResult
}

// Assembler builds boards.
type Assembler struct {
	tiers  *tier.Classifier
	logger logger.Logger
}

// New creates an Assembler with configuration options.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		tiers:  tier.New(),
		logger: logger.Get().Named("board"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble joins the run inputs into the sorted board.
func (a *Assembler) Assemble(ctx context.Context, in Input) (model.BoardRun, error) {
	if in.NumTeams <= 0 {
		return model.BoardRun{}, ErrInvalidLeagueConfig
	}

	myByes, myTeams := a.myPickContext(ctx, in)

	entries := make([]model.BoardEntry, 0, len(in.ADP))
	skipped := 0
	missingProjections := 0
	for _, adp := range in.ADP {
		player, ok := in.Players[adp.PlayerID]
		if !ok || player.FullName == "" {
			skipped++
			metrics.RecordSkippedRecord()
			a.logger.Warn(ctx, "skipping adp entry with no resolvable player",
				logger.String("playerID", adp.PlayerID))
			continue
		}

		entry := model.BoardEntry{
			PlayerID:     player.PlayerID,
			FullName:     player.FullName,
			Position:     player.Position,
			Team:         player.Team,
			InjuryStatus: player.InjuryStatus,
			ADPValue:     adp.ADPValue,
			ADPValuePrev: adp.ADPValuePrev,
			ADPRound:     adpRound(adp.ADPValue, in.NumTeams),
		}

		rank, bye, rankedTeam := a.resolveRank(player, in.Rankings.Players)
		entry.Rank = rank
		entry.ByeWeek = bye
		if entry.Team == "" {
			entry.Team = rankedTeam
		}

		if proj, ok := in.Projections[player.PlayerID]; ok {
			entry.Projection = valuation.Round2(proj.TotalProjected)
			entry.HasProjection = true
			entry.Valuation = in.Valuations[player.PlayerID]
		} else {
			// Unprojected players stay on the board at zero value so the
			// UI can flag them instead of silently dropping them.
			missingProjections++
			entry.Valuation = model.ValuationResult{PlayerID: player.PlayerID}
		}

		_, entry.Drafted = in.Roster.Drafted[player.PlayerID]
		entry.Rookie = player.YearsExp == 0
		entry.ByeFound = entry.ByeWeek > 0 && myByes[entry.ByeWeek]
		entry.TeamFound = entry.Team != "" && myTeams[entry.Team]
		entry.GoodOffense = goodOffenses[entry.Team]
		entry.ByeConflict = in.ByeExcludeThreshold > 0 && entry.ByeWeek > 0 &&
			entry.ByeWeek <= in.ByeExcludeThreshold
		if adp.ADPValuePrev > 0 {
			entry.Rising = adp.ADPValuePrev-adp.ADPValue >= adpDeltaMin
			entry.Falling = adp.ADPValue-adp.ADPValuePrev >= adpDeltaMin
		}

		entries = append(entries, entry)
	}

	a.assignTiers(entries)

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rank < entries[j].Rank
	})

	metrics.UpdateBoardSize(len(entries))
	metrics.UpdateMissingProjections(missingProjections)
	if skipped > 0 {
		a.logger.Warn(ctx, "board assembled with skipped records",
			logger.String("leagueID", in.LeagueID),
			logger.Int("skipped", skipped))
	}

	return model.BoardRun{
		RunID:    uuid.NewString(),
		LeagueID: in.LeagueID,
		BuiltAt:  time.Now().UTC(),
		Entries:  entries,
	}, nil
}

// myPickContext resolves the acting team's picks against the ranking
// list to collect bye weeks and rostered teams; most roster records lack
// both fields directly.
func (a *Assembler) myPickContext(ctx context.Context, in Input) (byes map[int]bool, teams map[string]bool) {
	byes = make(map[int]bool)
	teams = make(map[string]bool)
	for _, pick := range in.Roster.MyPicks {
		name := pick.PlayerName
		if player, ok := in.Players[pick.PlayerID]; ok {
			if player.Team != "" {
				teams[player.Team] = true
			}
			if name == "" {
				name = player.FullName
			}
		}
		match, ok := identity.Best(name, in.Rankings.Players,
			func(r model.RankingEntry) string { return r.PlayerName },
			func(x, y model.RankingEntry) bool { return x.Rank < y.Rank })
		if !ok {
			a.logger.Debug(ctx, "no ranking match for rostered pick",
				logger.String("playerID", pick.PlayerID),
				logger.String("name", name))
			continue
		}
		if match.ByeWeek > 0 {
			byes[match.ByeWeek] = true
		}
		if match.Team != "" {
			teams[match.Team] = true
		}
	}
	return byes, teams
}

// resolveRank finds a player's expert rank: exact id match first, then a
// fuzzy name match ordered by source rank. Defense and kicker ranks live
// in a lower-priority pool; no match at all falls back to rankFallback.
func (a *Assembler) resolveRank(player model.PlayerRecord, rankings []model.RankingEntry) (rank, bye int, team string) {
	var match model.RankingEntry
	found := false
	for _, r := range rankings {
		if r.PlayerID != "" && r.PlayerID == player.PlayerID {
			match, found = r, true
			break
		}
	}
	if !found {
		match, found = identity.Best(player.FullName, rankings,
			func(r model.RankingEntry) string { return r.PlayerName },
			func(x, y model.RankingEntry) bool { return x.Rank < y.Rank })
	}
	if !found {
		metrics.RecordUnresolvedIdentity()
		return rankFallback, 0, ""
	}
	rank = match.Rank
	if player.Position == roster.DEF || player.Position == roster.K {
		rank += dstKickerPenalty
	}
	return rank, match.ByeWeek, match.Team
}

// assignTiers classifies the board twice, globally and within each
// position, and merges the tier numbers and labels back by index.
func (a *Assembler) assignTiers(entries []model.BoardEntry) {
	if len(entries) == 0 {
		return
	}

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return entries[order[x]].Valuation.AdjustedVOR > entries[order[y]].Valuation.AdjustedVOR
	})

	values := make([]float64, len(order))
	for i, idx := range order {
		values[i] = entries[idx].Valuation.AdjustedVOR
	}
	tiers := a.tiers.Classify(values)
	maxTier := 1
	for _, t := range tiers {
		if t > maxTier {
			maxTier = t
		}
	}
	for i, idx := range order {
		entries[idx].TierGlobal = tiers[i]
		entries[idx].TierGlobalLabel = tier.Label(tiers[i], maxTier)
	}

	for _, pos := range roster.Positions {
		var posOrder []int
		for _, idx := range order {
			if entries[idx].Position == pos {
				posOrder = append(posOrder, idx)
			}
		}
		if len(posOrder) == 0 {
			continue
		}
		posValues := make([]float64, len(posOrder))
		for i, idx := range posOrder {
			posValues[i] = entries[idx].Valuation.AdjustedVOR
		}
		posTiers := a.tiers.Classify(posValues)
		posMax := 1
		for _, t := range posTiers {
			if t > posMax {
				posMax = t
			}
		}
		for i, idx := range posOrder {
			entries[idx].TierPos = posTiers[i]
			entries[idx].TierPosLabel = tier.Label(posTiers[i], posMax)
		}
	}
}

// adpRound renders an ADP value as a round.pick number: the integer part
// is the draft round and the fraction encodes the pick within the round.
func adpRound(adp float64, numTeams int) float64 {
	if adp <= 0 {
		return 0
	}
	round := math.Ceil(adp / float64(numTeams))
	pick := adp - float64(numTeams)*(round-1)
	return valuation.Round2(round + 0.01*pick)
}
