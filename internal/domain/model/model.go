// Package model contains the plain data records passed between layers.
// Feed records are immutable once fetched for a run; board outputs are
// freshly allocated on every run and never patched in place.
package model

import (
	"time"

	"github.com/keelan/gridiron/internal/domain/roster"
)

// PlayerRecord is the identity record for one player in the pool.
type PlayerRecord struct {
	PlayerID     string          `json:"player_id"`
	FullName     string          `json:"full_name"`
	Position     roster.Position `json:"position"`
	Team         string          `json:"team"`
	YearsExp     int             `json:"years_exp"`
	InjuryStatus string          `json:"injury_status,omitempty"`
}

// ProjectionEntry is one player's projected point total for a run, already
// weighted by the league's scoring settings at the feed boundary.
type ProjectionEntry struct {
	PlayerID       string          `json:"player_id"`
	Position       roster.Position `json:"position"`
	TotalProjected float64         `json:"total_projected"`
	WeeklyProj     []float64       `json:"weekly_proj,omitempty"`
	ProjStdDev     float64         `json:"proj_std_dev,omitempty"`
}

// ADPEntry carries a player's current and prior average draft position.
// The prior snapshot feeds rising/falling tags only, never the ranking.
type ADPEntry struct {
	PlayerID     string  `json:"player_id"`
	ADPValue     float64 `json:"adp_value"`
	ADPValuePrev float64 `json:"adp_value_prev,omitempty"`
}

// RankingEntry is a row from an expert ranking source. Sources do not
// share a key space with PlayerRecord; matches go through the identity
// resolver when PlayerID is absent.
type RankingEntry struct {
	PlayerID   string         `json:"player_id,omitempty"`
	PlayerName string         `json:"player_name"`
	Rank       int            `json:"rank"`
	Ranks      map[string]int `json:"ranks,omitempty"`
	Tier       int            `json:"tier,omitempty"`
	ByeWeek    int            `json:"bye_week,omitempty"`
	Team       string         `json:"team,omitempty"`
	Matchup    string         `json:"matchup,omitempty"`
}

// RankingFeed is one source's ranking list plus publication metadata.
type RankingFeed struct {
	Players   []RankingEntry `json:"players"`
	Published time.Time      `json:"published"`
	Source    string         `json:"source"`
}

// PickRecord is one completed draft pick.
type PickRecord struct {
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name,omitempty"`
	Round      int    `json:"round"`
	Pick       int    `json:"pick"`
	Overall    int    `json:"overall"`
}

// RosterState is the league's drafted/ownership state: every pick keyed
// by player id, plus the acting team's own picks.
type RosterState struct {
	Drafted map[string]PickRecord `json:"drafted"`
	MyPicks []PickRecord          `json:"my_picks"`
}

// OwnedIDs returns the acting team's player-id set.
func (r RosterState) OwnedIDs() map[string]bool {
	owned := make(map[string]bool, len(r.MyPicks))
	for _, p := range r.MyPicks {
		owned[p.PlayerID] = true
	}
	return owned
}

// ValuationResult is the full adjustment chain for one player. Dropoff is
// never negative; VOR may be negative below the replacement index.
type ValuationResult struct {
	PlayerID           string  `json:"player_id"`
	VOR                float64 `json:"vor"`
	AdjustedVOR        float64 `json:"adjusted_vor"`
	RiskAdjustedVOR    float64 `json:"risk_adjusted_vor"`
	InjuryAdjustedVOR  float64 `json:"injury_adjusted_vor"`
	PlayoffAdjustedVOR float64 `json:"playoff_adjusted_vor"`
	Dropoff            float64 `json:"dropoff"`
	TierBonus          bool    `json:"tier_bonus"`
}

// TierAssignment labels one player within a classification run.
type TierAssignment struct {
	PlayerID string `json:"player_id"`
	Tier     int    `json:"tier"`
	Label    string `json:"tier_label"`
}

// BoardEntry is the externally consumed board row: identity, market,
// valuation, tiers and advisory tags joined into one record.
type BoardEntry struct {
	PlayerID     string          `json:"player_id"`
	FullName     string          `json:"full_name"`
	Position     roster.Position `json:"position"`
	Team         string          `json:"team,omitempty"`
	InjuryStatus string          `json:"injury_status,omitempty"`
	ByeWeek      int             `json:"bye_week,omitempty"`

	Rank         int     `json:"rank"`
	ADPValue     float64 `json:"adp_value"`
	ADPValuePrev float64 `json:"adp_value_prev,omitempty"`
	ADPRound     float64 `json:"adp_round"`

	Projection    float64         `json:"projection"`
	HasProjection bool            `json:"has_projection"`
	Valuation     ValuationResult `json:"valuation"`

	TierGlobal      int    `json:"tier_global"`
	TierGlobalLabel string `json:"tier_global_label"`
	TierPos         int    `json:"tier_pos"`
	TierPosLabel    string `json:"tier_pos_label"`

	Drafted     bool `json:"drafted"`
	Rookie      bool `json:"rookie"`
	ByeFound    bool `json:"bye_found"`
	TeamFound   bool `json:"team_found"`
	GoodOffense bool `json:"good_offense"`
	ByeConflict bool `json:"bye_conflict"`
	Rising      bool `json:"rising"`
	Falling     bool `json:"falling"`
}

// LineupSlot is one starter slot assignment. An empty PlayerID marks an
// explicitly unfilled slot; output length always matches the configured
// slot list.
type LineupSlot struct {
	SlotLabel string `json:"slot_label"`
	PlayerID  string `json:"player_id,omitempty"`
}

// Lineup pairs the fixed-length starter sequence with the rank-ordered
// bench remainder.
type Lineup struct {
	Starters []LineupSlot `json:"starters"`
	Bench    []BoardEntry `json:"bench"`
}

// FeedStatus records how one source behaved during a run.
type FeedStatus struct {
	Source  string `json:"source"`
	Records int    `json:"records"`
	Skipped int    `json:"skipped,omitempty"`
	Err     string `json:"error,omitempty"`
}

// BoardRun is one complete assembled board with run metadata. A new run
// fully replaces the previous one.
type BoardRun struct {
	RunID    string       `json:"run_id"`
	LeagueID string       `json:"league_id"`
	BuiltAt  time.Time    `json:"built_at"`
	Entries  []BoardEntry `json:"entries"`
	Feeds    []FeedStatus `json:"feeds,omitempty"`
}
