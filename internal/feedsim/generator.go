// Package feedsim serves a deterministic fake feed backend for local
// development. The dataset is generated once from a fixed seed, so two
// runs with the same seed produce byte-identical feed responses.
package feedsim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/keelan/gridiron/internal/domain/model"
	"github.com/keelan/gridiron/internal/domain/roster"
)

// Pool sizes per position.
const (
	numQB  = 32
	numRB  = 64
	numWR  = 80
	numTE  = 32
	numK   = 32
	numDEF = 32
)

// Projection curve parameters per position: a top score and a decay
// applied per depth step, plus jitter added from the seeded source.
const (
	qbTop  = 380.0
	rbTop  = 320.0
	wrTop  = 310.0
	teTop  = 240.0
	kTop   = 155.0
	defTop = 140.0

	decayPerStep  = 0.035
	jitterPoints  = 6.0
	stdDevMin     = 8.0
	stdDevRange   = 45.0
	seasonWeeks   = 17
	rookieShare   = 0.15
	adpJitter     = 3.0
	adpDriftRange = 6.0
)

var teamCodes = []string{
	"ARI", "ATL", "BAL", "BUF", "CAR", "CHI", "CIN", "CLE",
	"DAL", "DEN", "DET", "GB", "HOU", "IND", "JAX", "KC",
	"LAC", "LAR", "LV", "MIA", "MIN", "NE", "NO", "NYG",
	"NYJ", "PHI", "PIT", "SEA", "SF", "TB", "TEN", "WAS",
}

var firstNames = []string{
	"Jalen", "Marcus", "DeShawn", "Tyler", "Amari", "Jordan", "Chris",
	"Davante", "Malik", "Trent", "Xavier", "Brock", "Cade", "Rashid",
	"Elijah", "Nico", "Keon", "Darius", "Zay", "Quentin", "Andre",
	"Jose", "Mateo", "Trevon", "Caleb", "Isaiah", "Garrett", "Roman",
}

var lastNames = []string{
	"Harris", "Carter", "Mitchell", "Jefferson", "Walker", "Brooks",
	"Valdez", "Nakamura", "Okafor", "Steele", "Fontaine", "Bishop",
	"Moreau", "Hayes", "Dalton", "Pierce", "Vasquez", "Whitfield",
	"Barnes", "Iverson", "Kowalski", "Dupree", "Sanders", "Hollins",
}

// Dataset holds every record the simulator serves.
type Dataset struct {
	Players     []model.PlayerRecord
	Projections []model.ProjectionEntry
	ADP         []model.ADPEntry
	Rankings    model.RankingFeed
	Roster      model.RosterState
}

type positionCurve struct {
	pos   roster.Position
	count int
	top   float64
}

// Generate builds the full dataset from the seed. Players are laid out
// best to worst within each position, projections follow the decay curve
// with jitter, and ADP roughly tracks projection order with noise.
func Generate(seed int64, draftedCount int) *Dataset {
	rng := rand.New(rand.NewSource(seed))

	curves := []positionCurve{
		{roster.QB, numQB, qbTop},
		{roster.RB, numRB, rbTop},
		{roster.WR, numWR, wrTop},
		{roster.TE, numTE, teTop},
		{roster.K, numK, kTop},
		{roster.DEF, numDEF, defTop},
	}

	ds := &Dataset{}
	byeByTeam := make(map[string]int, len(teamCodes))
	for i, team := range teamCodes {
		byeByTeam[team] = 5 + i%10
	}

	serial := 0
	for _, curve := range curves {
		for depth := 0; depth < curve.count; depth++ {
			serial++
			id := fmt.Sprintf("p%04d", serial)
			team := teamCodes[serial%len(teamCodes)]
			name := playerName(rng, curve.pos, serial)

			years := rng.Intn(12)
			if rng.Float64() < rookieShare {
				years = 0
			}
			injury := ""
			if rng.Float64() < 0.06 {
				injury = "Questionable"
			}

			ds.Players = append(ds.Players, model.PlayerRecord{
				PlayerID:     id,
				FullName:     name,
				Position:     curve.pos,
				Team:         team,
				YearsExp:     years,
				InjuryStatus: injury,
			})

			total := curve.top*(1-decayPerStep*float64(depth)) + (rng.Float64()-0.5)*jitterPoints
			if total < 0 {
				total = 0
			}
			ds.Projections = append(ds.Projections, model.ProjectionEntry{
				PlayerID:       id,
				Position:       curve.pos,
				TotalProjected: round2(total),
				WeeklyProj:     weeklySpread(rng, total, byeByTeam[team]),
				ProjStdDev:     round2(stdDevMin + rng.Float64()*stdDevRange),
			})
		}
	}

	ds.ADP = generateADP(rng, ds.Players, ds.Projections)
	ds.Rankings = generateRankings(rng, ds.Players, ds.ADP, byeByTeam)
	ds.Roster = generateRoster(ds.ADP, draftedCount)
	return ds
}

// playerName builds a stable pseudo-name. Defenses use the team-style
// "X Defense" form so identity matching sees both name shapes.
func playerName(rng *rand.Rand, pos roster.Position, serial int) string {
	first := firstNames[serial%len(firstNames)]
	last := lastNames[(serial*7)%len(lastNames)]
	if pos == roster.DEF {
		return last + " Defense"
	}
	if rng.Float64() < 0.08 {
		return first + " " + last + " Jr."
	}
	return first + " " + last
}

// weeklySpread splits a season total across weeks, zeroing the bye.
func weeklySpread(rng *rand.Rand, total float64, bye int) []float64 {
	weeks := make([]float64, seasonWeeks)
	playing := seasonWeeks
	if bye >= 1 && bye <= seasonWeeks {
		playing--
	}
	if playing <= 0 {
		return weeks
	}
	base := total / float64(playing)
	for w := 0; w < seasonWeeks; w++ {
		if w+1 == bye {
			continue
		}
		weeks[w] = round2(base * (0.7 + rng.Float64()*0.6))
	}
	return weeks
}

// generateADP orders players by projection and assigns noisy pick values.
// A handful of entries get a shifted prior snapshot to exercise the
// rising and falling tags.
func generateADP(rng *rand.Rand, players []model.PlayerRecord, projections []model.ProjectionEntry) []model.ADPEntry {
	projByID := make(map[string]float64, len(projections))
	for _, p := range projections {
		projByID[p.PlayerID] = p.TotalProjected
	}

	order := make([]model.PlayerRecord, len(players))
	copy(order, players)
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			if projByID[order[j].PlayerID] > projByID[order[i].PlayerID] {
				order[i], order[j] = order[j], order[i]
			}
		}
	}

	adp := make([]model.ADPEntry, 0, len(order))
	for i, p := range order {
		value := float64(i+1) + (rng.Float64()-0.5)*adpJitter
		if value < 1 {
			value = 1
		}
		entry := model.ADPEntry{PlayerID: p.PlayerID, ADPValue: round2(value)}
		if rng.Float64() < 0.25 {
			drift := (rng.Float64() - 0.5) * 2 * adpDriftRange
			prev := value + drift
			if prev < 1 {
				prev = 1
			}
			entry.ADPValuePrev = round2(prev)
		}
		adp = append(adp, entry)
	}
	return adp
}

// generateRankings emits a name-keyed expert list in ADP order. Most rows
// omit the player id so resolution has to run through name matching.
func generateRankings(rng *rand.Rand, players []model.PlayerRecord, adp []model.ADPEntry, byeByTeam map[string]int) model.RankingFeed {
	byID := make(map[string]model.PlayerRecord, len(players))
	for _, p := range players {
		byID[p.PlayerID] = p
	}

	entries := make([]model.RankingEntry, 0, len(adp))
	for i, a := range adp {
		p := byID[a.PlayerID]
		entry := model.RankingEntry{
			PlayerName: p.FullName,
			Rank:       i + 1,
			ByeWeek:    byeByTeam[p.Team],
			Team:       p.Team,
		}
		if rng.Float64() < 0.2 {
			entry.PlayerID = p.PlayerID
		}
		entries = append(entries, entry)
	}
	return model.RankingFeed{
		Players:   entries,
		Published: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
		Source:    "feedsim",
	}
}

// generateRoster marks the first draftedCount ADP entries as drafted in
// snake order across 12 teams, with every 12th pick belonging to us.
func generateRoster(adp []model.ADPEntry, draftedCount int) model.RosterState {
	if draftedCount > len(adp) {
		draftedCount = len(adp)
	}
	state := model.RosterState{Drafted: make(map[string]model.PickRecord, draftedCount)}
	for i := 0; i < draftedCount; i++ {
		pick := model.PickRecord{
			PlayerID: adp[i].PlayerID,
			Round:    i/12 + 1,
			Pick:     i%12 + 1,
			Overall:  i + 1,
		}
		state.Drafted[pick.PlayerID] = pick
		if pick.Pick == 5 {
			state.MyPicks = append(state.MyPicks, pick)
		}
	}
	return state
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
