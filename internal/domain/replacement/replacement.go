// Package replacement computes the replacement-level baseline and
// per-position scarcity multipliers from a projection pool and a league's
// starter-slot configuration.
package replacement

import (
	"math"
	"sort"

	"github.com/keelan/gridiron/internal/domain/model"
	"github.com/keelan/gridiron/internal/domain/roster"
)

// benchOffsets extend the replacement index past the nominal starter
// count: teams draft bench depth at RB/WR far beyond their starter slots.
var benchOffsets = map[roster.Position]int{
	roster.QB:  0,
	roster.RB:  3,
	roster.WR:  3,
	roster.TE:  1,
	roster.K:   0,
	roster.DEF: 0,
}

// scarcityWeights are the fixed per-position scarcity constants, RB
// highest and K/DEF lowest.
var scarcityWeights = map[roster.Position]float64{
	roster.QB:  0.12,
	roster.RB:  0.30,
	roster.WR:  0.20,
	roster.TE:  0.15,
	roster.K:   0.05,
	roster.DEF: 0.05,
}

// Model holds the per-position replacement baseline and scarcity outputs
// for one valuation run.
type Model struct {
	StarterCounts      map[roster.Position]float64
	ReplacementIndex   map[roster.Position]int
	ReplacementValue   map[roster.Position]float64
	ScarcityFactor     map[roster.Position]float64
	AvgWeightedDropoff map[roster.Position]float64

	// pools keeps each position's eligible projections sorted descending
	// by total projected points, for downstream dropoff computation.
	pools map[roster.Position][]model.ProjectionEntry
}

// Pool returns a position's eligible projections sorted descending by
// total projected points.
func (m *Model) Pool(pos roster.Position) []model.ProjectionEntry {
	return m.pools[pos]
}

// Build derives the replacement model from valid projections, the ordered
// starter-slot list and the league team count. A flex slot contributes a
// fractional starter count split evenly across its member positions.
// Positions with no eligible players degrade to replacement value 0 and
// scarcity factor 1 instead of failing the run.
func Build(projections []model.ProjectionEntry, slots []roster.Slot, numTeams int, opts ...Option) (*Model, error) {
	if numTeams <= 0 || len(slots) == 0 {
		return nil, ErrInvalidLeagueConfig
	}

	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Model{
		StarterCounts:      make(map[roster.Position]float64, len(roster.Positions)),
		ReplacementIndex:   make(map[roster.Position]int, len(roster.Positions)),
		ReplacementValue:   make(map[roster.Position]float64, len(roster.Positions)),
		ScarcityFactor:     make(map[roster.Position]float64, len(roster.Positions)),
		AvgWeightedDropoff: make(map[roster.Position]float64, len(roster.Positions)),
		pools:              make(map[roster.Position][]model.ProjectionEntry, len(roster.Positions)),
	}

	for _, slot := range slots {
		eligible := slot.Eligible()
		share := 1.0 / float64(len(eligible))
		for _, p := range eligible {
			m.StarterCounts[p] += share
		}
	}

	for _, entry := range projections {
		if entry.PlayerID == "" {
			continue
		}
		if cfg.drafted != nil && cfg.drafted[entry.PlayerID] {
			// Replacement level is measured against the free-agent pool
			// when drafted state is known.
			continue
		}
		m.pools[entry.Position] = append(m.pools[entry.Position], entry)
	}

	for _, pos := range roster.Positions {
		pool := m.pools[pos]
		sort.SliceStable(pool, func(i, j int) bool {
			return pool[i].TotalProjected > pool[j].TotalProjected
		})

		idx := int(math.Round(m.StarterCounts[pos]*float64(numTeams))) + benchOffsets[pos]
		if idx > len(pool)-1 {
			idx = len(pool) - 1
		}
		if idx < 0 {
			idx = 0
		}
		m.ReplacementIndex[pos] = idx

		if len(pool) == 0 {
			m.ReplacementValue[pos] = 0
			m.ScarcityFactor[pos] = 1
			m.AvgWeightedDropoff[pos] = 0
			continue
		}

		m.ReplacementValue[pos] = pool[idx].TotalProjected
		m.AvgWeightedDropoff[pos] = weightedAvgDropoff(pool, idx)
		m.ScarcityFactor[pos] = scarcityFactor(pos, m.StarterCounts[pos], numTeams,
			m.AvgWeightedDropoff[pos], m.ReplacementValue[pos])
	}

	return m, nil
}

// weightedAvgDropoff averages the projection gaps among the first n
// players, weighting gap i (1-based) by (n-i+1)/n so cliffs at the top
// of the pool dominate.
func weightedAvgDropoff(pool []model.ProjectionEntry, n int) float64 {
	if n > len(pool)-1 {
		n = len(pool) - 1
	}
	if n < 1 {
		return 0
	}
	var sum, weights float64
	for i := 1; i <= n; i++ {
		gap := pool[i-1].TotalProjected - pool[i].TotalProjected
		w := float64(n-i+1) / float64(n)
		sum += gap * w
		weights += w
	}
	if weights == 0 {
		return 0
	}
	return sum / weights
}

// scarcityFactor inflates value where starter demand outstrips supply:
// 1 + starter_share * position_weight * volatility, with volatility the
// weighted average dropoff relative to the replacement value.
func scarcityFactor(pos roster.Position, starters float64, numTeams int, avgDropoff, replacementValue float64) float64 {
	if replacementValue <= 0 {
		return 1
	}
	starterShare := starters / float64(numTeams)
	volatility := avgDropoff / replacementValue
	return 1 + starterShare*scarcityWeights[pos]*volatility
}
