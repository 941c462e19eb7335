// Package valuation computes the full value-over-replacement adjustment
// chain for every projected player: raw VOR, scarcity, risk, injury and
// playoff-week adjustments, plus the per-position dropoff to the next
// best player. This is the single valuation path; there is no simplified
// variant.
package valuation

import (
	"math"

	"github.com/keelan/gridiron/internal/domain/model"
	"github.com/keelan/gridiron/internal/domain/replacement"
	"github.com/keelan/gridiron/internal/domain/roster"
)

// Adjustment constants.
const (
	// maxRiskDiscount caps how much projected variance can cost a player.
	maxRiskDiscount = 0.30
	// injuryDamping halves the raw positional injury-risk percentage.
	injuryDamping = 0.5
	// playoffBoost scales the playoff-week share of season points.
	playoffBoost = 0.25
	// tierBonusRatio flags a cliff when a player's dropoff exceeds the
	// position's weighted average by this factor.
	tierBonusRatio = 1.25
)

// injuryRisk is the fixed per-position injury-risk percentage, RB highest.
var injuryRisk = map[roster.Position]float64{
	roster.QB:  0.08,
	roster.RB:  0.16,
	roster.WR:  0.10,
	roster.TE:  0.09,
	roster.K:   0.03,
	roster.DEF: 0.02,
}

// Pipeline evaluates a replacement model's projection pools.
type Pipeline struct {
	model        *replacement.Model
	playoffWeeks []int
}

// New creates a Pipeline over a built replacement model.
func New(m *replacement.Model, opts ...Option) *Pipeline {
	p := &Pipeline{
		model:        m,
		playoffWeeks: []int{15, 16, 17},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Evaluate scores every player in the projection pools and returns the
// results keyed by player id. Results are fully recomputed each run.
// Stored values are rounded to 2 decimals for display; the chain itself
// runs at full precision.
func (p *Pipeline) Evaluate() map[string]model.ValuationResult {
	results := make(map[string]model.ValuationResult)
	for _, pos := range roster.Positions {
		pool := p.model.Pool(pos)
		replacementValue := p.model.ReplacementValue[pos]
		scarcity := p.model.ScarcityFactor[pos]
		avgDropoff := p.model.AvgWeightedDropoff[pos]

		for i, entry := range pool {
			vor := entry.TotalProjected - replacementValue
			adjusted := vor * scarcity
			riskAdjusted := adjusted * riskAdjustment(entry)
			injuryAdjusted := riskAdjusted * (1 - injuryRisk[pos]*injuryDamping)
			playoffAdjusted := injuryAdjusted * p.playoffWeight(entry)

			dropoff := 0.0
			if i < len(pool)-1 {
				dropoff = entry.TotalProjected - pool[i+1].TotalProjected
			}

			results[entry.PlayerID] = model.ValuationResult{
				PlayerID:           entry.PlayerID,
				VOR:                Round2(vor),
				AdjustedVOR:        Round2(adjusted),
				RiskAdjustedVOR:    Round2(riskAdjusted),
				InjuryAdjustedVOR:  Round2(injuryAdjusted),
				PlayoffAdjustedVOR: Round2(playoffAdjusted),
				Dropoff:            Round2(dropoff),
				TierBonus:          dropoff > avgDropoff*tierBonusRatio,
			}
		}
	}
	return results
}

// riskAdjustment discounts value by the projection's variance
// coefficient, capped so no player loses more than maxRiskDiscount.
func riskAdjustment(entry model.ProjectionEntry) float64 {
	if entry.ProjStdDev <= 0 {
		return 1
	}
	coeff := entry.ProjStdDev / math.Max(entry.TotalProjected, 1)
	return 1 - math.Min(coeff, maxRiskDiscount)
}

// playoffWeight boosts players whose weekly projections concentrate in
// the fantasy playoff weeks. Without a weekly array the weight is 1.
func (p *Pipeline) playoffWeight(entry model.ProjectionEntry) float64 {
	if len(entry.WeeklyProj) == 0 {
		return 1
	}
	var season, playoff float64
	for _, pts := range entry.WeeklyProj {
		season += pts
	}
	if season <= 0 {
		return 1
	}
	for _, week := range p.playoffWeeks {
		if week >= 1 && week <= len(entry.WeeklyProj) {
			playoff += entry.WeeklyProj[week-1]
		}
	}
	return 1 + playoffBoost*(playoff/season)
}

// Round2 rounds a display value to 2 decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
