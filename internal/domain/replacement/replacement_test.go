package replacement_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/keelan/gridiron/internal/domain/model"
	"github.com/keelan/gridiron/internal/domain/replacement"
	"github.com/keelan/gridiron/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

// pool builds a descending projection pool for one position, starting at
// top points and dropping by step per player.
func pool(pos roster.Position, count int, top, step float64) []model.ProjectionEntry {
	entries := make([]model.ProjectionEntry, 0, count)
	for i := 0; i < count; i++ {
		entries = append(entries, model.ProjectionEntry{
			PlayerID:       fmt.Sprintf("%s-%02d", pos, i+1),
			Position:       pos,
			TotalProjected: top - float64(i)*step,
		})
	}
	return entries
}

func standardSlots() []roster.Slot {
	slots, err := roster.ParseSlots([]string{"QB", "RB", "RB", "WR", "WR", "TE", "FLEX", "K", "DEF"})
	So(err, ShouldBeNil)
	return slots
}

func TestBuild(t *testing.T) {
	Convey("Given a 12-team league with one flex slot", t, func() {
		var projections []model.ProjectionEntry
		projections = append(projections, pool(roster.QB, 20, 380, 8)...)
		projections = append(projections, pool(roster.RB, 40, 320, 6)...)
		projections = append(projections, pool(roster.WR, 40, 310, 5)...)
		projections = append(projections, pool(roster.TE, 24, 240, 7)...)
		projections = append(projections, pool(roster.K, 14, 155, 3)...)
		projections = append(projections, pool(roster.DEF, 14, 140, 3)...)

		Convey("When building the model", func() {
			m, err := replacement.Build(projections, standardSlots(), 12)
			So(err, ShouldBeNil)

			Convey("Then the flex slot contributes a third of a starter to each member", func() {
				So(m.StarterCounts[roster.RB], ShouldAlmostEqual, 2.0+1.0/3.0, 1e-9)
				So(m.StarterCounts[roster.WR], ShouldAlmostEqual, 2.0+1.0/3.0, 1e-9)
				So(m.StarterCounts[roster.TE], ShouldAlmostEqual, 1.0+1.0/3.0, 1e-9)
				So(m.StarterCounts[roster.QB], ShouldEqual, 1.0)
			})

			Convey("And replacement indexes include the bench offsets", func() {
				// round(2.333*12)=28 plus 3 bench picks.
				So(m.ReplacementIndex[roster.RB], ShouldEqual, 31)
				So(m.ReplacementIndex[roster.WR], ShouldEqual, 31)
				// round(1.333*12)=16 plus 1.
				So(m.ReplacementIndex[roster.TE], ShouldEqual, 17)
				So(m.ReplacementIndex[roster.QB], ShouldEqual, 12)
			})

			Convey("And the replacement value is the pool value at the index", func() {
				So(m.ReplacementValue[roster.RB], ShouldAlmostEqual, 320-31*6.0, 1e-9)
				So(m.ReplacementValue[roster.QB], ShouldAlmostEqual, 380-12*8.0, 1e-9)
			})

			Convey("And every player above the index beats the replacement value", func() {
				for _, pos := range roster.Positions {
					p := m.Pool(pos)
					idx := m.ReplacementIndex[pos]
					for i := 0; i < idx && i < len(p); i++ {
						So(p[i].TotalProjected, ShouldBeGreaterThanOrEqualTo, m.ReplacementValue[pos])
					}
				}
			})

			Convey("And scarcity factors stay at 1 or above", func() {
				for _, pos := range roster.Positions {
					So(m.ScarcityFactor[pos], ShouldBeGreaterThanOrEqualTo, 1)
				}
			})

			Convey("And pools are sorted descending", func() {
				rbs := m.Pool(roster.RB)
				for i := 1; i < len(rbs); i++ {
					So(rbs[i].TotalProjected, ShouldBeLessThanOrEqualTo, rbs[i-1].TotalProjected)
				}
			})
		})

		Convey("When the index exceeds the pool it clamps to the last player", func() {
			short := pool(roster.K, 5, 155, 3)
			m, err := replacement.Build(short, standardSlots(), 12)
			So(err, ShouldBeNil)
			So(m.ReplacementIndex[roster.K], ShouldEqual, 4)
			So(m.ReplacementValue[roster.K], ShouldAlmostEqual, 155-4*3.0, 1e-9)
		})

		Convey("When a position has no eligible players it degrades", func() {
			m, err := replacement.Build(pool(roster.QB, 20, 380, 8), standardSlots(), 12)
			So(err, ShouldBeNil)
			So(m.ReplacementValue[roster.RB], ShouldEqual, 0)
			So(m.ScarcityFactor[roster.RB], ShouldEqual, 1)
			So(m.AvgWeightedDropoff[roster.RB], ShouldEqual, 0)
		})

		Convey("When drafted players are excluded the baseline shifts down", func() {
			drafted := map[string]bool{"RB-01": true, "RB-02": true, "RB-03": true}
			full, err := replacement.Build(projections, standardSlots(), 12)
			So(err, ShouldBeNil)
			filtered, err := replacement.Build(projections, standardSlots(), 12,
				replacement.WithDraftedSet(drafted))
			So(err, ShouldBeNil)

			So(len(filtered.Pool(roster.RB)), ShouldEqual, len(full.Pool(roster.RB))-3)
			So(filtered.ReplacementValue[roster.RB], ShouldBeLessThan, full.ReplacementValue[roster.RB])
		})

		Convey("When entries without a player id are present they are skipped", func() {
			withBlank := append(pool(roster.QB, 20, 380, 8), model.ProjectionEntry{
				Position:       roster.QB,
				TotalProjected: 999,
			})
			m, err := replacement.Build(withBlank, standardSlots(), 12)
			So(err, ShouldBeNil)
			So(len(m.Pool(roster.QB)), ShouldEqual, 20)
		})
	})

	Convey("Given an invalid league configuration", t, func() {
		Convey("When the team count is zero", func() {
			_, err := replacement.Build(nil, standardSlots(), 0)
			So(errors.Is(err, replacement.ErrInvalidLeagueConfig), ShouldBeTrue)
		})

		Convey("When no starter slots are configured", func() {
			_, err := replacement.Build(nil, nil, 12)
			So(errors.Is(err, replacement.ErrInvalidLeagueConfig), ShouldBeTrue)
		})
	})
}

func TestBuildSuperflex(t *testing.T) {
	Convey("Given a superflex league", t, func() {
		slots, err := roster.ParseSlots([]string{"QB", "RB", "RB", "WR", "WR", "TE", "FLEX", "SUPER_FLEX", "K", "DEF"})
		So(err, ShouldBeNil)

		qbs := pool(roster.QB, 24, 380, 8)

		Convey("When building, QB demand rises by a quarter starter per team", func() {
			m, err := replacement.Build(qbs, slots, 12)
			So(err, ShouldBeNil)
			So(m.StarterCounts[roster.QB], ShouldAlmostEqual, 1.25, 1e-9)
			// round(1.25*12)=15, no bench offset for QB.
			So(m.ReplacementIndex[roster.QB], ShouldEqual, 15)
		})
	})
}
