package config_test

import (
	"errors"
	"testing"

	"github.com/keelan/gridiron/internal/config"
	"github.com/keelan/gridiron/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		cfg := config.New()

		Convey("Then process defaults are set", func() {
			So(cfg.LogLevel, ShouldEqual, "info")
			So(cfg.Addr, ShouldEqual, ":8090")
			So(cfg.FeedBaseURL, ShouldEqual, "http://localhost:8091")
			So(cfg.FeedTimeoutMS, ShouldEqual, 10_000)
			So(cfg.MaxBoardLimit, ShouldEqual, 500)
		})

		Convey("Then league defaults describe a standard 12-team roster", func() {
			So(cfg.NumTeams, ShouldEqual, 12)
			So(cfg.StarterPositions, ShouldResemble,
				[]string{"QB", "RB", "RB", "WR", "WR", "TE", "FLEX", "K", "DEF"})
			So(cfg.Superflex, ShouldBeFalse)
			So(cfg.PlayoffWeeks, ShouldResemble, []int{15, 16, 17})
		})

		Convey("Then tier thresholds carry their defaults", func() {
			So(cfg.TierGapThreshold, ShouldEqual, 0.18)
			So(cfg.TierMinSize, ShouldEqual, 4)
		})
	})
}

func TestSlots(t *testing.T) {
	Convey("Given the default starter list", t, func() {
		cfg := config.New()

		Convey("When parsing slots", func() {
			slots, err := cfg.Slots()
			So(err, ShouldBeNil)
			So(len(slots), ShouldEqual, 9)
			So(slots[6].IsFlex(), ShouldBeTrue)
		})

		Convey("When the superflex flag is set a SUPER_FLEX slot is appended", func() {
			cfg.Superflex = true
			slots, err := cfg.Slots()
			So(err, ShouldBeNil)
			So(len(slots), ShouldEqual, 10)
			last := slots[len(slots)-1]
			So(last.Label(), ShouldEqual, "SUPER_FLEX")
			So(last.Allows(roster.QB), ShouldBeTrue)

			Convey("And the configured list itself is not mutated", func() {
				So(len(cfg.StarterPositions), ShouldEqual, 9)
			})
		})

		Convey("When SUPER_FLEX is already configured the flag does not duplicate it", func() {
			cfg.Superflex = true
			cfg.StarterPositions = []string{"QB", "RB", "WR", "SUPER_FLEX"}
			slots, err := cfg.Slots()
			So(err, ShouldBeNil)
			So(len(slots), ShouldEqual, 4)
		})

		Convey("When the list has an unknown label", func() {
			cfg.StarterPositions = []string{"QB", "IDP"}
			_, err := cfg.Slots()
			So(err, ShouldNotBeNil)
			So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
		})
	})
}
