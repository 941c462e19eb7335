package roster_test

import (
	"errors"
	"testing"

	"github.com/keelan/gridiron/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParsePosition(t *testing.T) {
	Convey("Given position strings from different sources", t, func() {
		Convey("When parsing canonical positions", func() {
			for _, s := range []string{"QB", "RB", "WR", "TE", "K", "DEF"} {
				pos, ok := roster.ParsePosition(s)
				So(ok, ShouldBeTrue)
				So(string(pos), ShouldEqual, s)
			}
		})

		Convey("When parsing source aliases", func() {
			Convey("Then PK maps to K", func() {
				pos, ok := roster.ParsePosition("PK")
				So(ok, ShouldBeTrue)
				So(pos, ShouldEqual, roster.K)
			})

			Convey("And DST maps to DEF", func() {
				pos, ok := roster.ParsePosition("DST")
				So(ok, ShouldBeTrue)
				So(pos, ShouldEqual, roster.DEF)
			})

			Convey("And lowercase input is accepted", func() {
				pos, ok := roster.ParsePosition("rb")
				So(ok, ShouldBeTrue)
				So(pos, ShouldEqual, roster.RB)
			})
		})

		Convey("When parsing an unknown token", func() {
			_, ok := roster.ParsePosition("LB")
			So(ok, ShouldBeFalse)
		})
	})
}

func TestParseSlot(t *testing.T) {
	Convey("Given slot labels", t, func() {
		Convey("When parsing a fixed position slot", func() {
			slot, err := roster.ParseSlot("RB")
			So(err, ShouldBeNil)
			So(slot.Label(), ShouldEqual, "RB")
			So(slot.IsFlex(), ShouldBeFalse)
			So(slot.Allows(roster.RB), ShouldBeTrue)
			So(slot.Allows(roster.WR), ShouldBeFalse)
		})

		Convey("When parsing FLEX", func() {
			slot, err := roster.ParseSlot("FLEX")
			So(err, ShouldBeNil)
			So(slot.IsFlex(), ShouldBeTrue)
			So(slot.Eligible(), ShouldResemble, []roster.Position{roster.RB, roster.WR, roster.TE})
			So(slot.Allows(roster.QB), ShouldBeFalse)
		})

		Convey("When parsing SUPER_FLEX", func() {
			slot, err := roster.ParseSlot("SUPER_FLEX")
			So(err, ShouldBeNil)
			So(slot.Allows(roster.QB), ShouldBeTrue)
			So(slot.Allows(roster.K), ShouldBeFalse)
			So(len(slot.Eligible()), ShouldEqual, 4)
		})

		Convey("When parsing REC_FLEX and WRRB_FLEX", func() {
			rec, err := roster.ParseSlot("REC_FLEX")
			So(err, ShouldBeNil)
			So(rec.Allows(roster.RB), ShouldBeFalse)
			So(rec.Allows(roster.WR), ShouldBeTrue)
			So(rec.Allows(roster.TE), ShouldBeTrue)

			wrrb, err := roster.ParseSlot("WRRB_FLEX")
			So(err, ShouldBeNil)
			So(wrrb.Allows(roster.RB), ShouldBeTrue)
			So(wrrb.Allows(roster.TE), ShouldBeFalse)
		})

		Convey("When parsing an unknown label", func() {
			_, err := roster.ParseSlot("IDP")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, roster.ErrUnknownSlot), ShouldBeTrue)
		})
	})
}

func TestParseSlots(t *testing.T) {
	Convey("Given a starter slot list", t, func() {
		Convey("When every label is valid", func() {
			slots, err := roster.ParseSlots([]string{"QB", "RB", "RB", "WR", "WR", "TE", "FLEX", "K", "DEF"})
			So(err, ShouldBeNil)
			So(len(slots), ShouldEqual, 9)
			So(slots[6].IsFlex(), ShouldBeTrue)
		})

		Convey("When one label is invalid the whole parse fails", func() {
			_, err := roster.ParseSlots([]string{"QB", "NOPE"})
			So(err, ShouldNotBeNil)
			So(errors.Is(err, roster.ErrUnknownSlot), ShouldBeTrue)
		})
	})
}
