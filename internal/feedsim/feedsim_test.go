package feedsim_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/keelan/gridiron/internal/domain/model"
	"github.com/keelan/gridiron/internal/domain/roster"
	"github.com/keelan/gridiron/internal/feedsim"
	"github.com/keelan/gridiron/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestGenerate(t *testing.T) {
	Convey("Given a generated dataset", t, func() {
		ds := feedsim.Generate(42, 24)

		Convey("Then every position pool is populated", func() {
			counts := map[roster.Position]int{}
			for _, p := range ds.Players {
				counts[p.Position]++
			}
			So(counts[roster.QB], ShouldEqual, 32)
			So(counts[roster.RB], ShouldEqual, 64)
			So(counts[roster.WR], ShouldEqual, 80)
			So(counts[roster.TE], ShouldEqual, 32)
			So(counts[roster.K], ShouldEqual, 32)
			So(counts[roster.DEF], ShouldEqual, 32)
		})

		Convey("Then each player has a projection", func() {
			So(len(ds.Projections), ShouldEqual, len(ds.Players))
			for _, p := range ds.Projections {
				So(p.TotalProjected, ShouldBeGreaterThanOrEqualTo, 0)
				So(len(p.WeeklyProj), ShouldEqual, 17)
			}
		})

		Convey("Then each player has an adp entry with a sane pick value", func() {
			So(len(ds.ADP), ShouldEqual, len(ds.Players))
			for _, a := range ds.ADP {
				So(a.ADPValue, ShouldBeGreaterThanOrEqualTo, 1)
			}
		})

		Convey("Then rankings cover the pool and mostly omit player ids", func() {
			So(len(ds.Rankings.Players), ShouldEqual, len(ds.Players))
			withID := 0
			for _, r := range ds.Rankings.Players {
				So(r.PlayerName, ShouldNotBeBlank)
				So(r.Rank, ShouldBeGreaterThan, 0)
				if r.PlayerID != "" {
					withID++
				}
			}
			So(withID, ShouldBeLessThan, len(ds.Rankings.Players)/2)
		})

		Convey("Then the drafted state covers the requested picks with some ours", func() {
			So(len(ds.Roster.Drafted), ShouldEqual, 24)
			So(len(ds.Roster.MyPicks), ShouldEqual, 2)
			for _, pick := range ds.Roster.MyPicks {
				_, ok := ds.Roster.Drafted[pick.PlayerID]
				So(ok, ShouldBeTrue)
			}
		})

		Convey("When generating again with the same seed the dataset is identical", func() {
			other := feedsim.Generate(42, 24)
			So(other.Players, ShouldResemble, ds.Players)
			So(other.Projections, ShouldResemble, ds.Projections)
			So(other.ADP, ShouldResemble, ds.ADP)
		})

		Convey("When generating with a different seed the dataset differs", func() {
			other := feedsim.Generate(7, 24)
			So(other.Projections, ShouldNotResemble, ds.Projections)
		})
	})
}

func TestSimEndpoints(t *testing.T) {
	Convey("Given a running simulator", t, func() {
		ds := feedsim.Generate(42, 24)
		sim := feedsim.New(":0", ds)
		srv := httptest.NewServer(sim.Router())
		Reset(srv.Close)

		get := func(path string, out any) int {
			resp, err := http.Get(srv.URL + path)
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			if out != nil {
				So(json.NewDecoder(resp.Body).Decode(out), ShouldBeNil)
			}
			return resp.StatusCode
		}

		Convey("When fetching players", func() {
			var players []model.PlayerRecord
			So(get("/players", &players), ShouldEqual, http.StatusOK)
			So(len(players), ShouldEqual, len(ds.Players))
		})

		Convey("When fetching projections", func() {
			var projections []model.ProjectionEntry
			So(get("/projections?season=2026", &projections), ShouldEqual, http.StatusOK)
			So(len(projections), ShouldEqual, len(ds.Projections))
		})

		Convey("When fetching adp", func() {
			var adp []model.ADPEntry
			So(get("/adp?days=7&type=ppr", &adp), ShouldEqual, http.StatusOK)
			So(len(adp), ShouldEqual, len(ds.ADP))
		})

		Convey("When fetching rankings", func() {
			var feed model.RankingFeed
			So(get("/rankings?expert=consensus", &feed), ShouldEqual, http.StatusOK)
			So(feed.Source, ShouldEqual, "feedsim")
			So(len(feed.Players), ShouldEqual, len(ds.Rankings.Players))
		})

		Convey("When fetching a league roster", func() {
			var state model.RosterState
			So(get("/leagues/any/roster", &state), ShouldEqual, http.StatusOK)
			So(len(state.Drafted), ShouldEqual, 24)
		})

		Convey("When fetching an unknown path", func() {
			So(get("/nope", nil), ShouldEqual, http.StatusNotFound)
		})
	})
}
