package feeds_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/keelan/gridiron/internal/adapters/feeds"
	"github.com/keelan/gridiron/internal/domain/model"
	"github.com/keelan/gridiron/internal/domain/replacement"
	"github.com/keelan/gridiron/internal/domain/roster"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClientFetches(t *testing.T) {
	Convey("Given a feed backend", t, func() {
		var lastPath string
		var lastQuery map[string][]string
		mux := http.NewServeMux()
		record := func(next http.HandlerFunc) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				lastPath = r.URL.Path
				lastQuery = r.URL.Query()
				next(w, r)
			}
		}
		writeJSON := func(payload any) http.HandlerFunc {
			return func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(payload)
			}
		}

		mux.HandleFunc("/players", record(writeJSON([]model.PlayerRecord{
			{PlayerID: "p1", FullName: "Marcus Steele", Position: roster.RB, Team: "DET"},
		})))
		mux.HandleFunc("/projections", record(writeJSON([]model.ProjectionEntry{
			{PlayerID: "p1", Position: roster.RB, TotalProjected: 310.5},
		})))
		mux.HandleFunc("/adp", record(writeJSON([]model.ADPEntry{
			{PlayerID: "p1", ADPValue: 3.2, ADPValuePrev: 5.0},
		})))
		mux.HandleFunc("/rankings", record(writeJSON(model.RankingFeed{
			Source:  "consensus",
			Players: []model.RankingEntry{{PlayerName: "Marcus Steele", Rank: 2}},
		})))
		mux.HandleFunc("/leagues/league-1/roster", record(writeJSON(model.RosterState{
			Drafted: map[string]model.PickRecord{"p1": {PlayerID: "p1", Overall: 1}},
		})))

		srv := httptest.NewServer(mux)
		Reset(srv.Close)

		client := feeds.NewClient(srv.URL)
		ctx := context.Background()

		Convey("When fetching players", func() {
			players, err := client.Players(ctx)
			So(err, ShouldBeNil)
			So(len(players), ShouldEqual, 1)
			So(players[0].FullName, ShouldEqual, "Marcus Steele")
			So(lastPath, ShouldEqual, "/players")
		})

		Convey("When fetching projections the window goes on the query", func() {
			projections, err := client.Projections(ctx, 2026, 1, 17)
			So(err, ShouldBeNil)
			So(len(projections), ShouldEqual, 1)
			So(lastQuery["season"], ShouldResemble, []string{"2026"})
			So(lastQuery["week_from"], ShouldResemble, []string{"1"})
			So(lastQuery["week_to"], ShouldResemble, []string{"17"})
		})

		Convey("When fetching a full-season projection the week params are omitted", func() {
			_, err := client.Projections(ctx, 2026, 0, 0)
			So(err, ShouldBeNil)
			So(lastQuery["week_from"], ShouldBeNil)
			So(lastQuery["week_to"], ShouldBeNil)
		})

		Convey("When fetching adp the snapshot window goes on the query", func() {
			adp, err := client.ADP(ctx, 7, "ppr")
			So(err, ShouldBeNil)
			So(len(adp), ShouldEqual, 1)
			So(adp[0].ADPValuePrev, ShouldEqual, 5.0)
			So(lastQuery["days"], ShouldResemble, []string{"7"})
			So(lastQuery["type"], ShouldResemble, []string{"ppr"})
		})

		Convey("When fetching rankings", func() {
			feed, err := client.Rankings(ctx, "consensus", "", 0)
			So(err, ShouldBeNil)
			So(feed.Source, ShouldEqual, "consensus")
			So(len(feed.Players), ShouldEqual, 1)
			So(lastQuery["expert"], ShouldResemble, []string{"consensus"})
			So(lastQuery["week"], ShouldBeNil)
		})

		Convey("When fetching a league roster the league id is on the path", func() {
			state, err := client.RosterState(ctx, "league-1")
			So(err, ShouldBeNil)
			So(len(state.Drafted), ShouldEqual, 1)
			So(lastPath, ShouldEqual, "/leagues/league-1/roster")
		})
	})
}

func TestClientFailures(t *testing.T) {
	Convey("Given a feed backend that misbehaves", t, func() {
		ctx := context.Background()

		Convey("When the backend returns a server error", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			Reset(srv.Close)

			_, err := feeds.NewClient(srv.URL).Players(ctx)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, feeds.ErrFeedUnavailable), ShouldBeTrue)
		})

		Convey("When the backend returns malformed JSON", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("{not json"))
			}))
			Reset(srv.Close)

			_, err := feeds.NewClient(srv.URL).ADP(ctx, 7, "ppr")
			So(err, ShouldNotBeNil)
			So(errors.Is(err, feeds.ErrFeedUnavailable), ShouldBeTrue)
		})

		Convey("When the backend is unreachable", func() {
			_, err := feeds.NewClient("http://127.0.0.1:1").Players(ctx)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, feeds.ErrFeedUnavailable), ShouldBeTrue)
		})

		Convey("When the context is already cancelled", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("[]"))
			}))
			Reset(srv.Close)

			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := feeds.NewClient(srv.URL).Players(cancelled)
			So(err, ShouldNotBeNil)
			So(errors.Is(err, feeds.ErrFeedUnavailable), ShouldBeTrue)
		})
	})
}

func TestClientHeaders(t *testing.T) {
	Convey("Given a backend that inspects headers", t, func() {
		var gotAgent, gotAccept string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAgent = r.Header.Get("User-Agent")
			gotAccept = r.Header.Get("Accept")
			_, _ = w.Write([]byte("[]"))
		}))
		Reset(srv.Close)

		Convey("When fetching with the default client", func() {
			_, err := feeds.NewClient(srv.URL).Players(context.Background())
			So(err, ShouldBeNil)
			So(gotAgent, ShouldEqual, "gridiron/1.0")
			So(gotAccept, ShouldEqual, "application/json")
		})

		Convey("When a custom user agent is configured", func() {
			client := feeds.NewClient(srv.URL, feeds.WithUserAgent("draft-bot/2"))
			_, err := client.Players(context.Background())
			So(err, ShouldBeNil)
			So(gotAgent, ShouldEqual, "draft-bot/2")
		})
	})
}

func TestClientPositionCanonicalization(t *testing.T) {
	Convey("Given a backend that spells positions its own way", t, func() {
		mux := http.NewServeMux()
		mux.HandleFunc("/players", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode([]model.PlayerRecord{
				{PlayerID: "d1", FullName: "Chicago Defense", Position: "DST", Team: "CHI"},
				{PlayerID: "k1", FullName: "Aiden Brooks", Position: "PK", Team: "BUF"},
				{PlayerID: "w1", FullName: "Trent Hollis", Position: "wr", Team: "MIA"},
				{PlayerID: "x1", FullName: "Grant Olsen", Position: "LB", Team: "SEA"},
			})
		})
		mux.HandleFunc("/projections", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode([]model.ProjectionEntry{
				{PlayerID: "d1", Position: "DST", TotalProjected: 120},
				{PlayerID: "k1", Position: "PK", TotalProjected: 140},
				{PlayerID: "x1", Position: "LB", TotalProjected: 90},
			})
		})
		srv := httptest.NewServer(mux)
		Reset(srv.Close)

		client := feeds.NewClient(srv.URL)
		ctx := context.Background()

		Convey("When fetching players", func() {
			players, err := client.Players(ctx)
			So(err, ShouldBeNil)

			Convey("Then variant spellings collapse to canonical positions", func() {
				byID := map[string]roster.Position{}
				for _, p := range players {
					byID[p.PlayerID] = p.Position
				}
				So(byID["d1"], ShouldEqual, roster.DEF)
				So(byID["k1"], ShouldEqual, roster.K)
				So(byID["w1"], ShouldEqual, roster.WR)
			})

			Convey("Then records with unknown positions are dropped", func() {
				So(len(players), ShouldEqual, 3)
				for _, p := range players {
					So(p.PlayerID, ShouldNotEqual, "x1")
				}
			})
		})

		Convey("When fetching projections", func() {
			projections, err := client.Projections(ctx, 2026, 0, 0)
			So(err, ShouldBeNil)
			So(len(projections), ShouldEqual, 2)
			So(projections[0].Position, ShouldEqual, roster.DEF)
			So(projections[1].Position, ShouldEqual, roster.K)

			Convey("Then the DST spelling still lands in the DEF replacement pool", func() {
				slots, parseErr := roster.ParseSlots([]string{"K", "DEF"})
				So(parseErr, ShouldBeNil)
				m, buildErr := replacement.Build(projections, slots, 12)
				So(buildErr, ShouldBeNil)
				So(len(m.Pool(roster.DEF)), ShouldEqual, 1)
				So(len(m.Pool(roster.K)), ShouldEqual, 1)
			})
		})
	})
}
