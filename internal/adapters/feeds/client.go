package feeds

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/keelan/gridiron/internal/domain/model"
	"github.com/keelan/gridiron/internal/domain/roster"
	"github.com/keelan/gridiron/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultTimeout   = 10 * time.Second
	defaultUserAgent = "gridiron/1.0"
)

// Client implements Source against a JSON feed endpoint.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
}

// NewClient creates a feed client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		http:      &http.Client{Timeout: defaultTimeout},
		baseURL:   baseURL,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Players fetches the identity pool.
func (c *Client) Players(ctx context.Context) ([]model.PlayerRecord, error) {
	var out []model.PlayerRecord
	if err := c.getJSON(ctx, SourcePlayers, "/players", nil, &out); err != nil {
		return nil, err
	}
	players := out[:0]
	for _, p := range out {
		// Feeds spell positions freely (DST, PK); canonicalize here so
		// everything downstream sees one spelling per position.
		pos, ok := roster.ParsePosition(string(p.Position))
		if !ok {
			metrics.RecordSkippedRecord()
			continue
		}
		p.Position = pos
		players = append(players, p)
	}
	metrics.UpdateFeedRecords(SourcePlayers, len(players))
	return players, nil
}

// Projections fetches scoring-weighted projections.
func (c *Client) Projections(ctx context.Context, season, weekFrom, weekTo int) ([]model.ProjectionEntry, error) {
	q := url.Values{}
	q.Set("season", strconv.Itoa(season))
	if weekFrom > 0 {
		q.Set("week_from", strconv.Itoa(weekFrom))
	}
	if weekTo > 0 {
		q.Set("week_to", strconv.Itoa(weekTo))
	}
	var out []model.ProjectionEntry
	if err := c.getJSON(ctx, SourceProjections, "/projections", q, &out); err != nil {
		return nil, err
	}
	projections := out[:0]
	for _, p := range out {
		pos, ok := roster.ParsePosition(string(p.Position))
		if !ok {
			metrics.RecordSkippedRecord()
			continue
		}
		p.Position = pos
		projections = append(projections, p)
	}
	metrics.UpdateFeedRecords(SourceProjections, len(projections))
	return projections, nil
}

// ADP fetches the current and prior average-draft-position snapshot.
func (c *Client) ADP(ctx context.Context, days int, adpType string) ([]model.ADPEntry, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	if adpType != "" {
		q.Set("type", adpType)
	}
	var out []model.ADPEntry
	if err := c.getJSON(ctx, SourceADP, "/adp", q, &out); err != nil {
		return nil, err
	}
	metrics.UpdateFeedRecords(SourceADP, len(out))
	return out, nil
}

// Rankings fetches one expert's ranking list.
func (c *Client) Rankings(ctx context.Context, expert string, pos roster.Position, week int) (model.RankingFeed, error) {
	q := url.Values{}
	if expert != "" {
		q.Set("expert", expert)
	}
	if pos != "" {
		q.Set("position", string(pos))
	}
	if week > 0 {
		q.Set("week", strconv.Itoa(week))
	}
	var out model.RankingFeed
	if err := c.getJSON(ctx, SourceRankings, "/rankings", q, &out); err != nil {
		return model.RankingFeed{}, err
	}
	metrics.UpdateFeedRecords(SourceRankings, len(out.Players))
	return out, nil
}

// RosterState fetches a league's drafted/ownership state.
func (c *Client) RosterState(ctx context.Context, leagueID string) (model.RosterState, error) {
	var out model.RosterState
	path := "/leagues/" + url.PathEscape(leagueID) + "/roster"
	if err := c.getJSON(ctx, SourceRoster, path, nil, &out); err != nil {
		return model.RosterState{}, err
	}
	metrics.UpdateFeedRecords(SourceRoster, len(out.Drafted))
	return out, nil
}

// getJSON performs one GET and decodes the body. Every failure wraps
// ErrFeedUnavailable so callers can degrade uniformly.
func (c *Client) getJSON(ctx context.Context, source, path string, query url.Values, out any) error {
	start := time.Now()
	status := "ok"
	defer func() {
		metrics.RecordFeedFetch(source, status, time.Since(start).Seconds())
	}()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		status = "error"
		return fmt.Errorf("%w: %s: %v", ErrFeedUnavailable, source, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		status = "error"
		return fmt.Errorf("%w: %s: %v", ErrFeedUnavailable, source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		status = "error"
		return fmt.Errorf("%w: %s: unexpected status %d", ErrFeedUnavailable, source, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		status = "error"
		return fmt.Errorf("%w: %s: decode: %v", ErrFeedUnavailable, source, err)
	}
	return nil
}
