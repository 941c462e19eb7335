// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers an optional YAML file and env vars
//   on top.
// - League-level validation is fatal at load time: the engine never runs
//   against a zero-team league or an empty starter list.
package config

import (
	"fmt"

	"github.com/keelan/gridiron/internal/domain/roster"
)

// Config contains process and league configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8090".
	Addr string `koanf:"addr"`

	// FeedBaseURL is the JSON feed endpoint all sources are fetched from.
	FeedBaseURL string `koanf:"feed_base_url"`

	// FeedTimeoutMS bounds each feed fetch; a timed-out source degrades
	// to an empty dataset instead of failing the run.
	FeedTimeoutMS int `koanf:"feed_timeout_ms"`

	// Season and Week select the projection window.
	Season int `koanf:"season"`
	Week   int `koanf:"week"`

	// Expert selects the ranking source.
	Expert string `koanf:"expert"`

	// ADPDays and ADPType select the ADP snapshot window and draft format.
	ADPDays int    `koanf:"adp_days"`
	ADPType string `koanf:"adp_type"`

	// NumTeams is the league size.
	NumTeams int `koanf:"num_teams"`

	// StarterPositions is the ordered starter-slot list, concrete
	// positions plus FLEX-family tokens.
	StarterPositions []string `koanf:"starter_positions"`

	// Superflex appends a SUPER_FLEX slot when the list lacks one.
	Superflex bool `koanf:"superflex"`

	// ByeExcludeThreshold tags players whose bye falls at or before this
	// week; 0 disables the check.
	ByeExcludeThreshold int `koanf:"bye_exclude_threshold"`

	// PlayoffWeeks are the 1-based fantasy playoff weeks.
	PlayoffWeeks []int `koanf:"playoff_weeks"`

	// TierGapThreshold and TierMinSize tune the tier classifier.
	TierGapThreshold float64 `koanf:"tier_gap_threshold"`
	TierMinSize      int     `koanf:"tier_min_size"`

	// MaxBoardLimit caps GET /board?limit.
	MaxBoardLimit int `koanf:"max_board_limit"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":8090",
		FeedBaseURL:         "http://localhost:8091",
		FeedTimeoutMS:       10_000,
		Season:              2026,
		Week:                0,
		Expert:              "consensus",
		ADPDays:             7,
		ADPType:             "ppr",
		NumTeams:            12,
		StarterPositions:    []string{"QB", "RB", "RB", "WR", "WR", "TE", "FLEX", "K", "DEF"},
		ByeExcludeThreshold: 0,
		PlayoffWeeks:        []int{15, 16, 17},
		TierGapThreshold:    0.18,
		TierMinSize:         4,
		MaxBoardLimit:       500,
	}
}

// Slots parses the configured starter list, appending a SUPER_FLEX slot
// when the superflex flag is set and none is configured.
func (c *Config) Slots() ([]roster.Slot, error) {
	labels := c.StarterPositions
	if c.Superflex {
		found := false
		for _, l := range labels {
			if l == "SUPER_FLEX" {
				found = true
				break
			}
		}
		if !found {
			labels = append(append([]string{}, labels...), "SUPER_FLEX")
		}
	}
	slots, err := roster.ParseSlots(labels)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return slots, nil
}
