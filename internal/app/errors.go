package app

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNoFeedSource        = errors.New("feed source required")
	ErrInvalidLeagueConfig = errors.New("invalid league config")
)
