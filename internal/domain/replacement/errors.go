package replacement

import "errors"

// Sentinel kinds for replacement-model errors. Config-level problems are
// the only hard failures; empty position pools degrade instead.
var (
	ErrInvalidLeagueConfig = errors.New("invalid league config")
)
