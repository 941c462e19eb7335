package board

import "errors"

// Sentinel kinds for board errors. Per-record problems are absorbed with
// a skip; only configuration-level failures surface here.
var (
	ErrInvalidLeagueConfig = errors.New("invalid league config")
)
