package feeds

import "errors"

// Sentinel kinds for feed errors.
var (
	ErrFeedUnavailable = errors.New("feed unavailable")
)
