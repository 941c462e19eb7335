package roster

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrUnknownSlot = errors.New("unknown starter slot")
)
