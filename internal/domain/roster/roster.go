// Package roster defines the closed position and starter-slot types shared
// across the valuation engine. Flex-family slots are modeled as a tagged
// type with an explicit eligible-position set rather than string pattern
// matching, so an unknown slot token fails at parse time.
package roster

import (
	"fmt"
	"strings"
)

// Position is a concrete roster position.
type Position string

// Concrete positions.
const (
	QB  Position = "QB"
	RB  Position = "RB"
	WR  Position = "WR"
	TE  Position = "TE"
	K   Position = "K"
	DEF Position = "DEF"
)

// Positions lists every concrete position in board order.
var Positions = []Position{QB, RB, WR, TE, K, DEF}

// positionAliases maps source spellings onto the canonical set.
var positionAliases = map[string]Position{
	"QB":   QB,
	"RB":   RB,
	"WR":   WR,
	"TE":   TE,
	"K":    K,
	"PK":   K,
	"DEF":  DEF,
	"DST":  DEF,
	"D/ST": DEF,
	"D":    DEF,
}

// ParsePosition canonicalizes a source position string. The second return
// is false for tokens outside the closed set.
func ParsePosition(s string) (Position, bool) {
	p, ok := positionAliases[strings.ToUpper(strings.TrimSpace(s))]
	return p, ok
}

// Slot is a starter slot: either a single concrete position or a
// flex-family slot eligible for several positions.
type Slot struct {
	label    string
	eligible []Position
}

// flexFamilies is the closed set of flex tokens and their member positions.
var flexFamilies = map[string][]Position{
	"FLEX":       {RB, WR, TE},
	"REC_FLEX":   {WR, TE},
	"WRRB_FLEX":  {RB, WR},
	"SUPER_FLEX": {QB, RB, WR, TE},
}

// ParseSlot resolves a configured slot label into a Slot.
func ParseSlot(label string) (Slot, error) {
	token := strings.ToUpper(strings.TrimSpace(label))
	if family, ok := flexFamilies[token]; ok {
		eligible := make([]Position, len(family))
		copy(eligible, family)
		return Slot{label: token, eligible: eligible}, nil
	}
	if p, ok := ParsePosition(token); ok {
		return Slot{label: string(p), eligible: []Position{p}}, nil
	}
	return Slot{}, fmt.Errorf("%w: %q", ErrUnknownSlot, label)
}

// ParseSlots resolves an ordered starter-slot list.
func ParseSlots(labels []string) ([]Slot, error) {
	slots := make([]Slot, 0, len(labels))
	for _, label := range labels {
		s, err := ParseSlot(label)
		if err != nil {
			return nil, err
		}
		slots = append(slots, s)
	}
	return slots, nil
}

// Label returns the canonical slot label.
func (s Slot) Label() string { return s.label }

// IsFlex reports whether the slot accepts more than one position.
func (s Slot) IsFlex() bool { return len(s.eligible) > 1 }

// Eligible returns the positions the slot accepts, in family order.
func (s Slot) Eligible() []Position {
	out := make([]Position, len(s.eligible))
	copy(out, s.eligible)
	return out
}

// Allows reports whether a position can fill the slot.
func (s Slot) Allows(p Position) bool {
	for _, e := range s.eligible {
		if e == p {
			return true
		}
	}
	return false
}
