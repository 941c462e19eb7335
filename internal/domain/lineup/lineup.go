// Package lineup fills starter slots from a rank-sorted player list.
//
// Filling is greedy in the configured slot order: each slot takes the
// first not-yet-used player whose position it allows. Processing slots
// in sequence rather than by scarcity keeps allocations reproducible
// and cheap, at the cost of occasionally sub-optimal flex usage.
package lineup

import (
	"sort"
	"strconv"

	"github.com/keelan/gridiron/internal/domain/model"
	"github.com/keelan/gridiron/internal/domain/roster"
)

// Allocate assigns players to the ordered starter slots and returns the
// starters plus the bench remainder. The starters slice always has one
// assignment per configured slot; a slot with no eligible player left
// carries an empty PlayerID rather than being dropped. The bench is the
// unconsumed remainder in rank-ascending order. Allocate is a pure
// function: identical inputs produce identical output.
func Allocate(players []model.BoardEntry, slots []roster.Slot) (starters []model.LineupSlot, bench []model.BoardEntry) {
	sorted := make([]model.BoardEntry, len(players))
	copy(sorted, players)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rank < sorted[j].Rank })

	used := make(map[string]bool, len(slots))
	starters = make([]model.LineupSlot, 0, len(slots))
	for _, slot := range slots {
		assignment := model.LineupSlot{SlotLabel: slotLabel(slot, starters)}
		for _, p := range sorted {
			if used[p.PlayerID] || !slot.Allows(p.Position) {
				continue
			}
			used[p.PlayerID] = true
			assignment.PlayerID = p.PlayerID
			break
		}
		starters = append(starters, assignment)
	}

	bench = make([]model.BoardEntry, 0, len(sorted))
	for _, p := range sorted {
		if !used[p.PlayerID] {
			bench = append(bench, p)
		}
	}
	return starters, bench
}

// slotLabel numbers repeated slot labels so assignments stay addressable:
// the second FLEX becomes FLEX2, the third FLEX3.
func slotLabel(slot roster.Slot, assigned []model.LineupSlot) string {
	base := slot.Label()
	count := 1
	for _, s := range assigned {
		if s.SlotLabel == base || hasNumberedBase(s.SlotLabel, base) {
			count++
		}
	}
	if count == 1 {
		return base
	}
	return base + strconv.Itoa(count)
}

func hasNumberedBase(label, base string) bool {
	if len(label) <= len(base) || label[:len(base)] != base {
		return false
	}
	for _, r := range label[len(base):] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
