// Implements the AisleQueue, the single-file boarding corridor.
// Slots [0, rows) are the in-cabin aisle (slot index = row index); slots beyond
// that are the overflow tail of released passengers still outside the cabin.

package sim

import (
	"fmt"
	"strings"
)

// AisleQueue is an ordered sequence of slots, each empty (nil) or holding one passenger.
// len(Slots) is never below Rows; the tail grows on Enqueue and shrinks on trim.
type AisleQueue struct {
	Rows  int
	Slots []*Passenger
}

// NewAisleQueue creates an empty aisle for rows cabin rows.
func NewAisleQueue(rows int) *AisleQueue {
	return &AisleQueue{Rows: rows, Slots: make([]*Passenger, rows)}
}

// Enqueue appends p to the end of the overflow tail.
func (aq *AisleQueue) Enqueue(p *Passenger) {
	aq.Slots = append(aq.Slots, p)
}

// Len returns the number of slots, in-cabin prefix included.
func (aq *AisleQueue) Len() int {
	return len(aq.Slots)
}

// At returns the passenger in slot i, or nil if the slot is empty or out of range.
func (aq *AisleQueue) At(i int) *Passenger {
	if i < 0 || i >= len(aq.Slots) {
		return nil
	}
	return aq.Slots[i]
}

// Vacate empties slot i.
func (aq *AisleQueue) Vacate(i int) {
	aq.Slots[i] = nil
}

// Occupied returns the number of non-empty slots.
func (aq *AisleQueue) Occupied() int {
	n := 0
	for _, p := range aq.Slots {
		if p != nil {
			n++
		}
	}
	return n
}

// IsOnboarding reports whether any slot is occupied.
func (aq *AisleQueue) IsOnboarding() bool {
	for _, p := range aq.Slots {
		if p != nil {
			return true
		}
	}
	return false
}

// CountStatus returns the number of queued passengers with status st.
func (aq *AisleQueue) CountStatus(st PassengerStatus) int {
	n := 0
	for _, p := range aq.Slots {
		if p != nil && p.Status == st {
			n++
		}
	}
	return n
}

// Advance moves every Moving or Stalled passenger one slot forward if the slot
// ahead is free, marks the others Stalled, leaves Stowing passengers in place,
// and finally trims the tail. Slot 0 never moves.
func (aq *AisleQueue) Advance(rules Rules) {
	switch rules.AdvanceMode() {
	case AdvanceSequential:
		aq.advance(func(i int) bool { return aq.Slots[i] == nil })
	default:
		free := make([]bool, len(aq.Slots))
		for i, p := range aq.Slots {
			free[i] = p == nil
		}
		aq.advance(func(i int) bool { return free[i] })
	}
	aq.trim(rules.TrimMode())
}

// advance runs one left-to-right pass; isFree answers whether slot i may be entered.
func (aq *AisleQueue) advance(isFree func(i int) bool) {
	for i := 1; i < len(aq.Slots); i++ {
		p := aq.Slots[i]
		if p == nil || p.Status == StatusStowing {
			continue
		}
		if p.Status == StatusSeated {
			violate("AisleQueue.Advance", "seated passenger %d found in slot %d", p.SeatID, i)
		}
		if isFree(i - 1) {
			aq.Slots[i-1] = p
			aq.Slots[i] = nil
			p.Status = StatusMoving
		} else {
			p.Status = StatusStalled
		}
	}
}

// trim removes empty tail slots beyond the in-cabin prefix.
func (aq *AisleQueue) trim(mode string) {
	if mode == TrimCompact {
		tail := aq.Slots[:aq.Rows]
		for _, p := range aq.Slots[aq.Rows:] {
			if p != nil {
				tail = append(tail, p)
			}
		}
		clear(aq.Slots[len(tail):])
		aq.Slots = tail
		return
	}
	n := len(aq.Slots)
	for n > aq.Rows && aq.Slots[n-1] == nil {
		n--
	}
	aq.Slots = aq.Slots[:n]
}

func (aq *AisleQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range aq.Slots {
		if p == nil {
			sb.WriteString("---")
		} else {
			sb.WriteString(fmt.Sprintf("%v:%v", p, p.Status))
		}
		if i < len(aq.Slots)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
