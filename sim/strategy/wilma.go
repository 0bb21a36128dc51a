package strategy

import (
	"sort"

	sim "github.com/18Prachi/airplane-boarding-simulation/sim"
)

// Wilma boards window seats first, then middle, then aisle (WilMA), rows
// ascending within each seat group.
//
// The order is fixed at Begin as a sequence of rows, one entry per passenger.
// Releasing a row still hands out that pool's top passenger, so the seat that
// actually boards may differ from the one that produced the entry.
type Wilma struct {
	sequence []int
	next     int
}

// Name implements Strategy.
func (w *Wilma) Name() string { return NameWilma }

// Begin implements Strategy.
func (w *Wilma) Begin(cfg sim.BoardingConfig) {
	w.sequence = WilmaSequence(cfg)
	w.next = 0
}

// NextRow implements Strategy.
func (w *Wilma) NextRow(s *sim.Simulator) int {
	if w.next >= len(w.sequence) {
		panic("Wilma.NextRow: sequence exhausted")
	}
	row := w.sequence[w.next]
	w.next++
	return row
}

// SeatPriority orders seat positions within a row outermost first, alternating
// left and right: 5 seats give [0 4 1 3 2].
func SeatPriority(seatsPerRow int) []int {
	order := make([]int, 0, seatsPerRow)
	for left, right := 0, seatsPerRow-1; left <= right; left, right = left+1, right-1 {
		order = append(order, left)
		if right != left {
			order = append(order, right)
		}
	}
	return order
}

// WilmaSequence returns the release row of every passenger, sorted by seat
// priority and then by row.
func WilmaSequence(cfg sim.BoardingConfig) []int {
	rank := make([]int, cfg.SeatsPerRow)
	for i, pos := range SeatPriority(cfg.SeatsPerRow) {
		rank[pos] = i
	}
	seats := make([]int, cfg.TotalSeats())
	for i := range seats {
		seats[i] = i
	}
	sort.SliceStable(seats, func(a, b int) bool {
		ra, rb := rank[seats[a]%cfg.SeatsPerRow], rank[seats[b]%cfg.SeatsPerRow]
		if ra != rb {
			return ra < rb
		}
		return seats[a]/cfg.SeatsPerRow < seats[b]/cfg.SeatsPerRow
	})
	rows := make([]int, len(seats))
	for i, id := range seats {
		rows[i] = id / cfg.SeatsPerRow
	}
	return rows
}
