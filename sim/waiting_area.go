// Implements the WaitingArea, which holds every passenger not yet released into the aisle.
// Passengers are grouped into one RowPool per cabin row.

package sim

import (
	"fmt"
	"strings"
)

// RowPool holds the not-yet-released passengers of one row.
// Pools are built in increasing SeatID order and never reordered; Take pops
// from the back, so the highest remaining SeatID leaves first.
type RowPool struct {
	Row        int
	Passengers []*Passenger
}

// NewRowPool creates the pool of row with one passenger per seat.
func NewRowPool(row, seatsPerRow int) *RowPool {
	pool := &RowPool{
		Row:        row,
		Passengers: make([]*Passenger, 0, seatsPerRow),
	}
	for i := 0; i < seatsPerRow; i++ {
		pool.Passengers = append(pool.Passengers, NewPassenger(row*seatsPerRow+i, seatsPerRow))
	}
	return pool
}

// Len returns the number of passengers still waiting in the pool.
func (rp *RowPool) Len() int {
	return len(rp.Passengers)
}

// Take removes and returns the most recently added passenger.
// Panics on an empty pool; callers check Len first.
func (rp *RowPool) Take() *Passenger {
	n := len(rp.Passengers)
	if n == 0 {
		panic(fmt.Sprintf("RowPool.Take: row %d pool is empty", rp.Row))
	}
	p := rp.Passengers[n-1]
	rp.Passengers[n-1] = nil
	rp.Passengers = rp.Passengers[:n-1]
	return p
}

func (rp *RowPool) String() string {
	labels := make([]string, len(rp.Passengers))
	for i, p := range rp.Passengers {
		labels[i] = p.String()
	}
	return strings.Join(labels, " ")
}

// WaitingArea is the full set of row pools (the boarding lobby).
type WaitingArea struct {
	Pools []*RowPool
}

// NewWaitingArea builds rows pools of seatsPerRow passengers each, SeatID ascending.
func NewWaitingArea(rows, seatsPerRow int) *WaitingArea {
	wa := &WaitingArea{Pools: make([]*RowPool, rows)}
	for row := range rows {
		wa.Pools[row] = NewRowPool(row, seatsPerRow)
	}
	return wa
}

// TakeOne removes one passenger from row's pool.
// Requires a valid row with a non-empty pool.
func (wa *WaitingArea) TakeOne(row int) *Passenger {
	return wa.Pools[row].Take()
}

// RemainingCount returns the total number of passengers across all pools.
func (wa *WaitingArea) RemainingCount() int {
	total := 0
	for _, pool := range wa.Pools {
		total += pool.Len()
	}
	return total
}

// NonEmptyRows returns the indices of rows whose pools still hold passengers, ascending.
func (wa *WaitingArea) NonEmptyRows() []int {
	rows := make([]int, 0, len(wa.Pools))
	for _, pool := range wa.Pools {
		if pool.Len() > 0 {
			rows = append(rows, pool.Row)
		}
	}
	return rows
}
