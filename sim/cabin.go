// Implements the Cabin: one CabinRow per aisle slot, each holding one Seat per seat position.
// Seating is two-phase: the first attempt stows luggage, the next one sits down.

package sim

import "fmt"

// Seat holds at most one passenger. Once occupied it stays occupied for the episode.
type Seat struct {
	ID       int
	Row      int
	Occupant *Passenger
}

// IsOccupied reports whether a passenger sits here.
func (s *Seat) IsOccupied() bool {
	return s.Occupant != nil
}

// seat applies the stow/seat transition to p and reports whether p sat down.
// A passenger still carrying luggage spends this attempt stowing it.
func (s *Seat) seat(p *Passenger) bool {
	if s.ID != p.SeatID {
		violate("Seat.seat", "passenger %d offered seat %d", p.SeatID, s.ID)
	}
	if s.Occupant != nil {
		violate("Seat.seat", "seat %d already holds passenger %d", s.ID, s.Occupant.SeatID)
	}
	if p.CarryingLuggage {
		p.Status = StatusStowing
		p.CarryingLuggage = false
		return false
	}
	s.Occupant = p
	p.Status = StatusSeated
	return true
}

func (s Seat) String() string {
	if s.Occupant != nil {
		return fmt.Sprintf("P%02d", s.ID)
	}
	return fmt.Sprintf("S%02d", s.ID)
}

// CabinRow is the row of seats next to one aisle slot.
type CabinRow struct {
	Row   int
	Seats []*Seat
}

// NewCabinRow creates row with seatsPerRow empty seats.
func NewCabinRow(row, seatsPerRow int) *CabinRow {
	cr := &CabinRow{Row: row, Seats: make([]*Seat, seatsPerRow)}
	for i := range seatsPerRow {
		cr.Seats[i] = &Seat{ID: row*seatsPerRow + i, Row: row}
	}
	return cr
}

// Occupied returns the number of seated passengers in the row.
func (cr *CabinRow) Occupied() int {
	n := 0
	for _, s := range cr.Seats {
		if s.IsOccupied() {
			n++
		}
	}
	return n
}

// Cabin is the set of rows.
type Cabin struct {
	Rows []*CabinRow
}

// NewCabin creates an empty cabin.
func NewCabin(rows, seatsPerRow int) *Cabin {
	c := &Cabin{Rows: make([]*CabinRow, rows)}
	for row := range rows {
		c.Rows[row] = NewCabinRow(row, seatsPerRow)
	}
	return c
}

// TrySeat attempts to seat p, who stands at the aisle slot of row.
// Returns true only when p became Seated during this call. Passengers whose
// seat is not in row are left untouched.
func (c *Cabin) TrySeat(row int, p *Passenger) bool {
	if p.HomeRow != row {
		return false
	}
	for _, s := range c.Rows[row].Seats {
		if s.ID == p.SeatID {
			return s.seat(p)
		}
	}
	return false
}

// SeatedCount returns the number of seated passengers in the whole cabin.
func (c *Cabin) SeatedCount() int {
	n := 0
	for _, cr := range c.Rows {
		n += cr.Occupied()
	}
	return n
}
