package sim

import "fmt"

// CheckInvariants verifies conservation and exclusive ownership across the
// waiting area, the aisle queue and the cabin. It returns an error wrapping
// ErrInvariantViolation describing the first failure found.
func (s *Simulator) CheckInvariants() error {
	fail := func(format string, args ...any) error {
		return &InvariantViolation{Op: "Simulator.CheckInvariants", Detail: fmt.Sprintf(format, args...)}
	}

	owners := make(map[int]string, s.Config.TotalSeats())
	claim := func(p *Passenger, where string) error {
		if p.SeatID < 0 || p.SeatID >= s.Config.TotalSeats() {
			return fail("passenger %d in %s has out-of-range seat", p.SeatID, where)
		}
		if prev, ok := owners[p.SeatID]; ok {
			return fail("passenger %d held by both %s and %s", p.SeatID, prev, where)
		}
		owners[p.SeatID] = where
		return nil
	}

	for _, pool := range s.Lobby.Pools {
		for _, p := range pool.Passengers {
			where := fmt.Sprintf("pool %d", pool.Row)
			if err := claim(p, where); err != nil {
				return err
			}
			if p.HomeRow != pool.Row {
				return fail("passenger %d (home row %d) waits in %s", p.SeatID, p.HomeRow, where)
			}
			if p.Status != StatusMoving || !p.CarryingLuggage {
				return fail("passenger %d in %s already touched (%v, luggage=%v)", p.SeatID, where, p.Status, p.CarryingLuggage)
			}
		}
	}

	if s.Aisle.Len() < s.Config.Rows {
		return fail("aisle has %d slots, fewer than %d rows", s.Aisle.Len(), s.Config.Rows)
	}
	for i, p := range s.Aisle.Slots {
		if p == nil {
			continue
		}
		where := fmt.Sprintf("aisle slot %d", i)
		if err := claim(p, where); err != nil {
			return err
		}
		switch p.Status {
		case StatusSeated:
			return fail("seated passenger %d still in %s", p.SeatID, where)
		case StatusStowing:
			if i != p.HomeRow || p.CarryingLuggage {
				return fail("passenger %d stowing in %s (home row %d, luggage=%v)", p.SeatID, where, p.HomeRow, p.CarryingLuggage)
			}
		}
		if i < p.HomeRow {
			return fail("passenger %d in %s passed home row %d", p.SeatID, where, p.HomeRow)
		}
	}

	for _, cr := range s.Cabin.Rows {
		for _, seat := range cr.Seats {
			if seat.Occupant == nil {
				continue
			}
			where := fmt.Sprintf("seat %d", seat.ID)
			if err := claim(seat.Occupant, where); err != nil {
				return err
			}
			if seat.Occupant.SeatID != seat.ID || seat.Occupant.Status != StatusSeated {
				return fail("seat %d holds passenger %d with status %v", seat.ID, seat.Occupant.SeatID, seat.Occupant.Status)
			}
		}
	}

	if len(owners) != s.Config.TotalSeats() {
		return fail("accounted for %d of %d passengers", len(owners), s.Config.TotalSeats())
	}
	return nil
}
