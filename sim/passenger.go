// Defines the Passenger record that models a single traveller in the boarding simulation.
// Tracks destination seat, luggage, and the boarding status state machine.

package sim

import "fmt"

// PassengerStatus represents the boarding state of a passenger.
// The integer values are the status codes exposed by Snapshot.
type PassengerStatus int

const (
	StatusMoving PassengerStatus = iota
	StatusStalled
	StatusStowing
	StatusSeated
)

// statusNames maps status codes to the names used in traces and rendering.
var statusNames = map[PassengerStatus]string{
	StatusMoving:  "MOVING",
	StatusStalled: "STALLED",
	StatusStowing: "STOWING",
	StatusSeated:  "SEATED",
}

func (st PassengerStatus) String() string {
	if name, ok := statusNames[st]; ok {
		return name
	}
	return fmt.Sprintf("PassengerStatus(%d)", int(st))
}

// Passenger models one passenger's lifecycle:
// Row Pool (Moving) → Aisle Queue (Moving/Stalled/Stowing) → Seat (Seated).
//
// Fields are exported so the whole simulation state can be deep-copied by Simulator.Clone.
type Passenger struct {
	SeatID          int             // Globally unique destination seat, 0 ≤ SeatID < rows×seatsPerRow
	HomeRow         int             // SeatID / seatsPerRow, immutable
	CarryingLuggage bool            // true until the first stow attempt
	Status          PassengerStatus // Moving, Stalled, Stowing or Seated
}

// NewPassenger creates a passenger headed for seatID, still holding luggage.
func NewPassenger(seatID, seatsPerRow int) *Passenger {
	return &Passenger{
		SeatID:          seatID,
		HomeRow:         seatID / seatsPerRow,
		CarryingLuggage: true,
		Status:          StatusMoving,
	}
}

// IsSeated reports whether the passenger reached the terminal state.
func (p *Passenger) IsSeated() bool {
	return p.Status == StatusSeated
}

// String returns the two-digit label used by the renderers, e.g. "P07".
func (p Passenger) String() string {
	return fmt.Sprintf("P%02d", p.SeatID)
}
