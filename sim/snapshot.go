package sim

// Sentinel marks an empty position in a Snapshot.
const Sentinel = -1

// SlotView is one aisle position as seen by observers: seat id and status code,
// or Sentinel for both when the slot is empty.
type SlotView struct {
	SeatID int `json:"seat_id"`
	Status int `json:"status"`
}

// IsEmpty reports whether the position holds no passenger.
func (v SlotView) IsEmpty() bool {
	return v.SeatID == Sentinel
}

// SeatView is one cabin seat as seen by observers.
type SeatView struct {
	ID       int  `json:"id"`
	Occupied bool `json:"occupied"`
}

// Snapshot is a read-only copy of the simulation state. It shares no memory
// with the Simulator, so callers may keep it across releases.
type Snapshot struct {
	Clock     int          `json:"clock"`
	Steps     int          `json:"steps"`
	Rows      int          `json:"rows"`
	QueueLen  int          `json:"queue_len"` // aisle slots in use, in-cabin prefix included
	Positions []SlotView   `json:"positions"` // fixed length Capacity()
	Truncated bool         `json:"truncated"` // queue was longer than Positions
	Seats     [][]SeatView `json:"seats"`     // per row
	Pools     [][]int      `json:"pools"`     // per row, seat ids in pool order
	Finished  bool         `json:"finished"`
}

// Capacity returns the fixed number of aisle positions reported by Snapshot:
// the in-cabin prefix plus room for every passenger in the tail.
func (s *Simulator) Capacity() int {
	return s.Config.Rows + s.Config.TotalSeats()
}

// Snapshot returns the current state. Calling it twice without an intervening
// Release yields identical values.
func (s *Simulator) Snapshot() Snapshot {
	capacity := s.Capacity()
	snap := Snapshot{
		Clock:     s.Clock,
		Steps:     s.StepCount,
		Rows:      s.Config.Rows,
		QueueLen:  s.Aisle.Len(),
		Positions: make([]SlotView, capacity),
		Truncated: s.Aisle.Len() > capacity,
		Seats:     make([][]SeatView, len(s.Cabin.Rows)),
		Pools:     make([][]int, len(s.Lobby.Pools)),
		Finished:  s.IsFinished(),
	}
	for i := range snap.Positions {
		snap.Positions[i] = SlotView{SeatID: Sentinel, Status: Sentinel}
		if p := s.Aisle.At(i); p != nil {
			snap.Positions[i] = SlotView{SeatID: p.SeatID, Status: int(p.Status)}
		}
	}
	for r, cr := range s.Cabin.Rows {
		snap.Seats[r] = make([]SeatView, len(cr.Seats))
		for i, seat := range cr.Seats {
			snap.Seats[r][i] = SeatView{ID: seat.ID, Occupied: seat.IsOccupied()}
		}
	}
	for r, pool := range s.Lobby.Pools {
		snap.Pools[r] = make([]int, len(pool.Passengers))
		for i, p := range pool.Passengers {
			snap.Pools[r][i] = p.SeatID
		}
	}
	return snap
}
