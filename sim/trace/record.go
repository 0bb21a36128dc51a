// Package trace provides boarding-trace recording for strategy analysis.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// ReleaseRecord captures one release decision and the ticks it triggered.
type ReleaseRecord struct {
	Step      int  `json:"step"`      // 0-based index of the release in the episode
	Row       int  `json:"row"`       // row whose pool was dequeued
	SeatID    int  `json:"seat_id"`   // passenger released into the aisle tail
	Remaining int  `json:"remaining"` // passengers left in the waiting area after the release
	Ticks     int  `json:"ticks"`     // ticks run for this release (>1 only while draining)
	Reward    int  `json:"reward"`    // reward returned to the caller
	Drained   bool `json:"drained"`   // true if the release emptied the waiting area
}

// SlotRecord captures one occupied aisle slot.
type SlotRecord struct {
	Position int    `json:"position"`
	SeatID   int    `json:"seat_id"`
	Status   string `json:"status"`
}

// TickRecord captures the aisle state after one tick.
type TickRecord struct {
	Tick    int          `json:"tick"`    // 1-based simulation clock after the tick
	Step    int          `json:"step"`    // release that triggered the tick
	Reward  int          `json:"reward"`  // moving − stalled
	Moving  int          `json:"moving"`
	Stalled int          `json:"stalled"`
	Seated  []int        `json:"seated,omitempty"` // seat ids seated during this tick
	Slots   []SlotRecord `json:"slots,omitempty"`
}
