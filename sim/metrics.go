// Tracks episode-wide boarding statistics such as releases, ticks, reward and congestion.

package sim

import (
	"encoding/json"
	"fmt"
)

// EpisodeMetrics aggregates statistics about one boarding episode
// for final reporting.
type EpisodeMetrics struct {
	Releases              int `json:"releases"`                // Number of Release calls (decision steps)
	Ticks                 int `json:"ticks"`                   // Number of simulated ticks
	TotalReward           int `json:"total_reward"`            // Sum of per-tick rewards
	MovingPassengerTicks  int `json:"moving_passenger_ticks"`  // Integral of Moving passengers over ticks
	StalledPassengerTicks int `json:"stalled_passenger_ticks"` // Integral of Stalled passengers over ticks
	StowEvents            int `json:"stow_events"`             // Luggage stows (one per passenger)
	Seated                int `json:"seated"`                  // Passengers seated so far
	PeakAisleOccupancy    int `json:"peak_aisle_occupancy"`    // Max occupied aisle slots after any tick
	PeakQueueLen          int `json:"peak_queue_len"`          // Max aisle length, tail included
}

// NewEpisodeMetrics creates zeroed metrics.
func NewEpisodeMetrics() *EpisodeMetrics {
	return &EpisodeMetrics{}
}

// StallRatio returns stalled / (moving + stalled) passenger-ticks, or 0 without traffic.
func (m *EpisodeMetrics) StallRatio() float64 {
	total := m.MovingPassengerTicks + m.StalledPassengerTicks
	if total == 0 {
		return 0
	}
	return float64(m.StalledPassengerTicks) / float64(total)
}

// Print displays the aggregated metrics at the end of the episode.
func (m *EpisodeMetrics) Print() {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		fmt.Printf("failed to marshal metrics: %v\n", err)
		return
	}
	fmt.Println("=== Boarding Metrics ===")
	fmt.Println(string(data))
	fmt.Printf("Stall Ratio          : %.3f\n", m.StallRatio())
}
