package strategy

import (
	"fmt"

	sim "github.com/18Prachi/airplane-boarding-simulation/sim"
)

// Greedy releases from the row whose release earns the highest immediate reward.
// Each candidate is tried on a clone; ties go to the highest row.
type Greedy struct{}

// Name implements Strategy.
func (Greedy) Name() string { return NameGreedy }

// Begin implements Strategy.
func (Greedy) Begin(sim.BoardingConfig) {}

// NextRow implements Strategy.
func (Greedy) NextRow(s *sim.Simulator) int {
	rows := s.ValidRows()
	if len(rows) == 0 {
		panic("Greedy.NextRow: no valid rows")
	}
	best, bestReward := rows[0], 0
	for i, row := range rows {
		c, err := s.Clone()
		if err != nil {
			panic(fmt.Sprintf("Greedy.NextRow: %v", err))
		}
		reward, err := c.Release(row)
		if err != nil {
			panic(fmt.Sprintf("Greedy.NextRow: %v", err))
		}
		if i == 0 || reward >= bestReward {
			best, bestReward = row, reward
		}
	}
	return best
}
