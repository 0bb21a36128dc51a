package strategy

import (
	"math/rand"

	sim "github.com/18Prachi/airplane-boarding-simulation/sim"
)

// Random picks uniformly among the rows whose pool is non-empty.
type Random struct {
	rng *rand.Rand
}

// Name implements Strategy.
func (r *Random) Name() string { return NameRandom }

// Begin implements Strategy. The stream carries over between episodes.
func (r *Random) Begin(sim.BoardingConfig) {}

// NextRow implements Strategy.
func (r *Random) NextRow(s *sim.Simulator) int {
	rows := s.ValidRows()
	if len(rows) == 0 {
		panic("Random.NextRow: no valid rows")
	}
	return rows[r.rng.Intn(len(rows))]
}
