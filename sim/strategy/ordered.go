package strategy

import sim "github.com/18Prachi/airplane-boarding-simulation/sim"

// BackToFront empties the highest-numbered row's pool first.
type BackToFront struct{}

// Name implements Strategy.
func (BackToFront) Name() string { return NameBackToFront }

// Begin implements Strategy.
func (BackToFront) Begin(sim.BoardingConfig) {}

// NextRow implements Strategy.
func (BackToFront) NextRow(s *sim.Simulator) int {
	rows := s.ValidRows()
	if len(rows) == 0 {
		panic("BackToFront.NextRow: no valid rows")
	}
	return rows[len(rows)-1]
}

// FrontToBack empties row 0's pool first.
type FrontToBack struct{}

// Name implements Strategy.
func (FrontToBack) Name() string { return NameFrontToBack }

// Begin implements Strategy.
func (FrontToBack) Begin(sim.BoardingConfig) {}

// NextRow implements Strategy.
func (FrontToBack) NextRow(s *sim.Simulator) int {
	rows := s.ValidRows()
	if len(rows) == 0 {
		panic("FrontToBack.NextRow: no valid rows")
	}
	return rows[0]
}
