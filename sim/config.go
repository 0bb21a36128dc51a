package sim

import "fmt"

const (
	// AdvanceSnapshot evaluates every "is the slot ahead empty" check against the
	// occupancy at the start of the aisle pass. Default.
	AdvanceSnapshot = "snapshot"
	// AdvanceSequential updates slots in place left to right, so a passenger may
	// step into a slot vacated earlier in the same pass.
	AdvanceSequential = "sequential"

	// TrimTrailing drops empty slots from the end of the overflow tail. Default.
	TrimTrailing = "trailing"
	// TrimCompact drops every empty slot beyond the in-cabin prefix.
	TrimCompact = "compact"
)

// ValidAdvanceModes is the set of recognized aisle advance modes.
var ValidAdvanceModes = map[string]bool{"": true, AdvanceSnapshot: true, AdvanceSequential: true}

// ValidTailTrims is the set of recognized tail trimming rules.
var ValidTailTrims = map[string]bool{"": true, TrimTrailing: true, TrimCompact: true}

// Rules groups the aisle automaton variants. Empty fields select the defaults.
type Rules struct {
	Advance  string `yaml:"advance" json:"advance,omitempty"`
	TailTrim string `yaml:"tail_trim" json:"tail_trim,omitempty"`
}

// AdvanceMode returns the effective advance mode.
func (r Rules) AdvanceMode() string {
	if r.Advance == "" {
		return AdvanceSnapshot
	}
	return r.Advance
}

// TrimMode returns the effective tail trimming rule.
func (r Rules) TrimMode() string {
	if r.TailTrim == "" {
		return TrimTrailing
	}
	return r.TailTrim
}

// BoardingConfig groups the cabin geometry and automaton rules for NewSimulator.
type BoardingConfig struct {
	Rows        int   // number of cabin rows, one aisle slot per row (must be > 0)
	SeatsPerRow int   // seats in every row (must be > 0)
	Rules       Rules // automaton variants
}

// NewBoardingConfig creates a BoardingConfig with default rules.
func NewBoardingConfig(rows, seatsPerRow int) BoardingConfig {
	return BoardingConfig{Rows: rows, SeatsPerRow: seatsPerRow}
}

// TotalSeats returns rows × seatsPerRow.
func (c BoardingConfig) TotalSeats() int {
	return c.Rows * c.SeatsPerRow
}

// Validate checks geometry and rule names.
func (c BoardingConfig) Validate() error {
	if c.Rows <= 0 {
		return fmt.Errorf("rows must be positive, got %d", c.Rows)
	}
	if c.SeatsPerRow <= 0 {
		return fmt.Errorf("seats per row must be positive, got %d", c.SeatsPerRow)
	}
	if !ValidAdvanceModes[c.Rules.Advance] {
		return fmt.Errorf("unknown advance mode %q", c.Rules.Advance)
	}
	if !ValidTailTrims[c.Rules.TailTrim] {
		return fmt.Errorf("unknown tail trim %q", c.Rules.TailTrim)
	}
	return nil
}
