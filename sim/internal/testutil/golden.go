// Package testutil provides shared test infrastructure for the boarding simulator.
// It holds the golden trace types and loaders used across sim/ test packages.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenTraceSet represents the structure of testdata/golden_traces.json.
type GoldenTraceSet struct {
	Scenarios []GoldenScenario `json:"scenarios"`
}

// GoldenScenario is one scripted episode with its expected tick-by-tick aisle states.
type GoldenScenario struct {
	Name        string       `json:"name"`
	Rows        int          `json:"rows"`
	SeatsPerRow int          `json:"seats_per_row"`
	Advance     string       `json:"advance"`
	TailTrim    string       `json:"tail_trim"`
	Releases    []int        `json:"releases"`     // rows released, in order
	StepRewards []int        `json:"step_rewards"` // reward returned by each release
	TotalReward int          `json:"total_reward"`
	Ticks       []GoldenTick `json:"ticks"`
}

// GoldenTick is the expected aisle state after one tick, in AisleQueue.String() form.
type GoldenTick struct {
	Tick   int    `json:"tick"`
	Reward int    `json:"reward"`
	Aisle  string `json:"aisle"`
}

// LoadGoldenTraces loads the golden traces from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenTraces(t *testing.T) *GoldenTraceSet {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "golden_traces.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden traces: %v", err)
	}

	var set GoldenTraceSet
	if err := json.Unmarshal(data, &set); err != nil {
		t.Fatalf("Failed to parse golden traces: %v", err)
	}
	if len(set.Scenarios) == 0 {
		t.Fatal("Golden traces contain no scenarios")
	}
	return &set
}
