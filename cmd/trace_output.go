package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/18Prachi/airplane-boarding-simulation/sim/trace"
)

// traceFile is the JSON layout written by --trace-out.
type traceFile struct {
	Level    trace.TraceLevel      `json:"level"`
	Summary  *trace.TraceSummary   `json:"summary"`
	Releases []trace.ReleaseRecord `json:"releases"`
	Ticks    []trace.TickRecord    `json:"ticks,omitempty"`
}

func writeTraceJSON(path string, bt *trace.BoardingTrace) error {
	if bt == nil {
		return fmt.Errorf("no trace recorded")
	}
	data, err := json.MarshalIndent(traceFile{
		Level:    bt.Config.Level,
		Summary:  trace.Summarize(bt),
		Releases: bt.Releases,
		Ticks:    bt.Ticks,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling trace: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing trace: %w", err)
	}
	return nil
}

func printTraceSummary(s *trace.TraceSummary) {
	fmt.Println("=== Trace Summary ===")
	fmt.Printf("Releases             : %d\n", s.TotalReleases)
	fmt.Printf("Drain Ticks          : %d\n", s.DrainTicks)
	rowsSeen := make([]int, 0, len(s.RowDistribution))
	for row := range s.RowDistribution {
		rowsSeen = append(rowsSeen, row)
	}
	sort.Ints(rowsSeen)
	for _, row := range rowsSeen {
		fmt.Printf("  row %-3d releases   : %d\n", row, s.RowDistribution[row])
	}
	if s.TotalTicks > 0 {
		fmt.Printf("Mean Tick Reward     : %.3f\n", s.MeanTickReward)
		fmt.Printf("Peak Stalled         : %d\n", s.PeakStalled)
	}
}
