package evaluation

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// PrintTable writes one line per result in the classic comparison format.
func PrintTable(w io.Writer, results []Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%-15s -> Steps: %.2f, Reward: %.2f\n", r.Strategy, r.MeanSteps, r.MeanReward); err != nil {
			return fmt.Errorf("writing result table: %w", err)
		}
	}
	return nil
}

// WriteJSON writes results as indented JSON to path.
func WriteJSON(path string, results []Result) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling results: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	return nil
}
