package cmd

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/18Prachi/airplane-boarding-simulation/sim/evaluation"
)

var (
	// CLI flags for compare
	runs         int      // Episodes per strategy
	parallelism  int      // Concurrent episodes
	strategies   []string // Strategies to compare
	resultsOut   string   // File for JSON results
	promTextfile string   // File for Prometheus textfile metrics
)

// compareOptions is everything a comparison needs after flags and defaults are resolved.
type compareOptions struct {
	Eval         evaluation.Config
	Strategies   []string
	ResultsOut   string
	PromTextfile string
}

// runComparison evaluates every strategy, prints the table to w and writes the
// optional result and metrics files.
func runComparison(ctx context.Context, opts compareOptions, w io.Writer) ([]evaluation.Result, error) {
	results, err := evaluation.Evaluate(ctx, opts.Eval, opts.Strategies)
	if err != nil {
		return nil, err
	}
	if err := evaluation.PrintTable(w, results); err != nil {
		return results, err
	}
	if opts.ResultsOut != "" {
		if err := evaluation.WriteJSON(opts.ResultsOut, results); err != nil {
			return results, err
		}
		logrus.Infof("Results written to %s", opts.ResultsOut)
	}
	if opts.PromTextfile != "" {
		c := evaluation.NewCollector()
		c.Record(results)
		if err := c.WriteTextfile(opts.PromTextfile); err != nil {
			return results, err
		}
		logrus.Infof("Metrics written to %s", opts.PromTextfile)
	}
	return results, nil
}

// compareCmd evaluates several strategies over many episodes
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare boarding strategies over many episodes",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		cfg, err := resolveDefaults(cmd, configPath)
		if err != nil {
			logrus.Fatalf("Failed to load defaults: %v", err)
		}
		opts := compareOptions{
			Eval: evaluation.Config{
				Boarding:    boardingConfig(cmd, cfg),
				Runs:        cfg.Evaluation.Runs,
				Seed:        cfg.Evaluation.Seed,
				Parallelism: cfg.Evaluation.Parallelism,
			},
			Strategies:   cfg.Evaluation.Strategies,
			ResultsOut:   resultsOut,
			PromTextfile: promTextfile,
		}
		if cmd.Flags().Changed("runs") {
			opts.Eval.Runs = runs
		}
		if cmd.Flags().Changed("seed") {
			opts.Eval.Seed = seed
		}
		if cmd.Flags().Changed("parallelism") {
			opts.Eval.Parallelism = parallelism
		}
		if cmd.Flags().Changed("strategies") {
			opts.Strategies = strategies
		}

		logrus.Infof("Comparing %v: runs=%d seed=%d parallelism=%d", opts.Strategies, opts.Eval.Runs, opts.Eval.Seed, opts.Eval.Parallelism)
		if _, err := runComparison(cmd.Context(), opts, os.Stdout); err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
		logrus.Info("Comparison complete.")
	},
}

func addCompareFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&runs, "runs", 20, "Episodes per strategy")
	cmd.Flags().IntVar(&parallelism, "parallelism", 4, "Maximum concurrent episodes")
	cmd.Flags().StringSliceVar(&strategies, "strategies", nil, "Comma-separated strategies to compare (default from defaults.yaml)")
	cmd.Flags().StringVar(&resultsOut, "results-out", "", "Write results as JSON to this file")
	cmd.Flags().StringVar(&promTextfile, "prom-textfile", "", "Write Prometheus textfile metrics to this file")
}
