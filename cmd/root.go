package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/18Prachi/airplane-boarding-simulation/sim"
	"github.com/18Prachi/airplane-boarding-simulation/sim/env"
	"github.com/18Prachi/airplane-boarding-simulation/sim/render"
	"github.com/18Prachi/airplane-boarding-simulation/sim/strategy"
	"github.com/18Prachi/airplane-boarding-simulation/sim/trace"
)

var (
	// CLI flags shared by run and compare
	configPath  string // Path to defaults.yaml
	logLevel    string // Log verbosity level
	seed        int64  // Master seed for strategy randomness
	rows        int    // Number of cabin rows
	seatsPerRow int    // Seats in every row
	advanceMode string // Aisle advance rule (snapshot, sequential)
	tailTrim    string // Tail trimming rule (trailing, compact)

	// CLI flags for run
	strategyName string        // Row-choice policy
	renderMode   string        // none or terminal
	renderDelay  time.Duration // Pause between rendered frames
	traceLevel   string        // none, releases or ticks
	traceOut     string        // File for the JSON trace
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "boarding",
	Short: "Airplane boarding simulator and strategy comparison",
}

// runOptions is everything one episode needs after flags and defaults are resolved.
type runOptions struct {
	Boarding    sim.BoardingConfig
	Strategy    string
	Seed        int64
	Render      string
	RenderDelay time.Duration
	Trace       trace.TraceLevel
	TraceOut    string
}

func (o runOptions) validate() error {
	if err := o.Boarding.Validate(); err != nil {
		return fmt.Errorf("invalid boarding config: %w", err)
	}
	if !strategy.IsValidStrategy(o.Strategy) {
		return fmt.Errorf("unknown strategy %q; valid strategies: %v", o.Strategy, strategy.ValidStrategyNames())
	}
	if !render.ValidModes[o.Render] {
		return fmt.Errorf("unknown render mode %q", o.Render)
	}
	if !trace.IsValidTraceLevel(string(o.Trace)) {
		return fmt.Errorf("unknown trace level %q", o.Trace)
	}
	if o.TraceOut != "" && (o.Trace == "" || o.Trace == trace.TraceLevelNone) {
		return fmt.Errorf("--trace-out requires --trace releases or ticks")
	}
	return nil
}

// runEpisode plays one episode, rendering frames to w when asked, and writes the
// trace file if one was requested.
func runEpisode(opts runOptions, w io.Writer) (strategy.Outcome, *env.Env, error) {
	if err := opts.validate(); err != nil {
		return strategy.Outcome{}, nil, err
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(opts.Seed)).ForSubsystem(sim.SubsystemStrategy)
	s, err := strategy.NewStrategy(opts.Strategy, rng)
	if err != nil {
		return strategy.Outcome{}, nil, err
	}

	var envOpts []env.Option
	if opts.Trace != "" {
		envOpts = append(envOpts, env.WithTrace(opts.Trace))
	}
	if opts.Render == render.ModeTerminal {
		envOpts = append(envOpts, env.WithObserver(render.NewTextRenderer(w, opts.RenderDelay)))
	}
	e, err := env.New(opts.Boarding, envOpts...)
	if err != nil {
		return strategy.Outcome{}, nil, err
	}

	logrus.Infof("Starting boarding: strategy=%s rows=%d seats_per_row=%d rules=%+v seed=%d",
		opts.Strategy, opts.Boarding.Rows, opts.Boarding.SeatsPerRow, opts.Boarding.Rules, opts.Seed)
	out, runErr := strategy.Run(e, s)
	if err := e.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("closing renderer: %w", err)
	}
	if runErr != nil {
		return out, e, runErr
	}
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		if err := e.Simulator().CheckInvariants(); err != nil {
			return out, e, err
		}
	}
	if opts.TraceOut != "" {
		if err := writeTraceJSON(opts.TraceOut, e.Trace()); err != nil {
			return out, e, err
		}
		logrus.Infof("Trace written to %s", opts.TraceOut)
	}
	return out, e, nil
}

// runCmd plays one episode of a single strategy
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Board one plane with a single strategy",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		cfg, err := resolveDefaults(cmd, configPath)
		if err != nil {
			logrus.Fatalf("Failed to load defaults: %v", err)
		}
		runSeed := cfg.Evaluation.Seed
		if cmd.Flags().Changed("seed") {
			runSeed = seed
		}
		opts := runOptions{
			Boarding:    boardingConfig(cmd, cfg),
			Strategy:    strategyName,
			Seed:        runSeed,
			Render:      renderMode,
			RenderDelay: renderDelay,
			Trace:       trace.TraceLevel(traceLevel),
			TraceOut:    traceOut,
		}

		out, e, err := runEpisode(opts, os.Stdout)
		if err != nil {
			logrus.Fatalf("Boarding failed: %v", err)
		}
		fmt.Printf("Strategy '%s' finished in %d steps with total reward %d\n", opts.Strategy, out.Steps, out.Reward)
		e.Simulator().Metrics.Print()
		if tr := e.Trace(); tr != nil {
			printTraceSummary(trace.Summarize(tr))
		}
		logrus.Info("Boarding complete.")
	},
}

func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// Execute runs the CLI root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// addCommonFlags registers the flags shared by run and compare.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configPath, "config", defaultsFilePath, "Path to defaults.yaml")
	cmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Seed for strategy randomness")
	cmd.Flags().IntVar(&rows, "rows", 10, "Number of cabin rows")
	cmd.Flags().IntVar(&seatsPerRow, "seats", 5, "Seats per row")
	cmd.Flags().StringVar(&advanceMode, "advance", sim.AdvanceSnapshot, "Aisle advance rule (snapshot, sequential)")
	cmd.Flags().StringVar(&tailTrim, "tail-trim", sim.TrimTrailing, "Tail trimming rule (trailing, compact)")
}

// init sets up CLI flags and subcommands
func init() {
	addCommonFlags(runCmd)
	runCmd.Flags().StringVar(&strategyName, "strategy", strategy.NameRandom, "Boarding strategy (random, back-to-front, front-to-back, wilma, greedy)")
	runCmd.Flags().StringVar(&renderMode, "render", render.ModeNone, "Render mode (none, terminal)")
	runCmd.Flags().DurationVar(&renderDelay, "render-delay", 0, "Pause after each rendered frame, e.g. 200ms")
	runCmd.Flags().StringVar(&traceLevel, "trace", string(trace.TraceLevelNone), "Trace level (none, releases, ticks)")
	runCmd.Flags().StringVar(&traceOut, "trace-out", "", "Write the trace as JSON to this file")

	addCommonFlags(compareCmd)
	addCompareFlags(compareCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
