// Package evaluation compares boarding strategies over many independent episodes.
package evaluation

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	sim "github.com/18Prachi/airplane-boarding-simulation/sim"
	"github.com/18Prachi/airplane-boarding-simulation/sim/env"
	"github.com/18Prachi/airplane-boarding-simulation/sim/strategy"
)

// Config controls one comparison.
type Config struct {
	Boarding    sim.BoardingConfig
	Runs        int   // episodes per strategy
	Seed        int64 // master seed for every run's RNG
	Parallelism int   // concurrent episodes, <= 0 means 1
}

// Validate checks the comparison parameters.
func (c Config) Validate() error {
	if err := c.Boarding.Validate(); err != nil {
		return fmt.Errorf("invalid boarding config: %w", err)
	}
	if c.Runs < 1 {
		return fmt.Errorf("runs must be >= 1, got %d", c.Runs)
	}
	return nil
}

// Result aggregates the episodes of one strategy.
type Result struct {
	RunID      uuid.UUID          `json:"run_id"` // shared by every result of one Evaluate call
	Strategy   string             `json:"strategy"`
	Runs       int                `json:"runs"`
	MeanSteps  float64            `json:"mean_steps"`
	MeanTicks  float64            `json:"mean_ticks"`
	MeanReward float64            `json:"mean_reward"`
	StdSteps   float64            `json:"std_steps"`
	StdReward  float64            `json:"std_reward"`
	MinSteps   int                `json:"min_steps"`
	MaxSteps   int                `json:"max_steps"`
	P50Ticks   float64            `json:"p50_ticks"`
	P90Ticks   float64            `json:"p90_ticks"`
	Episodes   []strategy.Outcome `json:"episodes"`
}

// Evaluate plays every named strategy cfg.Runs times, each on its own simulator,
// and returns one Result per name in the given order. Episodes run concurrently,
// at most cfg.Parallelism at a time. Run r of strategy name draws from the RNG
// stream sim.SubsystemRun(name, r), so results do not depend on parallelism.
func Evaluate(ctx context.Context, cfg Config, names []string) ([]Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no strategies to evaluate")
	}
	for _, name := range names {
		if !strategy.IsValidStrategy(name) {
			return nil, fmt.Errorf("unknown strategy %q; valid strategies: %v", name, strategy.ValidStrategyNames())
		}
	}

	// Streams are derived here because PartitionedRNG is single-goroutine.
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))
	streams := make([][]*rand.Rand, len(names))
	outcomes := make([][]strategy.Outcome, len(names))
	for i, name := range names {
		streams[i] = make([]*rand.Rand, cfg.Runs)
		outcomes[i] = make([]strategy.Outcome, cfg.Runs)
		for r := range streams[i] {
			streams[i][r] = rng.ForSubsystem(sim.SubsystemRun(name, r))
		}
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Parallelism, 1))
	for i, name := range names {
		for r := 0; r < cfg.Runs; r++ {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				out, err := playEpisode(cfg.Boarding, name, streams[i][r])
				if err != nil {
					return fmt.Errorf("%s run %d: %w", name, r, err)
				}
				outcomes[i][r] = out
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	runID := uuid.New()
	results := make([]Result, len(names))
	for i, name := range names {
		results[i] = summarize(runID, name, outcomes[i])
	}
	logrus.Infof("Evaluated %d strategies x %d runs in %v (run %s)", len(names), cfg.Runs, time.Since(start), runID)
	return results, nil
}

func playEpisode(cfg sim.BoardingConfig, name string, rng *rand.Rand) (strategy.Outcome, error) {
	s, err := strategy.NewStrategy(name, rng)
	if err != nil {
		return strategy.Outcome{}, err
	}
	e, err := env.New(cfg)
	if err != nil {
		return strategy.Outcome{}, err
	}
	defer func() { _ = e.Close() }()
	return strategy.Run(e, s)
}

func summarize(runID uuid.UUID, name string, outs []strategy.Outcome) Result {
	res := Result{RunID: runID, Strategy: name, Runs: len(outs), Episodes: outs}
	steps := make([]float64, len(outs))
	rewards := make([]float64, len(outs))
	ticks := make([]float64, len(outs))
	for i, o := range outs {
		steps[i] = float64(o.Steps)
		rewards[i] = float64(o.Reward)
		ticks[i] = float64(o.Ticks)
		if i == 0 || o.Steps < res.MinSteps {
			res.MinSteps = o.Steps
		}
		res.MaxSteps = max(res.MaxSteps, o.Steps)
	}
	res.MeanSteps, res.StdSteps = meanStd(steps)
	res.MeanReward, res.StdReward = meanStd(rewards)
	res.MeanTicks, _ = meanStd(ticks)
	sort.Float64s(ticks)
	res.P50Ticks = percentile(ticks, 50)
	res.P90Ticks = percentile(ticks, 90)
	return res
}
