// Package strategy provides row-choice policies for the boarding environment and
// the episode driver that plays one policy to completion.
package strategy

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	sim "github.com/18Prachi/airplane-boarding-simulation/sim"
	"github.com/18Prachi/airplane-boarding-simulation/sim/env"
)

// Strategy names accepted by NewStrategy.
const (
	NameRandom      = "random"
	NameBackToFront = "back-to-front"
	NameFrontToBack = "front-to-back"
	NameWilma       = "wilma"
	NameGreedy      = "greedy"
)

// ValidStrategies is the set of names NewStrategy accepts.
var ValidStrategies = map[string]bool{
	NameRandom:      true,
	NameBackToFront: true,
	NameFrontToBack: true,
	NameWilma:       true,
	NameGreedy:      true,
}

// IsValidStrategy reports whether name is a recognized strategy.
func IsValidStrategy(name string) bool { return ValidStrategies[name] }

// ValidStrategyNames returns the recognized names, sorted.
func ValidStrategyNames() []string {
	names := make([]string, 0, len(ValidStrategies))
	for name := range ValidStrategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Strategy chooses which row's pool releases the next passenger.
// Begin is called once per episode before the first NextRow.
// NextRow must return a row whose pool is non-empty.
type Strategy interface {
	Name() string
	Begin(cfg sim.BoardingConfig)
	NextRow(s *sim.Simulator) int
}

// NewStrategy creates a strategy by name. rng feeds the random strategy; nil
// falls back to a stream seeded with 0. Other strategies ignore it.
func NewStrategy(name string, rng *rand.Rand) (Strategy, error) {
	if !IsValidStrategy(name) {
		return nil, fmt.Errorf("unknown strategy %q; valid strategies: %v", name, ValidStrategyNames())
	}
	switch name {
	case NameRandom:
		if rng == nil {
			rng = sim.NewPartitionedRNG(sim.NewSimulationKey(0)).ForSubsystem(sim.SubsystemStrategy)
		}
		return &Random{rng: rng}, nil
	case NameBackToFront:
		return &BackToFront{}, nil
	case NameFrontToBack:
		return &FrontToBack{}, nil
	case NameWilma:
		return &Wilma{}, nil
	case NameGreedy:
		return &Greedy{}, nil
	default:
		panic(fmt.Sprintf("unhandled strategy %q", name))
	}
}

// Outcome summarizes one played episode.
type Outcome struct {
	Steps   int                `json:"steps"`
	Ticks   int                `json:"ticks"`
	Reward  int                `json:"reward"`
	Metrics sim.EpisodeMetrics `json:"metrics"`
}

// Run plays one full episode of s on e and returns its outcome. e is reset first
// unless it is still at its initial state. A row rejected by the environment
// aborts the episode with an error wrapping sim.ErrInvalidAction.
func Run(e *env.Env, s Strategy) (Outcome, error) {
	if e.Simulator().StepCount > 0 {
		e.Reset()
	}
	s.Begin(e.Config())

	var out Outcome
	for !e.Simulator().IsFinished() {
		row := s.NextRow(e.Simulator())
		_, reward, terminated, err := e.Step(row)
		if err != nil {
			return out, fmt.Errorf("strategy %s at step %d: %w", s.Name(), out.Steps, err)
		}
		out.Steps++
		out.Reward += reward
		if terminated {
			break
		}
	}
	out.Ticks = e.Simulator().Clock
	out.Metrics = *e.Simulator().Metrics
	logrus.Debugf("Strategy %s finished: steps=%d ticks=%d reward=%d", s.Name(), out.Steps, out.Ticks, out.Reward)
	return out, nil
}
