// Package env adapts the boarding simulator to a reset/step environment API with
// action masks and fixed-size integer observations.
package env

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	sim "github.com/18Prachi/airplane-boarding-simulation/sim"
	"github.com/18Prachi/airplane-boarding-simulation/sim/trace"
)

// Env owns one simulator per episode. Reset starts a fresh episode.
type Env struct {
	cfg        sim.BoardingConfig
	traceLevel trace.TraceLevel
	observers  []Observer
	sim        *sim.Simulator
}

// Option configures an Env.
type Option func(*Env)

// WithObserver registers o to receive frames.
func WithObserver(o Observer) Option {
	return func(e *Env) { e.observers = append(e.observers, o) }
}

// WithTrace records a trace at the given level for every episode.
func WithTrace(level trace.TraceLevel) Option {
	return func(e *Env) { e.traceLevel = level }
}

// New validates cfg and returns an Env that has already been reset.
func New(cfg sim.BoardingConfig, opts ...Option) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid boarding config: %w", err)
	}
	e := &Env{cfg: cfg, traceLevel: trace.TraceLevelNone}
	for _, opt := range opts {
		opt(e)
	}
	if !trace.IsValidTraceLevel(string(e.traceLevel)) {
		return nil, fmt.Errorf("unknown trace level %q", e.traceLevel)
	}
	e.Reset()
	return e, nil
}

// Config returns the boarding configuration.
func (e *Env) Config() sim.BoardingConfig { return e.cfg }

// NumActions returns the size of the action space (one action per row).
func (e *Env) NumActions() int { return e.cfg.Rows }

// ObservationSize returns the length of every observation vector.
func (e *Env) ObservationSize() int { return 2 * e.sim.Capacity() }

// Simulator exposes the current episode's simulator. Callers must not call
// Release on it directly; use Step so observers stay informed.
func (e *Env) Simulator() *sim.Simulator { return e.sim }

// Trace returns the current episode's trace, nil when tracing is off.
func (e *Env) Trace() *trace.BoardingTrace { return e.sim.Trace }

// AddObserver registers o for the current and future episodes.
func (e *Env) AddObserver(o Observer) {
	e.observers = append(e.observers, o)
}

// Reset discards the current episode and starts a new one.
func (e *Env) Reset() []int32 {
	e.sim = sim.NewSimulator(e.cfg)
	if e.traceLevel != "" && e.traceLevel != trace.TraceLevelNone {
		e.sim.Trace = trace.NewBoardingTrace(trace.TraceConfig{Level: e.traceLevel})
	}
	s := e.sim
	s.OnTick(func(r sim.TickReport) {
		e.notify(Frame{Step: s.StepCount, Tick: r.Tick, Reward: r.Reward, Terminated: s.IsFinished(), Snapshot: s.Snapshot()})
	})
	logrus.Debugf("Reset boarding episode: rows=%d seats_per_row=%d rules=%+v", e.cfg.Rows, e.cfg.SeatsPerRow, e.cfg.Rules)
	e.notify(Frame{Snapshot: s.Snapshot()})
	return e.Observation()
}

// Step releases one passenger from row's pool and returns the new observation,
// the reward, and whether boarding is complete. An invalid row returns an error
// wrapping sim.ErrInvalidAction and leaves the episode unchanged.
func (e *Env) Step(row int) ([]int32, int, bool, error) {
	reward, err := e.sim.Release(row)
	if err != nil {
		return e.Observation(), 0, e.sim.IsFinished(), err
	}
	return e.Observation(), reward, e.sim.IsFinished(), nil
}

// ActionMask returns one entry per row, true where the row's pool is non-empty.
func (e *Env) ActionMask() []bool {
	mask := make([]bool, e.cfg.Rows)
	for _, row := range e.sim.ValidRows() {
		mask[row] = true
	}
	return mask
}

// Observation encodes the current snapshot.
func (e *Env) Observation() []int32 {
	return EncodeObservation(e.sim.Snapshot())
}

// Close closes every observer.
func (e *Env) Close() error {
	var errs []error
	for _, o := range e.observers {
		if err := o.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (e *Env) notify(f Frame) {
	for _, o := range e.observers {
		o.Observe(f)
	}
}

// EncodeObservation flattens snap's aisle positions into (seat id, status code)
// pairs, with -1 for empty positions.
func EncodeObservation(snap sim.Snapshot) []int32 {
	obs := make([]int32, 0, 2*len(snap.Positions))
	for _, pos := range snap.Positions {
		obs = append(obs, int32(pos.SeatID), int32(pos.Status))
	}
	return obs
}
