package env

import (
	sim "github.com/18Prachi/airplane-boarding-simulation/sim"
)

// Frame is what an Observer sees: the state after a reset or after one tick.
type Frame struct {
	Step       int // releases so far
	Tick       int // simulation clock
	Reward     int // reward of the tick that produced the frame, 0 on reset
	Terminated bool
	Snapshot   sim.Snapshot
}

// Observer consumes frames. Renderers implement it; the core never depends on one.
type Observer interface {
	Observe(f Frame)
	Close() error
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(f Frame)

// Observe implements Observer.
func (fn ObserverFunc) Observe(f Frame) { fn(f) }

// Close implements Observer.
func (fn ObserverFunc) Close() error { return nil }
