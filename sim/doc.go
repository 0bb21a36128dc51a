// Package sim provides the boarding automaton: passengers moving single-file
// through an airplane aisle under occupancy and luggage-stow constraints.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - passenger.go: Passenger record and its status state machine (Moving, Stalled, Stowing, Seated)
//   - aisle.go: AisleQueue and the one-tick advance rule
//   - cabin.go: Seats and the two-phase stow/seat transition
//   - simulator.go: the boarding controller (Release, tick loop, drain, reward)
//
// # Tick
//
// A tick is every seat attempt for the in-cabin aisle slots, in row order,
// followed by one aisle advance evaluated against the occupancy at the start of
// the pass. The tick's reward is Moving − Stalled over the whole aisle queue.
//
// # Architecture
//
// The sim package holds the core and nothing else; consumers live in sub-packages:
//   - sim/env/: reset/step/observation adapter and the Observer capability
//   - sim/render/: text rendering of snapshots
//   - sim/strategy/: row-choice policies and the episode driver
//   - sim/evaluation/: multi-run strategy comparison
//   - sim/trace/: release and tick records
//
// The core is deterministic. Randomness lives only in the strategies, seeded
// through PartitionedRNG.
package sim
