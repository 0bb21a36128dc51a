// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/tiendc/go-deepcopy"

	"github.com/18Prachi/airplane-boarding-simulation/sim/trace"
)

// TickReport describes one completed tick. It is handed to the tick hook.
type TickReport struct {
	Step    int   // release that triggered the tick
	Tick    int   // simulation clock after the tick
	Reward  int   // moving − stalled after the aisle advance
	Moving  int   // Moving passengers in the aisle queue
	Stalled int   // Stalled passengers in the aisle queue
	Seated  []int // seat ids seated during the tick
}

// Simulator is the boarding controller. It owns the waiting area, the aisle
// queue and the cabin, and advances them one release at a time.
//
// Not safe for concurrent use; every Release runs to completion before returning.
type Simulator struct {
	Config BoardingConfig
	// Lobby holds every passenger not yet released
	Lobby *WaitingArea
	// Aisle is the in-cabin aisle plus the overflow tail
	Aisle *AisleQueue
	Cabin *Cabin
	// Clock counts ticks since the episode started
	Clock int
	// StepCount counts Release calls
	StepCount int
	Metrics   *EpisodeMetrics
	// Trace is optional; nil disables recording
	Trace *trace.BoardingTrace

	onTick func(TickReport)
}

// NewSimulator builds a waiting area with one passenger per seat (SeatID ascending),
// an empty cabin and an empty aisle. Panics if cfg is invalid; callers validate first.
func NewSimulator(cfg BoardingConfig) *Simulator {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("NewSimulator: %v", err))
	}
	return &Simulator{
		Config:  cfg,
		Lobby:   NewWaitingArea(cfg.Rows, cfg.SeatsPerRow),
		Aisle:   NewAisleQueue(cfg.Rows),
		Cabin:   NewCabin(cfg.Rows, cfg.SeatsPerRow),
		Metrics: NewEpisodeMetrics(),
	}
}

// OnTick registers fn to be called after every tick. A nil fn removes the hook.
func (s *Simulator) OnTick(fn func(TickReport)) {
	s.onTick = fn
}

// Rows returns the number of cabin rows.
func (s *Simulator) Rows() int { return s.Config.Rows }

// SeatsPerRow returns the number of seats per row.
func (s *Simulator) SeatsPerRow() int { return s.Config.SeatsPerRow }

// PoolSize returns the number of passengers waiting in row's pool, 0 for unknown rows.
func (s *Simulator) PoolSize(row int) int {
	if row < 0 || row >= len(s.Lobby.Pools) {
		return 0
	}
	return s.Lobby.Pools[row].Len()
}

// ValidRows returns the rows whose pool is non-empty, ascending.
func (s *Simulator) ValidRows() []int {
	return s.Lobby.NonEmptyRows()
}

// IsFinished reports whether every passenger is seated: the waiting area is
// empty and no aisle slot is occupied.
func (s *Simulator) IsFinished() bool {
	return s.Lobby.RemainingCount() == 0 && !s.Aisle.IsOnboarding()
}

// Release moves one passenger from row's pool to the aisle tail and advances
// the simulation. While passengers remain in the waiting area it runs exactly
// one tick and returns that tick's reward. Once the waiting area is empty it
// ticks until the aisle drains and returns the sum of those ticks' rewards.
//
// Returns an error wrapping ErrInvalidAction, without touching any state, if row
// is out of range or its pool is empty.
func (s *Simulator) Release(row int) (int, error) {
	if row < 0 || row >= s.Config.Rows {
		return 0, fmt.Errorf("release row %d (rows=%d): %w", row, s.Config.Rows, ErrInvalidAction)
	}
	if s.Lobby.Pools[row].Len() == 0 {
		return 0, fmt.Errorf("release row %d: pool is empty: %w", row, ErrInvalidAction)
	}

	p := s.Lobby.TakeOne(row)
	s.Aisle.Enqueue(p)
	step := s.StepCount
	s.StepCount++
	s.Metrics.Releases++
	logrus.Debugf("[tick %07d] Released %v from row %d into tail slot %d", s.Clock, p, row, s.Aisle.Len()-1)

	remaining := s.Lobby.RemainingCount()
	reward, ticks := 0, 0
	if remaining > 0 {
		reward = s.advanceOneTick(step)
		ticks = 1
	} else {
		limit := s.drainLimit()
		logrus.Infof("[tick %07d] Waiting area empty, draining %d passengers", s.Clock, s.Aisle.Occupied())
		for s.Aisle.IsOnboarding() {
			if ticks >= limit {
				violate("Simulator.Release", "aisle did not drain within %d ticks: %v", limit, s.Aisle)
			}
			reward += s.advanceOneTick(step)
			ticks++
		}
		logrus.Infof("[tick %07d] Boarding complete after %d releases", s.Clock, s.StepCount)
	}
	s.Metrics.TotalReward += reward

	if s.Trace != nil && s.Trace.Config.Level != trace.TraceLevelNone {
		s.Trace.RecordRelease(trace.ReleaseRecord{
			Step:      step,
			Row:       row,
			SeatID:    p.SeatID,
			Remaining: remaining,
			Ticks:     ticks,
			Reward:    reward,
			Drained:   remaining == 0,
		})
	}
	return reward, nil
}

// advanceOneTick runs the seat attempts for every in-cabin row in row order,
// then one aisle advance, and returns the tick's reward.
func (s *Simulator) advanceOneTick(step int) int {
	var seated []int
	for row := 0; row < s.Config.Rows; row++ {
		p := s.Aisle.At(row)
		if p == nil {
			continue
		}
		carrying := p.CarryingLuggage
		if s.Cabin.TrySeat(row, p) {
			s.Aisle.Vacate(row)
			seated = append(seated, p.SeatID)
			s.Metrics.Seated++
		} else if carrying && !p.CarryingLuggage {
			s.Metrics.StowEvents++
		}
	}
	s.Aisle.Advance(s.Config.Rules)
	s.Clock++

	moving := s.Aisle.CountStatus(StatusMoving)
	stalled := s.Aisle.CountStatus(StatusStalled)
	reward := moving - stalled

	s.Metrics.Ticks++
	s.Metrics.MovingPassengerTicks += moving
	s.Metrics.StalledPassengerTicks += stalled
	s.Metrics.PeakAisleOccupancy = max(s.Metrics.PeakAisleOccupancy, s.Aisle.Occupied())
	s.Metrics.PeakQueueLen = max(s.Metrics.PeakQueueLen, s.Aisle.Len())
	logrus.Debugf("[tick %07d] reward=%d moving=%d stalled=%d aisle=%v", s.Clock, reward, moving, stalled, s.Aisle)

	if s.Trace.RecordsTicks() {
		s.Trace.RecordTick(s.tickRecord(step, reward, moving, stalled, seated))
	}
	if s.onTick != nil {
		s.onTick(TickReport{Step: step, Tick: s.Clock, Reward: reward, Moving: moving, Stalled: stalled, Seated: seated})
	}
	return reward
}

func (s *Simulator) tickRecord(step, reward, moving, stalled int, seated []int) trace.TickRecord {
	slots := make([]trace.SlotRecord, 0, s.Aisle.Occupied())
	for i, p := range s.Aisle.Slots {
		if p != nil {
			slots = append(slots, trace.SlotRecord{Position: i, SeatID: p.SeatID, Status: p.Status.String()})
		}
	}
	return trace.TickRecord{
		Tick:    s.Clock,
		Step:    step,
		Reward:  reward,
		Moving:  moving,
		Stalled: stalled,
		Seated:  seated,
		Slots:   slots,
	}
}

// drainLimit bounds the ticks needed to empty the aisle once no releases remain.
// The frontmost passenger always moves, stows or sits, so each passenger is seated
// at most Len()+2 ticks after the one ahead of it.
func (s *Simulator) drainLimit() int {
	return s.Aisle.Occupied()*(s.Aisle.Len()+2) + 1
}

// Clone returns an independent deep copy of the simulation state for what-if
// exploration. The trace and the tick hook are not copied.
func (s *Simulator) Clone() (*Simulator, error) {
	c := &Simulator{
		Config:    s.Config,
		Lobby:     new(WaitingArea),
		Aisle:     new(AisleQueue),
		Cabin:     new(Cabin),
		Clock:     s.Clock,
		StepCount: s.StepCount,
		Metrics:   new(EpisodeMetrics),
	}
	if err := deepcopy.Copy(c.Lobby, s.Lobby); err != nil {
		return nil, fmt.Errorf("cloning waiting area: %w", err)
	}
	if err := deepcopy.Copy(c.Aisle, s.Aisle); err != nil {
		return nil, fmt.Errorf("cloning aisle: %w", err)
	}
	if err := deepcopy.Copy(c.Cabin, s.Cabin); err != nil {
		return nil, fmt.Errorf("cloning cabin: %w", err)
	}
	*c.Metrics = *s.Metrics
	return c, nil
}
