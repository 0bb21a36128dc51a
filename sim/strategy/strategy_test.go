package strategy

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/18Prachi/airplane-boarding-simulation/sim"
	"github.com/18Prachi/airplane-boarding-simulation/sim/env"
	"github.com/18Prachi/airplane-boarding-simulation/sim/trace"
)

func releasedRows(t *testing.T, cfg sim.BoardingConfig, s Strategy) ([]int, Outcome) {
	t.Helper()
	e, err := env.New(cfg, env.WithTrace(trace.TraceLevelReleases))
	require.NoError(t, err)
	out, err := Run(e, s)
	require.NoError(t, err)
	rows := make([]int, len(e.Trace().Releases))
	for i, r := range e.Trace().Releases {
		rows[i] = r.Row
	}
	return rows, out
}

func TestNewStrategy_AllNamesBoardEveryone(t *testing.T) {
	for _, name := range ValidStrategyNames() {
		t.Run(name, func(t *testing.T) {
			// GIVEN a 4x3 cabin and a freshly built strategy
			cfg := sim.NewBoardingConfig(4, 3)
			s, err := NewStrategy(name, rand.New(rand.NewSource(7)))
			require.NoError(t, err)
			assert.Equal(t, name, s.Name())

			// WHEN one episode is played
			e, err := env.New(cfg)
			require.NoError(t, err)
			out, err := Run(e, s)
			require.NoError(t, err)

			// THEN every passenger was released exactly once and is seated
			assert.Equal(t, cfg.TotalSeats(), out.Steps)
			assert.True(t, e.Simulator().IsFinished())
			assert.Equal(t, cfg.TotalSeats(), e.Simulator().Cabin.SeatedCount())
			assert.Equal(t, out.Reward, out.Metrics.TotalReward)
			assert.Equal(t, e.Simulator().Clock, out.Ticks)
			assert.NoError(t, e.Simulator().CheckInvariants())
		})
	}
}

func TestNewStrategy_UnknownName(t *testing.T) {
	_, err := NewStrategy("zone-boarding", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zone-boarding")
}

func TestNewStrategy_NilRNGIsUsable(t *testing.T) {
	s, err := NewStrategy(NameRandom, nil)
	require.NoError(t, err)
	e, err := env.New(sim.NewBoardingConfig(2, 2))
	require.NoError(t, err)
	_, err = Run(e, s)
	assert.NoError(t, err)
}

func TestRandom_SameSeedSameEpisode(t *testing.T) {
	// GIVEN two random strategies seeded identically
	cfg := sim.NewBoardingConfig(6, 4)
	pa := sim.NewPartitionedRNG(sim.NewSimulationKey(42))
	pb := sim.NewPartitionedRNG(sim.NewSimulationKey(42))
	a, _ := NewStrategy(NameRandom, pa.ForSubsystem(sim.SubsystemStrategy))
	b, _ := NewStrategy(NameRandom, pb.ForSubsystem(sim.SubsystemStrategy))

	// WHEN each plays one episode
	rowsA, outA := releasedRows(t, cfg, a)
	rowsB, outB := releasedRows(t, cfg, b)

	// THEN the release orders and outcomes are identical
	assert.Equal(t, rowsA, rowsB)
	assert.Equal(t, outA.Steps, outB.Steps)
	assert.Equal(t, outA.Reward, outB.Reward)
	assert.Equal(t, outA.Ticks, outB.Ticks)
}

func TestBackToFront_ReleasesHighestRowFirst(t *testing.T) {
	rows, _ := releasedRows(t, sim.NewBoardingConfig(3, 2), &BackToFront{})
	assert.Equal(t, []int{2, 2, 1, 1, 0, 0}, rows)
}

func TestFrontToBack_ReleasesRowZeroFirst(t *testing.T) {
	rows, _ := releasedRows(t, sim.NewBoardingConfig(3, 2), &FrontToBack{})
	assert.Equal(t, []int{0, 0, 1, 1, 2, 2}, rows)
}

func TestSeatPriority(t *testing.T) {
	tests := []struct {
		seats int
		want  []int
	}{
		{1, []int{0}},
		{2, []int{0, 1}},
		{3, []int{0, 2, 1}},
		{5, []int{0, 4, 1, 3, 2}},
		{6, []int{0, 5, 1, 4, 2, 3}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SeatPriority(tc.seats), "seats=%d", tc.seats)
	}
}

func TestWilmaSequence_WindowsThenAisles(t *testing.T) {
	// GIVEN 2 rows of 3 seats: priority window-left, window-right, middle
	cfg := sim.NewBoardingConfig(2, 3)

	// WHEN the sequence is built
	seq := WilmaSequence(cfg)

	// THEN each seat group visits rows in ascending order
	assert.Equal(t, []int{0, 1, 0, 1, 0, 1}, seq)
}

func TestWilma_FollowsSequenceAndRestartsOnBegin(t *testing.T) {
	cfg := sim.NewBoardingConfig(3, 3)
	w := &Wilma{}

	rows, out := releasedRows(t, cfg, w)
	assert.Equal(t, WilmaSequence(cfg), rows)
	assert.Equal(t, cfg.TotalSeats(), out.Steps)

	// A second episode starts the sequence over.
	again, _ := releasedRows(t, cfg, w)
	assert.Equal(t, rows, again)
}

func TestGreedy_TieGoesToHighestRowAndLeavesStateAlone(t *testing.T) {
	// GIVEN a fresh 2x2 simulator where both rows earn reward 1
	s := sim.NewSimulator(sim.NewBoardingConfig(2, 2))
	before := s.Snapshot()

	// WHEN greedy chooses
	row := Greedy{}.NextRow(s)

	// THEN it picks the highest row and the real simulator is untouched
	assert.Equal(t, 1, row)
	assert.Equal(t, before, s.Snapshot())
}

func TestGreedy_PicksBestImmediateReward(t *testing.T) {
	// GIVEN a 3x1 cabin with row 0 already released
	s := sim.NewSimulator(sim.NewBoardingConfig(3, 1))
	_, err := s.Release(0)
	require.NoError(t, err)

	// WHEN greedy chooses among rows 1 and 2
	row := Greedy{}.NextRow(s)

	// THEN the chosen row's reward is at least every other row's
	best := -1 << 31
	for _, r := range s.ValidRows() {
		c, err := s.Clone()
		require.NoError(t, err)
		reward, err := c.Release(r)
		require.NoError(t, err)
		best = max(best, reward)
	}
	c, err := s.Clone()
	require.NoError(t, err)
	got, err := c.Release(row)
	require.NoError(t, err)
	assert.Equal(t, best, got)
}

func TestRun_ResetsSteppedEnv(t *testing.T) {
	// GIVEN an environment already stepped once
	cfg := sim.NewBoardingConfig(2, 2)
	e, err := env.New(cfg)
	require.NoError(t, err)
	_, _, _, err = e.Step(0)
	require.NoError(t, err)

	// WHEN a strategy runs on it
	out, err := Run(e, &FrontToBack{})

	// THEN the episode started over
	require.NoError(t, err)
	assert.Equal(t, cfg.TotalSeats(), out.Steps)
	assert.Equal(t, cfg.TotalSeats(), e.Simulator().StepCount)
}

type badRow struct{}

func (badRow) Name() string               { return "bad-row" }
func (badRow) Begin(sim.BoardingConfig)   {}
func (badRow) NextRow(*sim.Simulator) int { return -1 }

func TestRun_InvalidRowAborts(t *testing.T) {
	e, err := env.New(sim.NewBoardingConfig(2, 2))
	require.NoError(t, err)

	out, err := Run(e, badRow{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, sim.ErrInvalidAction))
	assert.Equal(t, 0, out.Steps)
	assert.Contains(t, err.Error(), "bad-row")
}
