package env

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/18Prachi/airplane-boarding-simulation/sim"
	"github.com/18Prachi/airplane-boarding-simulation/sim/trace"
)

type recordingObserver struct {
	frames []Frame
	closed bool
	err    error
}

func (r *recordingObserver) Observe(f Frame) { r.frames = append(r.frames, f) }
func (r *recordingObserver) Close() error {
	r.closed = true
	return r.err
}

func TestEnv_Reset_EmptyObservation(t *testing.T) {
	// GIVEN a fresh 10x5 environment
	e, err := New(sim.NewBoardingConfig(10, 5))
	require.NoError(t, err)

	// WHEN reset
	obs := e.Reset()

	// THEN every position is the -1 sentinel and every row is a valid action
	assert.Len(t, obs, e.ObservationSize())
	assert.Equal(t, 2*(10+50), e.ObservationSize())
	for i, v := range obs {
		if v != -1 {
			t.Fatalf("obs[%d] = %d, want -1", i, v)
		}
	}
	for row, ok := range e.ActionMask() {
		assert.True(t, ok, "row %d", row)
	}
	assert.Equal(t, 10, e.NumActions())
}

func TestEnv_Step_EncodesSeatAndStatus(t *testing.T) {
	e, err := New(sim.NewBoardingConfig(2, 2))
	require.NoError(t, err)

	obs, reward, terminated, err := e.Step(1)

	require.NoError(t, err)
	assert.Equal(t, 1, reward)
	assert.False(t, terminated)
	// slot 0 empty, slot 1 holds P03 moving
	assert.Equal(t, []int32{-1, -1, 3, int32(sim.StatusMoving)}, obs[:4])
}

func TestEnv_Step_InvalidActionReturnsError(t *testing.T) {
	e, err := New(sim.NewBoardingConfig(2, 1))
	require.NoError(t, err)
	_, _, _, err = e.Step(0)
	require.NoError(t, err)
	before := e.Observation()

	obs, reward, terminated, err := e.Step(0)

	assert.True(t, errors.Is(err, sim.ErrInvalidAction))
	assert.Equal(t, 0, reward)
	assert.False(t, terminated)
	assert.Equal(t, before, obs)
	assert.Equal(t, []bool{false, true}, e.ActionMask())
}

func TestEnv_Observers_SeeResetAndEveryTick(t *testing.T) {
	// GIVEN an observer on a 2x2 environment
	rec := &recordingObserver{}
	e, err := New(sim.NewBoardingConfig(2, 2), WithObserver(rec))
	require.NoError(t, err)

	// WHEN the episode is played to the end
	terminated := false
	for _, row := range []int{1, 0, 0, 1} {
		_, _, terminated, err = e.Step(row)
		require.NoError(t, err)
	}
	require.True(t, terminated)

	// THEN the observer saw the reset frame plus one frame per tick
	require.Len(t, rec.frames, 1+e.Simulator().Clock)
	assert.Equal(t, 0, rec.frames[0].Tick)
	last := rec.frames[len(rec.frames)-1]
	assert.True(t, last.Terminated)
	assert.True(t, last.Snapshot.Finished)
	assert.Equal(t, e.Simulator().Clock, last.Tick)

	// AND Close reaches the observer
	require.NoError(t, e.Close())
	assert.True(t, rec.closed)
}

func TestEnv_Close_JoinsObserverErrors(t *testing.T) {
	boom := errors.New("boom")
	e, err := New(sim.NewBoardingConfig(1, 1), WithObserver(&recordingObserver{err: boom}), WithObserver(ObserverFunc(func(Frame) {})))
	require.NoError(t, err)

	assert.ErrorIs(t, e.Close(), boom)
}

func TestEnv_Reset_StartsNewEpisodeWithTrace(t *testing.T) {
	e, err := New(sim.NewBoardingConfig(2, 1), WithTrace(trace.TraceLevelReleases))
	require.NoError(t, err)
	_, _, _, err = e.Step(1)
	require.NoError(t, err)
	require.Len(t, e.Trace().Releases, 1)

	e.Reset()

	assert.Empty(t, e.Trace().Releases)
	assert.Equal(t, 0, e.Simulator().Clock)
	assert.Equal(t, []bool{true, true}, e.ActionMask())
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(sim.NewBoardingConfig(0, 1))
	assert.Error(t, err)

	_, err = New(sim.NewBoardingConfig(1, 1), WithTrace("verbose"))
	assert.Error(t, err)
}
