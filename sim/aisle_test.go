package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// aisleOf builds a queue for rows rows whose slots hold the given passengers (nil = empty).
func aisleOf(rows int, slots ...*Passenger) *AisleQueue {
	aq := NewAisleQueue(rows)
	copy(aq.Slots, slots)
	if len(slots) > rows {
		aq.Slots = append(aq.Slots, slots[rows:]...)
	}
	return aq
}

func passengerAt(seatID int, status PassengerStatus) *Passenger {
	return &Passenger{SeatID: seatID, HomeRow: 0, CarryingLuggage: true, Status: status}
}

func TestAisleQueue_Advance_Snapshot_NoFollowThrough(t *testing.T) {
	// GIVEN [--- --- A B] with two in-cabin rows
	a := passengerAt(0, StatusMoving)
	b := passengerAt(1, StatusMoving)
	aq := aisleOf(2, nil, nil, a, b)

	// WHEN the aisle advances against the pre-tick snapshot
	aq.Advance(Rules{})

	// THEN A moves one slot and B stalls behind A's old slot
	assert.Equal(t, "[--- P00:MOVING --- P01:STALLED]", aq.String())
}

func TestAisleQueue_Advance_Sequential_FollowsThrough(t *testing.T) {
	// GIVEN the same queue under the sequential rule
	a := passengerAt(0, StatusMoving)
	b := passengerAt(1, StatusMoving)
	aq := aisleOf(2, nil, nil, a, b)

	// WHEN the aisle advances in place
	aq.Advance(Rules{Advance: AdvanceSequential})

	// THEN B steps into the slot A vacated and the empty tail slot is trimmed
	assert.Equal(t, "[--- P00:MOVING P01:MOVING]", aq.String())
}

func TestAisleQueue_Advance_CompactClosesTailGaps(t *testing.T) {
	a := passengerAt(0, StatusMoving)
	b := passengerAt(1, StatusMoving)
	aq := aisleOf(2, nil, nil, a, b)

	aq.Advance(Rules{TailTrim: TrimCompact})

	// B stalled, but the gap in front of it is removed from the tail
	assert.Equal(t, "[--- P00:MOVING P01:STALLED]", aq.String())
	assert.Equal(t, 3, aq.Len())
}

func TestAisleQueue_Advance_StowingBlocksFollower(t *testing.T) {
	// GIVEN a stowing passenger at slot 1 with a follower at slot 2
	stower := passengerAt(0, StatusStowing)
	follower := passengerAt(1, StatusMoving)
	aq := aisleOf(3, nil, stower, follower)

	aq.Advance(Rules{})

	// THEN the stower neither moves nor stalls, the follower stalls
	assert.Equal(t, StatusStowing, stower.Status)
	assert.Equal(t, StatusStalled, follower.Status)
	assert.Same(t, stower, aq.At(1))
	assert.Same(t, follower, aq.At(2))
}

func TestAisleQueue_Advance_StalledResumes(t *testing.T) {
	p := passengerAt(0, StatusStalled)
	aq := aisleOf(3, nil, nil, p)

	aq.Advance(Rules{})

	assert.Equal(t, StatusMoving, p.Status)
	assert.Same(t, p, aq.At(1))
}

func TestAisleQueue_Advance_SlotZeroNeverMoves(t *testing.T) {
	p := passengerAt(0, StatusMoving)
	aq := aisleOf(2, p)

	aq.Advance(Rules{})

	assert.Same(t, p, aq.At(0))
	assert.Equal(t, StatusMoving, p.Status)
}

func TestAisleQueue_Advance_TrimsOnlyBeyondPrefix(t *testing.T) {
	// GIVEN an aisle whose tail has trailing empties
	aq := aisleOf(3, nil, nil, nil, nil, nil)
	assert.Equal(t, 5, aq.Len())

	aq.Advance(Rules{})

	// THEN the in-cabin prefix survives as empty slots
	assert.Equal(t, 3, aq.Len())
	assert.False(t, aq.IsOnboarding())
}

func TestAisleQueue_Advance_SeatedInQueuePanics(t *testing.T) {
	aq := aisleOf(2, nil, passengerAt(0, StatusSeated))
	assert.Panics(t, func() { aq.Advance(Rules{}) })
}

func TestAisleQueue_Counts(t *testing.T) {
	aq := aisleOf(2, passengerAt(0, StatusStowing), nil, passengerAt(1, StatusStalled), passengerAt(2, StatusMoving))

	assert.Equal(t, 3, aq.Occupied())
	assert.Equal(t, 1, aq.CountStatus(StatusMoving))
	assert.Equal(t, 1, aq.CountStatus(StatusStalled))
	assert.Equal(t, 1, aq.CountStatus(StatusStowing))
	assert.Nil(t, aq.At(-1))
	assert.Nil(t, aq.At(10))
}
