package tracker

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roomtrack.xyz/room-power-service/pkg/common"
	_ "roomtrack.xyz/room-power-service/pkg/testing"
)

func TestCreateReservation(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trk, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	roomID := mustRegisterRoom(t, trk)
	base := time.Now().Truncate(time.Hour).Add(24 * time.Hour)

	second, err := trk.Reservation.Create("owner-1", roomID, base.Add(time.Hour), base.Add(2*time.Hour), "standup", "")
	require.NoError(t, err)
	first, err := trk.Reservation.Create("owner-2", roomID, base, base.Add(time.Hour), "review", "")
	require.NoError(t, err)
	assert.True(t, first.Confirmed)
	assert.True(t, second.Confirmed)

	// Listing comes back ordered by start time, not insertion order.
	reservations, err := trk.Reservation.ListRoomReservations(roomID)
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, first.ID, reservations[0].ID)
	assert.Equal(t, second.ID, reservations[1].ID)
}

func TestCreateReservation_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trk, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	roomID := mustRegisterRoom(t, trk)
	base := time.Now().Truncate(time.Hour).Add(24 * time.Hour)

	// Empty and inverted intervals are rejected before touching the store.
	_, err := trk.Reservation.Create("owner-1", roomID, base, base, "empty", "")
	assert.ErrorIs(t, err, ErrInvalidRange)
	_, err = trk.Reservation.Create("owner-1", roomID, base.Add(time.Hour), base, "inverted", "")
	assert.ErrorIs(t, err, ErrInvalidRange)

	_, err = trk.Reservation.Create("owner-1", 999999, base, base.Add(time.Hour), "nowhere", "")
	assert.ErrorIs(t, err, ErrUnknownRoom)
}

func TestCreateReservation_HalfOpenIntervals(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trk, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	roomID := mustRegisterRoom(t, trk)
	base := time.Now().Truncate(time.Hour).Add(24 * time.Hour)

	_, err := trk.Reservation.Create("owner-1", roomID, base, base.Add(time.Hour), "first", "")
	require.NoError(t, err)

	// Back-to-back booking starting exactly at the previous end never
	// conflicts.
	_, err = trk.Reservation.Create("owner-2", roomID, base.Add(time.Hour), base.Add(2*time.Hour), "second", "")
	require.NoError(t, err)

	// Any true overlap does: containment, partial, and identical ranges.
	_, err = trk.Reservation.Create("owner-3", roomID, base.Add(10*time.Minute), base.Add(20*time.Minute), "inside", "")
	assert.ErrorIs(t, err, ErrBookingConflict)
	_, err = trk.Reservation.Create("owner-3", roomID, base.Add(30*time.Minute), base.Add(90*time.Minute), "straddle", "")
	assert.ErrorIs(t, err, ErrBookingConflict)
	_, err = trk.Reservation.Create("owner-3", roomID, base, base.Add(time.Hour), "duplicate", "")
	assert.ErrorIs(t, err, ErrBookingConflict)

	conflict, err := trk.Reservation.CheckConflict(roomID, base.Add(2*time.Hour), base.Add(3*time.Hour))
	require.NoError(t, err)
	assert.False(t, conflict)
}

func TestHasActiveReservation_Boundaries(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trk, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	roomID := mustRegisterRoom(t, trk)
	start := time.Now().Truncate(time.Hour).Add(24 * time.Hour)
	end := start.Add(time.Hour)

	_, err := trk.Reservation.Create("owner-1", roomID, start, end, "boundary", "")
	require.NoError(t, err)

	check := func(at time.Time) bool {
		active, err := trk.Reservation.HasActiveReservation(roomID, at)
		require.NoError(t, err)
		return active
	}

	// [start, end): covered at the start instant, released exactly at end.
	assert.False(t, check(start.Add(-time.Second)))
	assert.True(t, check(start))
	assert.True(t, check(end.Add(-time.Second)))
	assert.False(t, check(end))
}

func TestCreateReservation_ConcurrentSameSlot(t *testing.T) {
	common.SetTestLoggerNop()

	ctrl, trk, _, _ := GetMockTrackerWithMemorySqliteDialector(t, false, false)
	defer ctrl.Finish()

	roomID := mustRegisterRoom(t, trk)
	start := time.Now().Truncate(time.Hour).Add(24 * time.Hour)
	end := start.Add(time.Hour)

	const writers = 8
	errs := make([]error, writers)

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = trk.Reservation.Create("owner-1", roomID, start, end, "contested", "")
		}(i)
	}
	wg.Wait()

	// First writer wins, everyone else gets the conflict error.
	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrBookingConflict)
		}
	}
	assert.Equal(t, 1, succeeded)

	reservations, err := trk.Reservation.ListRoomReservations(roomID)
	require.NoError(t, err)
	assert.Len(t, reservations, 1)
}
