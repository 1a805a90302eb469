package booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(status Status) Booking {
	booked := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return Booking{
		ID:               "b-1",
		RoomCode:         "R101",
		RoomPricePerHour: decimal.RequireFromString("10.00"),
		StartTime:        time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		EndTime:          time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		OriginalEndTime:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		Status:           status,
		TotalPrice:       decimal.RequireFromString("20.00"),
		BookedAt:         booked,
	}
}

func TestTransitionTable(t *testing.T) {
	all := []Status{StatusBooked, StatusCheckedIn, StatusCheckedOut, StatusCancelled}

	legal := map[Status][]Status{
		StatusBooked:    {StatusCheckedIn, StatusCancelled},
		StatusCheckedIn: {StatusCheckedOut, StatusCancelled},
	}

	now := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, next := range legal[from] {
				if next == to {
					want = true
				}
			}

			got, err := Transition(snapshot(from), to, now)
			if want {
				require.NoError(t, err, "%s -> %s should be allowed", from, to)
				assert.Equal(t, to, got.Status)
			} else {
				require.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s should be rejected", from, to)
				assert.Equal(t, from, got.Status, "rejected transition must not change the snapshot")
			}
		}
	}
}

func TestTransitionSetsOnlyItsTimestamp(t *testing.T) {
	now := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)

	checkedIn, err := Transition(snapshot(StatusBooked), StatusCheckedIn, now)
	require.NoError(t, err)
	require.NotNil(t, checkedIn.CheckedInAt)
	assert.Equal(t, now, *checkedIn.CheckedInAt)
	assert.Nil(t, checkedIn.CheckedOutAt)
	assert.Nil(t, checkedIn.CancelledAt)

	later := now.Add(time.Hour)
	checkedOut, err := Transition(checkedIn, StatusCheckedOut, later)
	require.NoError(t, err)
	require.NotNil(t, checkedOut.CheckedOutAt)
	assert.Equal(t, later, *checkedOut.CheckedOutAt)
	assert.Equal(t, now, *checkedOut.CheckedInAt, "earlier timestamps survive")

	cancelled, err := Transition(snapshot(StatusBooked), StatusCancelled, now)
	require.NoError(t, err)
	require.NotNil(t, cancelled.CancelledAt)
	assert.Nil(t, cancelled.CheckedInAt)
}

func TestTransitionLeavesOtherFieldsUntouched(t *testing.T) {
	in := snapshot(StatusBooked)
	now := time.Date(2024, 1, 1, 11, 0, 0, 0, time.UTC)

	out, err := Transition(in, StatusCheckedIn, now)
	require.NoError(t, err)

	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.RoomCode, out.RoomCode)
	assert.Equal(t, in.StartTime, out.StartTime)
	assert.Equal(t, in.EndTime, out.EndTime)
	assert.Equal(t, in.OriginalEndTime, out.OriginalEndTime)
	assert.True(t, in.TotalPrice.Equal(out.TotalPrice))
	assert.Equal(t, in.BookedAt, out.BookedAt)

	// Value semantics: the caller's snapshot is not mutated.
	assert.Equal(t, StatusBooked, in.Status)
	assert.Nil(t, in.CheckedInAt)
}

func TestTransitionTerminalStates(t *testing.T) {
	now := time.Now().UTC()
	all := []Status{StatusBooked, StatusCheckedIn, StatusCheckedOut, StatusCancelled}

	for _, terminal := range []Status{StatusCheckedOut, StatusCancelled} {
		for _, target := range all {
			_, err := Transition(snapshot(terminal), target, now)
			assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", terminal, target)
		}
	}
}

func TestTransitionCheckedOutRequiresCheckedIn(t *testing.T) {
	_, err := Transition(snapshot(StatusBooked), StatusCheckedOut, time.Now().UTC())
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionUnknownStatus(t *testing.T) {
	_, err := Transition(snapshot(StatusBooked), Status("upgraded"), time.Now().UTC())
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestCanExtend(t *testing.T) {
	assert.True(t, CanExtend(StatusBooked))
	assert.True(t, CanExtend(StatusCheckedIn))
	assert.False(t, CanExtend(StatusCheckedOut))
	assert.False(t, CanExtend(StatusCancelled))
}
