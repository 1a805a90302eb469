package booking

import (
	"time"
)

// The booking lifecycle is a four-state machine with no cycles:
//
//	booked -> checked_in -> checked_out
//	booked -> cancelled
//	checked_in -> cancelled
//
// checked_out and cancelled are terminal. Every transition writes exactly
// one timestamp; a booking can never reach checked_out without checked_in_at
// because the only path there runs through checked_in.
var transitions = map[Status][]Status{
	StatusBooked:    {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut, StatusCancelled},
}

// CanTransition reports whether from -> to is a legal lifecycle step.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition returns a copy of b moved to target with the corresponding
// timestamp set to now. All other fields are unchanged. Illegal pairs,
// including self-transitions and anything out of a terminal state, return
// ErrInvalidTransition and leave the input untouched: the caller either gets
// the full transition or nothing.
//
// This is a pure function over the snapshot; the repository enforces the same
// precondition against the stored row so concurrent transitions cannot race.
func Transition(b Booking, target Status, now time.Time) (Booking, error) {
	if !target.IsValid() {
		return b, ErrInvalidStatus
	}
	if !CanTransition(b.Status, target) {
		return b, ErrInvalidTransition
	}

	b.Status = target
	switch target {
	case StatusCheckedIn:
		b.CheckedInAt = &now
	case StatusCheckedOut:
		b.CheckedOutAt = &now
	case StatusCancelled:
		b.CancelledAt = &now
	}
	return b, nil
}

// CanExtend reports whether a booking in status s may receive a time
// extension. Adding hours to a checked-out or cancelled stay is meaningless.
func CanExtend(s Status) bool {
	return s == StatusBooked || s == StatusCheckedIn
}

// ExtendableStatuses lists the statuses in which extensions apply; repositories
// use it as the compare-and-swap condition when mutating the parent booking.
func ExtendableStatuses() []Status {
	return []Status{StatusBooked, StatusCheckedIn}
}

// timestampColumn maps a transition target to the column it writes.
func timestampColumn(target Status) string {
	switch target {
	case StatusCheckedIn:
		return "checked_in_at"
	case StatusCheckedOut:
		return "checked_out_at"
	case StatusCancelled:
		return "cancelled_at"
	}
	return ""
}
