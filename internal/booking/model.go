package booking

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"motel-admin-backend/internal/customer"
	"motel-admin-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrRoomNotFound      = apperror.New(http.StatusNotFound, "room not found")
	ErrRoomNotOpen       = apperror.New(http.StatusConflict, "room is not open for booking")
	ErrTimeConflict      = apperror.New(http.StatusConflict, "room already booked for this time")
	ErrInvalidTimeRange  = apperror.New(http.StatusBadRequest, "end time must be after start time")
	ErrNoCustomers       = apperror.New(http.StatusBadRequest, "booking requires at least one customer")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidTransition = apperror.New(http.StatusConflict, "booking status transition not allowed")
	ErrInvalidExtension  = apperror.New(http.StatusConflict, "booking can no longer be extended")
	ErrConflict          = apperror.New(http.StatusConflict, "booking was changed concurrently, please refetch")
	ErrNotReschedulable  = apperror.New(http.StatusConflict, "booking times can only change while still booked")
	ErrHasExtensions     = apperror.New(http.StatusConflict, "booking times cannot change after an extension")
	ErrMixedUpdate       = apperror.New(http.StatusBadRequest, "update either status or times, not both")
	ErrEmptyUpdate       = apperror.New(http.StatusBadRequest, "update requires a status or new times")
)

type Status string

const (
	StatusBooked     Status = "booked"
	StatusCheckedIn  Status = "checked_in"
	StatusCheckedOut Status = "checked_out"
	StatusCancelled  Status = "cancelled"
)

// IsValid reports whether s is a known booking status.
func (s Status) IsValid() bool {
	switch s {
	case StatusBooked, StatusCheckedIn, StatusCheckedOut, StatusCancelled:
		return true
	}
	return false
}

// Booking reserves a room for a time interval on behalf of one or more
// customers. OriginalEndTime is the end time at creation and is never moved
// by extensions; extensions advance EndTime only, so the total price stays
// derivable as rate * hours(start, original end) + sum of extension costs.
type Booking struct {
	ID               string
	RoomCode         string
	RoomPricePerHour decimal.Decimal
	StartTime        time.Time
	EndTime          time.Time
	OriginalEndTime  time.Time
	Status           Status
	TotalPrice       decimal.Decimal
	BookedAt         time.Time
	CheckedInAt      *time.Time
	CheckedOutAt     *time.Time
	CancelledAt      *time.Time
	Customers        []customer.Customer
}

// Filter defines parameters for listing bookings.
type Filter struct {
	Status    string
	RoomCode  string
	StartTime *time.Time // keep bookings still running at this time
	EndTime   *time.Time // keep bookings started by this time
	GuestName string     // substring match against attached customer names
	Page      int
	PageSize  int
}
