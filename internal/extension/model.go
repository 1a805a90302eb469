package extension

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"motel-admin-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "time extension not found")
	ErrInvalidDuration = apperror.New(http.StatusBadRequest, "extension duration must be a positive number of hours")
)

// Extension adds hours to a booking's end time for an additional cost.
// Applying one advances the parent's end_time and total_price but never its
// original_end_time.
type Extension struct {
	ID             string
	RoomBookingID  string
	DurationHours  int
	AdditionalCost decimal.Decimal
	AddedAt        time.Time
}
