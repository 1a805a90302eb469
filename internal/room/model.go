package room

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"motel-admin-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "room not found")
	ErrCodeTaken         = apperror.New(http.StatusConflict, "room code already exists")
	ErrHasBookings       = apperror.New(http.StatusConflict, "room has bookings attached")
	ErrEmptyCode         = apperror.New(http.StatusBadRequest, "room code cannot be empty")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "invalid room status")
	ErrNegativePrice     = apperror.New(http.StatusBadRequest, "price per hour must not be negative")
	ErrNegativeBedCount  = apperror.New(http.StatusBadRequest, "bed counts must not be negative")
	ErrInvalidPriceRange = apperror.New(http.StatusBadRequest, "min_price must not exceed max_price")
)

type Status string

const (
	StatusOpen        Status = "open"
	StatusClosed      Status = "closed"
	StatusMaintenance Status = "maintenance"
)

// IsValid reports whether s is a known room status.
func (s Status) IsValid() bool {
	return s == StatusOpen || s == StatusClosed || s == StatusMaintenance
}

// Room is a bookable motel room. Code is the natural key (e.g. R101).
// Only rooms with StatusOpen accept new bookings.
type Room struct {
	Code             string
	Capacity         int
	IsAirConditioned bool
	Status           Status
	PricePerHour     decimal.Decimal
	BedDetails       map[string]int // bed-type label -> count
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Filter defines parameters for listing rooms.
type Filter struct {
	Status   string
	Code     string // substring match
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Page     int
	PageSize int
}
