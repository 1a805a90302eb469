package customer

import (
	"net/http"

	"motel-admin-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "customer not found")
	ErrEmptyName     = apperror.New(http.StatusBadRequest, "customer name cannot be empty")
	ErrInvalidAge    = apperror.New(http.StatusBadRequest, "customer age must be positive")
	ErrInvalidGender = apperror.New(http.StatusBadRequest, "invalid customer gender")
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// IsValid reports whether g is a known gender value.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// Customer is a guest snapshot attached to a booking at creation time.
// Customers are only created through bookings and are never removed while
// the booking exists.
type Customer struct {
	ID            string
	RoomBookingID string
	Name          string
	Age           int
	Email         *string
	PhoneNumber   *string
	Gender        Gender
}

// Validate checks the snapshot fields shared by every creation path.
func (c Customer) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if c.Age <= 0 {
		return ErrInvalidAge
	}
	if !c.Gender.IsValid() {
		return ErrInvalidGender
	}
	return nil
}

// Filter defines parameters for listing customers.
type Filter struct {
	RoomBookingID string
	Page          int
	PageSize      int
}
