package http

import (
	"time"

	"motel-admin-backend/internal/booking"
	"motel-admin-backend/internal/customer"
	customerHttp "motel-admin-backend/internal/customer/http"
	"motel-admin-backend/internal/pkg/request"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	Status    string     `form:"status" binding:"omitempty,oneof=booked checked_in checked_out cancelled"`
	RoomCode  string     `form:"room_code"`
	StartTime *time.Time `form:"start_time" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime   *time.Time `form:"end_time" time_format:"2006-01-02T15:04:05Z07:00"`
	GuestName string     `form:"guest_name"`
}

// Validate performs custom validation for ListBookingsRequest.
func (r *ListBookingsRequest) Validate() error {
	if r.StartTime != nil && r.EndTime != nil {
		if r.StartTime.After(*r.EndTime) {
			return booking.ErrInvalidTimeRange
		}
	}
	return nil
}

type CustomerDetailBody struct {
	Name        string  `json:"name" binding:"required"`
	Age         int     `json:"age" binding:"required,gt=0"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phone_number"`
	Gender      string  `json:"gender" binding:"required,oneof=male female other"`
}

type CreateBookingBody struct {
	RoomCode        string               `json:"room_code" binding:"required"`
	StartTime       time.Time            `json:"start_time" binding:"required"`
	EndTime         time.Time            `json:"end_time" binding:"required"`
	CustomerDetails []CustomerDetailBody `json:"customer_details" binding:"required,min=1,dive"`
}

// ToCreateRequest maps the body onto the service request.
func (b *CreateBookingBody) ToCreateRequest() booking.CreateRequest {
	customers := make([]customer.Customer, len(b.CustomerDetails))
	for i, cd := range b.CustomerDetails {
		customers[i] = customer.Customer{
			Name:        cd.Name,
			Age:         cd.Age,
			Email:       cd.Email,
			PhoneNumber: cd.PhoneNumber,
			Gender:      customer.Gender(cd.Gender),
		}
	}
	return booking.CreateRequest{
		RoomCode:  b.RoomCode,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Customers: customers,
	}
}

// UpdateBookingBody patches either the status or the reserved interval.
type UpdateBookingBody struct {
	Status    *string    `json:"status" binding:"omitempty,oneof=booked checked_in checked_out cancelled"`
	StartTime *time.Time `json:"start_time"`
	EndTime   *time.Time `json:"end_time"`
}

type BookingResponse struct {
	ID              string                          `json:"id"`
	RoomCode        string                          `json:"room_code"`
	StartTime       time.Time                       `json:"start_time"`
	EndTime         time.Time                       `json:"end_time"`
	OriginalEndTime time.Time                       `json:"original_end_time"`
	Status          string                          `json:"status"`
	TotalPrice      string                          `json:"total_price"`
	BookedAt        time.Time                       `json:"booked_at"`
	CheckedInAt     *time.Time                      `json:"checked_in_at,omitempty"`
	CheckedOutAt    *time.Time                      `json:"checked_out_at,omitempty"`
	CancelledAt     *time.Time                      `json:"cancelled_at,omitempty"`
	CustomerDetails []customerHttp.CustomerResponse `json:"customer_details"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	customers := make([]customerHttp.CustomerResponse, len(b.Customers))
	for i := range b.Customers {
		customers[i] = customerHttp.NewCustomerResponse(&b.Customers[i])
	}

	return BookingResponse{
		ID:              b.ID,
		RoomCode:        b.RoomCode,
		StartTime:       b.StartTime,
		EndTime:         b.EndTime,
		OriginalEndTime: b.OriginalEndTime,
		Status:          string(b.Status),
		TotalPrice:      b.TotalPrice.StringFixed(2),
		BookedAt:        b.BookedAt,
		CheckedInAt:     b.CheckedInAt,
		CheckedOutAt:    b.CheckedOutAt,
		CancelledAt:     b.CancelledAt,
		CustomerDetails: customers,
	}
}
