package http

import (
	"motel-admin-backend/internal/customer"
	"motel-admin-backend/internal/pkg/request"
)

// ListCustomersRequest defines query parameters for listing customers.
type ListCustomersRequest struct {
	request.ListParams
	RoomBookingID string `form:"room_booking" binding:"omitempty,uuid"`
}

type CustomerResponse struct {
	ID            string  `json:"id"`
	RoomBookingID string  `json:"room_booking"`
	Name          string  `json:"name"`
	Age           int     `json:"age"`
	Email         *string `json:"email,omitempty"`
	PhoneNumber   *string `json:"phone_number,omitempty"`
	Gender        string  `json:"gender"`
}

func NewCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID,
		RoomBookingID: c.RoomBookingID,
		Name:          c.Name,
		Age:           c.Age,
		Email:         c.Email,
		PhoneNumber:   c.PhoneNumber,
		Gender:        string(c.Gender),
	}
}
