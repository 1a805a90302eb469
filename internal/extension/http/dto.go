package http

import (
	"time"

	"motel-admin-backend/internal/extension"
	"motel-admin-backend/internal/pkg/request"
)

// ListExtensionsRequest defines query parameters for listing a booking's extensions.
type ListExtensionsRequest struct {
	request.ListParams
}

type CreateExtensionBody struct {
	Duration int `json:"duration" binding:"required"`
}

type UpdateExtensionBody struct {
	Duration int `json:"duration" binding:"required"`
}

type ExtensionResponse struct {
	ID             string    `json:"id"`
	RoomBookingID  string    `json:"room_booking"`
	Duration       int       `json:"duration"`
	AdditionalCost string    `json:"additional_cost"`
	AddedAt        time.Time `json:"added_at"`
}

func NewExtensionResponse(e *extension.Extension) ExtensionResponse {
	return ExtensionResponse{
		ID:             e.ID,
		RoomBookingID:  e.RoomBookingID,
		Duration:       e.DurationHours,
		AdditionalCost: e.AdditionalCost.StringFixed(2),
		AddedAt:        e.AddedAt,
	}
}
