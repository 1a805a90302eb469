package http

import (
	"time"

	"github.com/shopspring/decimal"

	"motel-admin-backend/internal/pkg/request"
	"motel-admin-backend/internal/room"
)

// ListRoomsRequest defines query parameters for listing rooms.
type ListRoomsRequest struct {
	request.ListParams
	Status   string `form:"status" binding:"omitempty,oneof=open closed maintenance"`
	Code     string `form:"code"`
	MinPrice string `form:"min_price"`
	MaxPrice string `form:"max_price"`
}

// ToFilter converts the bound query into a room.Filter, parsing the decimal
// price bounds. Monetary values travel as decimal strings.
func (r *ListRoomsRequest) ToFilter() (room.Filter, error) {
	r.Normalize()

	filter := room.Filter{
		Status:   r.Status,
		Code:     r.Code,
		Page:     r.Page,
		PageSize: r.PageSize,
	}

	if r.MinPrice != "" {
		v, err := decimal.NewFromString(r.MinPrice)
		if err != nil {
			return room.Filter{}, err
		}
		filter.MinPrice = &v
	}
	if r.MaxPrice != "" {
		v, err := decimal.NewFromString(r.MaxPrice)
		if err != nil {
			return room.Filter{}, err
		}
		filter.MaxPrice = &v
	}

	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return room.Filter{}, room.ErrInvalidPriceRange
	}

	return filter, nil
}

type CreateRoomBody struct {
	Code             string          `json:"code" binding:"required"`
	Capacity         int             `json:"capacity" binding:"required,gt=0"`
	IsAirConditioned bool            `json:"is_air_conditioned"`
	Status           string          `json:"status" binding:"omitempty,oneof=open closed maintenance"`
	PricePerHour     decimal.Decimal `json:"price_per_hour" binding:"required"`
	BedDetails       map[string]int  `json:"bed_details"`
}

type UpdateRoomBody struct {
	Capacity         *int             `json:"capacity" binding:"omitempty,gt=0"`
	IsAirConditioned *bool            `json:"is_air_conditioned"`
	Status           *string          `json:"status" binding:"omitempty,oneof=open closed maintenance"`
	PricePerHour     *decimal.Decimal `json:"price_per_hour"`
	BedDetails       map[string]int   `json:"bed_details"`
}

type RoomResponse struct {
	Code             string         `json:"code"`
	Capacity         int            `json:"capacity"`
	IsAirConditioned bool           `json:"is_air_conditioned"`
	Status           string         `json:"status"`
	PricePerHour     string         `json:"price_per_hour"`
	BedDetails       map[string]int `json:"bed_details"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

func NewRoomResponse(r *room.Room) RoomResponse {
	return RoomResponse{
		Code:             r.Code,
		Capacity:         r.Capacity,
		IsAirConditioned: r.IsAirConditioned,
		Status:           string(r.Status),
		PricePerHour:     r.PricePerHour.StringFixed(2),
		BedDetails:       r.BedDetails,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}
