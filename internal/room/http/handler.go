package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motel-admin-backend/internal/pkg/response"
	"motel-admin-backend/internal/room"
)

type Handler struct {
	service room.Service
}

func NewHandler(service room.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListRoomsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter, err := req.ToFilter()
	if err != nil {
		response.Error(c, err)
		return
	}

	rooms, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		items[i] = NewRoomResponse(r)
	}

	c.JSON(http.StatusOK, response.NewListResponse(c, items, req.Page, req.PageSize, total))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRoomBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := room.CreateRequest{
		Code:             body.Code,
		Capacity:         body.Capacity,
		IsAirConditioned: body.IsAirConditioned,
		Status:           room.Status(body.Status),
		PricePerHour:     body.PricePerHour,
		BedDetails:       body.BedDetails,
	}

	r, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewRoomResponse(r))
}

func (h *Handler) Get(c *gin.Context) {
	r, err := h.service.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(r))
}

func (h *Handler) Update(c *gin.Context) {
	var body UpdateRoomBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := room.UpdateRequest{
		Capacity:         body.Capacity,
		IsAirConditioned: body.IsAirConditioned,
		PricePerHour:     body.PricePerHour,
		BedDetails:       body.BedDetails,
	}
	if body.Status != nil {
		status := room.Status(*body.Status)
		req.Status = &status
	}

	r, err := h.service.Update(c.Request.Context(), c.Param("code"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRoomResponse(r))
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("code")); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
