package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"motel-admin-backend/internal/extension"
	"motel-admin-backend/internal/pkg/response"
)

type Handler struct {
	service extension.Service
}

func NewHandler(service extension.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListForBooking(c *gin.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var req ListExtensionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	extensions, total, err := h.service.ListByBooking(c.Request.Context(), bookingID, req.Page, req.PageSize)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ExtensionResponse, len(extensions))
	for i, e := range extensions {
		items[i] = NewExtensionResponse(e)
	}

	c.JSON(http.StatusOK, response.NewListResponse(c, items, req.Page, req.PageSize, total))
}

func (h *Handler) CreateForBooking(c *gin.Context) {
	bookingID := c.Param("id")
	if _, err := uuid.Parse(bookingID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body CreateExtensionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	e, err := h.service.Create(c.Request.Context(), bookingID, body.Duration)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewExtensionResponse(e))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	e, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewExtensionResponse(e))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateExtensionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	e, err := h.service.UpdateDuration(c.Request.Context(), id, body.Duration)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewExtensionResponse(e))
}
