package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"motel-admin-backend/internal/customer"
	"motel-admin-backend/internal/pkg/response"
)

type Handler struct {
	service customer.Service
}

func NewHandler(service customer.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListCustomersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}
	req.Normalize()

	filter := customer.Filter{
		RoomBookingID: req.RoomBookingID,
		Page:          req.Page,
		PageSize:      req.PageSize,
	}

	customers, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]CustomerResponse, len(customers))
	for i, cu := range customers {
		items[i] = NewCustomerResponse(cu)
	}

	c.JSON(http.StatusOK, response.NewListResponse(c, items, req.Page, req.PageSize, total))
}
