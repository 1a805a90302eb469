package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	group := r.Group("/customer-detail")
	{
		group.GET("/", h.List)
	}
}
