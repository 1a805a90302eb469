package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	group := r.Group("/time-extension")
	{
		group.GET("/:id", h.Get)
		group.PATCH("/:id", h.Update)
		group.GET("/:id/extensions/", h.ListForBooking)
		group.POST("/:id/extensions/", h.CreateForBooking)
	}
}
