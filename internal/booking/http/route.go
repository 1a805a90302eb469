package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	group := r.Group("/room-booking")
	{
		group.GET("/", h.List)
		group.POST("/", h.Create)
		group.GET("/:id", h.Get)
		group.PATCH("/:id", h.Update)
	}
}
