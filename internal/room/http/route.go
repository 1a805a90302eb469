package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, h *Handler) {
	group := r.Group("/room")
	{
		group.GET("/", h.List)
		group.POST("/", h.Create)
		group.GET("/:code", h.Get)
		group.PATCH("/:code", h.Update)
		group.DELETE("/:code", h.Delete)
	}
}
