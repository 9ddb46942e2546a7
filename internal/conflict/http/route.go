package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/conflicts")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.POST("/detect", h.Detect)
		group.POST("/detect-group", h.DetectGroup)
		group.POST("/:id/resolution", h.Resolve)
	}
}
