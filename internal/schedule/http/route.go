package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	availability := g.Group("/availability")
	availability.Use(authMiddleware)
	{
		availability.GET("", h.QueryAvailability)
		availability.GET("/check", h.CheckAvailability)
	}

	intervals := g.Group("/intervals")
	intervals.Use(authMiddleware)
	{
		intervals.POST("", h.Create)
		intervals.GET("/:id", h.Get)
		intervals.PATCH("/:id/status", h.UpdateStatus)
	}
}
