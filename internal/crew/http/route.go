package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/crew")
	group.Use(authMiddleware)
	{
		group.GET("/:person_id/conflicts", h.CheckConflict)
		group.POST("/assignments", h.Create)
		group.GET("/assignments/:id", h.Get)
	}
}
