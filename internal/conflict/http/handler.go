package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ghxstship/advancing-engine/internal/auth"
	"github.com/ghxstship/advancing-engine/internal/conflict"
	"github.com/ghxstship/advancing-engine/internal/pkg/response"
)

type Handler struct {
	service conflict.Service
}

func NewHandler(service conflict.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Detect(c *gin.Context) {
	var body DetectBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	conflicts, err := h.service.DetectForInterval(c.Request.Context(), body.IntervalID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conflicts": NewConflictResponses(conflicts)})
}

func (h *Handler) DetectGroup(c *gin.Context) {
	var body DetectGroupBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	conflicts, err := h.service.DetectForGroup(c.Request.Context(), body.GroupID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conflicts": NewConflictResponses(conflicts)})
}

func (h *Handler) Resolve(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body ResolutionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	actorID := auth.GetUserID(c)

	resolved, err := h.service.Resolve(c.Request.Context(), id, conflict.Action(body.Action), actorID, body.Notes)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewConflictResponse(resolved))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	found, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewConflictResponse(found))
}

func (h *Handler) List(c *gin.Context) {
	var q ListConflictsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	page, pageSize := q.Normalize()

	conflicts, total, err := h.service.List(c.Request.Context(), conflict.Filter{
		ResourceID: q.ResourceID,
		GroupID:    q.GroupID,
		EntityID:   q.EntityID,
		Status:     q.Status,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, response.NewPageResponse(NewConflictResponses(conflicts), page, pageSize, total))
}
