package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ghxstship/advancing-engine/internal/pkg/response"
	"github.com/ghxstship/advancing-engine/internal/schedule"
)

type Handler struct {
	service schedule.Service
}

func NewHandler(service schedule.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) QueryAvailability(c *gin.Context) {
	var q AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	result, err := h.service.QueryAvailability(c.Request.Context(), q.ResourceID, q.RangeStart, q.RangeEnd, q.ExcludeGroupID)
	if err != nil {
		response.Error(c, err)
		return
	}

	windows := make([]WindowResponse, len(result.Windows))
	for i, w := range result.Windows {
		windows[i] = WindowResponse{Start: w.Start, End: w.End, DurationHours: w.DurationHours}
	}

	c.JSON(http.StatusOK, AvailabilityResponse{
		Bookings: NewIntervalResponses(result.Bookings),
		Windows:  windows,
	})
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	var q CheckQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	result, err := h.service.CheckAvailability(c.Request.Context(), q.ResourceID, q.RequestedTime, q.DurationHours, q.ExcludeGroupID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, CheckResponse{
		Available: result.Available,
		Conflicts: NewIntervalResponses(result.Conflicts),
	})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateIntervalBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	iv, err := h.service.Create(c.Request.Context(), schedule.CreateRequest{
		ResourceID:        body.ResourceID,
		GroupID:           body.GroupID,
		NominalTime:       body.NominalTime,
		BufferBeforeHours: body.BufferBeforeHours,
		BufferAfterHours:  body.BufferAfterHours,
		QuantityRequired:  body.QuantityRequired,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewIntervalResponse(iv))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	iv, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewIntervalResponse(iv))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateStatusBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	iv, err := h.service.UpdateStatus(c.Request.Context(), id, schedule.Status(body.Status))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewIntervalResponse(iv))
}
