package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ghxstship/advancing-engine/internal/crew"
	"github.com/ghxstship/advancing-engine/internal/pkg/response"
)

type Handler struct {
	service crew.Service
}

func NewHandler(service crew.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CheckConflict(c *gin.Context) {
	personID := c.Param("person_id")
	if _, err := uuid.Parse(personID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var q ShiftConflictQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	conflicts, err := h.service.CheckShiftConflict(c.Request.Context(), personID, q.ShiftStart, q.ShiftEnd, q.ExcludeAssignmentID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conflicts": NewAssignmentResponses(conflicts)})
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateAssignmentBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	a, err := h.service.Create(c.Request.Context(), crew.CreateRequest{
		PersonID:  body.PersonID,
		EventID:   body.EventID,
		Role:      body.Role,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	})
	if err != nil {
		var shiftErr *crew.ShiftConflictError
		if errors.As(err, &shiftErr) {
			c.JSON(http.StatusConflict, gin.H{
				"error":     shiftErr.Error(),
				"conflicts": NewAssignmentResponses(shiftErr.Conflicts),
			})
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewAssignmentResponse(a))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAssignmentResponse(a))
}
