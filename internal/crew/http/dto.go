package http

import (
	"time"

	"github.com/ghxstship/advancing-engine/internal/crew"
)

type AssignmentResponse struct {
	ID        string    `json:"id"`
	PersonID  string    `json:"person_id"`
	EventID   string    `json:"event_id"`
	Role      string    `json:"role,omitempty"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewAssignmentResponse(a *crew.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:        a.ID,
		PersonID:  a.PersonID,
		EventID:   a.EventID,
		Role:      a.Role,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Status:    string(a.Status),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func NewAssignmentResponses(as []*crew.Assignment) []AssignmentResponse {
	out := make([]AssignmentResponse, len(as))
	for i, a := range as {
		out[i] = NewAssignmentResponse(a)
	}
	return out
}

type CreateAssignmentBody struct {
	PersonID  string    `json:"person_id" binding:"required,uuid"`
	EventID   string    `json:"event_id" binding:"required,uuid"`
	Role      string    `json:"role"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type ShiftConflictQuery struct {
	ShiftStart          time.Time `form:"shift_start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	ShiftEnd            time.Time `form:"shift_end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	ExcludeAssignmentID string    `form:"exclude_assignment_id" binding:"omitempty,uuid"`
}
