package http

import (
	"time"

	"github.com/ghxstship/advancing-engine/internal/conflict"
	"github.com/ghxstship/advancing-engine/internal/pkg/request"
)

type ConflictResponse struct {
	ID                   string     `json:"id"`
	ConflictType         string     `json:"conflict_type"`
	Severity             string     `json:"severity"`
	Status               string     `json:"status"`
	EntityID             string     `json:"entity_id"`
	ConflictingEntityID  string     `json:"conflicting_entity_id"`
	ResourceID           string     `json:"resource_id"`
	GroupID              string     `json:"group_id"`
	Description          string     `json:"description"`
	WindowStart          time.Time  `json:"window_start"`
	WindowEnd            time.Time  `json:"window_end"`
	SuggestedResolutions []string   `json:"suggested_resolutions"`
	ResolvedBy           *string    `json:"resolved_by,omitempty"`
	ResolvedAt           *time.Time `json:"resolved_at,omitempty"`
	ResolutionNotes      *string    `json:"resolution_notes,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func NewConflictResponse(c *conflict.Conflict) ConflictResponse {
	return ConflictResponse{
		ID:                   c.ID,
		ConflictType:         string(c.ConflictType),
		Severity:             string(c.Severity),
		Status:               string(c.Status),
		EntityID:             c.EntityID,
		ConflictingEntityID:  c.ConflictingEntityID,
		ResourceID:           c.ResourceID,
		GroupID:              c.GroupID,
		Description:          c.Description,
		WindowStart:          c.WindowStart,
		WindowEnd:            c.WindowEnd,
		SuggestedResolutions: c.SuggestedResolutions,
		ResolvedBy:           c.ResolvedBy,
		ResolvedAt:           c.ResolvedAt,
		ResolutionNotes:      c.ResolutionNotes,
		CreatedAt:            c.CreatedAt,
		UpdatedAt:            c.UpdatedAt,
	}
}

func NewConflictResponses(cs []*conflict.Conflict) []ConflictResponse {
	out := make([]ConflictResponse, len(cs))
	for i, c := range cs {
		out[i] = NewConflictResponse(c)
	}
	return out
}

type DetectBody struct {
	IntervalID string `json:"interval_id" binding:"required,uuid"`
}

type DetectGroupBody struct {
	GroupID string `json:"group_id" binding:"required,uuid"`
}

type ResolutionBody struct {
	Action string `json:"action" binding:"required,oneof=resolve ignore reopen"`
	Notes  string `json:"notes"`
}

type ListConflictsQuery struct {
	request.ListParams
	ResourceID string `form:"resource_id" binding:"omitempty,uuid"`
	GroupID    string `form:"group_id" binding:"omitempty,uuid"`
	EntityID   string `form:"entity_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=open resolved ignored"`
}
