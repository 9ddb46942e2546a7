package http

import (
	"time"

	"github.com/ghxstship/advancing-engine/internal/schedule"
)

type IntervalResponse struct {
	ID                string     `json:"id"`
	ResourceID        string     `json:"resource_id"`
	GroupID           string     `json:"group_id"`
	NominalTime       time.Time  `json:"nominal_time"`
	BufferBeforeHours *float64   `json:"buffer_before_hours,omitempty"`
	BufferAfterHours  *float64   `json:"buffer_after_hours,omitempty"`
	Status            string     `json:"status"`
	QuantityRequired  *int       `json:"quantity_required,omitempty"`
	QuantityConfirmed *int       `json:"quantity_confirmed,omitempty"`
	ConflictCount     int        `json:"conflict_count"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func NewIntervalResponse(iv *schedule.BookingInterval) IntervalResponse {
	return IntervalResponse{
		ID:                iv.ID,
		ResourceID:        iv.ResourceID,
		GroupID:           iv.GroupID,
		NominalTime:       iv.NominalTime,
		BufferBeforeHours: iv.BufferBeforeHours,
		BufferAfterHours:  iv.BufferAfterHours,
		Status:            string(iv.Status),
		QuantityRequired:  iv.QuantityRequired,
		QuantityConfirmed: iv.QuantityConfirmed,
		ConflictCount:     iv.ConflictCount,
		CreatedAt:         iv.CreatedAt,
		UpdatedAt:         iv.UpdatedAt,
	}
}

func NewIntervalResponses(ivs []*schedule.BookingInterval) []IntervalResponse {
	out := make([]IntervalResponse, len(ivs))
	for i, iv := range ivs {
		out[i] = NewIntervalResponse(iv)
	}
	return out
}

type WindowResponse struct {
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	DurationHours float64   `json:"duration_hours"`
}

type AvailabilityResponse struct {
	Bookings []IntervalResponse `json:"bookings"`
	Windows  []WindowResponse   `json:"availability_windows"`
}

type CheckResponse struct {
	Available bool               `json:"available"`
	Conflicts []IntervalResponse `json:"conflicts"`
}

type CreateIntervalBody struct {
	ResourceID        string    `json:"resource_id" binding:"required,uuid"`
	GroupID           string    `json:"group_id" binding:"required,uuid"`
	NominalTime       time.Time `json:"nominal_time" binding:"required"`
	BufferBeforeHours *float64  `json:"buffer_before_hours" binding:"omitempty,gte=0"`
	BufferAfterHours  *float64  `json:"buffer_after_hours" binding:"omitempty,gte=0"`
	QuantityRequired  *int      `json:"quantity_required" binding:"omitempty,gte=0"`
}

type UpdateStatusBody struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed in_transit delivered complete cancelled returned"`
}

type AvailabilityQuery struct {
	ResourceID     string    `form:"resource_id" binding:"required,uuid"`
	RangeStart     time.Time `form:"range_start" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	RangeEnd       time.Time `form:"range_end" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	ExcludeGroupID string    `form:"exclude_group_id" binding:"omitempty,uuid"`
}

type CheckQuery struct {
	ResourceID     string    `form:"resource_id" binding:"required,uuid"`
	RequestedTime  time.Time `form:"requested_time" binding:"required" time_format:"2006-01-02T15:04:05Z07:00"`
	DurationHours  float64   `form:"duration_hours" binding:"omitempty,gte=0"`
	ExcludeGroupID string    `form:"exclude_group_id" binding:"omitempty,uuid"`
}
