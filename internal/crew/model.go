package crew

import (
	"net/http"
	"time"

	"github.com/ghxstship/advancing-engine/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "assignment not found")
	ErrInvalidInput     = apperror.New(http.StatusBadRequest, "missing required parameters")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "shift start must be before shift end")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusDeclined  Status = "declined"
)

// Assignment is a crew member's shift on an event. Unlike equipment
// bookings there is no buffer padding and no group exemption: the same
// person cannot work two overlapping shifts, whoever scheduled them.
type Assignment struct {
	ID        string
	PersonID  string
	EventID   string
	Role      string
	StartTime time.Time
	EndTime   time.Time
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShiftConflictError reports the overlapping assignments that blocked a
// create. Maps to 409 at the HTTP boundary.
type ShiftConflictError struct {
	Conflicts []*Assignment
}

func (e *ShiftConflictError) Error() string {
	return "shift overlaps an existing assignment"
}

// DailyStatus values for the derived per-day availability record.
const (
	DailyStatusBooked = "booked"
)
