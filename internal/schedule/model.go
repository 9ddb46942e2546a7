package schedule

import (
	"net/http"
	"time"

	"github.com/ghxstship/advancing-engine/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking interval not found")
	ErrInvalidInput     = apperror.New(http.StatusBadRequest, "missing required parameters")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "range start must be before range end")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid interval status")
	ErrInvalidBuffer    = apperror.New(http.StatusBadRequest, "buffer hours must be non-negative")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusInTransit Status = "in_transit"
	StatusDelivered Status = "delivered"
	StatusComplete  Status = "complete"
	StatusCancelled Status = "cancelled"
	StatusReturned  Status = "returned"
)

// VoidStatuses are terminal states that no longer occupy the resource.
// Intervals in these states are excluded from every availability and
// conflict query but never physically deleted.
var VoidStatuses = []Status{StatusCancelled, StatusReturned, StatusComplete}

func (s Status) IsVoid() bool {
	for _, v := range VoidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInTransit, StatusDelivered,
		StatusComplete, StatusCancelled, StatusReturned:
		return true
	}
	return false
}

// BookingInterval is a scheduled occupancy of a resource: an equipment
// delivery or similar advance item, pinned to a nominal instant and padded
// by setup/teardown buffers.
type BookingInterval struct {
	ID          string
	ResourceID  string
	GroupID     string // owning advance/event; overlaps inside one group are legitimate
	NominalTime time.Time

	// Buffer hours around NominalTime. Nil means "use the policy default".
	BufferBeforeHours *float64
	BufferAfterHours  *float64

	Status Status

	// Partial-fulfillment bookkeeping. Informational only; never part
	// of overlap math.
	QuantityRequired  *int
	QuantityConfirmed *int

	// ConflictCount is an advisory cache for UI badges, refreshed by the
	// conflict detector. The Conflict records themselves are authoritative.
	ConflictCount int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for querying booking intervals.
type Filter struct {
	ResourceID     string
	RangeStart     time.Time
	RangeEnd       time.Time
	ExcludeGroupID string
	ExcludeID      string
}

// AvailabilityWindow is a maximal free sub-interval of a queried range.
type AvailabilityWindow struct {
	Start         time.Time
	End           time.Time
	DurationHours float64
}
