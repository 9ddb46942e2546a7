package conflict

import (
	"net/http"
	"time"

	"github.com/ghxstship/advancing-engine/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "conflict not found")
	ErrInvalidAction = apperror.New(http.StatusBadRequest, "invalid resolution action")
	ErrDuplicateOpen = apperror.New(http.StatusConflict, "an open conflict already exists for this pair")
)

type Type string

const (
	TypeDoubleBooking Type = "double_booking"
)

type Severity string

const (
	SeverityBlocking Severity = "blocking"
)

type Status string

const (
	StatusOpen     Status = "open"
	StatusResolved Status = "resolved"
	StatusIgnored  Status = "ignored"
)

type Action string

const (
	ActionResolve Action = "resolve"
	ActionIgnore  Action = "ignore"
	ActionReopen  Action = "reopen"
)

// DefaultSuggestedResolutions is the remediation menu attached to a
// double-booking, in presentation order.
var DefaultSuggestedResolutions = []string{
	"substitute_item",
	"reschedule_delivery",
	"sub_rent_from_vendor",
}

// Conflict is a detected, persisted overlap between two booking intervals
// owned by different groups. At most one open record exists per
// (entity, conflicting entity, type) pair.
type Conflict struct {
	ID                   string
	ConflictType         Type
	Severity             Severity
	Status               Status
	EntityID             string // the interval that triggered detection
	ConflictingEntityID  string // the interval it collides with
	ResourceID           string
	GroupID              string // group of the triggering interval
	Description          string
	WindowStart          time.Time
	WindowEnd            time.Time
	SuggestedResolutions []string
	ResolvedBy           *string
	ResolvedAt           *time.Time
	ResolutionNotes      *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Apply runs the resolution state machine:
//
//	open --resolve--> resolved
//	open --ignore--> ignored
//	resolved|ignored --reopen--> open
//
// Resolve and ignore stamp the actor, timestamp, and notes; reopen clears
// them. Any other transition is ErrInvalidAction.
func (c *Conflict) Apply(action Action, actorID, notes string) error {
	switch action {
	case ActionResolve:
		if c.Status != StatusOpen {
			return ErrInvalidAction
		}
		c.Status = StatusResolved
		c.stampResolution(actorID, notes)
	case ActionIgnore:
		if c.Status != StatusOpen {
			return ErrInvalidAction
		}
		if notes == "" {
			notes = "Manually ignored"
		}
		c.Status = StatusIgnored
		c.stampResolution(actorID, notes)
	case ActionReopen:
		if c.Status != StatusResolved && c.Status != StatusIgnored {
			return ErrInvalidAction
		}
		c.Status = StatusOpen
		c.ResolvedBy = nil
		c.ResolvedAt = nil
		c.ResolutionNotes = nil
	default:
		return ErrInvalidAction
	}
	return nil
}

func (c *Conflict) stampResolution(actorID, notes string) {
	now := time.Now().UTC()
	c.ResolvedBy = &actorID
	c.ResolvedAt = &now
	if notes != "" {
		c.ResolutionNotes = &notes
	}
}

// Filter defines parameters for listing conflicts.
type Filter struct {
	ResourceID string
	GroupID    string
	EntityID   string
	Status     string
	Page       int
	PageSize   int
}
