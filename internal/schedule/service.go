package schedule

import (
	"context"
	"strings"
	"time"
)

type CreateRequest struct {
	ResourceID        string
	GroupID           string
	NominalTime       time.Time
	BufferBeforeHours *float64
	BufferAfterHours  *float64
	QuantityRequired  *int
}

// AvailabilityResult is the read-path answer: the live bookings in range
// plus the free windows between their blocks.
type AvailabilityResult struct {
	Bookings []*BookingInterval
	Windows  []AvailabilityWindow
}

// CheckResult answers "can this slot be booked": available iff no expanded
// block of another group intersects the requested span.
type CheckResult struct {
	Available bool
	Conflicts []*BookingInterval
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*BookingInterval, error)
	GetByID(ctx context.Context, id string) (*BookingInterval, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*BookingInterval, error)

	QueryAvailability(ctx context.Context, resourceID string, rangeStart, rangeEnd time.Time, excludeGroupID string) (*AvailabilityResult, error)
	CheckAvailability(ctx context.Context, resourceID string, requestedTime time.Time, durationHours float64, excludeGroupID string) (*CheckResult, error)
}

type service struct {
	repo      Repository
	policy    BufferPolicy
	minWindow time.Duration
}

func NewService(repo Repository, policy BufferPolicy, minWindow time.Duration) Service {
	if minWindow <= 0 {
		minWindow = MinWindow
	}
	return &service{
		repo:      repo,
		policy:    policy,
		minWindow: minWindow,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*BookingInterval, error) {
	if strings.TrimSpace(req.ResourceID) == "" || strings.TrimSpace(req.GroupID) == "" || req.NominalTime.IsZero() {
		return nil, ErrInvalidInput
	}
	if req.BufferBeforeHours != nil && *req.BufferBeforeHours < 0 {
		return nil, ErrInvalidBuffer
	}
	if req.BufferAfterHours != nil && *req.BufferAfterHours < 0 {
		return nil, ErrInvalidBuffer
	}

	iv := &BookingInterval{
		ResourceID:        req.ResourceID,
		GroupID:           req.GroupID,
		NominalTime:       req.NominalTime,
		BufferBeforeHours: req.BufferBeforeHours,
		BufferAfterHours:  req.BufferAfterHours,
		QuantityRequired:  req.QuantityRequired,
		Status:            StatusPending,
	}
	if err := s.repo.Create(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*BookingInterval, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus progresses the fulfillment lifecycle. Detection never calls
// this; status is owned by the delivery workflow.
func (s *service) UpdateStatus(ctx context.Context, id string, status Status) (*BookingInterval, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) QueryAvailability(ctx context.Context, resourceID string, rangeStart, rangeEnd time.Time, excludeGroupID string) (*AvailabilityResult, error) {
	if strings.TrimSpace(resourceID) == "" || rangeStart.IsZero() || rangeEnd.IsZero() {
		return nil, ErrInvalidInput
	}
	if !rangeStart.Before(rangeEnd) {
		return nil, ErrInvalidTimeRange
	}

	bookings, err := s.repo.Query(ctx, Filter{
		ResourceID:     resourceID,
		RangeStart:     rangeStart,
		RangeEnd:       rangeEnd,
		ExcludeGroupID: excludeGroupID,
	})
	if err != nil {
		return nil, err
	}

	blocks := make([]Block, len(bookings))
	for i, b := range bookings {
		blocks[i] = s.policy.Expand(b)
	}

	return &AvailabilityResult{
		Bookings: bookings,
		Windows:  ComputeWindows(blocks, rangeStart, rangeEnd, s.minWindow),
	}, nil
}

func (s *service) CheckAvailability(ctx context.Context, resourceID string, requestedTime time.Time, durationHours float64, excludeGroupID string) (*CheckResult, error) {
	if strings.TrimSpace(resourceID) == "" || requestedTime.IsZero() {
		return nil, ErrInvalidInput
	}
	if durationHours < 0 {
		return nil, ErrInvalidInput
	}

	requested := Block{
		Start: requestedTime,
		End:   requestedTime.Add(hoursToDuration(durationHours)),
	}

	candidates, err := s.repo.OverlapCandidates(ctx, resourceID, requested.Start, requested.End, s.policy, "")
	if err != nil {
		return nil, err
	}

	var conflicts []*BookingInterval
	for _, c := range candidates {
		if excludeGroupID != "" && c.GroupID == excludeGroupID {
			continue
		}
		if s.policy.Expand(c).Overlaps(requested) {
			conflicts = append(conflicts, c)
		}
	}

	return &CheckResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}
