package crew

import (
	"context"
	"strings"
	"time"
)

type CreateRequest struct {
	PersonID  string
	EventID   string
	Role      string
	StartTime time.Time
	EndTime   time.Time
}

type Service interface {
	// CheckShiftConflict returns the person's assignments that strictly
	// overlap [shiftStart, shiftEnd). Back-to-back shifts (one ends exactly
	// when the next starts) do not conflict.
	CheckShiftConflict(ctx context.Context, personID string, shiftStart, shiftEnd time.Time, excludeAssignmentID string) ([]*Assignment, error)

	// Create rejects the assignment with a ShiftConflictError when any
	// overlap exists; on success it also upserts the person's daily
	// availability record for the shift date.
	Create(ctx context.Context, req CreateRequest) (*Assignment, error)

	GetByID(ctx context.Context, id string) (*Assignment, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CheckShiftConflict(ctx context.Context, personID string, shiftStart, shiftEnd time.Time, excludeAssignmentID string) ([]*Assignment, error) {
	if strings.TrimSpace(personID) == "" || shiftStart.IsZero() || shiftEnd.IsZero() {
		return nil, ErrInvalidInput
	}
	if !shiftStart.Before(shiftEnd) {
		return nil, ErrInvalidTimeRange
	}

	candidates, err := s.repo.ListOverlapping(ctx, personID, shiftStart, shiftEnd, excludeAssignmentID)
	if err != nil {
		return nil, err
	}

	// The SQL filter is inclusive; re-test with strict inequality so a
	// shift ending exactly at the new start is not a conflict.
	conflicts := []*Assignment{}
	for _, a := range candidates {
		if a.StartTime.Before(shiftEnd) && a.EndTime.After(shiftStart) {
			conflicts = append(conflicts, a)
		}
	}
	return conflicts, nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Assignment, error) {
	if strings.TrimSpace(req.PersonID) == "" || strings.TrimSpace(req.EventID) == "" {
		return nil, ErrInvalidInput
	}

	conflicts, err := s.CheckShiftConflict(ctx, req.PersonID, req.StartTime, req.EndTime, "")
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, &ShiftConflictError{Conflicts: conflicts}
	}

	a := &Assignment{
		PersonID:  req.PersonID,
		EventID:   req.EventID,
		Role:      req.Role,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    StatusConfirmed,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	// Derived roster denormalization; advisory only, never conflict-checked.
	day := time.Date(
		req.StartTime.Year(), req.StartTime.Month(), req.StartTime.Day(),
		0, 0, 0, 0, time.UTC,
	)
	if err := s.repo.UpsertDailyAvailability(ctx, req.PersonID, day, DailyStatusBooked); err != nil {
		return nil, err
	}

	return a, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Assignment, error) {
	return s.repo.GetByID(ctx, id)
}
