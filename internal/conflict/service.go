package conflict

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ghxstship/advancing-engine/internal/schedule"
)

type Service interface {
	// DetectForInterval finds every blocking overlap between the interval
	// and intervals of other groups on the same resource, persisting a
	// Conflict for each pair that lacks one. Re-running detection is
	// idempotent: pairs that already have an open record are reported but
	// not re-inserted.
	DetectForInterval(ctx context.Context, intervalID string) ([]*Conflict, error)

	// DetectForGroup runs detection over every live interval of a group
	// and refreshes the group's advisory conflict counter.
	DetectForGroup(ctx context.Context, groupID string) ([]*Conflict, error)

	Resolve(ctx context.Context, conflictID string, action Action, actorID, notes string) (*Conflict, error)

	GetByID(ctx context.Context, id string) (*Conflict, error)
	List(ctx context.Context, filter Filter) ([]*Conflict, int, error)
}

type service struct {
	repo         Repository
	intervalRepo schedule.Repository
	policy       schedule.BufferPolicy
	logger       *zap.Logger
}

func NewService(repo Repository, intervalRepo schedule.Repository, policy schedule.BufferPolicy, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		repo:         repo,
		intervalRepo: intervalRepo,
		policy:       policy,
		logger:       logger,
	}
}

func (s *service) DetectForInterval(ctx context.Context, intervalID string) ([]*Conflict, error) {
	candidate, err := s.intervalRepo.GetByID(ctx, intervalID)
	if err != nil {
		return nil, err
	}

	conflicts, err := s.detect(ctx, candidate)
	if err != nil {
		return nil, err
	}

	// Advisory badge counter; the Conflict rows remain authoritative.
	if err := s.intervalRepo.UpdateConflictCount(ctx, candidate.ID, len(conflicts)); err != nil {
		return nil, err
	}

	return conflicts, nil
}

func (s *service) DetectForGroup(ctx context.Context, groupID string) ([]*Conflict, error) {
	intervals, err := s.intervalRepo.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}

	var all []*Conflict
	for _, iv := range intervals {
		found, err := s.detect(ctx, iv)
		if err != nil {
			return nil, err
		}
		if err := s.intervalRepo.UpdateConflictCount(ctx, iv.ID, len(found)); err != nil {
			return nil, err
		}
		all = append(all, found...)
	}

	open, err := s.repo.CountOpenByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if err := s.intervalRepo.UpdateGroupConflictCount(ctx, groupID, open); err != nil {
		return nil, err
	}

	return all, nil
}

// detect compares one candidate against the other groups' intervals on its
// resource. Intervals missing a resource or nominal time cannot collide
// with anything, so detection is a no-op for them rather than an error.
func (s *service) detect(ctx context.Context, candidate *schedule.BookingInterval) ([]*Conflict, error) {
	if candidate.ResourceID == "" || candidate.NominalTime.IsZero() {
		return nil, nil
	}

	block := s.policy.Expand(candidate)

	others, err := s.intervalRepo.OverlapCandidates(ctx, candidate.ResourceID, block.Start, block.End, s.policy, candidate.ID)
	if err != nil {
		return nil, err
	}

	var conflicts []*Conflict
	for _, other := range others {
		// Overlaps inside one advance are legitimate: the event uses the
		// item twice. Only cross-group overlaps are double-bookings.
		if other.GroupID == candidate.GroupID {
			continue
		}

		otherBlock := s.policy.Expand(other)
		if !block.Overlaps(otherBlock) {
			continue
		}

		existing, err := s.repo.FindOpen(ctx, candidate.ID, other.ID, TypeDoubleBooking)
		if err == nil {
			conflicts = append(conflicts, existing)
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}

		window := block.Intersection(otherBlock)
		c := &Conflict{
			ConflictType:        TypeDoubleBooking,
			Severity:            SeverityBlocking,
			Status:              StatusOpen,
			EntityID:            candidate.ID,
			ConflictingEntityID: other.ID,
			ResourceID:          candidate.ResourceID,
			GroupID:             candidate.GroupID,
			Description: fmt.Sprintf(
				"Resource %s booked by advance %s collides with an existing booking for advance %s",
				candidate.ResourceID, candidate.GroupID, other.GroupID,
			),
			WindowStart:          window.Start,
			WindowEnd:            window.End,
			SuggestedResolutions: DefaultSuggestedResolutions,
		}

		if err := s.repo.Insert(ctx, c); err != nil {
			if errors.Is(err, ErrDuplicateOpen) {
				// Lost the insert race to a concurrent detection; the
				// winner's record is the one we want.
				if existing, ferr := s.repo.FindOpen(ctx, candidate.ID, other.ID, TypeDoubleBooking); ferr == nil {
					conflicts = append(conflicts, existing)
					continue
				}
				continue
			}
			return nil, err
		}

		s.logger.Info("double booking detected",
			zap.String("resource_id", candidate.ResourceID),
			zap.String("entity_id", candidate.ID),
			zap.String("conflicting_entity_id", other.ID),
			zap.Time("window_start", window.Start),
			zap.Time("window_end", window.End),
		)

		conflicts = append(conflicts, c)
	}

	return conflicts, nil
}

func (s *service) Resolve(ctx context.Context, conflictID string, action Action, actorID, notes string) (*Conflict, error) {
	c, err := s.repo.GetByID(ctx, conflictID)
	if err != nil {
		return nil, err
	}

	if err := c.Apply(action, actorID, notes); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Conflict, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Conflict, int, error) {
	return s.repo.List(ctx, filter)
}
