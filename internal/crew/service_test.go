package crew

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type upsertCall struct {
	PersonID string
	Date     time.Time
	Status   string
}

type fakeRepository struct {
	assignments []*Assignment
	upserts     []upsertCall
	nextID      int
}

func (f *fakeRepository) Create(_ context.Context, a *Assignment) error {
	f.nextID++
	a.ID = fmt.Sprintf("as-%d", f.nextID)
	a.CreatedAt = time.Now().UTC()
	a.UpdatedAt = a.CreatedAt
	f.assignments = append(f.assignments, a)
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Assignment, error) {
	for _, a := range f.assignments {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepository) ListOverlapping(_ context.Context, personID string, start, end time.Time, excludeID string) ([]*Assignment, error) {
	var out []*Assignment
	for _, a := range f.assignments {
		if a.PersonID != personID {
			continue
		}
		if a.Status == StatusCancelled || a.Status == StatusDeclined {
			continue
		}
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		// Inclusive bounds, mirroring the SQL prefilter.
		if a.StartTime.After(end) || a.EndTime.Before(start) {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeRepository) UpsertDailyAvailability(_ context.Context, personID string, date time.Time, status string) error {
	f.upserts = append(f.upserts, upsertCall{PersonID: personID, Date: date, Status: status})
	return nil
}

func (f *fakeRepository) addShift(personID string, start, end time.Time, status Status) *Assignment {
	a := &Assignment{
		PersonID:  personID,
		EventID:   "ev-1",
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
	_ = f.Create(context.Background(), a)
	return a
}

const personP1 = "person-1"

func jun5(hour, min int) time.Time {
	return time.Date(2026, 6, 5, hour, min, 0, 0, time.UTC)
}

func TestCheckShiftConflictStrictOverlap(t *testing.T) {
	repo := &fakeRepository{}
	existing := repo.addShift(personP1, jun5(8, 0), jun5(16, 0), StatusConfirmed)
	svc := NewService(repo)
	ctx := context.Background()

	tests := []struct {
		name       string
		start, end time.Time
		wantHit    bool
	}{
		{"back-to-back after is clean", jun5(16, 0), jun5(20, 0), false},
		{"back-to-back before is clean", jun5(4, 0), jun5(8, 0), false},
		{"one minute overlap", jun5(15, 59), jun5(20, 0), true},
		{"one second overlap", jun5(16, 0).Add(-time.Second), jun5(20, 0), true},
		{"fully inside", jun5(10, 0), jun5(12, 0), true},
		{"covers existing", jun5(6, 0), jun5(18, 0), true},
		{"disjoint", jun5(18, 0), jun5(20, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conflicts, err := svc.CheckShiftConflict(ctx, personP1, tt.start, tt.end, "")
			require.NoError(t, err)
			if tt.wantHit {
				require.Len(t, conflicts, 1)
				require.Equal(t, existing.ID, conflicts[0].ID)
			} else {
				require.Empty(t, conflicts)
			}
		})
	}
}

func TestCheckShiftConflictSkipsVoidAndExcluded(t *testing.T) {
	repo := &fakeRepository{}
	repo.addShift(personP1, jun5(8, 0), jun5(16, 0), StatusCancelled)
	repo.addShift(personP1, jun5(8, 0), jun5(16, 0), StatusDeclined)
	live := repo.addShift(personP1, jun5(9, 0), jun5(12, 0), StatusConfirmed)
	svc := NewService(repo)
	ctx := context.Background()

	conflicts, err := svc.CheckShiftConflict(ctx, personP1, jun5(10, 0), jun5(14, 0), "")
	require.NoError(t, err)
	require.Len(t, conflicts, 1)
	require.Equal(t, live.ID, conflicts[0].ID)

	// Excluding the live assignment (e.g. while editing it) clears the hit.
	conflicts, err = svc.CheckShiftConflict(ctx, personP1, jun5(10, 0), jun5(14, 0), live.ID)
	require.NoError(t, err)
	require.Empty(t, conflicts)
}

func TestCheckShiftConflictValidation(t *testing.T) {
	svc := NewService(&fakeRepository{})
	ctx := context.Background()

	_, err := svc.CheckShiftConflict(ctx, "", jun5(8, 0), jun5(16, 0), "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CheckShiftConflict(ctx, personP1, jun5(16, 0), jun5(8, 0), "")
	require.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = svc.CheckShiftConflict(ctx, personP1, jun5(8, 0), jun5(8, 0), "")
	require.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateRejectsOverlap(t *testing.T) {
	repo := &fakeRepository{}
	repo.addShift(personP1, jun5(8, 0), jun5(16, 0), StatusConfirmed)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{
		PersonID:  personP1,
		EventID:   "ev-2",
		StartTime: jun5(15, 0),
		EndTime:   jun5(20, 0),
	})
	require.Error(t, err)

	var shiftErr *ShiftConflictError
	require.ErrorAs(t, err, &shiftErr)
	require.Len(t, shiftErr.Conflicts, 1)

	// Nothing was written besides the pre-existing shift.
	require.Len(t, repo.assignments, 1)
	require.Empty(t, repo.upserts)
}

func TestCreateUpsertsDailyAvailability(t *testing.T) {
	repo := &fakeRepository{}
	repo.addShift(personP1, jun5(8, 0), jun5(16, 0), StatusConfirmed)
	svc := NewService(repo)

	a, err := svc.Create(context.Background(), CreateRequest{
		PersonID:  personP1,
		EventID:   "ev-2",
		StartTime: jun5(16, 0),
		EndTime:   jun5(20, 0),
	})
	require.NoError(t, err)
	require.Equal(t, StatusConfirmed, a.Status)

	require.Len(t, repo.upserts, 1)
	call := repo.upserts[0]
	require.Equal(t, personP1, call.PersonID)
	require.Equal(t, time.Date(2026, 6, 5, 0, 0, 0, 0, time.UTC), call.Date)
	require.Equal(t, DailyStatusBooked, call.Status)
}
