package crew

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, a *Assignment) error
	GetByID(ctx context.Context, id string) (*Assignment, error)

	// ListOverlapping returns the person's live assignments whose stored
	// range could intersect [start, end] (inclusive bounds in SQL); the
	// caller applies the strict overlap test. Cancelled and declined
	// shifts are skipped.
	ListOverlapping(ctx context.Context, personID string, start, end time.Time, excludeID string) ([]*Assignment, error)

	// UpsertDailyAvailability writes the derived per-day record used by
	// rosters. One row per person per calendar date.
	UpsertDailyAvailability(ctx context.Context, personID string, date time.Time, status string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var assignmentColumns = []string{
	"id", "person_id", "event_id", "role", "start_time", "end_time",
	"status", "created_at", "updated_at",
}

func (r *pgxRepository) Create(ctx context.Context, a *Assignment) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.crew_assignments").
		Columns("person_id", "event_id", "role", "start_time", "end_time", "status").
		Values(a.PersonID, a.EventID, a.Role, a.StartTime, a.EndTime, a.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create assignment query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Assignment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(assignmentColumns...).
		From("public.crew_assignments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get assignment query failed: %w", err)
	}

	var a Assignment
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&a.ID, &a.PersonID, &a.EventID, &a.Role, &a.StartTime, &a.EndTime,
		&a.Status, &a.CreatedAt, &a.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get assignment failed: %w", err)
	}
	return &a, nil
}

func (r *pgxRepository) ListOverlapping(ctx context.Context, personID string, start, end time.Time, excludeID string) ([]*Assignment, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(assignmentColumns...).
		From("public.crew_assignments").
		Where(squirrel.Eq{"person_id": personID}).
		Where(squirrel.NotEq{"status": []string{string(StatusCancelled), string(StatusDeclined)}}).
		Where(squirrel.LtOrEq{"start_time": end}).
		Where(squirrel.GtOrEq{"end_time": start}).
		OrderBy("start_time ASC")

	if excludeID != "" {
		query = query.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list overlapping query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list overlapping assignments failed: %w", err)
	}
	defer rows.Close()

	var assignments []*Assignment
	for rows.Next() {
		var a Assignment
		if err := rows.Scan(
			&a.ID, &a.PersonID, &a.EventID, &a.Role, &a.StartTime, &a.EndTime,
			&a.Status, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan assignment failed: %w", err)
		}
		assignments = append(assignments, &a)
	}
	return assignments, rows.Err()
}

func (r *pgxRepository) UpsertDailyAvailability(ctx context.Context, personID string, date time.Time, status string) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.crew_daily_availability").
		Columns("person_id", "date", "status").
		Values(personID, date, status).
		Suffix("ON CONFLICT (person_id, date) DO UPDATE SET status = EXCLUDED.status, updated_at = now()").
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert daily availability query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert daily availability failed: %w", err)
	}
	return nil
}
