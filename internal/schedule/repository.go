package schedule

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
	Create(ctx context.Context, iv *BookingInterval) error
	GetByID(ctx context.Context, id string) (*BookingInterval, error)

	// Query returns all non-void intervals for the resource whose nominal
	// time falls within [RangeStart, RangeEnd], ordered by nominal time
	// ascending. ExcludeGroupID hides a group's own bookings so a caller
	// checking a slot for that group does not collide with itself.
	Query(ctx context.Context, filter Filter) ([]*BookingInterval, error)

	// OverlapCandidates returns non-void intervals of the resource whose
	// buffer-expanded block could intersect [start, end]. The SQL filter is
	// coarse (per-row buffers applied with policy fallbacks); callers apply
	// the exact overlap test on the expanded blocks.
	OverlapCandidates(ctx context.Context, resourceID string, start, end time.Time, policy BufferPolicy, excludeID string) ([]*BookingInterval, error)

	ListByGroup(ctx context.Context, groupID string) ([]*BookingInterval, error)
	UpdateStatus(ctx context.Context, id string, status Status) error

	// UpdateConflictCount and UpdateGroupConflictCount refresh the advisory
	// badge counters on the interval and its owning advance.
	UpdateConflictCount(ctx context.Context, id string, count int) error
	UpdateGroupConflictCount(ctx context.Context, groupID string, count int) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var intervalColumns = []string{
	"id", "resource_id", "group_id", "nominal_time",
	"buffer_before_hours", "buffer_after_hours", "status",
	"quantity_required", "quantity_confirmed", "conflict_count",
	"created_at", "updated_at",
}

func voidStatusStrings() []string {
	out := make([]string, len(VoidStatuses))
	for i, s := range VoidStatuses {
		out[i] = string(s)
	}
	return out
}

func (r *pgxRepository) Create(ctx context.Context, iv *BookingInterval) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.booking_intervals").
		Columns(
			"resource_id", "group_id", "nominal_time",
			"buffer_before_hours", "buffer_after_hours", "status",
			"quantity_required", "quantity_confirmed",
		).
		Values(
			iv.ResourceID, iv.GroupID, iv.NominalTime,
			iv.BufferBeforeHours, iv.BufferAfterHours, iv.Status,
			iv.QuantityRequired, iv.QuantityConfirmed,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create interval query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).
		Scan(&iv.ID, &iv.CreatedAt, &iv.UpdatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*BookingInterval, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(intervalColumns...).
		From("public.booking_intervals").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get interval query failed: %w", err)
	}

	iv, err := scanInterval(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get interval failed: %w", err)
	}
	return iv, nil
}

func (r *pgxRepository) Query(ctx context.Context, filter Filter) ([]*BookingInterval, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(intervalColumns...).
		From("public.booking_intervals").
		Where(squirrel.Eq{"resource_id": filter.ResourceID}).
		Where(squirrel.NotEq{"status": voidStatusStrings()}).
		Where(squirrel.GtOrEq{"nominal_time": filter.RangeStart}).
		Where(squirrel.LtOrEq{"nominal_time": filter.RangeEnd}).
		OrderBy("nominal_time ASC")

	if filter.ExcludeGroupID != "" {
		query = query.Where(squirrel.NotEq{"group_id": filter.ExcludeGroupID})
	}
	if filter.ExcludeID != "" {
		query = query.Where(squirrel.NotEq{"id": filter.ExcludeID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query intervals failed: %w", err)
	}
	return r.queryIntervals(ctx, sql, args)
}

func (r *pgxRepository) OverlapCandidates(ctx context.Context, resourceID string, start, end time.Time, policy BufferPolicy, excludeID string) ([]*BookingInterval, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(intervalColumns...).
		From("public.booking_intervals").
		Where(squirrel.Eq{"resource_id": resourceID}).
		Where(squirrel.NotEq{"status": voidStatusStrings()}).
		Where(squirrel.Expr(
			"nominal_time - COALESCE(buffer_before_hours, ?) * interval '1 hour' <= ?",
			policy.DefaultBeforeHours, end,
		)).
		Where(squirrel.Expr(
			"nominal_time + COALESCE(buffer_after_hours, ?) * interval '1 hour' >= ?",
			policy.DefaultAfterHours, start,
		)).
		OrderBy("nominal_time ASC")

	if excludeID != "" {
		query = query.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build overlap candidates query failed: %w", err)
	}
	return r.queryIntervals(ctx, sql, args)
}

func (r *pgxRepository) ListByGroup(ctx context.Context, groupID string) ([]*BookingInterval, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select(intervalColumns...).
		From("public.booking_intervals").
		Where(squirrel.Eq{"group_id": groupID}).
		Where(squirrel.NotEq{"status": voidStatusStrings()}).
		OrderBy("nominal_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list by group query failed: %w", err)
	}
	return r.queryIntervals(ctx, sql, args)
}

func (r *pgxRepository) UpdateStatus(ctx context.Context, id string, status Status) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.booking_intervals").
		Set("status", status).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update interval status query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update interval status failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UpdateConflictCount(ctx context.Context, id string, count int) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.booking_intervals").
		Set("conflict_count", count).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update conflict count query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update conflict count failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) UpdateGroupConflictCount(ctx context.Context, groupID string, count int) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.advances").
		Set("conflict_count", count).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": groupID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update group conflict count query failed: %w", err)
	}

	// The advance record may live in another system; a zero-row update is
	// not an error for an advisory counter.
	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update group conflict count failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) queryIntervals(ctx context.Context, sql string, args []interface{}) ([]*BookingInterval, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query intervals failed: %w", err)
	}
	defer rows.Close()

	var intervals []*BookingInterval
	for rows.Next() {
		iv, err := scanInterval(rows)
		if err != nil {
			return nil, fmt.Errorf("scan interval failed: %w", err)
		}
		intervals = append(intervals, iv)
	}
	return intervals, rows.Err()
}

func scanInterval(row pgx.Row) (*BookingInterval, error) {
	var iv BookingInterval
	if err := row.Scan(
		&iv.ID, &iv.ResourceID, &iv.GroupID, &iv.NominalTime,
		&iv.BufferBeforeHours, &iv.BufferAfterHours, &iv.Status,
		&iv.QuantityRequired, &iv.QuantityConfirmed, &iv.ConflictCount,
		&iv.CreatedAt, &iv.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &iv, nil
}
