package conflict

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	// Insert persists a newly detected conflict. The conflicts table
	// carries a partial unique index on
	// (entity_id, conflicting_entity_id, conflict_type) WHERE status = 'open',
	// so a concurrent detector losing the race gets ErrDuplicateOpen
	// rather than a second open record.
	Insert(ctx context.Context, c *Conflict) error

	// FindOpen returns the open conflict for the pair, or ErrNotFound.
	FindOpen(ctx context.Context, entityID, conflictingEntityID string, conflictType Type) (*Conflict, error)

	GetByID(ctx context.Context, id string) (*Conflict, error)
	Update(ctx context.Context, c *Conflict) error
	List(ctx context.Context, filter Filter) ([]*Conflict, int, error)
	CountOpenByGroup(ctx context.Context, groupID string) (int, error)
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var conflictColumns = []string{
	"id", "conflict_type", "severity", "status",
	"entity_id", "conflicting_entity_id", "resource_id", "group_id",
	"description", "window_start", "window_end", "suggested_resolutions",
	"resolved_by", "resolved_at", "resolution_notes",
	"created_at", "updated_at",
}

func (r *pgxRepository) Insert(ctx context.Context, c *Conflict) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.conflicts").
		Columns(
			"conflict_type", "severity", "status",
			"entity_id", "conflicting_entity_id", "resource_id", "group_id",
			"description", "window_start", "window_end", "suggested_resolutions",
		).
		Values(
			c.ConflictType, c.Severity, c.Status,
			c.EntityID, c.ConflictingEntityID, c.ResourceID, c.GroupID,
			c.Description, c.WindowStart, c.WindowEnd, c.SuggestedResolutions,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert conflict query failed: %w", err)
	}

	if err := r.pool.QueryRow(ctx, query, args...).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateOpen
		}
		return fmt.Errorf("insert conflict failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) FindOpen(ctx context.Context, entityID, conflictingEntityID string, conflictType Type) (*Conflict, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(conflictColumns...).
		From("public.conflicts").
		Where(squirrel.Eq{
			"entity_id":             entityID,
			"conflicting_entity_id": conflictingEntityID,
			"conflict_type":         conflictType,
			"status":                StatusOpen,
		}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find open conflict query failed: %w", err)
	}

	c, err := scanConflict(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find open conflict failed: %w", err)
	}
	return c, nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Conflict, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(conflictColumns...).
		From("public.conflicts").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get conflict query failed: %w", err)
	}

	c, err := scanConflict(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get conflict failed: %w", err)
	}
	return c, nil
}

func (r *pgxRepository) Update(ctx context.Context, c *Conflict) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.conflicts").
		Set("status", c.Status).
		Set("resolved_by", c.ResolvedBy).
		Set("resolved_at", c.ResolvedAt).
		Set("resolution_notes", c.ResolutionNotes).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update conflict query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update conflict failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Conflict, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(append(conflictColumns, "count(*) OVER() AS total_count")...).
		From("public.conflicts")

	if filter.ResourceID != "" {
		query = query.Where(squirrel.Eq{"resource_id": filter.ResourceID})
	}
	if filter.GroupID != "" {
		query = query.Where(squirrel.Eq{"group_id": filter.GroupID})
	}
	if filter.EntityID != "" {
		query = query.Where(squirrel.Eq{"entity_id": filter.EntityID})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize

	query = query.OrderBy("created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list conflicts query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list conflicts failed: %w", err)
	}
	defer rows.Close()

	var conflicts []*Conflict
	var total int
	for rows.Next() {
		var c Conflict
		if err := rows.Scan(
			&c.ID, &c.ConflictType, &c.Severity, &c.Status,
			&c.EntityID, &c.ConflictingEntityID, &c.ResourceID, &c.GroupID,
			&c.Description, &c.WindowStart, &c.WindowEnd, &c.SuggestedResolutions,
			&c.ResolvedBy, &c.ResolvedAt, &c.ResolutionNotes,
			&c.CreatedAt, &c.UpdatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan conflict failed: %w", err)
		}
		conflicts = append(conflicts, &c)
	}

	return conflicts, total, rows.Err()
}

func (r *pgxRepository) CountOpenByGroup(ctx context.Context, groupID string) (int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	sql, args, err := psql.Select("count(*)").
		From("public.conflicts").
		Where(squirrel.Eq{"group_id": groupID, "status": StatusOpen}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count open conflicts query failed: %w", err)
	}

	var n int
	if err := r.pool.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count open conflicts failed: %w", err)
	}
	return n, nil
}

func scanConflict(row pgx.Row) (*Conflict, error) {
	var c Conflict
	if err := row.Scan(
		&c.ID, &c.ConflictType, &c.Severity, &c.Status,
		&c.EntityID, &c.ConflictingEntityID, &c.ResourceID, &c.GroupID,
		&c.Description, &c.WindowStart, &c.WindowEnd, &c.SuggestedResolutions,
		&c.ResolvedBy, &c.ResolvedAt, &c.ResolutionNotes,
		&c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}
