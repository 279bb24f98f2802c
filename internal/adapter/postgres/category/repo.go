// Package category implements category persistence on PostgreSQL.
package category

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/cardbox/internal/adapter/postgres"
	"github.com/heartmarshall/cardbox/internal/domain"
)

const table = "categories"

var columns = []string{"id", "parent_id", "name", "icon", "color_hex", "created_at", "updated_at"}

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a category repository. db is normally a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a category by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category: %w", err)
	}

	c, err := scanCategory(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return c, nil
}

// ListChildren returns the categories directly under parentID (nil = root)
// ordered by created_at. Returns an empty slice when there are none.
func (r *Repo) ListChildren(ctx context.Context, parentID *uuid.UUID) ([]*domain.Category, error) {
	query := postgres.Builder().
		Select(columns...).
		From(table).
		Where(parentEq(parentID)).
		OrderBy("created_at ASC", "id ASC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list categories: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	result := []*domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return result, nil
}

// ExistsByName reports whether a sibling under parentID already uses the
// normalized name. excludeID (may be uuid.Nil) is ignored in the check.
func (r *Repo) ExistsByName(ctx context.Context, parentID *uuid.UUID, normalizedName string, excludeID uuid.UUID) (bool, error) {
	sub := postgres.Builder().
		Select("1").
		From(table).
		Where(parentEq(parentID)).
		Where(sq.Expr("lower(name) = ?", normalizedName))
	if excludeID != uuid.Nil {
		sub = sub.Where(sq.NotEq{"id": excludeID})
	}

	sql, args, err := sub.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build category name check: %w", err)
	}

	var exists bool
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("category name check: %w", err)
	}
	return exists, nil
}

const descendantIDsSQL = `
WITH RECURSIVE tree AS (
    SELECT id FROM categories WHERE id = $1
    UNION ALL
    SELECT c.id FROM categories c JOIN tree t ON c.parent_id = t.id
)
SELECT id FROM tree`

// ListDescendantIDs returns id itself followed by every category nested
// under it at any depth. Returns an empty slice when id does not exist.
func (r *Repo) ListDescendantIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.q(ctx).Query(ctx, descendantIDsSQL, id)
	if err != nil {
		return nil, fmt.Errorf("list descendant categories: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("list descendant categories: %w", err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts c. The name index maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.Category) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.ParentID, c.Name, c.Icon, c.ColorHex, c.CreatedAt, c.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert category: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "category", c.ID)
	}
	return nil
}

// Update writes the non-nil fields of params and returns the updated row.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.CategoryUpdateParams, now time.Time) (*domain.Category, error) {
	query := postgres.Builder().
		Update(table).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", "))
	if params.Name != nil {
		query = query.Set("name", *params.Name)
	}
	if params.Icon != nil {
		query = query.Set("icon", *params.Icon)
	}
	if params.ColorHex != nil {
		query = query.Set("color_hex", *params.ColorHex)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update category: %w", err)
	}

	c, err := scanCategory(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return c, nil
}

// UpdateParent moves a category under parentID (nil = root).
func (r *Repo) UpdateParent(ctx context.Context, id uuid.UUID, parentID *uuid.UUID, now time.Time) error {
	sql, args, err := postgres.Builder().
		Update(table).
		Set("parent_id", parentID).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build move category: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Delete removes a category; subcategories, decks and cards cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete category: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func parentEq(parentID *uuid.UUID) sq.Sqlizer {
	if parentID == nil {
		return sq.Eq{"parent_id": nil}
	}
	return sq.Eq{"parent_id": *parentID}
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.ParentID, &c.Name, &c.Icon, &c.ColorHex, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
