// Package deck implements deck persistence on PostgreSQL.
package deck

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

const table = "decks"

var columns = []string{"id", "category_id", "name", "icon", "color_hex", "created_at", "updated_at"}

const cardCountExpr = "(SELECT count(*) FROM cards c WHERE c.deck_id = decks.id) AS card_count"

// Repo provides deck persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a deck repository. db is normally a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

func selectWithCount() sq.SelectBuilder {
	return postgres.Builder().
		Select(columns...).
		Column(cardCountExpr).
		From(table)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a deck with its CardCount filled.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	sql, args, err := selectWithCount().Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get deck: %w", err)
	}

	d, err := scanDeck(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "deck", id)
	}
	return d, nil
}

// ListByCategory returns the decks directly in categoryID (nil = root level)
// ordered by created_at, with card counts.
func (r *Repo) ListByCategory(ctx context.Context, categoryID *uuid.UUID) ([]*domain.Deck, error) {
	sql, args, err := selectWithCount().
		Where(categoryEq(categoryID)).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list decks: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	defer rows.Close()

	result := []*domain.Deck{}
	for rows.Next() {
		d, err := scanDeck(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deck: %w", err)
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return result, nil
}

// ListIDsByCategoryIDs returns the ids of every deck owned by one of
// categoryIDs.
func (r *Repo) ListIDsByCategoryIDs(ctx context.Context, categoryIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(categoryIDs) == 0 {
		return []uuid.UUID{}, nil
	}

	sql, args, err := postgres.Builder().
		Select("id").
		From(table).
		Where("category_id = ANY(?)", categoryIDs).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list deck ids: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list deck ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("list deck ids: %w", err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

// ExistsByName reports whether a deck in categoryID already uses the
// normalized name. excludeID (may be uuid.Nil) is ignored in the check.
func (r *Repo) ExistsByName(ctx context.Context, categoryID *uuid.UUID, normalizedName string, excludeID uuid.UUID) (bool, error) {
	sub := postgres.Builder().
		Select("1").
		From(table).
		Where(categoryEq(categoryID)).
		Where(sq.Expr("lower(name) = ?", normalizedName))
	if excludeID != uuid.Nil {
		sub = sub.Where(sq.NotEq{"id": excludeID})
	}

	sql, args, err := sub.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build deck name check: %w", err)
	}

	var exists bool
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("deck name check: %w", err)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts d. A sibling name collision maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, d *domain.Deck) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(d.ID, d.CategoryID, d.Name, d.Icon, d.ColorHex, d.CreatedAt, d.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert deck: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "deck", d.ID)
	}
	return nil
}

// Update writes the non-nil fields of params and returns the updated deck.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.DeckUpdateParams, now time.Time) (*domain.Deck, error) {
	query := postgres.Builder().
		Update(table).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ") + ", " + cardCountExpr)
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
		return nil, fmt.Errorf("build update deck: %w", err)
	}

	d, err := scanDeck(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "deck", id)
	}
	return d, nil
}

// UpdateCategory moves a deck into categoryID (nil = root level).
func (r *Repo) UpdateCategory(ctx context.Context, id uuid.UUID, categoryID *uuid.UUID, now time.Time) error {
	return r.exec(ctx, id, postgres.Builder().
		Update(table).
		Set("category_id", categoryID).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}))
}

// UpdateCreatedAt rewrites the ordering timestamp of a deck.
func (r *Repo) UpdateCreatedAt(ctx context.Context, id uuid.UUID, createdAt time.Time) error {
	return r.exec(ctx, id, postgres.Builder().
		Update(table).
		Set("created_at", createdAt).
		Where(sq.Eq{"id": id}))
}

// Delete removes a deck; its cards cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.exec(ctx, id, postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}))
}

// exec runs a single-row statement and reports domain.ErrNotFound when it
// touched nothing.
func (r *Repo) exec(ctx context.Context, id uuid.UUID, stmt sq.Sqlizer) error {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("build deck statement: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "deck", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func categoryEq(categoryID *uuid.UUID) sq.Sqlizer {
	if categoryID == nil {
		return sq.Eq{"category_id": nil}
	}
	return sq.Eq{"category_id": *categoryID}
}

func scanDeck(row pgx.Row) (*domain.Deck, error) {
	var (
		d     domain.Deck
		count int64
	)
	if err := row.Scan(&d.ID, &d.CategoryID, &d.Name, &d.Icon, &d.ColorHex, &d.CreatedAt, &d.UpdatedAt, &count); err != nil {
		return nil, err
	}
	d.CardCount = int(count)
	return &d, nil
}
