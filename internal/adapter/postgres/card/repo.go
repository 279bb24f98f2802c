// Package card implements card persistence on PostgreSQL.
// Media reference lists are stored as JSONB arrays of filenames and link
// targets as a uuid[] column.
package card

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/heartmarshall/cardbox/internal/adapter/postgres"
	"github.com/heartmarshall/cardbox/internal/domain"
)

const table = "cards"

var columns = []string{
	"id", "deck_id",
	"front_text", "front_rich_text", "front_images", "front_audio",
	"back_text", "back_rich_text", "back_images", "back_audio",
	"linked_card_ids", "media_version", "created_at", "updated_at",
}

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a card repository. db is normally a *pgxpool.Pool.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func (r *Repo) q(ctx context.Context) postgres.Querier {
	return postgres.QuerierFromCtx(ctx, r.db)
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a card by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get card: %w", err)
	}

	c, err := scanCard(r.q(ctx).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "card", id)
	}
	return c, nil
}

// ListByDeck returns the cards of a deck ordered by created_at.
func (r *Repo) ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(sq.Eq{"deck_id": deckID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	result := []*domain.Card{}
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return result, nil
}

// ListIDsByDeck returns the card ids of a deck in display order.
func (r *Repo) ListIDsByDeck(ctx context.Context, deckID uuid.UUID) ([]uuid.UUID, error) {
	sql, args, err := postgres.Builder().
		Select("id").
		From(table).
		Where(sq.Eq{"deck_id": deckID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list card ids: %w", err)
	}
	return r.collectUUIDs(ctx, "list card ids", sql, args)
}

// CountByDeckIDs returns the total number of cards in the given decks.
func (r *Repo) CountByDeckIDs(ctx context.Context, deckIDs []uuid.UUID) (int, error) {
	if len(deckIDs) == 0 {
		return 0, nil
	}

	sql, args, err := postgres.Builder().
		Select("count(*)").
		From(table).
		Where("deck_id = ANY(?)", deckIDs).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count cards: %w", err)
	}

	var count int64
	if err := r.q(ctx).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return int(count), nil
}

// MediaRefsByDeckIDs returns every media reference held by cards of the
// given decks, including legacy audio paths of not yet upgraded cards.
func (r *Repo) MediaRefsByDeckIDs(ctx context.Context, deckIDs []uuid.UUID) ([]string, error) {
	if len(deckIDs) == 0 {
		return []string{}, nil
	}
	return r.mediaRefs(ctx, sq.Expr("deck_id = ANY(?)", deckIDs))
}

// AllMediaRefs returns every media reference held by any card.
func (r *Repo) AllMediaRefs(ctx context.Context) ([]string, error) {
	return r.mediaRefs(ctx, nil)
}

func (r *Repo) mediaRefs(ctx context.Context, where sq.Sqlizer) ([]string, error) {
	query := postgres.Builder().
		Select("front_images", "front_audio", "back_images", "back_audio", "front_audio_path", "back_audio_path").
		From(table)
	if where != nil {
		query = query.Where(where)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build media refs: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("media refs: %w", err)
	}
	defer rows.Close()

	refs := []string{}
	for rows.Next() {
		var (
			frontImages, frontAudio, backImages, backAudio []string
			frontPath, backPath                            *string
		)
		if err := rows.Scan(&frontImages, &frontAudio, &backImages, &backAudio, &frontPath, &backPath); err != nil {
			return nil, fmt.Errorf("scan media refs: %w", err)
		}
		refs = append(refs, frontImages...)
		refs = append(refs, frontAudio...)
		refs = append(refs, backImages...)
		refs = append(refs, backAudio...)
		for _, p := range []*string{frontPath, backPath} {
			if p != nil && *p != "" {
				refs = append(refs, *p)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("media refs: %w", err)
	}
	return refs, nil
}

// FrontTextsByDeck returns the front text of every card in a deck.
func (r *Repo) FrontTextsByDeck(ctx context.Context, deckID uuid.UUID) ([]string, error) {
	sql, args, err := postgres.Builder().
		Select("front_text").
		From(table).
		Where(sq.Eq{"deck_id": deckID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build front texts: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("front texts: %w", err)
	}
	texts, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("front texts: %w", err)
	}
	return texts, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts c. A missing deck maps to domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, c *domain.Card) error {
	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			c.ID, c.DeckID,
			c.Front.Text, c.Front.RichText, nonNil(c.Front.Images), nonNil(c.Front.Audio),
			c.Back.Text, c.Back.RichText, nonNil(c.Back.Images), nonNil(c.Back.Audio),
			nonNilIDs(c.LinkedCardIDs), c.MediaVersion, c.CreatedAt, c.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert card: %w", err)
	}

	if _, err := r.q(ctx).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "card", c.ID)
	}
	return nil
}

// Update overwrites the content of both sides and the link list.
func (r *Repo) Update(ctx context.Context, c *domain.Card) error {
	return r.exec(ctx, c.ID, postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"front_text":      c.Front.Text,
			"front_rich_text": c.Front.RichText,
			"front_images":    nonNil(c.Front.Images),
			"front_audio":     nonNil(c.Front.Audio),
			"back_text":       c.Back.Text,
			"back_rich_text":  c.Back.RichText,
			"back_images":     nonNil(c.Back.Images),
			"back_audio":      nonNil(c.Back.Audio),
			"linked_card_ids": nonNilIDs(c.LinkedCardIDs),
			"updated_at":      c.UpdatedAt,
		}).
		Where(sq.Eq{"id": c.ID}))
}

// UpdateDeck moves a card to another deck.
func (r *Repo) UpdateDeck(ctx context.Context, id, deckID uuid.UUID, now time.Time) error {
	return r.exec(ctx, id, postgres.Builder().
		Update(table).
		Set("deck_id", deckID).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}))
}

// UpdateCreatedAt rewrites the ordering timestamp of a card.
func (r *Repo) UpdateCreatedAt(ctx context.Context, id uuid.UUID, createdAt time.Time) error {
	return r.exec(ctx, id, postgres.Builder().
		Update(table).
		Set("created_at", createdAt).
		Where(sq.Eq{"id": id}))
}

// Delete removes a card.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.exec(ctx, id, postgres.Builder().
		Delete(table).
		Where(sq.Eq{"id": id}))
}

// ---------------------------------------------------------------------------
// Legacy media
// ---------------------------------------------------------------------------

// ListLegacyMedia returns up to limit cards whose media_version is below
// domain.MediaVersionCurrent.
func (r *Repo) ListLegacyMedia(ctx context.Context, limit int) ([]domain.LegacyCardMedia, error) {
	sql, args, err := postgres.Builder().
		Select(
			"id", "front_image_data", "back_image_data", "front_audio_path", "back_audio_path",
			"front_images", "back_images", "front_audio", "back_audio",
		).
		From(table).
		Where(sq.Lt{"media_version": domain.MediaVersionCurrent}).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list legacy media: %w", err)
	}

	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list legacy media: %w", err)
	}
	defer rows.Close()

	result := []domain.LegacyCardMedia{}
	for rows.Next() {
		var m domain.LegacyCardMedia
		if err := rows.Scan(
			&m.CardID, &m.FrontImageData, &m.BackImageData, &m.FrontAudioPath, &m.BackAudioPath,
			&m.FrontImages, &m.BackImages, &m.FrontAudio, &m.BackAudio,
		); err != nil {
			return nil, fmt.Errorf("scan legacy media: %w", err)
		}
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list legacy media: %w", err)
	}
	return result, nil
}

// SaveUpgradedMedia stores the upgraded media lists, clears the legacy
// columns and marks the card as domain.MediaVersionCurrent.
func (r *Repo) SaveUpgradedMedia(ctx context.Context, id uuid.UUID, params domain.CardMediaParams, now time.Time) error {
	return r.exec(ctx, id, postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"front_images":     nonNil(params.FrontImages),
			"back_images":      nonNil(params.BackImages),
			"front_audio":      nonNil(params.FrontAudio),
			"back_audio":       nonNil(params.BackAudio),
			"front_image_data": nil,
			"back_image_data":  nil,
			"front_audio_path": nil,
			"back_audio_path":  nil,
			"media_version":    domain.MediaVersionCurrent,
			"updated_at":       now,
		}).
		Where(sq.Eq{"id": id}))
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) exec(ctx context.Context, id uuid.UUID, stmt sq.Sqlizer) error {
	sql, args, err := stmt.ToSql()
	if err != nil {
		return fmt.Errorf("build card statement: %w", err)
	}

	tag, err := r.q(ctx).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "card", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) collectUUIDs(ctx context.Context, op, sql string, args []any) ([]uuid.UUID, error) {
	rows, err := r.q(ctx).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if ids == nil {
		ids = []uuid.UUID{}
	}
	return ids, nil
}

// nonNil keeps JSONB columns as arrays: a nil slice would encode as null.
func nonNil(refs []string) []string {
	if refs == nil {
		return []string{}
	}
	return refs
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}

func scanCard(row pgx.Row) (*domain.Card, error) {
	var (
		c       domain.Card
		version int16
	)
	err := row.Scan(
		&c.ID, &c.DeckID,
		&c.Front.Text, &c.Front.RichText, &c.Front.Images, &c.Front.Audio,
		&c.Back.Text, &c.Back.RichText, &c.Back.Images, &c.Back.Audio,
		&c.LinkedCardIDs, &version, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	c.MediaVersion = int(version)
	return &c, nil
}
