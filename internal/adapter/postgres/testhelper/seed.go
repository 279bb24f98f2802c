package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// uniqueSuffix returns a short unique string for non-conflicting names.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedCategory inserts a category under parentID (nil = root) with a unique
// name and returns it.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, parentID *uuid.UUID) domain.Category {
	t.Helper()

	ts := now()
	c := domain.Category{
		ID:        uuid.New(),
		ParentID:  parentID,
		Name:      "Category " + uniqueSuffix(),
		Icon:      domain.DefaultCategoryIcon,
		ColorHex:  domain.DefaultColorHex,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (id, parent_id, name, icon, color_hex, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.ParentID, c.Name, c.Icon, c.ColorHex, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}
	return c
}

// SeedDeck inserts a deck into categoryID (nil = root) with a unique name.
func SeedDeck(t *testing.T, pool *pgxpool.Pool, categoryID *uuid.UUID) domain.Deck {
	t.Helper()

	ts := now()
	d := domain.Deck{
		ID:         uuid.New(),
		CategoryID: categoryID,
		Name:       "Deck " + uniqueSuffix(),
		Icon:       domain.DefaultDeckIcon,
		ColorHex:   domain.DefaultColorHex,
		CreatedAt:  ts,
		UpdatedAt:  ts,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO decks (id, category_id, name, icon, color_hex, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		d.ID, d.CategoryID, d.Name, d.Icon, d.ColorHex, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeck: %v", err)
	}
	return d
}

// SeedCard inserts a current-version card with the given front text and
// media references into deckID.
func SeedCard(t *testing.T, pool *pgxpool.Pool, deckID uuid.UUID, front string, images ...string) domain.Card {
	t.Helper()

	ts := now()
	if images == nil {
		images = []string{}
	}
	c := domain.Card{
		ID:           uuid.New(),
		DeckID:       deckID,
		Front:        domain.CardSide{Text: front, Images: images, Audio: []string{}},
		Back:         domain.CardSide{Text: "back of " + front, Images: []string{}, Audio: []string{}},
		MediaVersion: domain.MediaVersionCurrent,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	imagesJSON, err := json.Marshal(images)
	if err != nil {
		t.Fatalf("testhelper: SeedCard marshal: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO cards (id, deck_id, front_text, back_text, front_images, media_version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.DeckID, c.Front.Text, c.Back.Text, imagesJSON, c.MediaVersion, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard: %v", err)
	}
	return c
}

// SeedLegacyCard inserts a card in the version 1 media layout: an image blob
// on the front and an absolute audio path on the back.
func SeedLegacyCard(t *testing.T, pool *pgxpool.Pool, deckID uuid.UUID, frontImage []byte, backAudioPath string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	ts := now()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO cards (id, deck_id, front_text, back_text, front_image_data, back_audio_path, media_version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		id, deckID, "legacy "+uniqueSuffix(), "", frontImage, backAudioPath, domain.MediaVersionLegacy, ts, ts,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLegacyCard: %v", err)
	}
	return id
}
