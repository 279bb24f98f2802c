package library

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// ---------------------------------------------------------------------------
// In-memory tree backing the repo mocks
// ---------------------------------------------------------------------------

type memTree struct {
	categories map[uuid.UUID]*domain.Category
	decks      map[uuid.UUID]*domain.Deck
	cardCount  map[uuid.UUID]int
	media      map[uuid.UUID][]string
	clock      time.Time
}

func newMemTree() *memTree {
	return &memTree{
		categories: make(map[uuid.UUID]*domain.Category),
		decks:      make(map[uuid.UUID]*domain.Deck),
		cardCount:  make(map[uuid.UUID]int),
		media:      make(map[uuid.UUID][]string),
		clock:      time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (m *memTree) addCategory(name string, parent *uuid.UUID) *domain.Category {
	m.clock = m.clock.Add(time.Second)
	c := &domain.Category{ID: uuid.New(), ParentID: parent, Name: name, Icon: "folder", ColorHex: "007AFF", CreatedAt: m.clock}
	m.categories[c.ID] = c
	return c
}

func (m *memTree) addDeck(name string, category *uuid.UUID, cards int, media ...string) *domain.Deck {
	m.clock = m.clock.Add(time.Second)
	d := &domain.Deck{ID: uuid.New(), CategoryID: category, Name: name, Icon: "rectangle.stack", ColorHex: "007AFF", CreatedAt: m.clock}
	m.decks[d.ID] = d
	m.cardCount[d.ID] = cards
	m.media[d.ID] = media
	return d
}

func (m *memTree) descendants(id uuid.UUID) []uuid.UUID {
	if _, ok := m.categories[id]; !ok {
		return nil
	}
	ids := []uuid.UUID{id}
	for _, c := range m.categories {
		if c.ParentID != nil && *c.ParentID == id {
			ids = append(ids, m.descendants(c.ID)...)
		}
	}
	return ids
}

func (m *memTree) categoryRepo() *categoryRepoMock {
	return &categoryRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
			c, ok := m.categories[id]
			if !ok {
				return nil, domain.ErrNotFound
			}
			copied := *c
			return &copied, nil
		},
		ListChildrenFunc: func(ctx context.Context, parentID *uuid.UUID) ([]*domain.Category, error) {
			var out []*domain.Category
			for _, c := range m.categories {
				if domain.SameParent(c.ParentID, parentID) {
					out = append(out, c)
				}
			}
			sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
			return out, nil
		},
		ExistsByNameFunc: func(ctx context.Context, parentID *uuid.UUID, normalizedName string, excludeID uuid.UUID) (bool, error) {
			for _, c := range m.categories {
				if c.ID != excludeID && domain.SameParent(c.ParentID, parentID) && domain.NormalizeName(c.Name) == normalizedName {
					return true, nil
				}
			}
			return false, nil
		},
		ListDescendantIDsFunc: func(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
			return m.descendants(id), nil
		},
		CreateFunc: func(ctx context.Context, c *domain.Category) error {
			m.categories[c.ID] = c
			return nil
		},
		UpdateFunc: func(ctx context.Context, id uuid.UUID, params domain.CategoryUpdateParams, now time.Time) (*domain.Category, error) {
			c := m.categories[id]
			if params.Name != nil {
				c.Name = *params.Name
			}
			if params.Icon != nil {
				c.Icon = *params.Icon
			}
			if params.ColorHex != nil {
				c.ColorHex = *params.ColorHex
			}
			c.UpdatedAt = now
			return c, nil
		},
		UpdateParentFunc: func(ctx context.Context, id uuid.UUID, parentID *uuid.UUID, now time.Time) error {
			m.categories[id].ParentID = parentID
			return nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			for _, cid := range m.descendants(id) {
				for did, d := range m.decks {
					if d.CategoryID != nil && *d.CategoryID == cid {
						delete(m.decks, did)
					}
				}
				delete(m.categories, cid)
			}
			return nil
		},
	}
}

func (m *memTree) deckRepo() *deckRepoMock {
	return &deckRepoMock{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
			d, ok := m.decks[id]
			if !ok {
				return nil, domain.ErrNotFound
			}
			copied := *d
			copied.CardCount = m.cardCount[id]
			return &copied, nil
		},
		ListByCategoryFunc: func(ctx context.Context, categoryID *uuid.UUID) ([]*domain.Deck, error) {
			var out []*domain.Deck
			for _, d := range m.decks {
				if domain.SameParent(d.CategoryID, categoryID) {
					copied := *d
					copied.CardCount = m.cardCount[d.ID]
					out = append(out, &copied)
				}
			}
			sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
			return out, nil
		},
		ListIDsByCategoryIDsFunc: func(ctx context.Context, categoryIDs []uuid.UUID) ([]uuid.UUID, error) {
			var out []uuid.UUID
			for _, cid := range categoryIDs {
				for _, d := range m.decks {
					if d.CategoryID != nil && *d.CategoryID == cid {
						out = append(out, d.ID)
					}
				}
			}
			return out, nil
		},
		ExistsByNameFunc: func(ctx context.Context, categoryID *uuid.UUID, normalizedName string, excludeID uuid.UUID) (bool, error) {
			for _, d := range m.decks {
				if d.ID != excludeID && domain.SameParent(d.CategoryID, categoryID) && domain.NormalizeName(d.Name) == normalizedName {
					return true, nil
				}
			}
			return false, nil
		},
		CreateFunc: func(ctx context.Context, d *domain.Deck) error {
			m.decks[d.ID] = d
			return nil
		},
		UpdateFunc: func(ctx context.Context, id uuid.UUID, params domain.DeckUpdateParams, now time.Time) (*domain.Deck, error) {
			d := m.decks[id]
			if params.Name != nil {
				d.Name = *params.Name
			}
			if params.Icon != nil {
				d.Icon = *params.Icon
			}
			if params.ColorHex != nil {
				d.ColorHex = *params.ColorHex
			}
			d.UpdatedAt = now
			return d, nil
		},
		UpdateCategoryFunc: func(ctx context.Context, id uuid.UUID, categoryID *uuid.UUID, now time.Time) error {
			m.decks[id].CategoryID = categoryID
			return nil
		},
		UpdateCreatedAtFunc: func(ctx context.Context, id uuid.UUID, createdAt time.Time) error {
			m.decks[id].CreatedAt = createdAt
			return nil
		},
		DeleteFunc: func(ctx context.Context, id uuid.UUID) error {
			delete(m.decks, id)
			return nil
		},
	}
}

func (m *memTree) cardRepo() *cardRepoMock {
	return &cardRepoMock{
		CountByDeckIDsFunc: func(ctx context.Context, deckIDs []uuid.UUID) (int, error) {
			total := 0
			for _, id := range deckIDs {
				total += m.cardCount[id]
			}
			return total, nil
		},
		MediaRefsByDeckIDsFunc: func(ctx context.Context, deckIDs []uuid.UUID) ([]string, error) {
			var refs []string
			for _, id := range deckIDs {
				refs = append(refs, m.media[id]...)
			}
			return refs, nil
		},
	}
}

// defaultTxMock returns a txManagerMock that simply calls the function with the same context.
func defaultTxMock() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
}

func okMediaMock() *mediaStoreMock {
	return &mediaStoreMock{
		DeleteFunc: func(ref string) error { return nil },
	}
}

// newTreeService wires a Service over tree. media may be nil.
func newTreeService(t *testing.T, tree *memTree, media *mediaStoreMock) *Service {
	t.Helper()
	if media == nil {
		media = okMediaMock()
	}
	svc := NewService(newTestLogger(), tree.categoryRepo(), tree.deckRepo(), tree.cardRepo(), media, defaultTxMock())
	svc.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }
	return svc
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

func assertValidation(t *testing.T, err error, field string) {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	for _, fe := range ve.Errors {
		if fe.Field == field {
			return
		}
	}
	t.Errorf("expected error on field %q, got %v", field, ve.Errors)
}
