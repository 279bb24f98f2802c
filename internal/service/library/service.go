package library

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	ListChildren(ctx context.Context, parentID *uuid.UUID) ([]*domain.Category, error)
	ExistsByName(ctx context.Context, parentID *uuid.UUID, normalizedName string, excludeID uuid.UUID) (bool, error)
	ListDescendantIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
	Create(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, id uuid.UUID, params domain.CategoryUpdateParams, now time.Time) (*domain.Category, error)
	UpdateParent(ctx context.Context, id uuid.UUID, parentID *uuid.UUID, now time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type deckRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
	ListByCategory(ctx context.Context, categoryID *uuid.UUID) ([]*domain.Deck, error)
	ListIDsByCategoryIDs(ctx context.Context, categoryIDs []uuid.UUID) ([]uuid.UUID, error)
	ExistsByName(ctx context.Context, categoryID *uuid.UUID, normalizedName string, excludeID uuid.UUID) (bool, error)
	Create(ctx context.Context, d *domain.Deck) error
	Update(ctx context.Context, id uuid.UUID, params domain.DeckUpdateParams, now time.Time) (*domain.Deck, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, categoryID *uuid.UUID, now time.Time) error
	UpdateCreatedAt(ctx context.Context, id uuid.UUID, createdAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type cardRepo interface {
	CountByDeckIDs(ctx context.Context, deckIDs []uuid.UUID) (int, error)
	MediaRefsByDeckIDs(ctx context.Context, deckIDs []uuid.UUID) ([]string, error)
}

type mediaStore interface {
	Delete(ref string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// MaxNameLength bounds category and deck names, in characters.
const MaxNameLength = 100

// Service manages the category/deck tree.
type Service struct {
	categories categoryRepo
	decks      deckRepo
	cards      cardRepo
	media      mediaStore
	tx         txManager
	log        *slog.Logger
	now        func() time.Time
}

// NewService creates a new Library service.
func NewService(
	log *slog.Logger,
	categories categoryRepo,
	decks deckRepo,
	cards cardRepo,
	media mediaStore,
	tx txManager,
) *Service {
	return &Service{
		categories: categories,
		decks:      decks,
		cards:      cards,
		media:      media,
		tx:         tx,
		log:        log.With("service", "library"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// checkCategoryName fails with a DuplicateNameError when a sibling category
// under parentID already uses name. excludeID skips the category itself.
func (s *Service) checkCategoryName(ctx context.Context, parentID *uuid.UUID, name string, excludeID uuid.UUID) error {
	exists, err := s.categories.ExistsByName(ctx, parentID, domain.NormalizeName(name), excludeID)
	if err != nil {
		return fmt.Errorf("check category name: %w", err)
	}
	if exists {
		return &domain.DuplicateNameError{Entity: domain.EntityTypeCategory, Name: name, ParentID: parentID}
	}
	return nil
}

func (s *Service) checkDeckName(ctx context.Context, categoryID *uuid.UUID, name string, excludeID uuid.UUID) error {
	exists, err := s.decks.ExistsByName(ctx, categoryID, domain.NormalizeName(name), excludeID)
	if err != nil {
		return fmt.Errorf("check deck name: %w", err)
	}
	if exists {
		return &domain.DuplicateNameError{Entity: domain.EntityTypeDeck, Name: name, ParentID: categoryID}
	}
	return nil
}

// nameConflict converts a unique violation raised by a write into a
// DuplicateNameError. The sibling name index is the only unique key that a
// write can hit with a fresh id.
func nameConflict(err error, entity domain.EntityType, name string, parentID *uuid.UUID) error {
	if errors.Is(err, domain.ErrAlreadyExists) {
		return &domain.DuplicateNameError{Entity: entity, Name: name, ParentID: parentID}
	}
	return err
}

// deleteMedia removes files after a committed delete. Failures are logged
// and never returned.
func (s *Service) deleteMedia(ctx context.Context, refs []string) {
	for _, ref := range refs {
		if err := s.media.Delete(ref); err != nil {
			s.log.WarnContext(ctx, "delete media file",
				slog.String("ref", ref),
				slog.String("error", err.Error()),
			)
		}
	}
}

// trimOrNil trims whitespace. Returns nil if s is nil.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}
