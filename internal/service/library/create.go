package library

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// CreateCategory creates a category under input.ParentID, or at the root
// when ParentID is nil.
func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	category := &domain.Category{
		ID:        uuid.New(),
		ParentID:  input.ParentID,
		Name:      strings.TrimSpace(input.Name),
		Icon:      iconOrDefault(input.Icon, domain.DefaultCategoryIcon),
		ColorHex:  colorOrDefault(input.ColorHex),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if category.ParentID != nil {
			if _, err := s.categories.GetByID(txCtx, *category.ParentID); err != nil {
				return fmt.Errorf("get parent category: %w", err)
			}
		}
		if err := s.checkCategoryName(txCtx, category.ParentID, category.Name, uuid.Nil); err != nil {
			return err
		}
		if err := s.categories.Create(txCtx, category); err != nil {
			return fmt.Errorf("create category: %w",
				nameConflict(err, domain.EntityTypeCategory, category.Name, category.ParentID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("category_id", category.ID.String()),
		slog.String("name", category.Name),
	)

	return category, nil
}

// CreateDeck creates a deck in input.CategoryID, or at the root level when
// CategoryID is nil.
func (s *Service) CreateDeck(ctx context.Context, input CreateDeckInput) (*domain.Deck, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	deck := &domain.Deck{
		ID:         uuid.New(),
		CategoryID: input.CategoryID,
		Name:       strings.TrimSpace(input.Name),
		Icon:       iconOrDefault(input.Icon, domain.DefaultDeckIcon),
		ColorHex:   colorOrDefault(input.ColorHex),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if deck.CategoryID != nil {
			if _, err := s.categories.GetByID(txCtx, *deck.CategoryID); err != nil {
				return fmt.Errorf("get category: %w", err)
			}
		}
		if err := s.checkDeckName(txCtx, deck.CategoryID, deck.Name, uuid.Nil); err != nil {
			return err
		}
		if err := s.decks.Create(txCtx, deck); err != nil {
			return fmt.Errorf("create deck: %w",
				nameConflict(err, domain.EntityTypeDeck, deck.Name, deck.CategoryID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "deck created",
		slog.String("deck_id", deck.ID.String()),
		slog.String("name", deck.Name),
	)

	return deck, nil
}
