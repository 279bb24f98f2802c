package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// UpdateCategory renames or restyles a category. A new name must not collide
// with a sibling.
func (s *Service) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.CategoryUpdateParams{
		Name: trimOrNil(input.Name),
		Icon: trimOrNil(input.Icon),
	}
	if input.ColorHex != nil {
		color := normalizeColor(*input.ColorHex)
		params.ColorHex = &color
	}

	var updated *domain.Category
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.categories.GetByID(txCtx, input.CategoryID)
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		if params.Name != nil {
			if err := s.checkCategoryName(txCtx, current.ParentID, *params.Name, current.ID); err != nil {
				return err
			}
		}
		updated, err = s.categories.Update(txCtx, current.ID, params, s.now())
		if err != nil {
			name := current.Name
			if params.Name != nil {
				name = *params.Name
			}
			return fmt.Errorf("update category: %w",
				nameConflict(err, domain.EntityTypeCategory, name, current.ParentID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "category updated",
		slog.String("category_id", updated.ID.String()),
		slog.String("name", updated.Name),
	)

	return updated, nil
}

// UpdateDeck renames or restyles a deck.
func (s *Service) UpdateDeck(ctx context.Context, input UpdateDeckInput) (*domain.Deck, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.DeckUpdateParams{
		Name: trimOrNil(input.Name),
		Icon: trimOrNil(input.Icon),
	}
	if input.ColorHex != nil {
		color := normalizeColor(*input.ColorHex)
		params.ColorHex = &color
	}

	var updated *domain.Deck
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.decks.GetByID(txCtx, input.DeckID)
		if err != nil {
			return fmt.Errorf("get deck: %w", err)
		}
		if params.Name != nil {
			if err := s.checkDeckName(txCtx, current.CategoryID, *params.Name, current.ID); err != nil {
				return err
			}
		}
		updated, err = s.decks.Update(txCtx, current.ID, params, s.now())
		if err != nil {
			name := current.Name
			if params.Name != nil {
				name = *params.Name
			}
			return fmt.Errorf("update deck: %w",
				nameConflict(err, domain.EntityTypeDeck, name, current.CategoryID))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "deck updated",
		slog.String("deck_id", updated.ID.String()),
		slog.String("name", updated.Name),
	)

	return updated, nil
}
