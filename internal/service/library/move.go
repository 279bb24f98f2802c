package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// MoveCategory reparents a category. A nil target moves it to the root.
// Moving into the current parent is a no-op. Moving into itself or any of
// its descendants fails with *domain.InvalidMoveError.
func (s *Service) MoveCategory(ctx context.Context, categoryID uuid.UUID, targetParentID *uuid.UUID) error {
	if categoryID == uuid.Nil {
		return domain.NewValidationError("category_id", "required")
	}

	moved := false
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		category, err := s.categories.GetByID(txCtx, categoryID)
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		if domain.SameParent(category.ParentID, targetParentID) {
			return nil
		}
		if targetParentID != nil {
			if err := s.checkNotDescendant(txCtx, categoryID, *targetParentID); err != nil {
				return err
			}
		}
		if err := s.checkCategoryName(txCtx, targetParentID, category.Name, category.ID); err != nil {
			return err
		}
		if err := s.categories.UpdateParent(txCtx, categoryID, targetParentID, s.now()); err != nil {
			return fmt.Errorf("move category: %w",
				nameConflict(err, domain.EntityTypeCategory, category.Name, targetParentID))
		}
		moved = true
		return nil
	})
	if err != nil {
		return err
	}

	if moved {
		s.log.InfoContext(ctx, "category moved",
			slog.String("category_id", categoryID.String()),
			slog.String("target", parentString(targetParentID)),
		)
	}
	return nil
}

// checkNotDescendant walks up from targetID through parent pointers and
// fails if it meets categoryID.
func (s *Service) checkNotDescendant(ctx context.Context, categoryID, targetID uuid.UUID) error {
	visited := make(map[uuid.UUID]struct{})
	current := targetID
	for {
		if current == categoryID {
			return &domain.InvalidMoveError{CategoryID: categoryID, TargetID: targetID}
		}
		if _, seen := visited[current]; seen {
			return fmt.Errorf("category %s: parent chain loops", current)
		}
		visited[current] = struct{}{}

		node, err := s.categories.GetByID(ctx, current)
		if err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		if node.ParentID == nil {
			return nil
		}
		current = *node.ParentID
	}
}

// MoveDeck moves a deck into another category, or to the root level when
// targetCategoryID is nil.
func (s *Service) MoveDeck(ctx context.Context, deckID uuid.UUID, targetCategoryID *uuid.UUID) error {
	if deckID == uuid.Nil {
		return domain.NewValidationError("deck_id", "required")
	}

	moved := false
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		deck, err := s.decks.GetByID(txCtx, deckID)
		if err != nil {
			return fmt.Errorf("get deck: %w", err)
		}
		if domain.SameParent(deck.CategoryID, targetCategoryID) {
			return nil
		}
		if targetCategoryID != nil {
			if _, err := s.categories.GetByID(txCtx, *targetCategoryID); err != nil {
				return fmt.Errorf("get target category: %w", err)
			}
		}
		if err := s.checkDeckName(txCtx, targetCategoryID, deck.Name, deck.ID); err != nil {
			return err
		}
		if err := s.decks.UpdateCategory(txCtx, deckID, targetCategoryID, s.now()); err != nil {
			return fmt.Errorf("move deck: %w",
				nameConflict(err, domain.EntityTypeDeck, deck.Name, targetCategoryID))
		}
		moved = true
		return nil
	})
	if err != nil {
		return err
	}

	if moved {
		s.log.InfoContext(ctx, "deck moved",
			slog.String("deck_id", deckID.String()),
			slog.String("target", parentString(targetCategoryID)),
		)
	}
	return nil
}

func parentString(id *uuid.UUID) string {
	if id == nil {
		return "root"
	}
	return id.String()
}
