package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// DeleteCategory removes a category with all of its subcategories, decks and
// cards. Media files of the removed cards are deleted after commit.
func (s *Service) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("category_id", "required")
	}

	var (
		refs    []string
		deckIDs []uuid.UUID
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.categories.GetByID(txCtx, id); err != nil {
			return fmt.Errorf("get category: %w", err)
		}
		categoryIDs, err := s.categories.ListDescendantIDs(txCtx, id)
		if err != nil {
			return fmt.Errorf("list descendants: %w", err)
		}
		deckIDs, err = s.decks.ListIDsByCategoryIDs(txCtx, categoryIDs)
		if err != nil {
			return fmt.Errorf("list decks: %w", err)
		}
		refs, err = s.cards.MediaRefsByDeckIDs(txCtx, deckIDs)
		if err != nil {
			return fmt.Errorf("collect media: %w", err)
		}
		if err := s.categories.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete category: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.deleteMedia(ctx, refs)

	s.log.InfoContext(ctx, "category deleted",
		slog.String("category_id", id.String()),
		slog.Int("decks", len(deckIDs)),
		slog.Int("media_files", len(refs)),
	)
	return nil
}

// DeleteDeck removes a deck and its cards, then deletes their media files.
func (s *Service) DeleteDeck(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("deck_id", "required")
	}

	var refs []string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.decks.GetByID(txCtx, id); err != nil {
			return fmt.Errorf("get deck: %w", err)
		}
		var err error
		refs, err = s.cards.MediaRefsByDeckIDs(txCtx, []uuid.UUID{id})
		if err != nil {
			return fmt.Errorf("collect media: %w", err)
		}
		if err := s.decks.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete deck: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.deleteMedia(ctx, refs)

	s.log.InfoContext(ctx, "deck deleted",
		slog.String("deck_id", id.String()),
		slog.Int("media_files", len(refs)),
	)
	return nil
}
