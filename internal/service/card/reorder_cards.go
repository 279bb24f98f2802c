package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// ReorderCards assigns creation timestamps so that ListCards returns the
// cards in the order of orderedIDs. Every id must be a card of deckID.
func (s *Service) ReorderCards(ctx context.Context, deckID uuid.UUID, orderedIDs []uuid.UUID) error {
	if deckID == uuid.Nil {
		return domain.NewValidationError("deck_id", "required")
	}
	if len(orderedIDs) == 0 {
		return nil
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.decks.GetByID(txCtx, deckID); err != nil {
			return fmt.Errorf("get deck: %w", err)
		}
		ids, err := s.cards.ListIDsByDeck(txCtx, deckID)
		if err != nil {
			return fmt.Errorf("list card ids: %w", err)
		}
		members := make(map[uuid.UUID]struct{}, len(ids))
		for _, id := range ids {
			members[id] = struct{}{}
		}

		seen := make(map[uuid.UUID]struct{}, len(orderedIDs))
		for _, id := range orderedIDs {
			if _, ok := members[id]; !ok {
				return domain.NewValidationError("ordered_ids", fmt.Sprintf("card %s is not in deck", id))
			}
			if _, dup := seen[id]; dup {
				return domain.NewValidationError("ordered_ids", "contains duplicates")
			}
			seen[id] = struct{}{}
		}

		for i, id := range orderedIDs {
			if err := s.cards.UpdateCreatedAt(txCtx, id, domain.OrderTimestamp(i)); err != nil {
				return fmt.Errorf("reorder card: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "cards reordered",
		slog.String("deck_id", deckID.String()),
		slog.Int("count", len(orderedIDs)),
	)
	return nil
}
