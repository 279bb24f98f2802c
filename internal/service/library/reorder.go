package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// ReorderDecks assigns creation timestamps so that listing the decks returns
// them in the order of orderedIDs. All decks must share one parent.
func (s *Service) ReorderDecks(ctx context.Context, orderedIDs []uuid.UUID) error {
	if len(orderedIDs) == 0 {
		return nil
	}
	if err := validateOrder(orderedIDs); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var parent *uuid.UUID
		for i, id := range orderedIDs {
			deck, err := s.decks.GetByID(txCtx, id)
			if err != nil {
				return fmt.Errorf("get deck: %w", err)
			}
			if i == 0 {
				parent = deck.CategoryID
			} else if !domain.SameParent(parent, deck.CategoryID) {
				return domain.NewValidationError("ordered_ids", "decks must share one parent")
			}
		}
		for i, id := range orderedIDs {
			if err := s.decks.UpdateCreatedAt(txCtx, id, domain.OrderTimestamp(i)); err != nil {
				return fmt.Errorf("reorder deck: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "decks reordered", slog.Int("count", len(orderedIDs)))
	return nil
}

func validateOrder(ids []uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return domain.NewValidationError("ordered_ids", "contains empty id")
		}
		if _, dup := seen[id]; dup {
			return domain.NewValidationError("ordered_ids", "contains duplicates")
		}
		seen[id] = struct{}{}
	}
	return nil
}
