package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// MoveCard moves a card to another deck. Moving into the current deck is a
// no-op.
func (s *Service) MoveCard(ctx context.Context, cardID, targetDeckID uuid.UUID) error {
	var errs []domain.FieldError
	if cardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if targetDeckID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "deck_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}

	moved := false
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.cards.GetByID(txCtx, cardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}
		if card.DeckID == targetDeckID {
			return nil
		}
		if _, err := s.decks.GetByID(txCtx, targetDeckID); err != nil {
			return fmt.Errorf("get target deck: %w", err)
		}
		if err := s.cards.UpdateDeck(txCtx, cardID, targetDeckID, s.now()); err != nil {
			return fmt.Errorf("move card: %w", err)
		}
		moved = true
		return nil
	})
	if err != nil {
		return err
	}

	if moved {
		s.log.InfoContext(ctx, "card moved",
			slog.String("card_id", cardID.String()),
			slog.String("deck_id", targetDeckID.String()),
		)
	}
	return nil
}
