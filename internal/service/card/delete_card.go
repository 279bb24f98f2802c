package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// DeleteCard removes a card and then deletes its media files.
func (s *Service) DeleteCard(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return domain.NewValidationError("card_id", "required")
	}

	var refs []string
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		card, err := s.cards.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}
		refs = card.MediaRefs()
		if err := s.cards.Delete(txCtx, id); err != nil {
			return fmt.Errorf("delete card: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.deleteMedia(ctx, refs)

	s.log.InfoContext(ctx, "card deleted",
		slog.String("card_id", id.String()),
		slog.Int("media_files", len(refs)),
	)
	return nil
}
