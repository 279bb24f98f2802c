package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// UpdateCard replaces the given sides. Media files referenced before the
// update but not after it are deleted once the change is committed.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (*domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated *domain.Card
		removed []string
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.cards.GetByID(txCtx, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}
		before := current.MediaRefs()

		if input.Front != nil {
			current.Front = *input.Front
		}
		if input.Back != nil {
			current.Back = *input.Back
		}
		current.LinkedCardIDs = domain.ExtractLinkIDs(current.Front.Text, current.Back.Text)
		current.UpdatedAt = s.now()

		if err := s.cards.Update(txCtx, current); err != nil {
			return fmt.Errorf("update card: %w", err)
		}
		updated = current
		removed = domain.MediaDiff(before, current.MediaRefs())
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.deleteMedia(ctx, removed)

	s.log.InfoContext(ctx, "card updated",
		slog.String("card_id", updated.ID.String()),
		slog.Int("media_removed", len(removed)),
	)

	return updated, nil
}
