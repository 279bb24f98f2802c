package card

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// CreateCard adds a card to a deck. The link list is derived from the link
// markers in both sides' text.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	card := &domain.Card{
		ID:            uuid.New(),
		DeckID:        input.DeckID,
		Front:         input.Front,
		Back:          input.Back,
		LinkedCardIDs: domain.ExtractLinkIDs(input.Front.Text, input.Back.Text),
		MediaVersion:  domain.MediaVersionCurrent,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.decks.GetByID(txCtx, input.DeckID); err != nil {
			return fmt.Errorf("get deck: %w", err)
		}
		if err := s.cards.Create(txCtx, card); err != nil {
			return fmt.Errorf("create card: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "card created",
		slog.String("card_id", card.ID.String()),
		slog.String("deck_id", card.DeckID.String()),
	)

	return card, nil
}
