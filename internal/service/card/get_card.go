package card

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// GetCard returns a card by id.
func (s *Service) GetCard(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	card, err := s.cards.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	return card, nil
}

// ListCards returns the cards of a deck, oldest first.
func (s *Service) ListCards(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error) {
	if _, err := s.decks.GetByID(ctx, deckID); err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}
	cards, err := s.cards.ListByDeck(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}
