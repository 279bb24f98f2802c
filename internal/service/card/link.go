package card

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// InsertLink returns text with a link to targetID appended. The target must
// exist at insertion time.
func (s *Service) InsertLink(ctx context.Context, text string, targetID uuid.UUID) (string, error) {
	target, err := s.cards.GetByID(ctx, targetID)
	if err != nil {
		return "", fmt.Errorf("get link target: %w", err)
	}
	return domain.AppendCardLink(text, target), nil
}

// ResolveLink looks up the card a link reference points at. Malformed
// references and dangling links report ok=false with a nil error.
func (s *Service) ResolveLink(ctx context.Context, reference string) (*domain.Card, bool, error) {
	id, ok := domain.ParseCardLink(reference)
	if !ok {
		return nil, false, nil
	}
	card, err := s.cards.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("resolve link: %w", err)
	}
	return card, true, nil
}

// LinkedCards returns the existing targets of a card's links in link order.
// Dangling entries are skipped.
func (s *Service) LinkedCards(ctx context.Context, cardID uuid.UUID) ([]*domain.Card, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	linked := make([]*domain.Card, 0, len(card.LinkedCardIDs))
	for _, id := range card.LinkedCardIDs {
		target, ok, err := s.ResolveLink(ctx, domain.CardLinkRef(id))
		if err != nil {
			return nil, err
		}
		if ok {
			linked = append(linked, target)
		}
	}
	return linked, nil
}
