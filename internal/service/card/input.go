package card

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// CreateCardInput holds the parameters for creating a card.
type CreateCardInput struct {
	DeckID uuid.UUID
	Front  domain.CardSide
	Back   domain.CardSide
}

// Validate checks all fields and collects all errors.
func (i CreateCardInput) Validate() error {
	if i.DeckID == uuid.Nil {
		return domain.NewValidationError("deck_id", "required")
	}
	return nil
}

// UpdateCardInput replaces one or both sides of a card. A nil side is left
// unchanged.
type UpdateCardInput struct {
	CardID uuid.UUID
	Front  *domain.CardSide
	Back   *domain.CardSide
}

// Validate checks all fields and collects all errors.
func (i UpdateCardInput) Validate() error {
	var errs []domain.FieldError
	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}
	if i.Front == nil && i.Back == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one side must be provided"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
