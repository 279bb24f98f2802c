package library

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// CreateCategoryInput holds the parameters for creating a category.
// Empty Icon and ColorHex fall back to the defaults.
type CreateCategoryInput struct {
	Name     string
	Icon     string
	ColorHex string
	ParentID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateCategoryInput) Validate() error {
	errs := validateName(nil, i.Name)
	errs = validateColor(errs, i.ColorHex)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CreateDeckInput holds the parameters for creating a deck.
// A nil CategoryID places the deck at the root level.
type CreateDeckInput struct {
	Name       string
	Icon       string
	ColorHex   string
	CategoryID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateDeckInput) Validate() error {
	errs := validateName(nil, i.Name)
	errs = validateColor(errs, i.ColorHex)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateCategoryInput holds the parameters for updating a category.
// Nil fields are left unchanged.
type UpdateCategoryInput struct {
	CategoryID uuid.UUID
	Name       *string
	Icon       *string
	ColorHex   *string
}

// Validate checks all fields and collects all errors.
func (i UpdateCategoryInput) Validate() error {
	return validateUpdate("category_id", i.CategoryID, i.Name, i.Icon, i.ColorHex)
}

// UpdateDeckInput holds the parameters for updating a deck.
type UpdateDeckInput struct {
	DeckID   uuid.UUID
	Name     *string
	Icon     *string
	ColorHex *string
}

// Validate checks all fields and collects all errors.
func (i UpdateDeckInput) Validate() error {
	return validateUpdate("deck_id", i.DeckID, i.Name, i.Icon, i.ColorHex)
}

func validateUpdate(idField string, id uuid.UUID, name, icon, color *string) error {
	var errs []domain.FieldError
	if id == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: idField, Message: "required"})
	}
	if name == nil && icon == nil && color == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if name != nil {
		errs = validateName(errs, *name)
	}
	if icon != nil && strings.TrimSpace(*icon) == "" {
		errs = append(errs, domain.FieldError{Field: "icon", Message: "required"})
	}
	if color != nil && !domain.IsHexColor(normalizeColor(*color)) {
		errs = append(errs, domain.FieldError{Field: "color_hex", Message: "must be 6 hex digits"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	return errs
}

// validateColor accepts an empty value, which is replaced with
// domain.DefaultColorHex on create.
func validateColor(errs []domain.FieldError, color string) []domain.FieldError {
	if c := normalizeColor(color); c != "" && !domain.IsHexColor(c) {
		errs = append(errs, domain.FieldError{Field: "color_hex", Message: "must be 6 hex digits"})
	}
	return errs
}

// normalizeColor trims an optional leading '#' and uppercases the digits.
func normalizeColor(color string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(color), "#"))
}

func iconOrDefault(icon, fallback string) string {
	if icon = strings.TrimSpace(icon); icon == "" {
		return fallback
	}
	return icon
}

func colorOrDefault(color string) string {
	if color = normalizeColor(color); color == "" {
		return domain.DefaultColorHex
	}
	return color
}
