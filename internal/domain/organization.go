package domain

import (
	"time"

	"github.com/google/uuid"
)

// BreadcrumbSeparator joins the names of a deck's location path.
const BreadcrumbSeparator = " > "

// Default icons used when the caller does not pick one.
const (
	DefaultCategoryIcon = "folder"
	DefaultDeckIcon     = "rectangle.stack"
	DefaultColorHex     = "007AFF"
)

// Category is a named folder holding decks and subcategories.
// ParentID is nil for root-level categories.
type Category struct {
	ID        uuid.UUID
	ParentID  *uuid.UUID
	Name      string
	Icon      string
	ColorHex  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool { return c.ParentID == nil }

// Deck is a named collection of cards owned by a category or by the root.
type Deck struct {
	ID         uuid.UUID
	CategoryID *uuid.UUID
	Name       string
	Icon       string
	ColorHex   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	CardCount  int // computed field, not stored in DB
}

// CategoryUpdateParams holds the optional fields for updating a category.
type CategoryUpdateParams struct {
	Name     *string
	Icon     *string
	ColorHex *string
}

// DeckUpdateParams holds the optional fields for updating a deck.
type DeckUpdateParams struct {
	Name     *string
	Icon     *string
	ColorHex *string
}

// SameParent reports whether two optional parent references point at the
// same container. Two nil values both mean the root.
func SameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// ReorderEpoch is the base timestamp written by manual reordering.
var ReorderEpoch = time.Date(2001, time.January, 1, 0, 0, 0, 0, time.UTC)

// OrderTimestamp returns the CreatedAt value for position index of a
// manually ordered list.
func OrderTimestamp(index int) time.Time {
	return ReorderEpoch.Add(time.Duration(index) * time.Second)
}
