package library

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// GetCategory returns a category by id.
func (s *Service) GetCategory(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	return category, nil
}

// GetDeck returns a deck by id with its card count.
func (s *Service) GetDeck(ctx context.Context, id uuid.UUID) (*domain.Deck, error) {
	deck, err := s.decks.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}
	return deck, nil
}

// ListRootCategories returns the top-level categories, oldest first.
func (s *Service) ListRootCategories(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categories.ListChildren(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list root categories: %w", err)
	}
	return categories, nil
}

// ListSubcategories returns the direct children of a category, oldest first.
func (s *Service) ListSubcategories(ctx context.Context, categoryID uuid.UUID) ([]*domain.Category, error) {
	if _, err := s.categories.GetByID(ctx, categoryID); err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	categories, err := s.categories.ListChildren(ctx, &categoryID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	return categories, nil
}

// ListDecks returns the decks of a category, or the root-level decks when
// categoryID is nil, oldest first.
func (s *Service) ListDecks(ctx context.Context, categoryID *uuid.UUID) ([]*domain.Deck, error) {
	decks, err := s.decks.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	return decks, nil
}

// TotalCardCount returns the number of cards in the category's decks plus
// those of every subcategory, recursively.
func (s *Service) TotalCardCount(ctx context.Context, categoryID uuid.UUID) (int, error) {
	categoryIDs, err := s.categories.ListDescendantIDs(ctx, categoryID)
	if err != nil {
		return 0, fmt.Errorf("list descendants: %w", err)
	}
	if len(categoryIDs) == 0 {
		return 0, fmt.Errorf("category %s: %w", categoryID, domain.ErrNotFound)
	}
	deckIDs, err := s.decks.ListIDsByCategoryIDs(ctx, categoryIDs)
	if err != nil {
		return 0, fmt.Errorf("list decks: %w", err)
	}
	if len(deckIDs) == 0 {
		return 0, nil
	}
	total, err := s.cards.CountByDeckIDs(ctx, deckIDs)
	if err != nil {
		return 0, fmt.Errorf("count cards: %w", err)
	}
	return total, nil
}

// Breadcrumb returns the names on the path to a deck, from the outermost
// category down to the deck itself.
func (s *Service) Breadcrumb(ctx context.Context, deckID uuid.UUID) ([]string, error) {
	deck, err := s.decks.GetByID(ctx, deckID)
	if err != nil {
		return nil, fmt.Errorf("get deck: %w", err)
	}

	path := []string{deck.Name}
	visited := make(map[uuid.UUID]struct{})
	for parent := deck.CategoryID; parent != nil; {
		if _, seen := visited[*parent]; seen {
			return nil, fmt.Errorf("category %s: parent chain loops", *parent)
		}
		visited[*parent] = struct{}{}

		category, err := s.categories.GetByID(ctx, *parent)
		if err != nil {
			return nil, fmt.Errorf("get category: %w", err)
		}
		path = append(path, category.Name)
		parent = category.ParentID
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// BreadcrumbPath is Breadcrumb joined with domain.BreadcrumbSeparator.
func (s *Service) BreadcrumbPath(ctx context.Context, deckID uuid.UUID) (string, error) {
	path, err := s.Breadcrumb(ctx, deckID)
	if err != nil {
		return "", err
	}
	return strings.Join(path, domain.BreadcrumbSeparator), nil
}
