package library

import (
	"context"
	"fmt"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// Node is one category of an Outline with its contents.
type Node struct {
	Category   *domain.Category
	Children   []*Node
	Decks      []*domain.Deck
	TotalCards int
}

// Outline is the whole content tree: root categories and root-level decks.
type Outline struct {
	Categories []*Node
	Decks      []*domain.Deck
}

// Outline loads the full tree. TotalCards of each node sums the card counts
// of its decks and of all its descendants.
func (s *Service) Outline(ctx context.Context) (*Outline, error) {
	roots, err := s.categories.ListChildren(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list root categories: %w", err)
	}
	decks, err := s.decks.ListByCategory(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list root decks: %w", err)
	}

	out := &Outline{Decks: decks}
	for _, category := range roots {
		node, err := s.buildNode(ctx, category)
		if err != nil {
			return nil, err
		}
		out.Categories = append(out.Categories, node)
	}
	return out, nil
}

func (s *Service) buildNode(ctx context.Context, category *domain.Category) (*Node, error) {
	node := &Node{Category: category}

	decks, err := s.decks.ListByCategory(ctx, &category.ID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	node.Decks = decks
	for _, d := range decks {
		node.TotalCards += d.CardCount
	}

	children, err := s.categories.ListChildren(ctx, &category.ID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	for _, child := range children {
		childNode, err := s.buildNode(ctx, child)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, childNode)
		node.TotalCards += childNode.TotalCards
	}
	return node, nil
}
