// Command tree prints the category and deck hierarchy with recursive card
// counts.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/app"
	"github.com/heartmarshall/cardbox/internal/config"
	"github.com/heartmarshall/cardbox/internal/domain"
	"github.com/heartmarshall/cardbox/internal/service/library"
	"github.com/heartmarshall/cardbox/pkg/ctxutil"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if err := run(cfg, logger, os.Stdout); err != nil {
		logger.Error("print tree failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, w io.Writer) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	ctx = ctxutil.WithOperation(ctxutil.WithRunID(ctx, uuid.NewString()), "tree")

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	outline, err := a.Library.Outline(ctx)
	if err != nil {
		return fmt.Errorf("load outline: %w", err)
	}

	for _, node := range outline.Categories {
		printNode(w, node, 0)
	}
	for _, d := range outline.Decks {
		printDeck(w, d, 0)
	}
	return nil
}

func printNode(w io.Writer, node *library.Node, depth int) {
	fmt.Fprintf(w, "%s%s/ (%d)\n", strings.Repeat("  ", depth), node.Category.Name, node.TotalCards)
	for _, child := range node.Children {
		printNode(w, child, depth+1)
	}
	for _, d := range node.Decks {
		printDeck(w, d, depth+1)
	}
}

func printDeck(w io.Writer, d *domain.Deck, depth int) {
	fmt.Fprintf(w, "%s%s (%d)\n", strings.Repeat("  ", depth), d.Name, d.CardCount)
}
