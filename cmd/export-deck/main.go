// Command export-deck writes one deck to a portable JSON or CSV file.
//
// Flags:
//
//	--deck    id of the deck to export (required)
//	--format  json or csv (default: json)
//	--out     output path (default: derived from the deck name)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/app"
	"github.com/heartmarshall/cardbox/internal/config"
	"github.com/heartmarshall/cardbox/internal/domain"
	"github.com/heartmarshall/cardbox/internal/service/impex"
	"github.com/heartmarshall/cardbox/pkg/ctxutil"
)

func main() {
	deckFlag := flag.String("deck", "", "id of the deck to export")
	formatFlag := flag.String("format", string(domain.ExportFormatJSON), "json or csv")
	outFlag := flag.String("out", "", "output path (default: derived from the deck name)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if err := exportDeck(cfg, logger, *deckFlag, *formatFlag, *outFlag); err != nil {
		logger.Error("export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// exportDeck owns every resource of the invocation, so that main can exit
// only after they are released.
func exportDeck(cfg *config.Config, logger *slog.Logger, deckArg, formatArg, out string) error {
	deckID, err := uuid.Parse(deckArg)
	if err != nil {
		return fmt.Errorf("invalid --deck %q: %w", deckArg, err)
	}
	format := domain.ExportFormat(formatArg)
	if !format.IsValid() {
		return fmt.Errorf("invalid --format %q", formatArg)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	ctx = ctxutil.WithOperation(ctxutil.WithRunID(ctx, uuid.NewString()), "export-deck")

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	if err := run(ctx, a, deckID, format, out); err != nil {
		return fmt.Errorf("deck %s: %w", deckID, err)
	}
	return nil
}

func run(ctx context.Context, a *app.App, deckID uuid.UUID, format domain.ExportFormat, out string) error {
	deck, err := a.Library.GetDeck(ctx, deckID)
	if err != nil {
		return err
	}
	if out == "" {
		out = impex.ExportFileName(deck, format)
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	switch format {
	case domain.ExportFormatCSV:
		err = a.Impex.ExportCSV(ctx, deckID, f)
	default:
		err = a.Impex.ExportJSON(ctx, deckID, f)
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(out)
		return err
	}

	fmt.Println(out)
	return nil
}
