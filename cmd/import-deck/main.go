// Command import-deck adds the cards of a JSON or CSV file to an existing
// deck. Cards whose front text already exists in the deck are skipped.
//
// Flags:
//
//	--deck  id of the target deck (required)
//	--file  path to a .json or .csv file (required)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/app"
	"github.com/heartmarshall/cardbox/internal/config"
	"github.com/heartmarshall/cardbox/internal/service/impex"
	"github.com/heartmarshall/cardbox/pkg/ctxutil"
)

func main() {
	deckFlag := flag.String("deck", "", "id of the target deck")
	fileFlag := flag.String("file", "", "path to a .json or .csv file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	result, err := run(cfg, logger, *deckFlag, *fileFlag)
	if err != nil {
		msg := "import failed"
		if impex.IsFormatError(err) {
			msg = "file is not a valid deck export"
		}
		logger.Error(msg,
			slog.String("file", *fileFlag),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	fmt.Printf("imported %d, skipped %d\n", result.Imported, result.Skipped)
}

func run(cfg *config.Config, logger *slog.Logger, deckArg, path string) (*impex.ImportResult, error) {
	deckID, err := uuid.Parse(deckArg)
	if err != nil {
		return nil, fmt.Errorf("invalid --deck %q: %w", deckArg, err)
	}
	if path == "" {
		return nil, errors.New("--file is required")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()
	ctx = ctxutil.WithOperation(ctxutil.WithRunID(ctx, uuid.NewString()), "import-deck")

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	return a.Impex.Import(ctx, deckID, filepath.Base(path), f)
}
