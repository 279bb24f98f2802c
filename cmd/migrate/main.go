// Command migrate applies pending schema migrations and then upgrades any
// cards still stored in the legacy media layout.
//
// Flags:
//
//	--skip-media  apply schema migrations only
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

	"github.com/heartmarshall/cardbox/internal/adapter/filestore"
	"github.com/heartmarshall/cardbox/internal/adapter/postgres"
	"github.com/heartmarshall/cardbox/internal/adapter/postgres/card"
	"github.com/heartmarshall/cardbox/internal/app"
	"github.com/heartmarshall/cardbox/internal/config"
	"github.com/heartmarshall/cardbox/internal/service/mediaupgrade"
	"github.com/heartmarshall/cardbox/pkg/ctxutil"
)

func main() {
	skipMedia := flag.Bool("skip-media", false, "apply schema migrations only")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if err := run(cfg, logger, *skipMedia); err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, skipMedia bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()
	ctx = ctxutil.WithOperation(ctxutil.WithRunID(ctx, uuid.NewString()), "migrate")

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	version, err := postgres.Migrate(ctx, pool, logger)
	if err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	logger.InfoContext(ctx, "schema up to date", slog.Int64("version", version))

	if skipMedia {
		return nil
	}

	media, err := filestore.New(cfg.Media.Dir)
	if err != nil {
		return fmt.Errorf("open media store: %w", err)
	}

	upgrader := mediaupgrade.NewService(logger, card.New(pool), media, postgres.NewTxManager(pool), cfg.Media)
	result, err := upgrader.Run(ctx)
	if err != nil {
		return fmt.Errorf("upgrade legacy media: %w", err)
	}

	logger.InfoContext(ctx, "media upgrade completed",
		slog.Int("cards", result.Cards),
		slog.Int("images_saved", result.ImagesSaved),
		slog.Int("audio_adopted", result.AudioAdopted),
	)
	return nil
}
