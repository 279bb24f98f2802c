// Command cleanup-media removes files from the media directory that no card
// references anymore. It is intended to be invoked by an external cron job.
//
// Flags:
//
//	--dry-run  list orphaned files without deleting them
//	--min-age  only remove files older than this (default: 1h)
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
	"github.com/heartmarshall/cardbox/internal/app"
	"github.com/heartmarshall/cardbox/internal/config"
	"github.com/heartmarshall/cardbox/pkg/ctxutil"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "list orphaned files without deleting them")
	minAge := flag.Duration("min-age", time.Hour, "only remove files older than this")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	if err := run(cfg, logger, *dryRun, *minAge); err != nil {
		logger.Error("media cleanup failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, dryRun bool, minAge time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	ctx = ctxutil.WithOperation(ctxutil.WithRunID(ctx, uuid.NewString()), "cleanup-media")

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}
	defer a.Close()

	files, err := a.Media.List(ctx)
	if err != nil {
		return fmt.Errorf("list media: %w", err)
	}
	refs, err := a.CardRepo.AllMediaRefs(ctx)
	if err != nil {
		return fmt.Errorf("load media refs: %w", err)
	}

	cutoff := time.Now().Add(-minAge)
	orphans := filestore.Orphans(files, refs, cutoff)

	var removed int
	var freed int64
	for _, f := range orphans {
		if dryRun {
			logger.InfoContext(ctx, "orphaned file", slog.String("name", f.Name), slog.Int64("size", f.Size))
			continue
		}
		if err := a.Media.Delete(f.Name); err != nil {
			logger.WarnContext(ctx, "delete orphaned file",
				slog.String("name", f.Name),
				slog.String("error", err.Error()),
			)
			continue
		}
		removed++
		freed += f.Size
	}

	logger.InfoContext(ctx, "media cleanup completed",
		slog.Bool("dry_run", dryRun),
		slog.Int("scanned", len(files)),
		slog.Int("orphaned", len(orphans)),
		slog.Int("removed", removed),
		slog.Int64("bytes_freed", freed),
		slog.Time("cutoff", cutoff),
	)
	return nil
}
