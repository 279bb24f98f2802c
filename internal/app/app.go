package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/cardbox/internal/adapter/filestore"
	"github.com/heartmarshall/cardbox/internal/adapter/postgres"
	"github.com/heartmarshall/cardbox/internal/adapter/postgres/card"
	"github.com/heartmarshall/cardbox/internal/adapter/postgres/category"
	"github.com/heartmarshall/cardbox/internal/adapter/postgres/deck"
	"github.com/heartmarshall/cardbox/internal/config"
	cardsvc "github.com/heartmarshall/cardbox/internal/service/card"
	"github.com/heartmarshall/cardbox/internal/service/impex"
	"github.com/heartmarshall/cardbox/internal/service/library"
	"github.com/heartmarshall/cardbox/internal/service/mediaupgrade"
)

// App holds the connected stores and the services built on them.
type App struct {
	Pool     *pgxpool.Pool
	Media    *filestore.Store
	CardRepo *card.Repo

	Library  *library.Service
	Cards    *cardsvc.Service
	Impex    *impex.Service
	Upgrader *mediaupgrade.Service
}

// New connects to the database and the media directory and wires all
// services. When cfg.Media.UpgradeOnStart is set, legacy card media is
// upgraded before New returns.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	media, err := filestore.New(cfg.Media.Dir)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("open media store: %w", err)
	}

	txm := postgres.NewTxManager(pool)
	categories := category.New(pool)
	decks := deck.New(pool)
	cards := card.New(pool)

	a := &App{
		Pool:     pool,
		Media:    media,
		CardRepo: cards,
		Library:  library.NewService(logger, categories, decks, cards, media, txm),
		Cards:    cardsvc.NewService(logger, cards, decks, media, txm),
		Impex: impex.NewService(logger, decks, cards, media,
			filestore.NewJPEGEncoder(cfg.Media.JPEGQuality), txm, cfg.Import, cfg.Export),
		Upgrader: mediaupgrade.NewService(logger, cards, media, txm, cfg.Media),
	}

	if cfg.Media.UpgradeOnStart {
		if _, err := a.Upgrader.Run(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("upgrade legacy media: %w", err)
		}
	}

	logger.InfoContext(ctx, "app ready",
		slog.String("version", BuildVersion()),
		slog.String("media_dir", media.Root()),
	)
	return a, nil
}

// Close releases the database pool.
func (a *App) Close() {
	a.Pool.Close()
}
