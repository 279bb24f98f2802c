// Package impex moves decks in and out of portable JSON and CSV files.
package impex

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/config"
	"github.com/heartmarshall/cardbox/internal/domain"
)

type deckRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
}

type cardRepo interface {
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error)
	FrontTextsByDeck(ctx context.Context, deckID uuid.UUID) ([]string, error)
	Create(ctx context.Context, c *domain.Card) error
}

type mediaStore interface {
	Save(data []byte) (string, error)
	Load(ref string) ([]byte, error)
	Delete(ref string) error
}

type imageEncoder interface {
	Encode(data []byte) ([]byte, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ImportResult reports the outcome of an import. Skipped counts records that
// were read but not stored: duplicates of existing cards and unusable rows.
type ImportResult struct {
	Imported int
	Skipped  int
}

// Service implements deck import and export.
type Service struct {
	decks     deckRepo
	cards     cardRepo
	media     mediaStore
	images    imageEncoder
	tx        txManager
	log       *slog.Logger
	importCfg config.ImportConfig
	exportCfg config.ExportConfig
	now       func() time.Time
}

// NewService creates a new Import/Export service.
func NewService(
	log *slog.Logger,
	decks deckRepo,
	cards cardRepo,
	media mediaStore,
	images imageEncoder,
	tx txManager,
	importCfg config.ImportConfig,
	exportCfg config.ExportConfig,
) *Service {
	return &Service{
		decks:     decks,
		cards:     cards,
		media:     media,
		images:    images,
		tx:        tx,
		log:       log.With("service", "impex"),
		importCfg: importCfg,
		exportCfg: exportCfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}
