package card

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

type cardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)
	ListByDeck(ctx context.Context, deckID uuid.UUID) ([]*domain.Card, error)
	ListIDsByDeck(ctx context.Context, deckID uuid.UUID) ([]uuid.UUID, error)
	Create(ctx context.Context, c *domain.Card) error
	Update(ctx context.Context, c *domain.Card) error
	UpdateDeck(ctx context.Context, id, deckID uuid.UUID, now time.Time) error
	UpdateCreatedAt(ctx context.Context, id uuid.UUID, createdAt time.Time) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type deckRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Deck, error)
}

type mediaStore interface {
	Delete(ref string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages cards and the links between them.
type Service struct {
	cards cardRepo
	decks deckRepo
	media mediaStore
	tx    txManager
	log   *slog.Logger
	now   func() time.Time
}

// NewService creates a new Card service.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	decks deckRepo,
	media mediaStore,
	tx txManager,
) *Service {
	return &Service{
		cards: cards,
		decks: decks,
		media: media,
		tx:    tx,
		log:   log.With("service", "card"),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// deleteMedia removes files no longer referenced after a commit.
func (s *Service) deleteMedia(ctx context.Context, refs []string) {
	for _, ref := range refs {
		if err := s.media.Delete(ref); err != nil {
			s.log.WarnContext(ctx, "delete media file",
				slog.String("ref", ref),
				slog.String("error", err.Error()),
			)
		}
	}
}
