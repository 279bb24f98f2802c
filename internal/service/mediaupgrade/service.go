// Package mediaupgrade converts cards stored with legacy media columns to
// the current media lists.
//
// A legacy card keeps at most one raw image blob per side and refers to audio
// by absolute path under an older storage root. Upgrading saves each blob as
// a media file, turns every audio path into a bare filename (copying the file
// into the media directory when only the old copy exists) and marks the card
// as domain.MediaVersionCurrent.
package mediaupgrade

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/config"
	"github.com/heartmarshall/cardbox/internal/domain"
)

type cardRepo interface {
	ListLegacyMedia(ctx context.Context, limit int) ([]domain.LegacyCardMedia, error)
	SaveUpgradedMedia(ctx context.Context, id uuid.UUID, params domain.CardMediaParams, now time.Time) error
}

type mediaStore interface {
	Save(data []byte) (string, error)
	Adopt(ref string) (string, error)
	Delete(ref string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const defaultBatchSize = 100

// Result counts the work done by Run.
type Result struct {
	Cards        int
	ImagesSaved  int
	AudioAdopted int
}

// Service runs the legacy media upgrade.
type Service struct {
	cards cardRepo
	media mediaStore
	tx    txManager
	log   *slog.Logger
	batch int
	now   func() time.Time
}

// NewService creates a new media upgrade service.
func NewService(log *slog.Logger, cards cardRepo, media mediaStore, tx txManager, cfg config.MediaConfig) *Service {
	batch := cfg.UpgradeBatch
	if batch <= 0 {
		batch = defaultBatchSize
	}
	return &Service{
		cards: cards,
		media: media,
		tx:    tx,
		log:   log.With("service", "mediaupgrade"),
		batch: batch,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Run upgrades every legacy card, one transaction per card. It stops at the
// first card that cannot be upgraded and returns the counts reached so far.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	result := &Result{}
	for {
		batch, err := s.cards.ListLegacyMedia(ctx, s.batch)
		if err != nil {
			return result, fmt.Errorf("list legacy media: %w", err)
		}
		if len(batch) == 0 {
			break
		}
		for _, legacy := range batch {
			if err := ctx.Err(); err != nil {
				return result, err
			}
			if err := s.upgradeCard(ctx, legacy, result); err != nil {
				return result, fmt.Errorf("upgrade card %s: %w", legacy.CardID, err)
			}
			result.Cards++
		}
	}

	if result.Cards > 0 {
		s.log.InfoContext(ctx, "legacy media upgraded",
			slog.Int("cards", result.Cards),
			slog.Int("images_saved", result.ImagesSaved),
			slog.Int("audio_adopted", result.AudioAdopted),
		)
	}
	return result, nil
}

func (s *Service) upgradeCard(ctx context.Context, legacy domain.LegacyCardMedia, result *Result) error {
	var saved []string
	saveBlob := func(images []string, blob []byte) ([]string, error) {
		if len(blob) == 0 {
			return images, nil
		}
		ref, err := s.media.Save(blob)
		if err != nil {
			return nil, fmt.Errorf("save image: %w", err)
		}
		saved = append(saved, ref)
		return append(images, ref), nil
	}

	params := domain.CardMediaParams{}
	var err error
	if params.FrontImages, err = saveBlob(s.normalizeAll(ctx, legacy.CardID, legacy.FrontImages, nil), legacy.FrontImageData); err != nil {
		s.discard(ctx, saved)
		return err
	}
	if params.BackImages, err = saveBlob(s.normalizeAll(ctx, legacy.CardID, legacy.BackImages, nil), legacy.BackImageData); err != nil {
		s.discard(ctx, saved)
		return err
	}
	adopted := 0
	params.FrontAudio = s.normalizeAll(ctx, legacy.CardID, appendPath(legacy.FrontAudio, legacy.FrontAudioPath), &adopted)
	params.BackAudio = s.normalizeAll(ctx, legacy.CardID, appendPath(legacy.BackAudio, legacy.BackAudioPath), &adopted)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.cards.SaveUpgradedMedia(txCtx, legacy.CardID, params, s.now())
	})
	if err != nil {
		s.discard(ctx, saved)
		return fmt.Errorf("save upgraded media: %w", err)
	}

	result.ImagesSaved += len(saved)
	result.AudioAdopted += adopted
	return nil
}

// normalizeAll converts refs to bare filenames, adopting legacy files into
// the media directory. A file that cannot be adopted keeps its name and is
// logged. When adopted is non-nil it counts the full paths converted.
func (s *Service) normalizeAll(ctx context.Context, cardID uuid.UUID, refs []string, adopted *int) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		name, err := s.media.Adopt(ref)
		if err != nil {
			s.log.WarnContext(ctx, "legacy media file missing",
				slog.String("card_id", cardID.String()),
				slog.String("ref", ref),
				slog.String("error", err.Error()),
			)
		}
		if name == "" {
			continue
		}
		if adopted != nil && name != ref {
			*adopted++
		}
		out = append(out, name)
	}
	return out
}

func (s *Service) discard(ctx context.Context, refs []string) {
	for _, ref := range refs {
		if err := s.media.Delete(ref); err != nil {
			s.log.WarnContext(ctx, "remove media of failed upgrade",
				slog.String("ref", ref),
				slog.String("error", err.Error()),
			)
		}
	}
}

func appendPath(refs []string, path *string) []string {
	if path == nil || *path == "" {
		return refs
	}
	return append(refs, *path)
}
