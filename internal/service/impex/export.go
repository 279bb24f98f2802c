package impex

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// ExportJSON writes a deck with its cards, rich text and media to w.
// Images are re-encoded to JPEG; media that cannot be read is left out.
func (s *Service) ExportJSON(ctx context.Context, deckID uuid.UUID, w io.Writer) error {
	deck, err := s.decks.GetByID(ctx, deckID)
	if err != nil {
		return fmt.Errorf("get deck: %w", err)
	}
	cards, err := s.cards.ListByDeck(ctx, deckID)
	if err != nil {
		return fmt.Errorf("list cards: %w", err)
	}

	records := make([]cardRecord, len(cards))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(s.exportCfg.Workers, 1))
	for i, card := range cards {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records[i] = s.exportCard(gctx, card)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("export cards: %w", err)
	}

	doc := deckDocument{
		Version:    FormatVersion,
		ExportDate: s.now().UTC().Truncate(time.Second).Format(time.RFC3339),
		Name:       deck.Name,
		Icon:       deck.Icon,
		ColorHex:   deck.ColorHex,
		Cards:      records,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	s.log.InfoContext(ctx, "deck exported",
		slog.String("deck_id", deckID.String()),
		slog.String("format", domain.ExportFormatJSON.String()),
		slog.Int("cards", len(records)),
	)
	return nil
}

func (s *Service) exportCard(ctx context.Context, card *domain.Card) cardRecord {
	return cardRecord{
		FrontText:      card.Front.Text,
		BackText:       card.Back.Text,
		FrontRTFBase64: encodeBlob(card.Front.RichText),
		BackRTFBase64:  encodeBlob(card.Back.RichText),
		FrontImages:    s.exportMedia(ctx, card.ID, card.Front.Images, true),
		BackImages:     s.exportMedia(ctx, card.ID, card.Back.Images, true),
		FrontAudios:    s.exportMedia(ctx, card.ID, card.Front.Audio, false),
		BackAudios:     s.exportMedia(ctx, card.ID, card.Back.Audio, false),
	}
}

// exportMedia loads refs and returns them base64-encoded. The result is never
// nil so that the JSON arrays are always present.
func (s *Service) exportMedia(ctx context.Context, cardID uuid.UUID, refs []string, image bool) []string {
	out := make([]string, 0, len(refs))
	for _, ref := range refs {
		data, err := s.media.Load(ref)
		if err != nil {
			s.log.WarnContext(ctx, "skip unreadable media",
				slog.String("card_id", cardID.String()),
				slog.String("ref", ref),
				slog.String("error", err.Error()),
			)
			continue
		}
		if image {
			encoded, err := s.images.Encode(data)
			if err != nil {
				s.log.WarnContext(ctx, "export original image bytes",
					slog.String("card_id", cardID.String()),
					slog.String("ref", ref),
					slog.String("error", err.Error()),
				)
			} else {
				data = encoded
			}
		}
		out = append(out, base64.StdEncoding.EncodeToString(data))
	}
	return out
}

func encodeBlob(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}

// ExportCSV writes the plain front and back text of every card to w.
func (s *Service) ExportCSV(ctx context.Context, deckID uuid.UUID, w io.Writer) error {
	if _, err := s.decks.GetByID(ctx, deckID); err != nil {
		return fmt.Errorf("get deck: %w", err)
	}
	cards, err := s.cards.ListByDeck(ctx, deckID)
	if err != nil {
		return fmt.Errorf("list cards: %w", err)
	}

	if _, err := io.WriteString(w, csvHeader+"\n"); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	for _, card := range cards {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := csvQuote(card.Front.Text) + "," + csvQuote(card.Back.Text) + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
	}

	s.log.InfoContext(ctx, "deck exported",
		slog.String("deck_id", deckID.String()),
		slog.String("format", domain.ExportFormatCSV.String()),
		slog.Int("cards", len(cards)),
	)
	return nil
}
