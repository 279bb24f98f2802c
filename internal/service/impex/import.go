package impex

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// importRecord is one incoming card before its media is stored. Binary
// fields hold base64 text as found in the file.
type importRecord struct {
	front, back       string
	frontRTF, backRTF string
	frontImages       []string
	backImages        []string
	frontAudio        []string
	backAudio         []string
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Import reads a JSON or CSV deck file and adds its cards to deckID.
// Records whose front text matches a card already in the deck are skipped.
// Everything is stored in one transaction; on failure the media files saved
// so far are deleted again.
func (s *Service) Import(ctx context.Context, deckID uuid.UUID, filename string, r io.Reader) (*ImportResult, error) {
	format, ok := FormatFromFileName(filename)
	if !ok {
		return nil, fmt.Errorf("import %s: %w", filename, domain.ErrInvalidFormat)
	}

	data, err := s.readLimited(r)
	if err != nil {
		return nil, err
	}

	var (
		records []importRecord
		skipped int
	)
	switch format {
	case domain.ExportFormatCSV:
		records, skipped, err = parseCSV(data)
	case domain.ExportFormatJSON:
		records, err = parseJSON(data)
	}
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Skipped: skipped}
	var saved []string
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.decks.GetByID(txCtx, deckID); err != nil {
			return fmt.Errorf("get deck: %w", err)
		}

		fronts, err := s.cards.FrontTextsByDeck(txCtx, deckID)
		if err != nil {
			return fmt.Errorf("list existing fronts: %w", err)
		}
		existing := make(map[string]struct{}, len(fronts))
		for _, front := range fronts {
			existing[domain.NormalizeFront(front)] = struct{}{}
		}

		start := s.now()
		for i, rec := range records {
			if err := txCtx.Err(); err != nil {
				return err
			}
			if _, dup := existing[domain.NormalizeFront(rec.front)]; dup {
				result.Skipped++
				continue
			}

			card := s.buildCard(txCtx, deckID, rec, &saved)
			card.CreatedAt = start.Add(time.Duration(i) * time.Millisecond)
			card.UpdatedAt = card.CreatedAt
			if err := s.cards.Create(txCtx, card); err != nil {
				return fmt.Errorf("create card: %w", err)
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		for _, ref := range saved {
			if delErr := s.media.Delete(ref); delErr != nil {
				s.log.WarnContext(ctx, "remove media of failed import",
					slog.String("ref", ref),
					slog.String("error", delErr.Error()),
				)
			}
		}
		return nil, fmt.Errorf("import %s: %w", filename, err)
	}

	s.log.InfoContext(ctx, "deck imported",
		slog.String("deck_id", deckID.String()),
		slog.String("format", format.String()),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
	)
	return result, nil
}

func (s *Service) readLimited(r io.Reader) ([]byte, error) {
	limit := s.importCfg.MaxFileBytes
	if limit <= 0 {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("read import file: %w", err)
		}
		return data, nil
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, domain.NewValidationError("file", fmt.Sprintf("larger than %d bytes", limit))
	}
	return data, nil
}

// buildCard stores the record's attachments and returns the card to insert.
// Every saved filename is appended to saved. An attachment that cannot be
// decoded or saved is dropped.
func (s *Service) buildCard(ctx context.Context, deckID uuid.UUID, rec importRecord, saved *[]string) *domain.Card {
	card := &domain.Card{
		ID:           uuid.New(),
		DeckID:       deckID,
		MediaVersion: domain.MediaVersionCurrent,
	}
	store := func(field string, payloads []string) []string {
		refs := make([]string, 0, len(payloads))
		for _, payload := range payloads {
			data, err := base64.StdEncoding.DecodeString(payload)
			if err != nil {
				s.warnAttachment(ctx, card.ID, field, err)
				continue
			}
			ref, err := s.media.Save(data)
			if err != nil {
				s.warnAttachment(ctx, card.ID, field, err)
				continue
			}
			*saved = append(*saved, ref)
			refs = append(refs, ref)
		}
		return refs
	}
	decodeRTF := func(field, payload string) []byte {
		if payload == "" {
			return nil
		}
		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			s.warnAttachment(ctx, card.ID, field, err)
			return nil
		}
		return data
	}

	card.Front = domain.CardSide{
		Text:     rec.front,
		RichText: decodeRTF("frontRTFBase64", rec.frontRTF),
		Images:   store("frontImages", rec.frontImages),
		Audio:    store("frontAudios", rec.frontAudio),
	}
	card.Back = domain.CardSide{
		Text:     rec.back,
		RichText: decodeRTF("backRTFBase64", rec.backRTF),
		Images:   store("backImages", rec.backImages),
		Audio:    store("backAudios", rec.backAudio),
	}
	card.LinkedCardIDs = domain.ExtractLinkIDs(card.Front.Text, card.Back.Text)
	return card
}

func (s *Service) warnAttachment(ctx context.Context, cardID uuid.UUID, field string, err error) {
	s.log.WarnContext(ctx, "skip attachment",
		slog.String("card_id", cardID.String()),
		slog.String("field", field),
		slog.String("error", err.Error()),
	)
}

// parseCSV returns the usable rows of a CSV file and the number of rows it
// dropped. A first row containing a header word is not counted.
func parseCSV(data []byte) ([]importRecord, int, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, 0, domain.ErrEmptyFile
	}
	if !utf8.Valid(data) {
		return nil, 0, fmt.Errorf("csv is not utf-8: %w", domain.ErrInvalidFormat)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	// Hand-edited files often carry bare quotes inside unquoted fields.
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", domain.ErrInvalidFormat, err)
	}

	if len(rows) > 0 && isHeader(rows[0]) {
		rows = rows[1:]
	}

	var (
		records []importRecord
		skipped int
	)
	for _, row := range rows {
		if len(row) < 2 {
			skipped++
			continue
		}
		front := strings.TrimSpace(row[0])
		if front == "" {
			skipped++
			continue
		}
		records = append(records, importRecord{front: front, back: strings.TrimSpace(row[1])})
	}
	return records, skipped, nil
}

func isHeader(row []string) bool {
	for _, cell := range row {
		if _, ok := headerWords[strings.ToLower(strings.TrimSpace(cell))]; ok {
			return true
		}
	}
	return false
}

// parseJSON decodes an exported deck document. Decode failures are returned
// as is.
func parseJSON(data []byte) ([]importRecord, error) {
	var doc deckDocument
	if err := json.Unmarshal(bytes.TrimPrefix(data, utf8BOM), &doc); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if doc.Version > FormatVersion {
		return nil, fmt.Errorf("deck file version %d: %w", doc.Version, domain.ErrInvalidFormat)
	}

	records := make([]importRecord, 0, len(doc.Cards))
	for _, c := range doc.Cards {
		records = append(records, importRecord{
			front:       c.FrontText,
			back:        c.BackText,
			frontRTF:    c.FrontRTFBase64,
			backRTF:     c.BackRTFBase64,
			frontImages: c.FrontImages,
			backImages:  c.BackImages,
			frontAudio:  c.FrontAudios,
			backAudio:   c.BackAudios,
		})
	}
	return records, nil
}

// IsFormatError reports whether err means the file itself could not be used.
func IsFormatError(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.Is(err, domain.ErrInvalidFormat) ||
		errors.Is(err, domain.ErrEmptyFile) ||
		errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr)
}
