package impex

import (
	"strings"
	"unicode"

	"github.com/heartmarshall/cardbox/internal/domain"
)

// FormatVersion is the version written into exported JSON documents.
const FormatVersion = 1

// deckDocument is the JSON export file.
type deckDocument struct {
	Version    int          `json:"version"`
	ExportDate string       `json:"exportDate"`
	Name       string       `json:"name"`
	Icon       string       `json:"icon"`
	ColorHex   string       `json:"colorHex"`
	Cards      []cardRecord `json:"cards"`
}

// cardRecord is one card of a deckDocument. Binary payloads are standard
// base64.
type cardRecord struct {
	FrontText      string   `json:"frontText"`
	BackText       string   `json:"backText"`
	FrontRTFBase64 string   `json:"frontRTFBase64,omitempty"`
	BackRTFBase64  string   `json:"backRTFBase64,omitempty"`
	FrontImages    []string `json:"frontImages"`
	BackImages     []string `json:"backImages"`
	FrontAudios    []string `json:"frontAudios"`
	BackAudios     []string `json:"backAudios"`
}

// csvHeader is the first line of an exported CSV file.
const csvHeader = "front,back"

// headerWords mark a first CSV row as a header.
var headerWords = map[string]struct{}{
	"front":    {},
	"question": {},
	"term":     {},
}

// ExportFileName returns a filesystem-safe file name for a deck export.
func ExportFileName(deck *domain.Deck, format domain.ExportFormat) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case unicode.IsControl(r):
			return -1
		case strings.ContainsRune(`/\:*?"<>|`, r):
			return '_'
		}
		return r
	}, deck.Name)
	name = strings.Trim(strings.TrimSpace(name), ".")
	if name == "" {
		name = "deck"
	}
	return name + format.Extension()
}

// FormatFromFileName detects the import format from a file extension.
func FormatFromFileName(filename string) (domain.ExportFormat, bool) {
	dot := strings.LastIndexByte(filename, '.')
	if dot < 0 {
		return "", false
	}
	format := domain.ExportFormat(strings.ToLower(filename[dot+1:]))
	return format, format.IsValid()
}

var csvLineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// csvQuote quotes a field unconditionally, doubling inner quotes and
// flattening line breaks to spaces.
func csvQuote(field string) string {
	return `"` + strings.ReplaceAll(csvLineBreaks.Replace(field), `"`, `""`) + `"`
}
