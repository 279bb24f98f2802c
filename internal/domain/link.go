package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// CardLinkScheme prefixes a card reference, e.g. "card:8c1e...".
const CardLinkScheme = "card:"

// EmptyPreview is shown for cards without any front text.
const EmptyPreview = "(Empty)"

// PreviewMaxRunes bounds the length of PlainTextPreview output, ellipsis included.
const PreviewMaxRunes = 40

// linkPattern matches an embedded link span: [label](card:<uuid>).
var linkPattern = regexp.MustCompile(`\[([^\[\]]*)\]\(card:(?://)?([0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12})\)`)

// CardLinkRef returns the reference string stored for a link to id.
func CardLinkRef(id uuid.UUID) string {
	return CardLinkScheme + id.String()
}

// ParseCardLink extracts the target id from a reference such as
// "card:<uuid>" or "card://<uuid>". ok is false for anything else.
func ParseCardLink(ref string) (uuid.UUID, bool) {
	rest, found := strings.CutPrefix(strings.TrimSpace(ref), CardLinkScheme)
	if !found {
		return uuid.Nil, false
	}
	rest = strings.TrimPrefix(rest, "//")
	id, err := uuid.Parse(rest)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// AppendCardLink appends a link span pointing at target to text. The span
// displays a preview of the target's front text.
func AppendCardLink(text string, target *Card) string {
	label := strings.NewReplacer("[", "", "]", "").Replace(PlainTextPreview(target))
	span := "[" + label + "](" + CardLinkRef(target.ID) + ")"
	if strings.TrimSpace(text) == "" {
		return span
	}
	if strings.HasSuffix(text, " ") || strings.HasSuffix(text, "\n") {
		return text + span
	}
	return text + " " + span
}

// ExtractLinkIDs returns the distinct link targets found in texts, in order
// of first appearance.
func ExtractLinkIDs(texts ...string) []uuid.UUID {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	for _, text := range texts {
		for _, m := range linkPattern.FindAllStringSubmatch(text, -1) {
			id, err := uuid.Parse(m[2])
			if err != nil {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}

// StripLinks replaces every link span in text with its label.
func StripLinks(text string) string {
	return linkPattern.ReplaceAllString(text, "$1")
}

// PlainTextPreview builds a short single-line label from the card's front
// text with link markers removed. Blank content yields EmptyPreview.
func PlainTextPreview(card *Card) string {
	if card == nil {
		return EmptyPreview
	}
	text := CollapseSpaces(StripLinks(card.Front.Text))
	if text == "" {
		return EmptyPreview
	}
	return truncateRunes(text, PreviewMaxRunes)
}

func truncateRunes(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:max-1])) + "…"
}
