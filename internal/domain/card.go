package domain

import (
	"time"

	"github.com/google/uuid"
)

// CardSide is one face of a card.
// RichText is an opaque formatted document owned by the editor; the core only
// stores and transports it. Text is the plain-text fallback.
type CardSide struct {
	Text     string
	RichText []byte
	Images   []string
	Audio    []string
}

// MediaRefs returns the side's image and audio references in order.
func (s CardSide) MediaRefs() []string {
	refs := make([]string, 0, len(s.Images)+len(s.Audio))
	refs = append(refs, s.Images...)
	refs = append(refs, s.Audio...)
	return refs
}

// Card is a front/back study unit owned by a deck.
// LinkedCardIDs is a weak reference list: targets may no longer exist.
type Card struct {
	ID            uuid.UUID
	DeckID        uuid.UUID
	Front         CardSide
	Back          CardSide
	LinkedCardIDs []uuid.UUID
	MediaVersion  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// MediaRefs returns every media reference held by the card, front first.
func (c *Card) MediaRefs() []string {
	return append(c.Front.MediaRefs(), c.Back.MediaRefs()...)
}

// LegacyCardMedia is a card row that still carries the media columns of
// MediaVersionLegacy.
//   - FrontImageData / BackImageData: a single raw image blob per side.
//   - FrontAudioPath / BackAudioPath: an absolute path under an old storage root.
type LegacyCardMedia struct {
	CardID         uuid.UUID
	FrontImageData []byte
	BackImageData  []byte
	FrontAudioPath *string
	BackAudioPath  *string
	FrontImages    []string
	BackImages     []string
	FrontAudio     []string
	BackAudio      []string
}

// CardMediaParams is the post-migration media state written back for a card.
type CardMediaParams struct {
	FrontImages []string
	BackImages  []string
	FrontAudio  []string
	BackAudio   []string
}

// MediaDiff returns references present in before but absent from after.
func MediaDiff(before, after []string) []string {
	keep := make(map[string]struct{}, len(after))
	for _, ref := range after {
		keep[ref] = struct{}{}
	}
	var removed []string
	for _, ref := range before {
		if _, ok := keep[ref]; !ok {
			removed = append(removed, ref)
		}
	}
	return removed
}
