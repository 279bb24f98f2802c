package domain

import (
	"strings"
)

// NormalizeName is the comparison key for sibling-name uniqueness of
// categories and decks: trimmed and lowercased. It matches the lower(name)
// expression of the unique indexes, since names are stored trimmed.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeFront is the key used to deduplicate imported cards.
func NormalizeFront(front string) string {
	return strings.ToLower(strings.TrimSpace(front))
}

// CollapseSpaces trims text and replaces every run of whitespace
// (including newlines and tabs) with a single space.
func CollapseSpaces(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// IsHexColor reports whether s is exactly six hexadecimal digits.
func IsHexColor(s string) bool {
	if len(s) != 6 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
