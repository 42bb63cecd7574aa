package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// CleanText prepares free-text form input for storage: NFC normalisation,
// surrounding whitespace removed, inner whitespace runs collapsed to one space.
// A value made only of whitespace becomes "".
func CleanText(s string) string {
	s = norm.NFC.String(s)
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}

// OptionalText returns nil for empty input so unused columns stay NULL.
func OptionalText(s string) *string {
	s = CleanText(s)
	if s == "" {
		return nil
	}
	return &s
}

// Deref is the inverse of OptionalText.
func Deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
