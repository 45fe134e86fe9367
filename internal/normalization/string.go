package normalization

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

func ParseInputStringPtr(input *string) *string {
	if input == nil {
		return nil
	}
	normalized := ParseInputString(*input)
	return &normalized
}

var diacriticStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripDiacritics folds accented characters to their base form, so that
// "ingénieur système" and "ingenieur systeme" compare equal.
func StripDiacritics(input string) string {
	out, _, err := transform.String(diacriticStripper, input)
	if err != nil {
		return input
	}
	return out
}

// Fold lowercases, strips diacritics, drops every rune that is not a letter,
// digit or space, and collapses runs of whitespace to single spaces. This is
// the canonical form used for keyword matching against titles and skill lists.
func Fold(input string) string {
	lowered := strings.ToLower(StripDiacritics(input))
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
