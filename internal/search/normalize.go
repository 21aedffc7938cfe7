package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldDiacritics decomposes and drops combining marks, so "híbrido" folds to
// "hibrido".
var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// NormalizeLoose case-folds, strips diacritics and collapses whitespace.
// Classification matches substrings/regexes over the result, so punctuation
// is kept. Never returns a non-empty result for blank input, and is
// idempotent.
func NormalizeLoose(s string) string {
	if s == "" {
		return ""
	}
	folded, _, err := transform.String(foldDiacritics, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	return strings.TrimSpace(strings.Join(strings.Fields(folded), " "))
}

// NormalizeStrict is NormalizeLoose plus punctuation removal: anything
// outside [a-z0-9 #.+-] becomes a space before collapsing. Used when the
// result will be split into tokens, so ".net" and "c#" survive as tokens
// while other punctuation never creates spurious ones.
func NormalizeStrict(s string) string {
	folded := NormalizeLoose(s)
	if folded == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '#' || r == '.' || r == '+' || r == '-' || r == ' ':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.TrimSpace(strings.Join(strings.Fields(b.String()), " "))
}
