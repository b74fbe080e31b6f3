// Package search provides the text normalization used by the listing
// search: matching is case-insensitive and accent-insensitive, so "cafe"
// finds "Café Central".
package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and strips diacritics: decompose to NFD, drop the
// combining marks, recompose.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		// Malformed input never fails a search; fall back to case folding.
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}

// Contains reports whether needle occurs in haystack under Fold. An empty
// needle matches everything.
func Contains(haystack, needle string) bool {
	return strings.Contains(Fold(haystack), Fold(needle))
}
