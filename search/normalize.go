package search

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize returns the comparison form of v: its string form lower-cased,
// canonically decomposed, with every nonspacing mark removed. "María",
// "MARIA" and "maria" all normalize to "maria".
//
// Normalize is idempotent and never fails; nil normalizes to "".
func Normalize(v any) string {
	s := cellString(v)
	if s == "" {
		return ""
	}

	// transform chains keep internal state, so build one per call
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}
