package search

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultSimilarityThreshold is the minimum similarity ratio for a fuzzy match.
const DefaultSimilarityThreshold = 0.6

// Candidate carries a cell and a query in the forms the strategies compare.
// Raw forms are only lower-cased, normalized forms also drop diacritics.
type Candidate struct {
	Cell            string
	Query           string
	NormalizedCell  string
	NormalizedQuery string
}

func newCandidate(cell any, query string) Candidate {
	raw := cellString(cell)
	return Candidate{
		Cell:            strings.ToLower(raw),
		Query:           strings.ToLower(query),
		NormalizedCell:  Normalize(raw),
		NormalizedQuery: Normalize(query),
	}
}

// Strategy decides whether a single candidate matches.
type Strategy struct {
	Name  string
	Match func(c Candidate) bool
}

// SubstringStrategy matches when the normalized query occurs in the normalized cell.
// An empty query always matches.
func SubstringStrategy() Strategy {
	return Strategy{
		Name: "substring",
		Match: func(c Candidate) bool {
			return strings.Contains(c.NormalizedCell, c.NormalizedQuery)
		},
	}
}

// PartialWordStrategy matches when any whitespace separated query token is a
// substring of any cell token. It compares lower-cased text without stripping accents.
func PartialWordStrategy() Strategy {
	return Strategy{
		Name: "partial_word",
		Match: func(c Candidate) bool {
			cellTokens := strings.Fields(c.Cell)
			for _, qt := range strings.Fields(c.Query) {
				for _, ct := range cellTokens {
					if strings.Contains(ct, qt) {
						return true
					}
				}
			}
			return false
		},
	}
}

// SimilarityStrategy matches when the sequence similarity ratio between the
// normalized cell and query reaches threshold. The ratio is 2*M/T where M counts
// characters in the longest matching blocks and T is the combined length.
func SimilarityStrategy(threshold float64) Strategy {
	return Strategy{
		Name: "similarity",
		Match: func(c Candidate) bool {
			return SimilarityRatio(c.NormalizedCell, c.NormalizedQuery) >= threshold
		},
	}
}

// SimilarityRatio compares a and b rune by rune and returns a value in [0, 1].
func SimilarityRatio(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	m := difflib.NewMatcher(splitRunes(a), splitRunes(b))
	return m.Ratio()
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

// Matcher evaluates an ordered list of strategies with OR semantics and stops at
// the first strategy that matches.
type Matcher struct {
	strategies []Strategy
}

// NewMatcher returns a Matcher over strategies, evaluated in the given order.
func NewMatcher(strategies ...Strategy) *Matcher {
	return &Matcher{strategies: append([]Strategy(nil), strategies...)}
}

// DefaultMatcher uses substring, partial word and similarity (at threshold)
// strategies, cheapest first. A threshold outside (0, 1] falls back to
// DefaultSimilarityThreshold.
func DefaultMatcher(threshold float64) *Matcher {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSimilarityThreshold
	}
	return NewMatcher(
		SubstringStrategy(),
		PartialWordStrategy(),
		SimilarityStrategy(threshold),
	)
}

// Strategies returns the names of the configured strategies in evaluation order.
func (m *Matcher) Strategies() []string {
	names := make([]string, len(m.strategies))
	for i, s := range m.strategies {
		names[i] = s.Name
	}
	return names
}

// Matches reports whether cell matches query under any strategy.
func (m *Matcher) Matches(cell any, query string) bool {
	c := newCandidate(cell, query)
	for _, s := range m.strategies {
		if s.Match(c) {
			return true
		}
	}
	return false
}

// RowMatches reports whether any cell of row matches query.
func (m *Matcher) RowMatches(row Row, query string) bool {
	for _, cell := range row {
		if m.Matches(cell, query) {
			return true
		}
	}
	return false
}

// Filter returns the rows of rows that match query, preserving order.
// The result is a new slice; rows is not modified.
func (m *Matcher) Filter(rows []Row, query string) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if m.RowMatches(row, query) {
			out = append(out, row)
		}
	}
	return out
}
