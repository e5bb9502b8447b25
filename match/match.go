// Package match implements the text normalization and relevance scoring used to rank catalogue titles.
package match

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Threshold is the minimum score, exclusive, a title needs to be considered a match.
const Threshold = 0.3

// MaxScore is reached when every term matches as a whole word.
const MaxScore = 1.5

const (
	substringWeight = 1.0
	wordBonus       = 0.5
)

var folder = strings.NewReplacer(":", " ", "'", " ")

// Normalize canonicalizes s for comparison: lower case, diacritics stripped,
// colons and apostrophes turned into spaces, whitespace collapsed and trimmed.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	stripped, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		stripped = strings.ToLower(s)
	}

	return strings.Join(strings.Fields(folder.Replace(stripped)), " ")
}

// Terms splits the normalized query into its space separated terms.
// An empty slice is returned when nothing is left after normalization.
func Terms(query string) []string {
	normalized := Normalize(query)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, " ")
}

// Score rates text against the query terms.
//
// Each term found as a substring is worth 1, plus 0.5 when it also appears as a whole word.
// The sum is averaged over the terms, so the result lies in [0, MaxScore].
func Score(text string, terms []string) float64 {
	if len(terms) == 0 {
		return 0
	}

	normalized := Normalize(text)
	words := make(map[string]struct{})
	for _, w := range strings.Split(normalized, " ") {
		words[w] = struct{}{}
	}

	var score float64
	for _, term := range terms {
		term = Normalize(term)
		if term == "" || !strings.Contains(normalized, term) {
			continue
		}

		score += substringWeight
		if _, ok := words[term]; ok {
			score += wordBonus
		}
	}

	return score / float64(len(terms))
}

// Qualifies reports whether score is high enough to keep a candidate.
func Qualifies(score float64) bool {
	return score > Threshold
}
