// Package match decides whether two restaurant records describe the same
// physical place, combining phone equality, geographic proximity and name
// similarity.
package match

import "strings"

// Generic venue nouns carry no identity ("Кафе Пушкин" and "Ресторан Пушкин"
// are the same place), so they are stripped before comparison.
var genericNouns = []string{
	"ресторан", "кафе", "бар", "паб", "столовая", "кофейня",
	"restaurant", "cafe", "bar", "pub",
}

var quoteReplacer = strings.NewReplacer("«", "", "»", "", `"`, "", "'", "", "`", "")

// NormalizeName lowercases a venue name, strips quote characters and generic
// venue nouns, and collapses whitespace.
func NormalizeName(name string) string {
	s := strings.ToLower(name)
	s = quoteReplacer.Replace(s)

	for _, noun := range genericNouns {
		s = strings.ReplaceAll(s, noun, "")
	}

	return strings.Join(strings.Fields(s), " ")
}

// NameSimilarity scores two venue names in [0, 1]: 1.0 for an exact match
// after normalization, 0.9 when one name contains the other, otherwise the
// Jaccard similarity over word tokens longer than two runes.
func NameSimilarity(a, b string) float64 {
	s1 := NormalizeName(a)
	s2 := NormalizeName(b)

	if s1 == s2 {
		if s1 == "" {
			return 0
		}

		return 1
	}

	if s1 != "" && s2 != "" && (strings.Contains(s1, s2) || strings.Contains(s2, s1)) {
		return 0.9
	}

	words1 := tokenSet(s1)
	words2 := tokenSet(s2)

	if len(words1) == 0 || len(words2) == 0 {
		return 0
	}

	intersection := 0

	for w := range words1 {
		if _, found := words2[w]; found {
			intersection++
		}
	}

	union := len(words1) + len(words2) - intersection

	return float64(intersection) / float64(union)
}

func tokenSet(s string) map[string]struct{} {
	tokens := make(map[string]struct{})

	for _, w := range strings.Fields(s) {
		if len([]rune(w)) > 2 {
			tokens[w] = struct{}{}
		}
	}

	return tokens
}

// LevenshteinRatio is a secondary similarity signal in [0, 1] based on edit
// distance over the normalized names. Callers applying it as an acceptance
// test should use the 0.5 threshold.
func LevenshteinRatio(a, b string) float64 {
	s1 := []rune(NormalizeName(a))
	s2 := []rune(NormalizeName(b))

	longest := len(s1)
	if len(s2) > longest {
		longest = len(s2)
	}

	if longest == 0 {
		return 0
	}

	return 1 - float64(levenshtein(s1, s2))/float64(longest)
}

func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i

		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[j] = minInt(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(b)]
}

func minInt(values ...int) int {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}

	return m
}

// NormalizePhone reduces a phone number to its digits so formatting
// differences between providers cannot hide a match.
func NormalizePhone(phone string) string {
	var builder strings.Builder

	for _, r := range phone {
		if r >= '0' && r <= '9' {
			builder.WriteRune(r)
		}
	}

	return builder.String()
}
