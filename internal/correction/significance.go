package correction

import (
	"strings"
	"unicode"
)

// normalizeWhitespace collapses every run of whitespace into a single space
// and trims the ends.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// tokenizeWords splits s into maximal runs of letters and digits,
// lowercased. Punctuation and symbols separate words.
func tokenizeWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// hasLinguisticContent reports whether s contains at least one letter or
// digit. Messages made solely of whitespace and pictographic symbols have
// nothing to correct.
func hasLinguisticContent(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// levenshtein computes the classic unit-cost edit distance between two
// strings, by rune.
func levenshtein(s1, s2 string) int {
	a := []rune(s1)
	b := []rune(s2)

	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	previous := make([]int, len(b)+1)
	current := make([]int, len(b)+1)
	for j := range previous {
		previous[j] = j
	}

	for i, c1 := range a {
		current[0] = i + 1
		for j, c2 := range b {
			insertion := previous[j+1] + 1
			deletion := current[j] + 1
			substitution := previous[j]
			if c1 != c2 {
				substitution++
			}
			current[j+1] = min(insertion, deletion, substitution)
		}
		previous, current = current, previous
	}

	return previous[len(b)]
}

// significantChange decides whether candidate is a safe, meaningful rewrite
// of original:
//
//   - identical after whitespace normalization → no
//   - candidate tokenizes to zero words, or the word-count delta exceeds
//     half of the original's word count → no (the oracle degenerated)
//   - similarity 1 − d/max(len) below 0.6 → no (the oracle over-rewrote)
//   - otherwise yes, iff there is an actual difference to apply
//
// The similarity threshold works on the normalized, lowercased forms.
func significantChange(original, candidate string) bool {
	if original == candidate {
		return false
	}

	originalNorm := normalizeWhitespace(original)
	candidateNorm := normalizeWhitespace(candidate)

	if originalNorm == candidateNorm {
		return false
	}

	originalWords := tokenizeWords(original)
	candidateWords := tokenizeWords(candidate)

	delta := len(originalWords) - len(candidateWords)
	if delta < 0 {
		delta = -delta
	}
	if len(candidateWords) == 0 || float64(delta) > float64(len(originalWords))*0.5 {
		return false
	}

	distance := levenshtein(strings.ToLower(originalNorm), strings.ToLower(candidateNorm))

	maxLen := len([]rune(originalNorm))
	if l := len([]rune(candidateNorm)); l > maxLen {
		maxLen = l
	}
	similarity := 1 - float64(distance)/float64(maxLen)

	if similarity < 0.6 {
		return false
	}

	return distance > 0
}
