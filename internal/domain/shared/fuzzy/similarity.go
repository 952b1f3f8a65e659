// Package fuzzy provides Levenshtein-based string similarity scoring,
// used for advisory duplicate detection on vendor names.
package fuzzy

import (
	"sort"
	"strings"
)

// DefaultThreshold is the minimum score for a candidate to be
// considered a likely duplicate.
const DefaultThreshold = 0.8

// Match is a scored candidate returned by FindSimilar.
type Match struct {
	Value string  `json:"value"`
	Score float64 `json:"score"`
}

// Ratio returns a normalized similarity score in [0,1] between two
// strings: 1 - editDistance(a,b) / max(len(a), len(b)).
//
// Identical strings (including two empty strings) score 1; if exactly
// one string is empty the score is 0. Comparison is case-sensitive;
// callers that want case-insensitive matching normalize first (see
// FindSimilar).
func Ratio(a, b string) float64 {
	if a == b {
		return 1
	}

	ra := []rune(a)
	rb := []rune(b)
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1
	}

	return 1 - float64(editDistance(ra, rb))/float64(maxLen)
}

// editDistance computes the Levenshtein distance between two rune
// slices using a two-row DP table. O(len(a)*len(b)) time, O(len(b))
// space.
func editDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// FindSimilar returns the candidates scoring at or above threshold
// against query, sorted descending by score. Ties keep the original
// candidate order. Matching is case-insensitive and ignores
// surrounding whitespace; the returned Value is the original
// candidate string.
//
// Cost is O(len(candidates) * maxLen^2) from the edit-distance table,
// so candidate lists should stay bounded (one vendor table's worth).
func FindSimilar(query string, candidates []string, threshold float64) []Match {
	normalizedQuery := normalize(query)

	matches := make([]Match, 0)
	for _, candidate := range candidates {
		score := Ratio(normalizedQuery, normalize(candidate))
		if score >= threshold {
			matches = append(matches, Match{Value: candidate, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// BestMatch returns the highest-scoring candidate at or above
// threshold, or nil when nothing qualifies.
func BestMatch(query string, candidates []string, threshold float64) *Match {
	matches := FindSimilar(query, candidates, threshold)
	if len(matches) == 0 {
		return nil
	}
	return &matches[0]
}

// HasSimilar reports whether any candidate scores at or above
// threshold against query.
func HasSimilar(query string, candidates []string, threshold float64) bool {
	normalizedQuery := normalize(query)
	for _, candidate := range candidates {
		if Ratio(normalizedQuery, normalize(candidate)) >= threshold {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
