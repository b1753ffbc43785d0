package fuzzy

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Distance returns the Levenshtein edit distance between the two names,
// compared case-insensitively.
func Distance(a, b string) int {
	return levenshtein.ComputeDistance(strings.ToLower(a), strings.ToLower(b))
}

// Similarity maps edit distance into a 0..1 score where 1 is an exact
// case-insensitive match.
func Similarity(a, b string) float64 {
	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 1
	}
	d := Distance(a, b)
	if d >= maxLen {
		return 0
	}
	return 1 - float64(d)/float64(maxLen)
}

// TokenContains reports whether either lowercase name contains the other.
func TokenContains(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}
