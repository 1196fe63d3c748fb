// Package distance implements the edit distances used to compare name spellings.
//
// Levenshtein is the classic unit-cost distance. TransliterationAware runs the same
// recurrence but discounts the substitutions that informal romanization produces most
// often: vowel confusion and a couple of voiced/unvoiced consonant pairs.
package distance

import (
	"strings"

	"github.com/hbollon/go-edlib"
)

// Substitution costs for TransliterationAware.
const (
	VowelCost     = 0.3
	ConsonantCost = 0.5
)

// DefaultVariantThreshold is the aware-distance bound used by MatchesVariant callers
// when they have no better idea.
const DefaultVariantThreshold = 1.5

// consonantPairs are the declared consonant variants, stored in both directions.
var consonantPairs = map[[2]rune]bool{
	{'s', 'z'}: true, {'z', 's'}: true,
	{'t', 'd'}: true, {'d', 't'}: true,
}

// Levenshtein returns the unit-cost edit distance between a and b over code points.
// Comparison is case-sensitive; callers fold case first.
func Levenshtein(a, b string) int {
	return edlib.LevenshteinDistance(a, b)
}

// SimilarityRatio is 1 - d/max(len(a), len(b)), or 1 when both are empty.
func SimilarityRatio(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	longest := max(la, lb)
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(Levenshtein(a, b))/float64(longest)
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

// substitutionCost prices replacing x with y.
func substitutionCost(x, y rune) float64 {
	switch {
	case x == y:
		return 0
	case isVowel(x) && isVowel(y):
		return VowelCost
	case consonantPairs[[2]rune{x, y}]:
		return ConsonantCost
	default:
		return 1
	}
}

// TransliterationAware is Levenshtein with fractional substitution costs.
// Insertions and deletions still cost 1.
func TransliterationAware(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return float64(len(rb))
	}
	if len(rb) == 0 {
		return float64(len(ra))
	}

	matrix := make([][]float64, len(ra)+1)
	for i := range matrix {
		matrix[i] = make([]float64, len(rb)+1)
		matrix[i][0] = float64(i)
	}
	for j := range matrix[0] {
		matrix[0][j] = float64(j)
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			matrix[i][j] = min(
				matrix[i-1][j]+1,
				matrix[i][j-1]+1,
				matrix[i-1][j-1]+substitutionCost(ra[i-1], rb[j-1]),
			)
		}
	}
	return matrix[len(ra)][len(rb)]
}

// MatchesVariant reports whether a and b are the same spelling up to case, one
// contains the other, or their aware distance is within maxDistance.
func MatchesVariant(a, b string, maxDistance float64) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la == lb {
		return true
	}
	if strings.Contains(la, lb) || strings.Contains(lb, la) {
		return true
	}
	return TransliterationAware(la, lb) <= maxDistance
}
