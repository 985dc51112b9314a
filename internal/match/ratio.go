package match

import (
	"math"
	"unicode/utf8"
)

// Score bounds of the token-sort ratio.
const (
	MinScore = 0
	MaxScore = 100
)

// TokenSortRatio scores the similarity of a and b in [MinScore, MaxScore].
// Both strings are reduced to token-sort keys first, which makes the score
// insensitive to word order: "John Smith" and "Smith, John" score 100.
func TokenSortRatio(a, b string, opts NormalizeOptions) int {
	return Ratio(TokenSortKey(a, opts), TokenSortKey(b, opts))
}

// Ratio converts the edit distance between two keys into a similarity score:
//
//	round(100 * (lenSum - distance) / lenSum)
//
// where lenSum is the combined rune length of both keys. Two empty keys are
// identical and score MaxScore. Rounding is half-to-even.
func Ratio(a, b string) int {
	lenSum := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if lenSum == 0 {
		return MaxScore
	}

	distance := Levenshtein(a, b)

	return int(math.RoundToEven(float64(MaxScore*(lenSum-distance)) / float64(lenSum)))
}
