package match

import (
	"slices"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// NormalizeOptions controls how a string is reduced to its token-sort key.
type NormalizeOptions struct {
	// CaseSensitive keeps the original letter case.
	// Default is false (case-insensitive).
	CaseSensitive bool

	// StripPunctuation replaces every rune that is not a letter, digit or
	// combining mark with a space before tokenizing, so "Smith, John" and
	// "smith john" share a key.
	// Default is true.
	StripPunctuation bool
}

// DefaultNormalizeOptions returns the options used when nothing is configured.
func DefaultNormalizeOptions() NormalizeOptions {
	return NormalizeOptions{
		CaseSensitive:    false,
		StripPunctuation: true,
	}
}

// TokenSortKey normalizes s for token-sort comparison.
// The normalization pipeline:
// 1. Trim surrounding whitespace and compose to NFC, so canonically
// equivalent spellings share a key.
// 2. Case-fold to lower (unless CaseSensitive).
// 3. Replace punctuation with spaces (if StripPunctuation).
// 4. Split on whitespace and drop empty tokens.
// 5. Sort tokens lexicographically and rejoin with single spaces.
func TokenSortKey(s string, opts NormalizeOptions) string {
	tokens := Tokenize(s, opts)
	slices.Sort(tokens)

	return strings.Join(tokens, " ")
}

// Tokenize applies steps 1-4 of TokenSortKey and returns the tokens in
// their original order.
func Tokenize(s string, opts NormalizeOptions) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	s = norm.NFC.String(s)

	if !opts.CaseSensitive {
		// Caser values are stateful; one per call keeps Tokenize safe for concurrent use.
		s = cases.Lower(language.Und).String(s)
	}

	if opts.StripPunctuation {
		s = strings.Map(replacePunctuation, s)
	}

	return strings.Fields(s)
}

// NormalizeAll returns the token-sort key of every entry, in input order.
func NormalizeAll(items []string, opts NormalizeOptions) []string {
	keys := make([]string, len(items))
	for i, item := range items {
		keys[i] = TokenSortKey(item, opts)
	}

	return keys
}

func replacePunctuation(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
		return r
	}

	return ' '
}
