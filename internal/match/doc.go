// Package match provides string normalization, Levenshtein distance calculation,
// the token-sort similarity ratio, and candidate ranking for near-duplicate detection.
//
// Key functions:
//   - Levenshtein: computes edit distance between strings
//   - TokenSortKey: trims, case-folds, strips punctuation and sorts tokens
//   - TokenSortRatio: scores two strings from 0 to 100, ignoring word order
//   - Match: ranks a candidate pool against a query, optionally keeping the top k
package match
