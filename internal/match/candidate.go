package match

import (
	"sort"
)

// Candidate is a pool entry scored against a query.
type Candidate struct {
	// Text is the pool entry as supplied.
	Text string
	// Index is the position of Text in the pool.
	Index int
	// Score is the token-sort ratio against the query (0-100).
	Score int
	// Normalized is the token-sort key of Text, kept for explanation.
	Normalized string
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Match scores query against every entry of pool, the query itself included,
// and returns the candidates sorted by score (descending). Ties keep pool
// order. If limit is positive only the top limit candidates are returned.
func Match(query string, pool []string, limit int, opts NormalizeOptions) CandidateList {
	return MatchKeys(TokenSortKey(query, opts), pool, NormalizeAll(pool, opts), limit)
}

// MatchKeys is Match for callers that already hold token-sort keys.
// keys[i] must be the key of pool[i].
func MatchKeys(queryKey string, pool, keys []string, limit int) CandidateList {
	if len(pool) == 0 {
		return nil
	}

	candidates := make(CandidateList, len(pool))
	for i := range pool {
		candidates[i] = Candidate{
			Text:       pool[i],
			Index:      i,
			Score:      Ratio(queryKey, keys[i]),
			Normalized: keys[i],
		}
	}

	sort.Stable(candidates)

	return candidates.Top(limit)
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Higher score comes first; equal scores are left to the stable sort.
func (c CandidateList) Less(i, j int) bool {
	return c[i].Score > c[j].Score
}

// Top returns the top n candidates. A non-positive n returns all of them.
func (c CandidateList) Top(n int) CandidateList {
	if n <= 0 || n >= len(c) {
		return c
	}
	return c[:n]
}

// Texts returns the candidate texts in list order.
func (c CandidateList) Texts() []string {
	texts := make([]string, len(c))
	for i := range c {
		texts[i] = c[i].Text
	}
	return texts
}
