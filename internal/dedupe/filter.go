package dedupe

import (
	"slices"
	"strings"

	"neardup/internal/scan"
)

// DefaultThreshold is the match cutoff used when none is configured.
const DefaultThreshold = 80

// Options configures the duplicate filter.
type Options struct {
	// Threshold drops records scoring below it. Must be within [0, 100].
	Threshold int
	// SelfExclude drops records whose source and candidate are the same string.
	SelfExclude bool
	// SymmetricDedup keeps a pair only in the direction where the source sorts
	// first, so each unordered pair is reported once. Identical strings never
	// satisfy that ordering, so this also drops self matches.
	SymmetricDedup bool
}

// DefaultOptions returns the filter options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		Threshold:      DefaultThreshold,
		SelfExclude:    true,
		SymmetricDedup: true,
	}
}

// Keep reports whether a record survives thresholding, self exclusion and
// mirrored-pair removal.
func (o Options) Keep(r scan.ScoreRecord) bool {
	if r.Score < o.Threshold {
		return false
	}

	if o.SelfExclude && r.Source == r.Candidate {
		return false
	}

	// Plain string comparison decides the surviving direction, so (A, B) and
	// (B, A) never both pass even if their scores differ.
	if o.SymmetricDedup && min(r.Source, r.Candidate) == r.Candidate {
		return false
	}

	return true
}

// MatchGroup is one source together with its near-duplicates at one score.
type MatchGroup struct {
	Source string
	Score  int
	// Members are the candidate strings in arrival order.
	Members []string
}

// Joined renders the members as a comma-separated list.
func (g MatchGroup) Joined() string {
	return strings.Join(g.Members, ", ")
}

// Stats counts what a Collector has seen.
type Stats struct {
	Records int
	Kept    int
	Groups  int
}

type groupKey struct {
	source string
	score  int
}

type entry struct {
	group MatchGroup
	row   int
}

// Collector applies the filter incrementally so rows can be streamed from a
// scan without materializing the whole table. It is not safe for concurrent use.
type Collector struct {
	opts    Options
	index   map[groupKey]int
	entries []entry
	stats   Stats
}

// NewCollector creates an empty collector.
func NewCollector(opts Options) *Collector {
	return &Collector{
		opts:  opts,
		index: make(map[groupKey]int),
	}
}

// Add filters one record and, if it survives, appends its candidate to the
// group of (source, score). It reports whether the record was kept.
func (c *Collector) Add(r scan.ScoreRecord) bool {
	c.stats.Records++

	if !c.opts.Keep(r) {
		return false
	}

	c.stats.Kept++

	key := groupKey{source: r.Source, score: r.Score}
	if i, ok := c.index[key]; ok {
		c.entries[i].group.Members = append(c.entries[i].group.Members, r.Candidate)
		return true
	}

	c.index[key] = len(c.entries)
	c.entries = append(c.entries, entry{
		group: MatchGroup{Source: r.Source, Score: r.Score, Members: []string{r.Candidate}},
		row:   r.Row,
	})
	c.stats.Groups++

	return true
}

// AddRow adds every record of a scan row.
func (c *Collector) AddRow(records []scan.ScoreRecord) {
	for _, r := range records {
		c.Add(r)
	}
}

// Groups returns the groups sorted by descending score. Equal scores are
// ordered by the corpus position of the source, then by arrival.
// The result does not alias the collector's state.
func (c *Collector) Groups() []MatchGroup {
	sorted := slices.Clone(c.entries)
	slices.SortStableFunc(sorted, func(a, b entry) int {
		if a.group.Score != b.group.Score {
			return b.group.Score - a.group.Score
		}
		return a.row - b.row
	})

	groups := make([]MatchGroup, len(sorted))
	for i, e := range sorted {
		groups[i] = MatchGroup{
			Source:  e.group.Source,
			Score:   e.group.Score,
			Members: slices.Clone(e.group.Members),
		}
	}

	return groups
}

// Stats returns the counts gathered so far.
func (c *Collector) Stats() Stats {
	return c.stats
}

// Filter applies opts to records and returns the grouped report.
func Filter(records []scan.ScoreRecord, opts Options) []MatchGroup {
	c := NewCollector(opts)
	c.AddRow(records)

	return c.Groups()
}
