package scan

import (
	"context"
	"iter"
	"runtime"

	"golang.org/x/sync/errgroup"

	"neardup/internal/match"
)

// ScoreRecord is the result of comparing one corpus item against one pool item.
type ScoreRecord struct {
	// Source is the corpus item used as the query.
	Source string
	// Candidate is the pool item it was compared with.
	Candidate string
	// Score is the token-sort ratio (0-100).
	Score int
	// Row is the index of Source in the scanned corpus.
	Row int
}

// Options configures a Scanner.
type Options struct {
	// Normalize controls how strings are reduced before scoring.
	Normalize match.NormalizeOptions
	// Limit keeps only the top Limit candidates per source.
	// Zero keeps every candidate.
	Limit int
}

// Scanner scores every corpus item against a candidate pool.
// A Scanner holds no mutable state and is safe for concurrent use.
type Scanner struct {
	opts Options
}

// New creates a scanner with the given options.
func New(opts Options) *Scanner {
	return &Scanner{opts: opts}
}

// Scan matches each corpus item, in corpus order, against the whole pool and
// concatenates the rows into one flat table.
func (s *Scanner) Scan(corpus, pool []string) []ScoreRecord {
	var records []ScoreRecord
	for row := range s.Rows(corpus, pool) {
		records = append(records, row...)
	}

	return records
}

// Rows returns the scan as a lazy sequence with one row per corpus item.
// Rows are produced on demand, so a caller may stop between rows; ranging
// over the sequence again restarts from the first corpus item.
func (s *Scanner) Rows(corpus, pool []string) iter.Seq[[]ScoreRecord] {
	return func(yield func([]ScoreRecord) bool) {
		if len(corpus) == 0 || len(pool) == 0 {
			return
		}

		keys := match.NormalizeAll(pool, s.opts.Normalize)
		for i, source := range corpus {
			if !yield(s.row(i, source, pool, keys)) {
				return
			}
		}
	}
}

// ScanParallel computes the same table as Scan with up to workers rows in
// flight. A non-positive workers uses runtime.NumCPU(). Rows are merged back
// into corpus order. It stops early and returns the context error if ctx is
// canceled.
func (s *Scanner) ScanParallel(ctx context.Context, corpus, pool []string, workers int) ([]ScoreRecord, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if len(corpus) == 0 || len(pool) == 0 {
		return nil, ctx.Err()
	}

	keys := match.NormalizeAll(pool, s.opts.Normalize)
	rows := make([][]ScoreRecord, len(corpus))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, source := range corpus {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			// Each goroutine owns rows[i]; no locking needed.
			rows[i] = s.row(i, source, pool, keys)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := 0
	for _, row := range rows {
		total += len(row)
	}

	records := make([]ScoreRecord, 0, total)
	for _, row := range rows {
		records = append(records, row...)
	}

	return records, nil
}

// row scores one source against the pool, whose token-sort keys are given.
func (s *Scanner) row(i int, source string, pool, keys []string) []ScoreRecord {
	candidates := match.MatchKeys(match.TokenSortKey(source, s.opts.Normalize), pool, keys, s.opts.Limit)

	records := make([]ScoreRecord, len(candidates))
	for j, c := range candidates {
		records[j] = ScoreRecord{
			Source:    source,
			Candidate: c.Text,
			Score:     c.Score,
			Row:       i,
		}
	}

	return records
}
