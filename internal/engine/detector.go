package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"neardup/internal/common"
	"neardup/internal/config"
	"neardup/internal/dedupe"
	"neardup/internal/diagnostic"
	"neardup/internal/logging"
	"neardup/internal/match"
	"neardup/internal/scan"
)

// Report is the outcome of one detection run.
type Report struct {
	// RunID identifies the run in logs.
	RunID string
	// Groups are the surviving duplicate groups, highest score first.
	Groups []dedupe.MatchGroup
	// Warnings raised while preparing the inputs.
	Warnings []diagnostic.Diagnostic
	Stats    Stats
}

// Stats summarizes a run.
type Stats struct {
	// CorpusSize and PoolSize count the items actually scanned.
	CorpusSize int
	PoolSize   int
	// RepeatsRemoved counts repeated corpus entries dropped before scanning.
	RepeatsRemoved int
	// Truncated counts corpus entries dropped by max_items.
	Truncated int
	// Records is the number of score records produced by the scan.
	Records int
	// Kept is the number of records that survived the filter.
	Kept    int
	Elapsed time.Duration
}

// Detector runs duplicate detection with a fixed, validated configuration.
// It is safe for concurrent use.
type Detector struct {
	cfg     config.Config
	logger  *slog.Logger
	scanner *scan.Scanner
	filter  dedupe.Options
}

// New validates cfg and returns a detector. An invalid configuration is
// reported as a diagnostic.ErrConfiguration error before anything is scanned.
// A nil logger discards log output.
func New(cfg config.Config, logger *slog.Logger) (*Detector, error) {
	res := config.Validate(&cfg)
	if err := res.Err(); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logging.Discard()
	}

	for _, w := range res.Warnings {
		logger.Warn("config warning", "code", w.Code, "field", w.Field, "message", w.Message)
	}

	scanner := scan.New(scan.Options{
		Normalize: match.NormalizeOptions{
			CaseSensitive:    cfg.CaseSensitive,
			StripPunctuation: cfg.StripPunctuation,
		},
		Limit: cfg.Limit(),
	})

	filter := dedupe.Options{
		Threshold:      cfg.Threshold,
		SelfExclude:    cfg.SelfExclude,
		SymmetricDedup: cfg.SymmetricDedup,
	}

	return &Detector{
		cfg:     cfg,
		logger:  logger,
		scanner: scanner,
		filter:  filter,
	}, nil
}

// Run compares every corpus item with the pool and returns the duplicate
// report. A nil pool means the corpus is compared with itself.
//
// Inputs are checked before scanning: an entry that is not valid UTF-8 is a
// diagnostic.ErrInput error and no partial report is returned. Repeated corpus
// entries are dropped (first occurrence wins) and the corpus is capped at
// max_items. Empty inputs yield an empty report.
//
// The scan stops between rows when ctx is canceled.
func (d *Detector) Run(ctx context.Context, corpus, pool []string) (*Report, error) {
	var diags diagnostic.Diagnostics
	validateItems(&diags, "corpus", corpus)
	validateItems(&diags, "pool", pool)

	if err := diags.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	report := &Report{RunID: uuid.NewString()}
	logger := d.logger.With("run_id", report.RunID)

	items, pool := d.prepare(&diags, &report.Stats, corpus, pool)
	report.Warnings = diags.Warnings

	for _, w := range report.Warnings {
		logger.Warn("input warning", "code", w.Code, "field", w.Field, "message", w.Message)
	}

	logger.Info("scan started",
		"corpus", len(items),
		"pool", len(pool),
		"comparisons", len(items)*len(pool),
		"workers", d.cfg.Workers,
	)

	collector := dedupe.NewCollector(d.filter)
	if err := d.scan(ctx, logger, collector, items, pool); err != nil {
		return nil, fmt.Errorf("scan aborted: %w", err)
	}

	stats := collector.Stats()
	report.Groups = collector.Groups()
	report.Stats.Records = stats.Records
	report.Stats.Kept = stats.Kept
	report.Stats.Elapsed = time.Since(start)

	logger.Info("scan finished",
		"records", stats.Records,
		"kept", stats.Kept,
		"groups", len(report.Groups),
		"elapsed", report.Stats.Elapsed,
	)

	return report, nil
}

// prepare removes repeated entries, applies max_items and resolves the pool.
func (d *Detector) prepare(diags *diagnostic.Diagnostics, stats *Stats, corpus, pool []string) ([]string, []string) {
	items, repeats := common.Unique(corpus)
	if repeats > 0 {
		diags.AddWarning(diagnostic.CodeDuplicateEntry, "corpus",
			fmt.Sprintf("%d repeated entries removed", repeats))
	}

	capped := common.Truncate(items, d.cfg.MaxItems)
	if dropped := len(items) - len(capped); dropped > 0 {
		diags.AddWarning(diagnostic.CodeCorpusTruncated, "max_items",
			fmt.Sprintf("kept the first %d of %d entries", len(capped), len(items)))
		stats.Truncated = dropped
	}

	if pool == nil {
		pool = capped
	} else {
		var poolRepeats int
		pool, poolRepeats = common.Unique(pool)
		if poolRepeats > 0 {
			diags.AddWarning(diagnostic.CodeDuplicateEntry, "pool",
				fmt.Sprintf("%d repeated entries removed", poolRepeats))
		}
	}

	stats.RepeatsRemoved = repeats
	stats.CorpusSize = len(capped)
	stats.PoolSize = len(pool)

	return capped, pool
}

// scan feeds the collector row by row, or through the parallel scanner when
// more than one worker is configured.
func (d *Detector) scan(ctx context.Context, logger *slog.Logger, collector *dedupe.Collector, corpus, pool []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if common.IsEmpty(corpus) || common.IsEmpty(pool) {
		return nil
	}

	if d.cfg.Workers != 1 {
		records, err := d.scanner.ScanParallel(ctx, corpus, pool, d.cfg.Workers)
		if err != nil {
			return err
		}

		collector.AddRow(records)

		return nil
	}

	for row := range d.scanner.Rows(corpus, pool) {
		collector.AddRow(row)

		if len(row) > 0 {
			logger.Debug("row scanned", "row", row[0].Row, "source", row[0].Source, "kept", collector.Stats().Kept)
		}

		if err := ctx.Err(); err != nil {
			return err
		}
	}

	return nil
}

// validateItems reports every entry that cannot be tokenized.
func validateItems(diags *diagnostic.Diagnostics, field string, items []string) {
	for i, item := range items {
		if !utf8.ValidString(item) {
			diags.AddInputError(diagnostic.CodeInvalidUTF8, field, i, "entry is not valid UTF-8")
		}
	}
}
