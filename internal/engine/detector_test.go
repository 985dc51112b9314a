package engine

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neardup/internal/config"
	"neardup/internal/dedupe"
	"neardup/internal/diagnostic"
	"neardup/internal/logging"
)

func newDetector(t *testing.T, mutate func(*config.Config)) *Detector {
	t.Helper()

	cfg := config.Default()
	if mutate != nil {
		mutate(&cfg)
	}

	d, err := New(cfg, nil)
	require.NoError(t, err)

	return d
}

func TestRun_ApplePie(t *testing.T) {
	d := newDetector(t, func(c *config.Config) { c.Threshold = 90 })

	report, err := d.Run(context.Background(), []string{"apple pie", "pie apple", "banana bread"}, nil)
	require.NoError(t, err)

	require.Len(t, report.Groups, 1, spew.Sdump(report.Groups))
	assert.Equal(t, dedupe.MatchGroup{Source: "apple pie", Score: 100, Members: []string{"pie apple"}}, report.Groups[0])
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 9, report.Stats.Records)
	assert.Equal(t, 1, report.Stats.Kept)
}

func TestRun_ColorColour(t *testing.T) {
	d := newDetector(t, func(c *config.Config) { c.Threshold = 80 })

	report, err := d.Run(context.Background(), []string{"color", "colour", "flavor"}, nil)
	require.NoError(t, err)

	require.Len(t, report.Groups, 1, spew.Sdump(report.Groups))
	g := report.Groups[0]
	assert.Equal(t, "color", g.Source)
	assert.Equal(t, []string{"colour"}, g.Members)
	assert.GreaterOrEqual(t, g.Score, 80)

	for _, g := range report.Groups {
		assert.NotEqual(t, "flavor", g.Source)
		assert.NotContains(t, g.Members, "flavor")
	}
}

func TestRun_EmptyCorpus(t *testing.T) {
	d := newDetector(t, nil)

	report, err := d.Run(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, report.Groups)

	report, err = d.Run(context.Background(), []string{"apple pie"}, []string{})
	require.NoError(t, err)
	assert.Empty(t, report.Groups)
	assert.Equal(t, 0, report.Stats.Records)
}

func TestNew_ThresholdOutOfRange(t *testing.T) {
	cfg := config.Default()
	cfg.Threshold = 101

	d, err := New(cfg, nil)
	require.Error(t, err)
	assert.Nil(t, d)
	assert.ErrorIs(t, err, diagnostic.ErrConfiguration)

	var derr *diagnostic.Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "threshold", derr.Field)
	assert.Equal(t, diagnostic.CodeThresholdRange, derr.Code)
}

func TestNew_NonPositiveLimit(t *testing.T) {
	zero := 0
	cfg := config.Default()
	cfg.LimitPerQuery = &zero

	_, err := New(cfg, nil)
	assert.ErrorIs(t, err, diagnostic.ErrConfiguration)
}

func TestRun_InvalidUTF8(t *testing.T) {
	d := newDetector(t, nil)

	report, err := d.Run(context.Background(), []string{"ok", "bad \xff"}, []string{"\xfe"})
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, diagnostic.ErrInput)
	assert.Contains(t, err.Error(), "corpus #1")
	assert.Contains(t, err.Error(), "pool #0")
}

func TestRun_People(t *testing.T) {
	d := newDetector(t, func(c *config.Config) { c.Threshold = 70 })
	corpus := []string{"John Smith", "Smith, John", "Jon Smith", "Jane Doe", "Doe, Jane", "J. Doe"}

	report, err := d.Run(context.Background(), corpus, nil)
	require.NoError(t, err)

	expected := []dedupe.MatchGroup{
		{Source: "John Smith", Score: 100, Members: []string{"Smith, John"}},
		{Source: "Doe, Jane", Score: 100, Members: []string{"Jane Doe"}},
		{Source: "John Smith", Score: 95, Members: []string{"Jon Smith"}},
		{Source: "Jon Smith", Score: 95, Members: []string{"Smith, John"}},
		{Source: "Doe, Jane", Score: 77, Members: []string{"J. Doe"}},
		{Source: "J. Doe", Score: 77, Members: []string{"Jane Doe"}},
	}
	assert.Equal(t, expected, report.Groups, spew.Sdump(report.Groups))
}

func TestRun_ParallelMatchesSequential(t *testing.T) {
	corpus := []string{
		"John Smith", "Smith, John", "Jon Smith", "Jane Doe", "Doe, Jane", "J. Doe",
		"color", "colour", "colr", "flavor", "flavour", "apple pie", "pie apple",
	}

	sequential, err := newDetector(t, nil).Run(context.Background(), corpus, nil)
	require.NoError(t, err)

	for _, workers := range []int{0, 2, 5} {
		d := newDetector(t, func(c *config.Config) { c.Workers = workers })

		parallel, err := d.Run(context.Background(), corpus, nil)
		require.NoError(t, err)
		assert.Equal(t, sequential.Groups, parallel.Groups, "workers=%d", workers)
		assert.Equal(t, sequential.Stats.Records, parallel.Stats.Records)
	}
}

func TestRun_Deterministic(t *testing.T) {
	d := newDetector(t, func(c *config.Config) { c.Threshold = 50 })
	corpus := []string{"color", "colour", "colr", "flavor", "flavour"}

	first, err := d.Run(context.Background(), corpus, nil)
	require.NoError(t, err)
	second, err := d.Run(context.Background(), corpus, nil)
	require.NoError(t, err)

	assert.Equal(t, first.Groups, second.Groups)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestRun_RepeatsAndMaxItems(t *testing.T) {
	d := newDetector(t, func(c *config.Config) { c.MaxItems = 2 })

	report, err := d.Run(context.Background(), []string{"color", "color", "colour", "flavor"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Stats.RepeatsRemoved)
	assert.Equal(t, 1, report.Stats.Truncated)
	assert.Equal(t, 2, report.Stats.CorpusSize)
	assert.Equal(t, 2, report.Stats.PoolSize)

	codes := make([]string, 0, len(report.Warnings))
	for _, w := range report.Warnings {
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []string{diagnostic.CodeDuplicateEntry, diagnostic.CodeCorpusTruncated}, codes)

	require.Len(t, report.Groups, 1)
	assert.Equal(t, "color", report.Groups[0].Source)
}

func TestRun_SeparatePool(t *testing.T) {
	d := newDetector(t, nil)

	report, err := d.Run(context.Background(), []string{"colour"}, []string{"color", "flavor", "color"})
	require.NoError(t, err)

	// "colour" sorts after "color", so the mirrored-pair rule drops it.
	assert.Empty(t, report.Groups)
	assert.Equal(t, 2, report.Stats.PoolSize)

	d = newDetector(t, func(c *config.Config) { c.SymmetricDedup = false })
	report, err = d.Run(context.Background(), []string{"colour"}, []string{"color", "flavor"})
	require.NoError(t, err)
	require.Len(t, report.Groups, 1)
	assert.Equal(t, []string{"color"}, report.Groups[0].Members)
}

func TestRun_LimitPerQuery(t *testing.T) {
	limit := 2
	d := newDetector(t, func(c *config.Config) { c.LimitPerQuery = &limit })

	report, err := d.Run(context.Background(), []string{"color", "colour", "colr"}, nil)
	require.NoError(t, err)

	// Each source keeps itself plus its best other candidate.
	assert.Equal(t, 6, report.Stats.Records)
	expected := []dedupe.MatchGroup{
		{Source: "color", Score: 91, Members: []string{"colour"}},
	}
	assert.Equal(t, expected, report.Groups, spew.Sdump(report.Groups))
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		d := newDetector(t, func(c *config.Config) { c.Workers = workers })

		report, err := d.Run(ctx, []string{"color", "colour"}, nil)
		require.Error(t, err)
		assert.Nil(t, report)
		assert.True(t, errors.Is(err, context.Canceled))
	}
}

func TestRun_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(&buf, logging.Options{Level: "debug", Format: logging.FormatText})
	require.NoError(t, err)

	d, err := New(config.Default(), logger)
	require.NoError(t, err)

	report, err := d.Run(context.Background(), []string{"color", "colour"}, nil)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "run_id="+report.RunID)
	assert.Contains(t, out, "msg=\"scan started\"")
	assert.Contains(t, out, "msg=\"row scanned\"")
	assert.Contains(t, out, "msg=\"scan finished\"")
}

func BenchmarkRun(b *testing.B) {
	corpus := []string{
		"John Smith", "Smith, John", "Jon Smith", "Jane Doe", "Doe, Jane", "J. Doe",
		"color", "colour", "colr", "flavor", "flavour", "apple pie", "pie apple",
	}
	cfg := config.Default()
	d, err := New(cfg, nil)
	if err != nil {
		b.Fatal(err)
	}

	for i := 0; i < b.N; i++ {
		if _, err := d.Run(context.Background(), corpus, nil); err != nil {
			b.Fatal(err)
		}
	}
}
