// Package engine runs near-duplicate detection end to end: it validates the
// configuration and the inputs before any scoring, scans the corpus against
// the candidate pool, filters and groups the scores, and returns a report.
//
// Usage:
//
//	d, err := engine.New(config.Default(), logger)
//	if err != nil {
//	    // configuration error, nothing was scanned
//	}
//	report, err := d.Run(ctx, corpus, nil) // nil pool compares the corpus with itself
//	for _, g := range report.Groups {
//	    fmt.Printf("%d %s: %s\n", g.Score, g.Source, g.Joined())
//	}
package engine
