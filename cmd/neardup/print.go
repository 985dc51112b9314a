package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"neardup/internal/engine"
)

// printReport writes one line per duplicate group: score, source and the
// comma-separated matches.
func printReport(w io.Writer, report *engine.Report) error {
	if len(report.Groups) == 0 {
		_, err := fmt.Fprintln(w, "no near-duplicates found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tSOURCE\tMATCHES")

	for _, g := range report.Groups {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", g.Score, g.Source, g.Joined())
	}

	return tw.Flush()
}
