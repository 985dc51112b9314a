// Package dedupe turns raw score records into a duplicate report: it applies
// the threshold, removes self matches and mirrored pairs, and groups what
// survives by source string and score.
//
// Groups are keyed by (source, score), not by source alone, so a source with
// near-duplicates at two score levels yields two groups.
package dedupe
