// Package scan drives the matcher across a whole corpus and produces the raw
// table of score records, one row per corpus item.
//
// # Cost
//
// A scan performs |corpus| * |pool| token-sort ratio evaluations, each of
// them an O(len(a) * len(b)) edit distance. This is the dominant cost of
// duplicate detection. Callers with large corpora should cap the pool, use
// Scanner.Rows to stream rows into a filter instead of materializing the
// table, or spread rows over workers with Scanner.ScanParallel; every row is
// independent of the others.
package scan
