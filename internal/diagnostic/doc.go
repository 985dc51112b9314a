// Package diagnostic provides the structured errors and warnings reported
// while validating a duplicate-detection run.
//
// Key capabilities:
//   - Error kinds: configuration errors and input errors
//   - Stable codes and the offending field or item index
//   - Aggregation of every violation found by fail-fast validation
//   - errors.Is classification against ErrConfiguration and ErrInput
package diagnostic
