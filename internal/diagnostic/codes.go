package diagnostic

// Diagnostic codes.
const (
	CodeThresholdRange    = "threshold_out_of_range"
	CodeLimitNotPositive  = "limit_not_positive"
	CodeWorkersNegative   = "workers_negative"
	CodeMaxItemsNegative  = "max_items_negative"
	CodeUnknownLogLevel   = "unknown_log_level"
	CodeUnknownLogFormat  = "unknown_log_format"
	CodeNullEntry         = "null_entry"
	CodeInvalidUTF8       = "invalid_utf8"
	CodeDuplicateEntry    = "duplicate_entry"
	CodeCorpusTruncated   = "corpus_truncated"
	CodeNoDedupSafeguards = "no_dedup_safeguards"
	CodeInvalidValue      = "invalid_value"
)
