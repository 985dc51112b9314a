package config

import (
	"fmt"

	"neardup/internal/diagnostic"
	"neardup/internal/logging"
	"neardup/internal/match"
)

// Validate checks every setting and reports all violations at once.
// It never stops at the first problem, so callers can show a full list.
func Validate(cfg *Config) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cfg == nil {
		res.AddConfigError(diagnostic.CodeInvalidValue, "config", "config is nil")
		return res
	}

	if cfg.Threshold < match.MinScore || cfg.Threshold > match.MaxScore {
		res.AddConfigError(diagnostic.CodeThresholdRange, "threshold",
			fmt.Sprintf("must be within [%d, %d], got %d", match.MinScore, match.MaxScore, cfg.Threshold))
	}

	if cfg.LimitPerQuery != nil && *cfg.LimitPerQuery <= 0 {
		res.AddConfigError(diagnostic.CodeLimitNotPositive, "limit_per_query",
			fmt.Sprintf("must be positive when set, got %d", *cfg.LimitPerQuery))
	}

	if cfg.Workers < 0 {
		res.AddConfigError(diagnostic.CodeWorkersNegative, "workers",
			fmt.Sprintf("must not be negative, got %d", cfg.Workers))
	}

	if cfg.MaxItems < 0 {
		res.AddConfigError(diagnostic.CodeMaxItemsNegative, "max_items",
			fmt.Sprintf("must not be negative, got %d", cfg.MaxItems))
	}

	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		res.AddConfigError(diagnostic.CodeUnknownLogLevel, "log.level", err.Error())
	}

	if !logging.ValidFormat(cfg.Log.Format) {
		res.AddConfigError(diagnostic.CodeUnknownLogFormat, "log.format",
			fmt.Sprintf("must be %q or %q, got %q", logging.FormatText, logging.FormatJSON, cfg.Log.Format))
	}

	if !cfg.SelfExclude && !cfg.SymmetricDedup {
		res.AddWarning(diagnostic.CodeNoDedupSafeguards, "self_exclude",
			"self matches and mirrored pairs will both be reported")
	}

	return res
}
