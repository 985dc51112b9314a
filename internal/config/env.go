package config

import (
	"fmt"
	"strconv"
	"strings"

	"neardup/internal/diagnostic"
)

// EnvPrefix prefixes every environment variable read by ApplyEnv.
const EnvPrefix = "NEARDUP_"

// ApplyEnv overrides cfg with NEARDUP_* variables found through lookup
// (os.LookupEnv in production). Every malformed value is reported, and cfg
// keeps the values that did parse.
//
// An empty NEARDUP_LIMIT_PER_QUERY clears the per-query cap.
func ApplyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	var diags diagnostic.Diagnostics

	intVar := func(name string, dst *int) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return
		}

		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			diags.AddConfigError(diagnostic.CodeInvalidValue, EnvPrefix+name,
				fmt.Sprintf("expected an integer, got %q", v))
			return
		}

		*dst = n
	}

	boolVar := func(name string, dst *bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return
		}

		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			diags.AddConfigError(diagnostic.CodeInvalidValue, EnvPrefix+name,
				fmt.Sprintf("expected a boolean, got %q", v))
			return
		}

		*dst = b
	}

	stringVar := func(name string, dst *string) {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = strings.ToLower(strings.TrimSpace(v))
		}
	}

	intVar("THRESHOLD", &cfg.Threshold)
	boolVar("CASE_SENSITIVE", &cfg.CaseSensitive)
	boolVar("STRIP_PUNCTUATION", &cfg.StripPunctuation)
	boolVar("SELF_EXCLUDE", &cfg.SelfExclude)
	boolVar("SYMMETRIC_DEDUP", &cfg.SymmetricDedup)
	intVar("WORKERS", &cfg.Workers)
	intVar("MAX_ITEMS", &cfg.MaxItems)
	stringVar("LOG_LEVEL", &cfg.Log.Level)
	stringVar("LOG_FORMAT", &cfg.Log.Format)

	if v, ok := lookup(EnvPrefix + "LIMIT_PER_QUERY"); ok {
		v = strings.TrimSpace(v)
		if v == "" {
			cfg.LimitPerQuery = nil
		} else if n, err := strconv.Atoi(v); err != nil {
			diags.AddConfigError(diagnostic.CodeInvalidValue, EnvPrefix+"LIMIT_PER_QUERY",
				fmt.Sprintf("expected an integer, got %q", v))
		} else {
			cfg.LimitPerQuery = &n
		}
	}

	return diags.Err()
}
