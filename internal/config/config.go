// Package config defines the duplicate-detection settings and loads them
// from YAML or TOML files, .env files and NEARDUP_* environment variables.
package config

import (
	"neardup/internal/dedupe"
	"neardup/internal/logging"
	"neardup/internal/match"
)

// Config holds every setting of a detection run.
type Config struct {
	// Threshold is the match cutoff (0-100).
	Threshold int `yaml:"threshold" toml:"threshold"`
	// CaseSensitive keeps letter case during normalization.
	CaseSensitive bool `yaml:"case_sensitive" toml:"case_sensitive"`
	// StripPunctuation turns punctuation into token separators.
	StripPunctuation bool `yaml:"strip_punctuation" toml:"strip_punctuation"`
	// LimitPerQuery caps the candidates considered per source.
	// Nil means no cap; a set value must be positive.
	LimitPerQuery *int `yaml:"limit_per_query,omitempty" toml:"limit_per_query,omitempty"`
	// SelfExclude drops matches of a string with itself.
	SelfExclude bool `yaml:"self_exclude" toml:"self_exclude"`
	// SymmetricDedup reports each unordered pair once.
	SymmetricDedup bool `yaml:"symmetric_dedup" toml:"symmetric_dedup"`
	// Workers is the number of parallel scan workers; 0 uses every CPU.
	Workers int `yaml:"workers" toml:"workers"`
	// MaxItems caps the corpus after repeated entries are removed; 0 means no cap.
	MaxItems int `yaml:"max_items" toml:"max_items"`
	// Log configures the logger.
	Log LogConfig `yaml:"log" toml:"log"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	norm := match.DefaultNormalizeOptions()
	filter := dedupe.DefaultOptions()
	log := logging.DefaultOptions()

	return Config{
		Threshold:        filter.Threshold,
		CaseSensitive:    norm.CaseSensitive,
		StripPunctuation: norm.StripPunctuation,
		SelfExclude:      filter.SelfExclude,
		SymmetricDedup:   filter.SymmetricDedup,
		Workers:          1,
		Log: LogConfig{
			Level:  log.Level,
			Format: log.Format,
		},
	}
}

// Limit returns LimitPerQuery, or 0 when no cap is set.
func (c *Config) Limit() int {
	if c.LimitPerQuery == nil {
		return 0
	}

	return *c.LimitPerQuery
}

// LoggingOptions converts the log section for the logging package.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Level: c.Log.Level, Format: c.Log.Format}
}
