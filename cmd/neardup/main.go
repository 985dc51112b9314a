// Package main is the entry point for the neardup command.
//
// neardup reads a corpus of strings, scores every pair with the token-sort
// ratio and prints the groups of near-duplicates at or above the threshold.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"neardup/internal/config"
	"neardup/internal/corpus"
	"neardup/internal/diagnostic"
	"neardup/internal/engine"
	"neardup/internal/logging"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

// streams bundles the process I/O so tests can run the command in memory.
type streams struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	lookup func(string) (string, bool)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], streams{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		lookup: os.LookupEnv,
	})
	stop()
	os.Exit(code)
}

type options struct {
	configPath      string
	envFile         string
	poolPath        string
	printConfig     string
	writeConfig     string
	showVersion     bool
	threshold       int
	limit           int
	workers         int
	maxItems        int
	caseSensitive   bool
	keepPunctuation bool
	logLevel        string
	logFormat       string
}

// newFlagSet registers the command-line flags. Defaults shown in the usage
// text are the effective configuration defaults; only flags set explicitly
// override the config file and environment.
func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	def := config.Default()
	fs := flag.NewFlagSet("neardup", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to a YAML or TOML configuration file")
	fs.StringVar(&opts.configPath, "c", "", "Path to a configuration file (shorthand)")
	fs.StringVar(&opts.envFile, "env-file", ".env", "Path to a .env file with NEARDUP_* variables")
	fs.StringVar(&opts.poolPath, "pool", "", "Compare the corpus against this candidate file instead of itself")
	fs.StringVar(&opts.printConfig, "print-config", "", "Print the effective configuration as yaml or toml and exit")
	fs.StringVar(&opts.writeConfig, "write-config", "", "Write the effective configuration to a .yaml, .yml or .toml file and exit")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.IntVar(&opts.threshold, "threshold", def.Threshold, "Minimum score (0-100) for a pair to be reported")
	fs.IntVar(&opts.limit, "limit", def.Limit(), "Keep only the top N candidates per item (no cap unless set)")
	fs.IntVar(&opts.workers, "workers", def.Workers, "Parallel scan workers; 1 scans sequentially, 0 uses every CPU")
	fs.IntVar(&opts.maxItems, "max-items", def.MaxItems, "Scan at most N unique corpus items (0 means no cap)")
	fs.BoolVar(&opts.caseSensitive, "case-sensitive", def.CaseSensitive, "Keep letter case when comparing")
	fs.BoolVar(&opts.keepPunctuation, "keep-punctuation", !def.StripPunctuation, "Treat punctuation as part of tokens")
	fs.StringVar(&opts.logLevel, "log-level", def.Log.Level, "Log level (debug, info, warn, error)")
	fs.StringVar(&opts.logFormat, "log-format", def.Log.Format, "Log format (text, json)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "neardup - near-duplicate string detection\n\n")
		fmt.Fprintf(stderr, "Usage: neardup [options] <corpus-file | ->\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  neardup names.txt                  One item per line\n")
		fmt.Fprintf(stderr, "  neardup -threshold 90 items.yaml   YAML list of strings\n")
		fmt.Fprintf(stderr, "  cat names.txt | neardup -          Read the corpus from stdin\n")
	}

	return fs
}

func run(ctx context.Context, args []string, s streams) int {
	var opts options
	fs := newFlagSet(&opts, s.stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}

		return exitUsage
	}

	if opts.showVersion {
		fmt.Fprintf(s.stdout, "neardup %s\n", version)
		fmt.Fprintf(s.stdout, "Commit: %s\n", commit)
		fmt.Fprintf(s.stdout, "Built: %s\n", date)
		return exitOK
	}

	cfg, err := loadConfig(fs, &opts, s.lookup)
	if err != nil {
		fmt.Fprintf(s.stderr, "Error: %v\n", err)
		return exitUsage
	}

	if opts.printConfig != "" {
		data, err := config.Marshal(cfg, config.Format(opts.printConfig))
		if err != nil {
			fmt.Fprintf(s.stderr, "Error: %v\n", err)
			return exitUsage
		}

		_, _ = s.stdout.Write(data)

		return exitOK
	}

	if opts.writeConfig != "" {
		if err := config.WriteFile(cfg, opts.writeConfig); err != nil {
			fmt.Fprintf(s.stderr, "Error: %v\n", err)
			return exitFailed
		}

		return exitOK
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}

	logger, err := logging.New(s.stderr, cfg.LoggingOptions())
	if err != nil {
		fmt.Fprintf(s.stderr, "Error: %v\n", err)
		return exitUsage
	}

	detector, err := engine.New(*cfg, logger)
	if err != nil {
		fmt.Fprintf(s.stderr, "Error: %v\n", err)
		return exitCode(err)
	}

	items, err := readCorpus(fs.Arg(0), s.stdin)
	if err != nil {
		fmt.Fprintf(s.stderr, "Error: %v\n", err)
		return exitFailed
	}

	var pool []string
	if opts.poolPath != "" {
		if pool, err = corpus.LoadFile(opts.poolPath); err != nil {
			fmt.Fprintf(s.stderr, "Error: %v\n", err)
			return exitFailed
		}
	}

	report, err := detector.Run(ctx, items, pool)
	if err != nil {
		fmt.Fprintf(s.stderr, "Error: %v\n", err)
		return exitCode(err)
	}

	if err := printReport(s.stdout, report); err != nil {
		fmt.Fprintf(s.stderr, "Error: %v\n", err)
		return exitFailed
	}

	return exitOK
}

// loadConfig layers the configuration: defaults, then the config file, then
// the environment (a .env file fills unset variables), then explicit flags.
func loadConfig(fs *flag.FlagSet, opts *options, lookup func(string) (string, bool)) (*config.Config, error) {
	cfg := config.Default()

	if opts.configPath != "" {
		loaded, err := config.LoadFile(opts.configPath)
		if err != nil {
			return nil, err
		}

		cfg = *loaded
	}

	if opts.envFile != "" {
		if err := config.LoadDotEnv(opts.envFile); err != nil {
			return nil, err
		}
	}

	if err := config.ApplyEnv(&cfg, lookup); err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "threshold":
			cfg.Threshold = opts.threshold
		case "limit":
			limit := opts.limit
			cfg.LimitPerQuery = &limit
		case "workers":
			cfg.Workers = opts.workers
		case "max-items":
			cfg.MaxItems = opts.maxItems
		case "case-sensitive":
			cfg.CaseSensitive = opts.caseSensitive
		case "keep-punctuation":
			cfg.StripPunctuation = !opts.keepPunctuation
		case "log-level":
			cfg.Log.Level = opts.logLevel
		case "log-format":
			cfg.Log.Format = opts.logFormat
		}
	})

	if err := config.Validate(&cfg).Err(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// readCorpus loads the corpus from a file, or from stdin when path is "-".
func readCorpus(path string, stdin io.Reader) ([]string, error) {
	if path == "-" {
		items, err := corpus.ReadLines(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read corpus from stdin: %w", err)
		}

		return items, nil
	}

	return corpus.LoadFile(path)
}

// exitCode maps configuration errors to exitUsage and everything else to
// exitFailed.
func exitCode(err error) int {
	if errors.Is(err, diagnostic.ErrConfiguration) {
		return exitUsage
	}

	return exitFailed
}
