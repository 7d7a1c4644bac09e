// Package main provides the command-line interface for the fixture generator.
// It writes a tree of empty files whose names exercise the rules of a media
// renaming tool: episode naming patterns, release tags, whitelisted folders and
// blacklisted extensions. Every created path is printed to stdout, one per line.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/yourusername/rename-fixtures/internal/backend"
	"github.com/yourusername/rename-fixtures/internal/catalog"
	"github.com/yourusername/rename-fixtures/internal/engine"
	"github.com/yourusername/rename-fixtures/internal/generator"
	"github.com/yourusername/rename-fixtures/internal/logger"
	"github.com/yourusername/rename-fixtures/internal/progress"
	"github.com/yourusername/rename-fixtures/internal/safety"
	"github.com/yourusername/rename-fixtures/internal/scanner"
)

// Flag defaults.
const (
	DefaultDir          = "./tests"
	DefaultTotalSeries  = 3
	DefaultTotalSamples = 3
)

// Exit codes.
const (
	ExitOK         = 0
	ExitFailure    = 1 // a filesystem operation failed
	ExitInvalidUse = 2 // bad arguments, bad catalog or unsafe reset target
)

// Output destinations, replaced in tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Config holds the parsed command-line configuration.
type Config struct {
	Dir          string
	Reset        bool
	TotalSeries  int
	TotalSamples int
	Seed         uint64 // 0 picks a time-based seed
	Extended     bool
	CatalogFile  string
	Verbose      bool
	LogFile      string
	Quiet        bool
}

func main() {
	config, err := parseArguments()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n\n", err)
		printUsage()
		os.Exit(ExitInvalidUse)
	}

	os.Exit(run(config))
}

// parseArguments parses and validates the command-line arguments in os.Args.
func parseArguments() (*Config, error) {
	config := &Config{}

	flag.StringVar(&config.Dir, "dir", DefaultDir, "Root output directory")
	flag.BoolVar(&config.Reset, "reset", false, "Delete the output directory before generating")
	flag.IntVar(&config.TotalSeries, "total-series", DefaultTotalSeries, "Number of series directories")
	flag.IntVar(&config.TotalSamples, "total-samples", DefaultTotalSamples, "Samples per template and extension")
	flag.Uint64Var(&config.Seed, "seed", 0, "Random seed (0: time-based)")
	flag.BoolVar(&config.Extended, "extended", false, "Also generate whitelisted and non-whitelisted filenames and folders")
	flag.StringVar(&config.CatalogFile, "catalog", "", "YAML file overriding the built-in catalog")
	flag.BoolVar(&config.Verbose, "verbose", false, "Enable detailed logging")
	flag.StringVar(&config.LogFile, "log-file", "", "Write logs to specified file")
	flag.BoolVar(&config.Quiet, "quiet", false, "Do not print the summary")

	flag.Usage = printUsage

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	if flag.NArg() > 0 {
		return nil, fmt.Errorf("unexpected positional arguments: %v\n"+
			"   All options must be specified as flags", flag.Args())
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// validateConfig checks values the flag package cannot check by itself.
func validateConfig(config *Config) error {
	if config.Dir == "" {
		return fmt.Errorf("invalid --dir value: must not be empty")
	}

	if config.TotalSeries < 0 {
		return fmt.Errorf("invalid --total-series value: must be >= 0 (got %d)", config.TotalSeries)
	}

	if config.TotalSamples < 0 {
		return fmt.Errorf("invalid --total-samples value: must be >= 0 (got %d)", config.TotalSamples)
	}

	return nil
}

// printUsage displays usage information and examples.
func printUsage() {
	fmt.Fprintln(stderr, "Rename fixture generator")
	fmt.Fprintln(stderr)
	fmt.Fprintln(stderr, "Usage: gen-fixtures [options]")
	fmt.Fprintln(stderr)
	fmt.Fprintln(stderr, "Options:")
	fmt.Fprintln(stderr, "  --dir PATH            Root output directory (default: ./tests)")
	fmt.Fprintln(stderr, "  --reset               Delete the output directory before generating")
	fmt.Fprintln(stderr, "  --total-series N      Number of series_<i> directories (default: 3)")
	fmt.Fprintln(stderr, "  --total-samples N     Samples per template and extension (default: 3)")
	fmt.Fprintln(stderr, "  --seed N              Random seed, 0 for a time-based seed (default: 0)")
	fmt.Fprintln(stderr, "  --extended            Also generate whitelisted/non-whitelisted filenames and folders")
	fmt.Fprintln(stderr, "  --catalog PATH        YAML file overriding templates, tags, extensions or folders")
	fmt.Fprintln(stderr, "  --verbose             Enable detailed logging")
	fmt.Fprintln(stderr, "  --log-file PATH       Write logs to specified file")
	fmt.Fprintln(stderr, "  --quiet               Do not print the summary")
	fmt.Fprintln(stderr)
	fmt.Fprintln(stderr, "Examples:")
	fmt.Fprintln(stderr, "  gen-fixtures")
	fmt.Fprintln(stderr, "  gen-fixtures --dir /tmp/fixtures --reset --seed 42")
	fmt.Fprintln(stderr, "  gen-fixtures --total-series 10 --total-samples 5 --extended > paths.txt")
}

// run generates the fixture tree described by config.
// Returns ExitOK, ExitFailure for a filesystem error or ExitInvalidUse for a
// bad catalog or an unsafe reset target.
func run(config *Config) int {
	if err := logger.SetupLogging(stderr, config.Verbose, config.LogFile); err != nil {
		fmt.Fprintf(stderr, "Warning: Failed to setup logging: %v\n", err)
	}
	defer logger.Close()

	cat, err := loadCatalog(config.CatalogFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		logger.Error("Catalog rejected: %v", err)
		return ExitInvalidUse
	}

	eng := engine.NewEngine(backend.NewBackend(), func(path string) {
		fmt.Fprintln(stdout, path)
	})

	summary := progress.Summary{
		Root:   config.Dir,
		Seed:   resolveSeed(config.Seed),
		Series: config.TotalSeries,
		Reset:  config.Reset,
		OnDisk: -1,
	}
	logger.Info("Output directory: %s (seed %d)", config.Dir, summary.Seed)

	if config.Reset {
		deleted, code := resetOutput(eng, config.Dir)
		if code != ExitOK {
			return code
		}
		summary.Deleted = deleted
	}

	var reporter *progress.Reporter
	if !config.Quiet {
		reporter = progress.NewReporter(stderr, config.TotalSeries)
	}

	// One random stream for the whole run, so a seed reproduces every series.
	rng := generator.NewRand(summary.Seed)
	opts := generator.Options{TotalSamples: config.TotalSamples, Extended: config.Extended}

	for i := range config.TotalSeries {
		series := engine.SeriesName(i)
		result, err := eng.Materialize(config.Dir, series, generator.New(rng, cat, opts).Paths())
		summary.Created += result.CreatedCount
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			logger.Error("Generation of %s failed after %d files: %v", series, result.CreatedCount, err)
			return ExitFailure
		}
		if reporter != nil {
			reporter.SeriesDone(series, result.CreatedCount)
		}
	}

	logger.Info("Generated %d files in %d series", summary.Created, config.TotalSeries)

	if reporter != nil {
		scan, err := scanner.NewScanner(config.Dir).Scan()
		if err != nil {
			logger.Warning("Cannot count files below %s: %v", config.Dir, err)
		} else {
			summary.OnDisk = scan.TotalFiles
		}
		reporter.Finish(summary)
	}

	return ExitOK
}

// loadCatalog returns the built-in catalog, or the one in path when set.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}

	logger.Info("Loading catalog from %s", path)
	return catalog.Load(path)
}

// resetOutput validates dir and removes it. Returns the number of removed
// entries and the exit code to stop with, or ExitOK to continue.
func resetOutput(eng *engine.Engine, dir string) (int, int) {
	logger.Info("Validating reset target...")
	if ok, reason := safety.IsSafeResetTarget(dir); !ok {
		fmt.Fprintf(stderr, "Error: Cannot reset %s\n", dir)
		fmt.Fprintf(stderr, "   Reason: %s\n", reason)
		logger.Error("Reset target rejected: %s", reason)
		return 0, ExitInvalidUse
	}

	result, err := eng.Reset(dir)
	if err != nil {
		fmt.Fprintf(stderr, "Error: Reset failed: %v\n", err)
		logger.Error("Reset failed: %v", err)
		return result.DeletedCount, ExitFailure
	}

	return result.DeletedCount, ExitOK
}

// resolveSeed returns seed, or a time-based seed when it is zero.
func resolveSeed(seed uint64) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}
