// Command simcheck compares two documents by SimHash and appends a report.
//
//	simcheck [options] <source> <target> <output>
//	simcheck [options] verify
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/baditaflorin/go_simhash_similarity/internal/adapters/loader"
	"github.com/baditaflorin/go_simhash_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_simhash_similarity/internal/adapters/report"
	"github.com/baditaflorin/go_simhash_similarity/internal/config"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/domain"
	"github.com/baditaflorin/go_simhash_similarity/internal/core/simhash"
	"github.com/baditaflorin/go_simhash_similarity/internal/ports"
	"github.com/baditaflorin/go_simhash_similarity/internal/selftest"
)

// Command-line flags
var (
	configFile   string
	outputFormat string
	logFile      string
	logJSON      bool
	verbose      bool
)

var errUsage = errors.New("usage")

func init() {
	flag.StringVar(&configFile, "config", "", "Path to a YAML configuration file")
	flag.StringVar(&outputFormat, "format", "", "Report format: 'text' or 'json' (overrides config)")
	flag.StringVar(&logFile, "log-file", "", "Log file path (empty = stderr)")
	flag.BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
	flag.BoolVar(&verbose, "verbose", false, "Log progress messages")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <source> <target> <output>\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "       %s [options] verify\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	os.Exit(run(flag.Args(), os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if outputFormat != "" {
		cfg.Report.Format = outputFormat
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	cfg.Log.JSON = cfg.Log.JSON || logJSON

	log, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating logger: %v\n", err)
		return 1
	}
	defer log.Close()

	calc, err := simhash.NewCalculator(cfg.Calculator(), log)
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing calculator: %v\n", err)
		return 1
	}

	if len(args) == 1 && args[0] == "verify" {
		selftest.Run(calc, stdout)
		return 0
	}

	if err := checkArguments(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		flag.Usage()
		return 2
	}

	ld, err := loader.New(cfg.Loader.Encodings, log)
	if err != nil {
		fmt.Fprintf(stderr, "Error initializing loader: %v\n", err)
		return 1
	}
	fileReporter, err := report.NewFileReporter(cfg.Report.Format, args[2])
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	reporter := report.Chain{fileReporter, report.NewConsoleReporter(stdout, args[2])}

	if err := compareFiles(calc, ld, reporter, log, args[0], args[1]); err != nil {
		fmt.Fprintf(stderr, "%s error: %v\n", domain.Category(err), err)
		return 1
	}
	return 0
}

// checkArguments requires exactly three non-blank positional arguments.
func checkArguments(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: expected 3 arguments, got %d", errUsage, len(args))
	}
	for i, a := range args {
		if strings.TrimSpace(a) == "" {
			return fmt.Errorf("%w: argument %d must not be empty", errUsage, i+1)
		}
	}
	return nil
}

func compareFiles(calc ports.SimilarityCalculator, ld ports.DocumentLoader, reporter ports.Reporter, log ports.Logger, source, target string) error {
	started := time.Now()

	sourceText, err := ld.Load(source)
	if err != nil {
		return err
	}
	targetText, err := ld.Load(target)
	if err != nil {
		return err
	}

	result := calc.Compare(sourceText, targetText)
	r := domain.Report{
		RunID:      uuid.NewString(),
		SourcePath: source,
		TargetPath: target,
		Started:    started,
		Finished:   time.Now(),
		Result:     result,
	}

	log.Info("Comparison finished",
		"run_id", r.RunID,
		"source", source,
		"target", target,
		"difference", result.DifferenceScore,
		"similarity", result.Similarity,
	)
	return reporter.Report(r)
}

func newLogger(cfg config.LogConfig) (ports.Logger, error) {
	if !verbose && cfg.File == "" {
		return logger.NewNopLogger(), nil
	}
	return logger.New(logger.Options{File: cfg.File, JSON: cfg.JSON})
}
