// chess-replay replays saved games through the chess arbiter and reports how
// each one ended, or the first move that was rejected.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chess-arbiter-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-replay version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := applyFlags(config.NewConfigBuilder()).Build()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	inputs, closeInputs := openInputs(cfg, flag.Args())
	defer closeInputs()

	stats, err := replayAll(cfg, inputs, *failFast)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	reportStatistics(cfg, stats)

	if stats.Rejected > 0 || stats.Unreadable > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
}

// openInputs opens every named file, or stdin if there are none. Files that
// cannot be opened are logged and skipped.
func openInputs(cfg *config.Config, args []string) ([]input, func()) {
	if len(args) == 0 {
		return []input{{name: "stdin", r: os.Stdin}}, func() {}
	}

	var inputs []input
	var files []*os.File
	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			cfg.Logf(config.Silent, "Error opening file %s: %v", filename, err)
			inputs = append(inputs, input{name: filename, err: err})
			continue
		}
		files = append(files, file)
		inputs = append(inputs, input{name: filename, r: file})
	}

	return inputs, func() {
		for _, f := range files {
			f.Close() //nolint:errcheck,gosec // G104: read-only input
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-replay [options] [move-list-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays each move list through the arbiter and prints one verdict per game.\n")
	fmt.Fprintf(os.Stderr, "Reads stdin when no files are given.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove text:\n")
	fmt.Fprintf(os.Stderr, "  e2e4 e2-e4 e4xd5   coordinate moves\n")
	fmt.Fprintf(os.Stderr, "  e7e8q e7e8=Q       promotion\n")
	fmt.Fprintf(os.Stderr, "  O-O O-O-O 0-0      castling\n")
	fmt.Fprintf(os.Stderr, "Move numbers, {comments}, ; and # comments, [tags] and results are skipped.\n")
}
