// Package config provides configuration for the chess arbiter and its replay tool.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// Verbosity levels for the log stream.
const (
	Silent     = 0 // nothing
	Summary    = 1 // per-game failures and totals
	Commentary = 2 // every accepted ply
)

// Config holds all program configuration.
type Config struct {
	// Rule thresholds passed to every arbiter.
	Rules *RulesConfig

	// Report formatting.
	Output *OutputConfig

	// Verbosity of the log stream: Silent, Summary or Commentary.
	Verbosity int

	// Workers is the number of games replayed concurrently.
	Workers int

	// StartFEN is the position every game starts from (empty means the
	// standard initial position).
	StartFEN string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      NewRulesConfig(),
		Output:     NewOutputConfig(),
		Verbosity:  Summary,
		Workers:    runtime.NumCPU(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the report stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity (%d) out of range: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return c.Rules.Validate()
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
