// Package config defines the eliminator configuration and how it is loaded.
package config

import (
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/eliminator/flow"
)

// Output formats understood by the report renderer.
const (
	OutputText  = "text"
	OutputTable = "table"
	OutputJSON  = "json"
)

// Outputs lists the accepted output formats.
func Outputs() []string { return []string{OutputText, OutputTable, OutputJSON} }

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: trace, debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Solver names the max-flow algorithm, see flow.Algorithms.
	Solver string `koanf:"solver"`

	// StrictLead makes a tie for first count as elimination.
	StrictLead bool `koanf:"strict_lead"`

	// Workers bounds how many teams are evaluated at once.
	Workers int `koanf:"workers"`

	// Output is one of Outputs().
	Output string `koanf:"output"`

	// ConsistentTotals rejects tables whose listed games exceed a team's
	// remaining count.
	ConsistentTotals bool `koanf:"consistent_totals"`

	// MetricsFile, when set, receives the Prometheus textfile after each run.
	MetricsFile string `koanf:"metrics_file"`
}

// New returns a Config holding the defaults.
func New() *Config {
	return &Config{
		LogLevel: "warn",
		Solver:   string(flow.EdmondsKarpAlgorithm),
		Workers:  runtime.NumCPU(),
		Output:   OutputText,
	}
}

// defaults renders New() as a flat koanf map.
func defaults() map[string]any {
	c := New()

	return map[string]any{
		"log_level":         c.LogLevel,
		"solver":            c.Solver,
		"strict_lead":       c.StrictLead,
		"workers":           c.Workers,
		"output":            c.Output,
		"consistent_totals": c.ConsistentTotals,
		"metrics_file":      c.MetricsFile,
	}
}

// Validate reports the first invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if _, err := flow.ParseAlgorithm(c.Solver); err != nil {
		return fmt.Errorf("%w: solver %q (want one of %v)", ErrInvalidConfig, c.Solver, flow.Algorithms())
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if !slices.Contains(Outputs(), c.Output) {
		return fmt.Errorf("%w: output %q (want one of %v)", ErrInvalidConfig, c.Output, Outputs())
	}

	return nil
}

// Level returns the parsed log level, or warn for an unparsable one.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.WarnLevel
	}

	return lvl
}

// Algorithm returns the parsed solver name.
func (c *Config) Algorithm() flow.Algorithm {
	alg, err := flow.ParseAlgorithm(c.Solver)
	if err != nil {
		return flow.EdmondsKarpAlgorithm
	}

	return alg
}
