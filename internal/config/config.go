// Package config provides configuration for the perft tool.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/lgbarn/chesscore/engine"
	"github.com/lgbarn/chesscore/errors"
)

// MaxDepth bounds the perft depth accepted from the command line.
const MaxDepth = 10

// Config holds all program configuration.
type Config struct {
	Perft  *PerftConfig
	Output *OutputConfig

	Verbosity int // 0=nothing, 1=summary, 2=per-move commentary

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// PerftConfig holds what to count.
type PerftConfig struct {
	FEN     string
	Depth   int
	Divide  bool // report the count below each root move
	Workers int  // 1 runs serially
	Verify  bool // cross-check against the reference generator
}

// OutputConfig holds presentation settings.
type OutputConfig struct {
	ShowBoard  bool
	ShowTiming bool
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		FEN:     engine.InitialFEN,
		Depth:   4,
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft settings can be run.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 || p.Depth > MaxDepth {
		return fmt.Errorf("depth %d outside 1..%d: %w", p.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers must be positive, got %d: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if _, err := engine.ParseFEN(p.FEN); err != nil {
		return errors.Wrap(errors.ErrInvalidConfig, err.Error())
	}
	return nil
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{ShowTiming: true}
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Perft:      NewPerftConfig(),
		Output:     NewOutputConfig(),
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks the whole configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return fmt.Errorf("verbosity %d outside 0..2: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return c.Perft.Validate()
}

// Logf writes a diagnostic line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.Verbosity < level || c.LogFile == nil {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
