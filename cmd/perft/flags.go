package main

import (
	"flag"

	"github.com/lgbarn/chesscore/internal/config"
)

// Command-line flags
var (
	// Position and depth
	fenString = flag.String("fen", "", "Starting position (default: initial position)")
	depth     = flag.Int("depth", 4, "Search depth in plies")

	// Counting
	divide  = flag.Bool("divide", false, "Print the node count below each root move")
	workers = flag.Int("workers", 0, "Worker goroutines for divide (0 = one per CPU)")
	verify  = flag.Bool("verify", false, "Cross-check counts against dragontoothmg")

	// Output
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	showBoard  = flag.Bool("board", false, "Print the board before counting")
	noTiming   = flag.Bool("notiming", false, "Don't print elapsed time and speed")
	quiet      = flag.Bool("s", false, "Silent mode (no diagnostics)")
	verbose    = flag.Bool("v", false, "Verbose diagnostics")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPerftFlags(cfg)
	applyOutputFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyPerftFlags configures what is counted.
func applyPerftFlags(cfg *config.Config) {
	if *fenString != "" {
		cfg.Perft.FEN = *fenString
	}
	cfg.Perft.Depth = *depth
	cfg.Perft.Divide = *divide
	if *workers > 0 {
		cfg.Perft.Workers = *workers
	}
	cfg.Perft.Verify = *verify
}

// applyOutputFlags configures presentation.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowTiming = !*noTiming
}
