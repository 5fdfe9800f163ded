// perft counts the leaf nodes of the legal move tree from a position, for
// checking the move generator against published counts.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lgbarn/chesscore/chess"
	"github.com/lgbarn/chesscore/engine"
	"github.com/lgbarn/chesscore/internal/config"
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
		fmt.Printf("perft version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "perft: %v\n", err)
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
	cfg.OutputFile = file
}

// run counts the configured position and writes the report. It returns an
// error for bad configuration or a failed cross-check.
func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	pc := cfg.Perft

	pos, err := engine.ParseFEN(pc.FEN)
	if err != nil {
		return err
	}
	cfg.Logf(1, "perft depth %d, %d workers: %s", pc.Depth, pc.Workers, pos.FEN())
	if cfg.Output.ShowBoard {
		fmt.Fprint(cfg.OutputFile, pos.String())
	}

	start := time.Now()
	var div map[chess.Move]uint64
	var nodes uint64
	switch {
	case pc.Divide && pc.Workers > 1:
		div = engine.ParallelDivide(pos, pc.Depth, pc.Workers)
		nodes = engine.SumNodes(div)
	case pc.Divide:
		div = pos.Divide(pc.Depth)
		nodes = engine.SumNodes(div)
	default:
		nodes = pos.Perft(pc.Depth)
	}
	elapsed := time.Since(start)

	if div != nil {
		for _, m := range engine.SortedMoves(div) {
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", m, div[m])
			cfg.Logf(2, "%s done", m)
		}
		fmt.Fprintln(cfg.OutputFile)
	}
	fmt.Fprintf(cfg.OutputFile, "Nodes: %d\n", nodes)
	if cfg.Output.ShowTiming {
		fmt.Fprintf(cfg.OutputFile, "Time: %s (%.0f nps)\n", elapsed.Round(time.Millisecond), nps(nodes, elapsed))
	}

	if pc.Verify {
		return verifyCounts(cfg, nodes, div)
	}
	return nil
}

func nps(nodes uint64, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(nodes) / elapsed.Seconds()
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: perft [options]\n\n")
	fmt.Fprintf(os.Stderr, "Counts legal move paths to a fixed depth.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
