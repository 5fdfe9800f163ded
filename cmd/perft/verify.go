package main

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore/chess"
	"github.com/lgbarn/chesscore/internal/config"
	"github.com/lgbarn/chesscore/internal/reference"
)

// errMismatch reports a count that disagrees with the reference generator.
var errMismatch = errors.New("perft mismatch with reference generator")

// verifyCounts compares the totals, and the per-move counts when div is
// set, with dragontoothmg.
func verifyCounts(cfg *config.Config, nodes uint64, div map[chess.Move]uint64) error {
	pc := cfg.Perft
	want := reference.Perft(pc.FEN, pc.Depth)
	if nodes != want {
		cfg.Logf(1, "total: got %d, reference %d", nodes, want)
		if div != nil {
			reportDivideDiff(cfg, div, reference.Divide(pc.FEN, pc.Depth))
		}
		return fmt.Errorf("%w: got %d nodes, want %d", errMismatch, nodes, want)
	}
	cfg.Logf(1, "verified %d nodes against reference", nodes)
	return nil
}

// reportDivideDiff logs every root move whose count differs, including
// moves only one side generated.
func reportDivideDiff(cfg *config.Config, div map[chess.Move]uint64, ref map[string]uint64) {
	got := make(map[string]uint64, len(div))
	for m, n := range div {
		got[m.String()] = n
	}

	names := maps.Keys(ref)
	for name := range got {
		if _, ok := ref[name]; !ok {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	for _, name := range names {
		g, inGot := got[name]
		r, inRef := ref[name]
		switch {
		case !inGot:
			cfg.Logf(1, "%s: missing, reference %d", name, r)
		case !inRef:
			cfg.Logf(1, "%s: %d, not in reference", name, g)
		case g != r:
			cfg.Logf(1, "%s: %d, reference %d", name, g, r)
		}
	}
}
