package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore/chess"
)

// MoveStrings returns the long algebraic text of moves, sorted.
func MoveStrings(moves []chess.Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	slices.Sort(out)
	return out
}

// AssertMoves compares a move list with the expected long algebraic moves,
// ignoring order.
func AssertMoves(t *testing.T, got []chess.Move, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	sorted := append([]string(nil), want...)
	slices.Sort(sorted)
	if diff := cmp.Diff(sorted, MoveStrings(got), cmpOptions...); diff != "" {
		report(t, msgAndArgs, "moves mismatch (-want +got):\n%s", diff)
	}
}
