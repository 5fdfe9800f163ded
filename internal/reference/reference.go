// Package reference wraps independent move generators used to cross-check
// the engine: dragontoothmg for node counts and notnil/chess for move lists
// and game-end classification.
package reference

import (
	"github.com/dylhunn/dragontoothmg"
	nchess "github.com/notnil/chess"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chesscore/errors"
)

// Perft counts leaf nodes to depth with dragontoothmg.
func Perft(fen string, depth int) uint64 {
	board := dragontoothmg.ParseFen(fen)
	return perft(&board, depth)
}

func perft(b *dragontoothmg.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		unapply := b.Apply(m)
		nodes += perft(b, depth-1)
		unapply()
	}
	return nodes
}

// Divide returns dragontoothmg's perft count below each root move, keyed by
// long algebraic text.
func Divide(fen string, depth int) map[string]uint64 {
	div := make(map[string]uint64)
	if depth <= 0 {
		return div
	}
	board := dragontoothmg.ParseFen(fen)
	for _, m := range board.GenerateLegalMoves() {
		m := m
		unapply := board.Apply(m)
		div[m.String()] = perft(&board, depth-1)
		unapply()
	}
	return div
}

// Game is a notnil/chess game loaded from FEN.
type Game struct {
	g *nchess.Game
}

// Load parses fen with notnil/chess.
func Load(fen string) (*Game, error) {
	opt, err := nchess.FEN(fen)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidFEN, err.Error())
	}
	return &Game{g: nchess.NewGame(opt)}, nil
}

// LegalMoves returns the legal moves in long algebraic form, sorted.
func (g *Game) LegalMoves() []string {
	pos := g.g.Position()
	var moves []string
	for _, m := range g.g.ValidMoves() {
		moves = append(moves, nchess.UCINotation{}.Encode(pos, m))
	}
	slices.Sort(moves)
	return moves
}

// IsCheckmate reports whether the side to move is mated.
func (g *Game) IsCheckmate() bool {
	return g.g.Position().Status() == nchess.Checkmate
}

// IsStalemate reports whether the side to move has no moves and is not in
// check.
func (g *Game) IsStalemate() bool {
	return g.g.Position().Status() == nchess.Stalemate
}
