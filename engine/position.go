// Package engine provides move generation, legality checking, move
// execution, game-end detection and FEN conversion.
package engine

import (
	"github.com/lgbarn/chesscore/chess"
	"github.com/lgbarn/chesscore/internal/hashing"
)

// Signature identifies a position for repetition counting.
type Signature = hashing.Signature

// State is the game state that accompanies the board.
type State struct {
	Turn     chess.Colour
	Castling chess.CastlingRights

	// EnPassant is the square passed over by a double pawn push on the
	// previous ply. It is meaningful only when HasEnPassant is true.
	EnPassant    chess.Square
	HasEnPassant bool

	// Plies since the last pawn move or capture.
	HalfmoveClock int
	// Starts at 1 and increments after each Black move.
	FullmoveNumber int
}

// Position is a board, its state, and the history needed to undo moves and
// detect repetitions. A Position is not safe for concurrent use.
type Position struct {
	board chess.Board
	state State

	// Cached king squares, indexed by colour.
	kings [2]chess.Square

	undo    []undoRecord
	history []Signature
	reps    *hashing.RepetitionTable
}

// newPosition builds a position whose history starts at the given setup.
// The board must hold exactly one king of each colour.
func newPosition(board chess.Board, state State) *Position {
	p := &Position{
		board: board,
		state: state,
		reps:  hashing.NewRepetitionTable(),
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		p.kings[c], _ = board.Find(chess.NewPiece(c, chess.King))
	}
	p.record()
	return p
}

// record appends the current signature to the history.
func (p *Position) record() {
	sig := p.Signature()
	p.history = append(p.history, sig)
	p.reps.Add(sig)
}

// Signature returns the repetition signature of the current position.
func (p *Position) Signature() Signature {
	return Signature{
		Board:        p.board,
		Turn:         p.state.Turn,
		Castling:     p.state.Castling,
		EnPassant:    p.state.EnPassant,
		HasEnPassant: p.state.HasEnPassant,
	}
}

// Board returns a copy of the board.
func (p *Position) Board() chess.Board {
	return p.board
}

// State returns a copy of the game state.
func (p *Position) State() State {
	return p.state
}

// PieceAt returns the piece on sq, if any.
func (p *Position) PieceAt(sq chess.Square) (chess.Piece, bool) {
	if !sq.Valid() {
		return chess.Piece{}, false
	}
	return p.board.PieceAt(sq)
}

// Turn returns the side to move.
func (p *Position) Turn() chess.Colour {
	return p.state.Turn
}

// KingSquare returns the square of the king of colour c.
func (p *Position) KingSquare(c chess.Colour) chess.Square {
	return p.kings[c]
}

// Plies returns the number of moves applied since the position was loaded.
func (p *Position) Plies() int {
	return len(p.undo)
}

// History returns the signatures of every position reached, oldest first.
// The last entry is the current position.
func (p *Position) History() []Signature {
	return append([]Signature(nil), p.history...)
}

// RepetitionCount returns how many times the current position has occurred,
// including now.
func (p *Position) RepetitionCount() int {
	return p.reps.Count(p.history[len(p.history)-1])
}

// Clone returns an independent deep copy, history included.
func (p *Position) Clone() *Position {
	return &Position{
		board:   p.board,
		state:   p.state,
		kings:   p.kings,
		undo:    append([]undoRecord(nil), p.undo...),
		history: append([]Signature(nil), p.history...),
		reps:    p.reps.Clone(),
	}
}

// String draws the board followed by the FEN.
func (p *Position) String() string {
	return p.board.String() + p.FEN() + "\n"
}
