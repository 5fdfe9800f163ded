package engine

import "github.com/lgbarn/chesscore/chess"

// Status classifies the current position.
type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
	DrawFiftyMove
	DrawRepetition
	DrawInsufficientMaterial
)

// String returns the name of a status.
func (s Status) String() string {
	names := []string{
		"Ongoing", "Check", "Checkmate", "Stalemate",
		"DrawFiftyMove", "DrawRepetition", "DrawInsufficientMaterial",
	}
	if s >= 0 && int(s) < len(names) {
		return names[s]
	}
	return "Unknown"
}

// IsTerminal reports whether the game is over.
func (s Status) IsTerminal() bool {
	return s >= Checkmate
}

// IsDraw reports whether the status is a drawn result.
func (s Status) IsDraw() bool {
	switch s {
	case Stalemate, DrawFiftyMove, DrawRepetition, DrawInsufficientMaterial:
		return true
	default:
		return false
	}
}

// Status evaluates the position. When several outcomes hold at once the
// first of Checkmate, Stalemate, DrawInsufficientMaterial, DrawFiftyMove,
// DrawRepetition, Check applies.
func (p *Position) Status() Status {
	inCheck := p.InCheck()
	hasMoves := p.HasLegalMoves()

	switch {
	case inCheck && !hasMoves:
		return Checkmate
	case !hasMoves:
		return Stalemate
	case HasInsufficientMaterial(&p.board):
		return DrawInsufficientMaterial
	case p.state.HalfmoveClock >= FiftyMoveLimit:
		return DrawFiftyMove
	case p.RepetitionCount() >= RepetitionLimit:
		return DrawRepetition
	case inCheck:
		return Check
	}
	return Ongoing
}

// Result returns the PGN result string for a status reached with turn to
// move: "1-0", "0-1", "1/2-1/2", or "*" while the game goes on.
func Result(s Status, turn chess.Colour) string {
	switch {
	case s == Checkmate && turn == chess.White:
		return "0-1"
	case s == Checkmate:
		return "1-0"
	case s.IsDraw():
		return "1/2-1/2"
	}
	return "*"
}
