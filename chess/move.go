package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore/errors"
)

// MoveFlag classifies a move.
type MoveFlag int

const (
	Normal MoveFlag = iota
	Capture
	DoublePawnPush
	EnPassant
	Castle
	Promotion // with or without a capture
)

// String returns the name of a move flag.
func (f MoveFlag) String() string {
	names := []string{"Normal", "Capture", "DoublePawnPush", "EnPassant", "Castle", "Promotion"}
	if f >= 0 && int(f) < len(names) {
		return names[f]
	}
	return "Unknown"
}

// Move is a single move. Promotion is set only when Flag is Promotion.
type Move struct {
	From      Square
	To        Square
	Flag      MoveFlag
	Promotion PieceType
}

// IsPromotion returns true if this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Flag == Promotion
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Flag == Castle
}

// String returns the move in long algebraic (UCI) form, e.g. "e2e4" or
// "e7e8q". Castling is written as the king's two-square move.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Flag == Promotion {
		s += string(m.Promotion.Letter() + 'a' - 'A')
	}
	return s
}

// UCIMove is a move request in long algebraic form, before it has been
// matched against a position's legal moves.
type UCIMove struct {
	From      Square
	To        Square
	Promotion PieceType // zero when no promotion piece was given
}

// ParseUCI parses long algebraic notation such as "g1f3" or "a7a8n".
func ParseUCI(s string) (UCIMove, error) {
	if len(s) != 4 && len(s) != 5 {
		return UCIMove{}, fmt.Errorf("move %q: %w", s, errors.ErrIllegalMove)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return UCIMove{}, fmt.Errorf("move %q: %w", s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return UCIMove{}, fmt.Errorf("move %q: %w", s, err)
	}
	m := UCIMove{From: from, To: to}
	if len(s) == 5 {
		pt, ok := PieceTypeFromLetter(s[4])
		if !ok || pt == Pawn || pt == King {
			return UCIMove{}, fmt.Errorf("move %q: bad promotion piece: %w", s, errors.ErrIllegalMove)
		}
		m.Promotion = pt
	}
	return m, nil
}
