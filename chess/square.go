package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore/errors"
)

// Square is a board index 0..63 in FEN order: a8 is 0, h8 is 7, a1 is 56 and
// h1 is 63.
type Square int8

// NoSquare is returned together with false when no square applies.
const NoSquare Square = -1

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Named squares used by castling and tests.
const (
	A8 Square = iota
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

const (
	A1 Square = 56 + iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

// NewSquare builds a square from a file (0 = a) and rank (0 = rank 1).
func NewSquare(file, rank int) Square {
	return Square((BoardSize-1-rank)*BoardSize + file)
}

// File returns the file index, 0 for the a-file.
func (sq Square) File() int {
	return int(sq) % BoardSize
}

// Rank returns the rank index, 0 for rank 1.
func (sq Square) Rank() int {
	return BoardSize - 1 - int(sq)/BoardSize
}

// Valid reports whether sq is on the board.
func (sq Square) Valid() bool {
	return sq >= 0 && sq < NumSquares
}

// IsLight reports whether sq is a light square (h1 is light).
func (sq Square) IsLight() bool {
	return (sq.File()+sq.Rank())%2 == 1
}

// String returns the algebraic name, e.g. "e4".
func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + sq.File()), byte(RankBase + sq.Rank())})
}

// ParseSquare converts algebraic notation to a square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return NewSquare(int(file-FileBase), int(rank-RankBase)), nil
}

// MustParseSquare is like ParseSquare but panics on error. Intended for
// constants and tests.
func MustParseSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}
