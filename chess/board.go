package chess

import "strings"

// cell is one board square: a piece, or nothing when occupied is false.
type cell struct {
	piece    Piece
	occupied bool
}

// Board holds the 64 squares. It is a value type; copying a Board copies the
// position and two Boards compare equal when they hold the same pieces.
type Board struct {
	cells [NumSquares]cell
}

// PieceAt returns the piece on sq and whether the square is occupied.
func (b *Board) PieceAt(sq Square) (Piece, bool) {
	c := b.cells[sq]
	return c.piece, c.occupied
}

// IsEmpty reports whether no piece stands on sq.
func (b *Board) IsEmpty(sq Square) bool {
	return !b.cells[sq].occupied
}

// Has reports whether sq holds exactly piece p.
func (b *Board) Has(sq Square, p Piece) bool {
	c := b.cells[sq]
	return c.occupied && c.piece == p
}

// HasColour reports whether sq holds a piece of colour c.
func (b *Board) HasColour(sq Square, c Colour) bool {
	cl := b.cells[sq]
	return cl.occupied && cl.piece.Colour == c
}

// Set places p on sq, replacing anything already there.
func (b *Board) Set(sq Square, p Piece) {
	b.cells[sq] = cell{piece: p, occupied: true}
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	b.cells[sq] = cell{}
}

// Move relocates whatever stands on from to to.
func (b *Board) Move(from, to Square) {
	b.cells[to] = b.cells[from]
	b.cells[from] = cell{}
}

// Find returns the first square holding p in index order.
func (b *Board) Find(p Piece) (Square, bool) {
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Has(sq, p) {
			return sq, true
		}
	}
	return NoSquare, false
}

// Count returns how many squares hold p.
func (b *Board) Count(p Piece) int {
	n := 0
	for sq := Square(0); sq < NumSquares; sq++ {
		if b.Has(sq, p) {
			n++
		}
	}
	return n
}

// String draws the board as text, rank 8 first, '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < BoardSize; row++ {
		sb.WriteByte(byte('8' - row))
		sb.WriteByte(' ')
		for file := 0; file < BoardSize; file++ {
			sq := Square(row*BoardSize + file)
			if p, ok := b.PieceAt(sq); ok {
				sb.WriteByte(p.FENLetter())
			} else {
				sb.WriteByte('.')
			}
			if file < BoardSize-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
