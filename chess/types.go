// Package chess provides core chess types: colours, pieces, squares, moves and
// the mailbox board.
package chess

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents the kind of a chess piece. The zero value is not a
// piece type.
type PieceType uint8

const (
	Pawn PieceType = iota + 1
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceTypes lists every piece type in ascending order.
var PieceTypes = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// PromotionTypes lists the promotion choices in generation order.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// String returns the name of a piece type.
func (pt PieceType) String() string {
	names := []string{"", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if pt > 0 && int(pt) < len(names) {
		return names[pt]
	}
	return "Unknown"
}

// Letter returns the upper-case FEN letter of a piece type.
func (pt PieceType) Letter() byte {
	letters := []byte{'?', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if pt > 0 && int(pt) < len(letters) {
		return letters[pt]
	}
	return '?'
}

// Valid reports whether pt names one of the six piece types.
func (pt PieceType) Valid() bool {
	return pt >= Pawn && pt <= King
}

// PieceTypeFromLetter converts a FEN or UCI letter of either case.
func PieceTypeFromLetter(c byte) (PieceType, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return 0, false
}

// Piece is a piece of a given type and colour.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NewPiece creates a piece.
func NewPiece(c Colour, pt PieceType) Piece {
	return Piece{Type: pt, Colour: c}
}

// FENLetter returns the FEN letter: upper case for White, lower case for Black.
func (p Piece) FENLetter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns e.g. "White Knight".
func (p Piece) String() string {
	return p.Colour.String() + " " + p.Type.String()
}

// PieceFromFEN converts a FEN piece letter.
func PieceFromFEN(c byte) (Piece, bool) {
	pt, ok := PieceTypeFromLetter(c)
	if !ok {
		return Piece{}, false
	}
	if c >= 'a' && c <= 'z' {
		return NewPiece(Black, pt), true
	}
	return NewPiece(White, pt), true
}

// CastlingRights is a set of the four independent castling permissions.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// String returns the FEN castling field.
func (c CastlingRights) String() string {
	if c&AllCastling == 0 {
		return "-"
	}
	var b []byte
	for _, r := range []struct {
		right  CastlingRights
		letter byte
	}{
		{WhiteKingside, 'K'},
		{WhiteQueenside, 'Q'},
		{BlackKingside, 'k'},
		{BlackQueenside, 'q'},
	} {
		if c.Has(r.right) {
			b = append(b, r.letter)
		}
	}
	return string(b)
}

// KingsideRight returns the kingside right of a colour.
func KingsideRight(c Colour) CastlingRights {
	if c == White {
		return WhiteKingside
	}
	return BlackKingside
}

// QueensideRight returns the queenside right of a colour.
func QueensideRight(c Colour) CastlingRights {
	if c == White {
		return WhiteQueenside
	}
	return BlackQueenside
}
