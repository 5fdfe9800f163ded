package hashing

import "github.com/lgbarn/chesscore/chess"

// Zobrist key tables, filled once at start-up from a fixed seed so hashes are
// stable across runs.
var (
	pieceKeys     [chess.NumSquares][2][chess.King + 1]uint64
	blackToMove   uint64
	castlingKeys  [chess.AllCastling + 1]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	var r splitMix64 = 0x9E3779B97F4A7C15
	for sq := range pieceKeys {
		for c := range pieceKeys[sq] {
			for _, pt := range chess.PieceTypes {
				pieceKeys[sq][c][pt] = r.next()
			}
		}
	}
	blackToMove = r.next()
	for i := range castlingKeys {
		castlingKeys[i] = r.next()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = r.next()
	}
}

// splitMix64 is the SplitMix64 generator; it only seeds the key tables.
type splitMix64 uint64

func (s *splitMix64) next() uint64 {
	*s += 0x9E3779B97F4A7C15
	z := uint64(*s)
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// Zobrist returns the Zobrist hash of a signature.
func Zobrist(sig *Signature) uint64 {
	var h uint64
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if p, ok := sig.Board.PieceAt(sq); ok {
			h ^= pieceKeys[sq][p.Colour][p.Type]
		}
	}
	if sig.Turn == chess.Black {
		h ^= blackToMove
	}
	h ^= castlingKeys[sig.Castling&chess.AllCastling]
	if sig.HasEnPassant {
		h ^= enPassantKeys[sig.EnPassant.File()]
	}
	return h
}
