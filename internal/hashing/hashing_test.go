package hashing

import (
	"testing"

	"github.com/lgbarn/chesscore/chess"
)

// startSignature builds the initial position by hand; the engine package
// cannot be imported here.
func startSignature() Signature {
	var sig Signature
	backRank := []chess.PieceType{chess.Rook, chess.Knight, chess.Bishop, chess.Queen, chess.King, chess.Bishop, chess.Knight, chess.Rook}
	for file, pt := range backRank {
		sig.Board.Set(chess.NewSquare(file, 0), chess.NewPiece(chess.White, pt))
		sig.Board.Set(chess.NewSquare(file, 1), chess.NewPiece(chess.White, chess.Pawn))
		sig.Board.Set(chess.NewSquare(file, 6), chess.NewPiece(chess.Black, chess.Pawn))
		sig.Board.Set(chess.NewSquare(file, 7), chess.NewPiece(chess.Black, pt))
	}
	sig.Turn = chess.White
	sig.Castling = chess.AllCastling
	return sig
}

func TestZobristHashConsistency(t *testing.T) {
	a, b := startSignature(), startSignature()
	if Zobrist(&a) != Zobrist(&b) {
		t.Errorf("Identical signatures produced different hashes: %x != %x", Zobrist(&a), Zobrist(&b))
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	a := startSignature()
	b := startSignature()
	b.Board.Move(chess.MustParseSquare("e2"), chess.MustParseSquare("e4"))

	if Zobrist(&a) == Zobrist(&b) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristStateAffectsHash(t *testing.T) {
	base := startSignature()
	tests := []struct {
		name   string
		modify func(*Signature)
	}{
		{"side to move", func(s *Signature) { s.Turn = chess.Black }},
		{"castling rights", func(s *Signature) { s.Castling = chess.WhiteKingside }},
		{"en passant", func(s *Signature) {
			s.EnPassant, s.HasEnPassant = chess.MustParseSquare("e3"), true
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sig := startSignature()
			tt.modify(&sig)
			if Zobrist(&sig) == Zobrist(&base) {
				t.Errorf("changing %s did not change the hash", tt.name)
			}
		})
	}
}

func TestRepetitionTable(t *testing.T) {
	table := NewRepetitionTable()
	start := startSignature()
	other := startSignature()
	other.Turn = chess.Black

	if got := table.Add(start); got != 1 {
		t.Errorf("first Add = %d, want 1", got)
	}
	if got := table.Add(other); got != 1 {
		t.Errorf("Add(other) = %d, want 1", got)
	}
	if got := table.Add(start); got != 2 {
		t.Errorf("second Add = %d, want 2", got)
	}

	if table.Count(start) != 2 {
		t.Errorf("Count(start) = %d, want 2", table.Count(start))
	}
	if table.Count(other) != 1 {
		t.Errorf("Count(other) = %d, want 1", table.Count(other))
	}

	table.Remove(start)
	if table.Count(start) != 1 {
		t.Errorf("Count(start) after Remove = %d, want 1", table.Count(start))
	}
	table.Remove(start)
	if table.Count(start) != 0 {
		t.Errorf("Count(start) after second Remove = %d, want 0", table.Count(start))
	}
	if len(table.hashTable) != 1 {
		t.Errorf("table holds %d buckets, want 1", len(table.hashTable))
	}

	// Removing something never added changes nothing.
	table.Remove(start)
	if table.Count(other) != 1 || len(table.hashTable) != 1 {
		t.Errorf("Remove of unrecorded signature changed the table")
	}
}

func TestRepetitionTableCloneIsIndependent(t *testing.T) {
	table := NewRepetitionTable()
	sig := startSignature()
	table.Add(sig)

	clone := table.Clone()
	clone.Add(sig)

	if table.Count(sig) != 1 {
		t.Errorf("original Count = %d, want 1", table.Count(sig))
	}
	if clone.Count(sig) != 2 {
		t.Errorf("clone Count = %d, want 2", clone.Count(sig))
	}
}
