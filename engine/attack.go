package engine

import "github.com/lgbarn/chesscore/chess"

// IsAttacked reports whether any piece of colour by attacks sq. The attacker's
// own king safety is ignored, and pawns attack only diagonally.
func (p *Position) IsAttacked(sq chess.Square, by chess.Colour) bool {
	// A pawn attacks sq if sq is one of its capture targets.
	pawn := chess.NewPiece(by, chess.Pawn)
	for _, off := range chess.PawnCaptureOffsets(by) {
		if from, ok := chess.Step(sq, -off); ok && p.board.Has(from, pawn) {
			return true
		}
	}

	if p.attackedByStep(sq, chess.NewPiece(by, chess.Knight), chess.KnightOffsets[:]) {
		return true
	}
	if p.attackedByStep(sq, chess.NewPiece(by, chess.King), chess.KingOffsets[:]) {
		return true
	}

	queen := chess.NewPiece(by, chess.Queen)
	if p.attackedByRay(sq, chess.NewPiece(by, chess.Bishop), queen, chess.BishopOffsets[:]) {
		return true
	}
	return p.attackedByRay(sq, chess.NewPiece(by, chess.Rook), queen, chess.RookOffsets[:])
}

// attackedByStep checks the single-step offsets around sq for piece.
func (p *Position) attackedByStep(sq chess.Square, piece chess.Piece, offsets []int) bool {
	for _, off := range offsets {
		if from, ok := chess.Step(sq, off); ok && p.board.Has(from, piece) {
			return true
		}
	}
	return false
}

// attackedByRay looks along each direction from sq for the first piece and
// reports whether it is one of the two sliders.
func (p *Position) attackedByRay(sq chess.Square, slider, queen chess.Piece, offsets []int) bool {
	for _, off := range offsets {
		for from, ok := chess.Step(sq, off); ok; from, ok = chess.Step(from, off) {
			piece, occupied := p.board.PieceAt(from)
			if !occupied {
				continue
			}
			if piece == slider || piece == queen {
				return true
			}
			break
		}
	}
	return false
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool {
	us := p.state.Turn
	return p.IsAttacked(p.kings[us], us.Opposite())
}
