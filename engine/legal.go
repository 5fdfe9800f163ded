package engine

import "github.com/lgbarn/chesscore/chess"

// IsLegal reports whether a pseudo-legal move m leaves the mover's king safe.
// It tries the move on the live position and takes it back.
func (p *Position) IsLegal(m chess.Move) bool {
	us := p.state.Turn
	if m.Flag == chess.Castle && !p.canCastle(m, us) {
		return false
	}

	rec := p.make(m)
	legal := !p.IsAttacked(p.kings[us], us.Opposite())
	p.unmake(rec)
	return legal
}

// canCastle checks what castling needs beyond the right itself: king and rook
// at home, nothing between them, and no attacked square on the king's path.
func (p *Position) canCastle(m chess.Move, us chess.Colour) bool {
	cs, ok := castlingFor(us, m.To)
	if !ok || m.From != cs.kingFrom || !p.state.Castling.Has(cs.right) {
		return false
	}
	if !p.board.Has(cs.kingFrom, chess.NewPiece(us, chess.King)) ||
		!p.board.Has(cs.rookFrom, chess.NewPiece(us, chess.Rook)) {
		return false
	}
	for _, sq := range cs.empty {
		if !p.board.IsEmpty(sq) {
			return false
		}
	}
	them := us.Opposite()
	for _, sq := range cs.safe {
		if p.IsAttacked(sq, them) {
			return false
		}
	}
	return true
}

// LegalMoves returns the legal moves in generation order.
func (p *Position) LegalMoves() []chess.Move {
	pseudo := p.PseudoLegalMoves()
	legal := pseudo[:0]
	for _, m := range pseudo {
		if p.IsLegal(m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (p *Position) HasLegalMoves() bool {
	for _, m := range p.PseudoLegalMoves() {
		if p.IsLegal(m) {
			return true
		}
	}
	return false
}

// LegalMovesFrom returns the legal moves of the piece on sq.
func (p *Position) LegalMovesFrom(sq chess.Square) []chess.Move {
	var moves []chess.Move
	for _, m := range p.LegalMoves() {
		if m.From == sq {
			moves = append(moves, m)
		}
	}
	return moves
}
