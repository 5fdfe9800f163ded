package engine

import "github.com/lgbarn/chesscore/chess"

// castling describes one castling option.
type castling struct {
	right    chess.CastlingRights
	kingFrom chess.Square
	kingTo   chess.Square
	rookFrom chess.Square
	rookTo   chess.Square
	// empty lists the squares between king and rook.
	empty []chess.Square
	// safe lists the king's start, pass-through and destination squares.
	safe [3]chess.Square
}

// castlings is indexed by colour, kingside first.
var castlings = [2][2]castling{
	chess.White: {
		{chess.WhiteKingside, chess.E1, chess.G1, chess.H1, chess.F1,
			[]chess.Square{chess.F1, chess.G1}, [3]chess.Square{chess.E1, chess.F1, chess.G1}},
		{chess.WhiteQueenside, chess.E1, chess.C1, chess.A1, chess.D1,
			[]chess.Square{chess.D1, chess.C1, chess.B1}, [3]chess.Square{chess.E1, chess.D1, chess.C1}},
	},
	chess.Black: {
		{chess.BlackKingside, chess.E8, chess.G8, chess.H8, chess.F8,
			[]chess.Square{chess.F8, chess.G8}, [3]chess.Square{chess.E8, chess.F8, chess.G8}},
		{chess.BlackQueenside, chess.E8, chess.C8, chess.A8, chess.D8,
			[]chess.Square{chess.D8, chess.C8, chess.B8}, [3]chess.Square{chess.E8, chess.D8, chess.C8}},
	},
}

// castlingFor returns the castling option whose king lands on to.
func castlingFor(c chess.Colour, to chess.Square) (castling, bool) {
	for _, cs := range castlings[c] {
		if cs.kingTo == to {
			return cs, true
		}
	}
	return castling{}, false
}

// PseudoLegalMoves returns the moves of the side to move, ignoring whether
// they leave the mover's king in check. Order: ascending from-square with
// each piece's fixed direction order, then castling, then en passant.
// Castling candidates are emitted whenever the right is held.
func (p *Position) PseudoLegalMoves() []chess.Move {
	us := p.state.Turn
	moves := make([]chess.Move, 0, 48)

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		pc, ok := p.board.PieceAt(sq)
		if !ok || pc.Colour != us {
			continue
		}
		switch pc.Type {
		case chess.Pawn:
			moves = p.pawnMoves(moves, sq, us)
		case chess.Knight:
			moves = p.stepMoves(moves, sq, us, chess.KnightOffsets[:])
		case chess.Bishop:
			moves = p.slideMoves(moves, sq, us, chess.BishopOffsets[:])
		case chess.Rook:
			moves = p.slideMoves(moves, sq, us, chess.RookOffsets[:])
		case chess.Queen:
			moves = p.slideMoves(moves, sq, us, chess.KingOffsets[:])
		case chess.King:
			moves = p.stepMoves(moves, sq, us, chess.KingOffsets[:])
		}
	}

	moves = p.castlingMoves(moves, us)
	return p.enPassantMoves(moves, us)
}

// stepMoves generates single-step moves for knights and kings.
func (p *Position) stepMoves(moves []chess.Move, from chess.Square, us chess.Colour, offsets []int) []chess.Move {
	for _, off := range offsets {
		to, ok := chess.Step(from, off)
		if !ok {
			continue
		}
		target, occupied := p.board.PieceAt(to)
		switch {
		case !occupied:
			moves = append(moves, chess.Move{From: from, To: to, Flag: chess.Normal})
		case target.Colour != us:
			moves = append(moves, chess.Move{From: from, To: to, Flag: chess.Capture})
		}
	}
	return moves
}

// slideMoves casts a ray per direction until the edge or the first piece.
func (p *Position) slideMoves(moves []chess.Move, from chess.Square, us chess.Colour, offsets []int) []chess.Move {
	for _, off := range offsets {
		for to, ok := chess.Step(from, off); ok; to, ok = chess.Step(to, off) {
			target, occupied := p.board.PieceAt(to)
			if !occupied {
				moves = append(moves, chess.Move{From: from, To: to, Flag: chess.Normal})
				continue
			}
			if target.Colour != us {
				moves = append(moves, chess.Move{From: from, To: to, Flag: chess.Capture})
			}
			break
		}
	}
	return moves
}

// pawnMoves generates pushes, double pushes and diagonal captures.
func (p *Position) pawnMoves(moves []chess.Move, from chess.Square, us chess.Colour) []chess.Move {
	push := chess.PawnPush(us)

	if one, ok := chess.Step(from, push); ok && p.board.IsEmpty(one) {
		moves = appendPawnMove(moves, from, one, chess.Normal, us)
		if from.Rank() == chess.PawnHomeRank(us) {
			if two, ok := chess.Step(one, push); ok && p.board.IsEmpty(two) {
				moves = append(moves, chess.Move{From: from, To: two, Flag: chess.DoublePawnPush})
			}
		}
	}

	for _, off := range chess.PawnCaptureOffsets(us) {
		if to, ok := chess.Step(from, off); ok && p.board.HasColour(to, us.Opposite()) {
			moves = appendPawnMove(moves, from, to, chess.Capture, us)
		}
	}
	return moves
}

// appendPawnMove expands a move onto the last rank into the four promotions.
func appendPawnMove(moves []chess.Move, from, to chess.Square, flag chess.MoveFlag, us chess.Colour) []chess.Move {
	if to.Rank() != chess.PromotionRank(us) {
		return append(moves, chess.Move{From: from, To: to, Flag: flag})
	}
	for _, pt := range chess.PromotionTypes {
		moves = append(moves, chess.Move{From: from, To: to, Flag: chess.Promotion, Promotion: pt})
	}
	return moves
}

// castlingMoves emits a candidate per castling right still held. Path and
// attack checks belong to the legality filter.
func (p *Position) castlingMoves(moves []chess.Move, us chess.Colour) []chess.Move {
	for _, cs := range castlings[us] {
		if p.state.Castling.Has(cs.right) {
			moves = append(moves, chess.Move{From: cs.kingFrom, To: cs.kingTo, Flag: chess.Castle})
		}
	}
	return moves
}

// enPassantMoves emits captures onto the en-passant square from each own
// pawn diagonally behind it.
func (p *Position) enPassantMoves(moves []chess.Move, us chess.Colour) []chess.Move {
	if !p.state.HasEnPassant {
		return moves
	}
	ep := p.state.EnPassant
	victim, ok := chess.Step(ep, -chess.PawnPush(us))
	if !ok || !p.board.IsEmpty(ep) || !p.board.Has(victim, chess.NewPiece(us.Opposite(), chess.Pawn)) {
		return moves
	}

	pawn := chess.NewPiece(us, chess.Pawn)
	for _, off := range chess.PawnCaptureOffsets(us) {
		if from, ok := chess.Step(ep, -off); ok && p.board.Has(from, pawn) {
			moves = append(moves, chess.Move{From: from, To: ep, Flag: chess.EnPassant})
		}
	}
	return moves
}
