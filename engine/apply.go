package engine

import "github.com/lgbarn/chesscore/chess"

// undoRecord holds what a move changed so that it can be taken back exactly.
type undoRecord struct {
	move  chess.Move
	moved chess.Piece

	captured    chess.Piece
	capturedSq  chess.Square
	hasCaptured bool

	// Rook relocation for castling.
	rookFrom chess.Square
	rookTo   chess.Square

	// Prior castling rights, en-passant square, clocks and turn.
	prev  State
	kings [2]chess.Square
}

// castlingMask gives the rights lost when a move starts or ends on a square:
// a king leaving home, a rook leaving home, or anything landing on a rook's
// home square.
var castlingMask [chess.NumSquares]chess.CastlingRights

func init() {
	castlingMask[chess.E1] = chess.WhiteKingside | chess.WhiteQueenside
	castlingMask[chess.H1] = chess.WhiteKingside
	castlingMask[chess.A1] = chess.WhiteQueenside
	castlingMask[chess.E8] = chess.BlackKingside | chess.BlackQueenside
	castlingMask[chess.H8] = chess.BlackKingside
	castlingMask[chess.A8] = chess.BlackQueenside
}

// Apply plays a legal move, recording what is needed to undo it and the new
// position's signature. Moves not taken from LegalMoves must not be applied.
func (p *Position) Apply(m chess.Move) {
	rec := p.make(m)
	p.undo = append(p.undo, rec)
	p.record()
}

// Undo takes back the last applied move and reports whether there was one.
func (p *Position) Undo() bool {
	n := len(p.undo)
	if n == 0 {
		return false
	}
	rec := p.undo[n-1]
	p.undo = p.undo[:n-1]

	last := len(p.history) - 1
	p.reps.Remove(p.history[last])
	p.history = p.history[:last]

	p.unmake(rec)
	return true
}

// make updates board and state for m without touching the history.
func (p *Position) make(m chess.Move) undoRecord {
	us := p.state.Turn
	moved, _ := p.board.PieceAt(m.From)

	rec := undoRecord{
		move:     m,
		moved:    moved,
		rookFrom: chess.NoSquare,
		rookTo:   chess.NoSquare,
		prev:     p.state,
		kings:    p.kings,
	}

	// The en-passant victim stands behind the destination, not on it.
	capturedSq := m.To
	if m.Flag == chess.EnPassant {
		capturedSq, _ = chess.Step(m.To, -chess.PawnPush(us))
	}
	if captured, ok := p.board.PieceAt(capturedSq); ok {
		rec.captured, rec.capturedSq, rec.hasCaptured = captured, capturedSq, true
		p.board.Clear(capturedSq)
	}

	p.board.Move(m.From, m.To)
	switch m.Flag {
	case chess.Promotion:
		p.board.Set(m.To, chess.NewPiece(us, m.Promotion))
	case chess.Castle:
		if cs, ok := castlingFor(us, m.To); ok {
			rec.rookFrom, rec.rookTo = cs.rookFrom, cs.rookTo
			p.board.Move(cs.rookFrom, cs.rookTo)
		}
	}
	if moved.Type == chess.King {
		p.kings[us] = m.To
	}

	st := &p.state
	st.Castling &^= castlingMask[m.From] | castlingMask[m.To]

	st.HasEnPassant = false
	st.EnPassant = chess.NoSquare
	if m.Flag == chess.DoublePawnPush {
		st.EnPassant, _ = chess.Step(m.From, chess.PawnPush(us))
		st.HasEnPassant = true
	}

	if moved.Type == chess.Pawn || rec.hasCaptured {
		st.HalfmoveClock = 0
	} else {
		st.HalfmoveClock++
	}
	if us == chess.Black {
		st.FullmoveNumber++
	}
	st.Turn = us.Opposite()

	return rec
}

// unmake restores the board and state saved in rec.
func (p *Position) unmake(rec undoRecord) {
	m := rec.move

	p.board.Clear(m.To)
	p.board.Set(m.From, rec.moved)
	if rec.rookFrom != chess.NoSquare {
		p.board.Move(rec.rookTo, rec.rookFrom)
	}
	if rec.hasCaptured {
		p.board.Set(rec.capturedSq, rec.captured)
	}

	p.state = rec.prev
	p.kings = rec.kings
}
