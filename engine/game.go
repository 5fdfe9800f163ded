package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore/chess"
	"github.com/lgbarn/chesscore/errors"
)

// Game is the entry point for a user interface: it owns one Position and
// accepts moves as from/to requests. A Game is not safe for concurrent use.
type Game struct {
	pos *Position
}

// NewGame returns a game at the standard starting position.
func NewGame() *Game {
	return &Game{pos: MustParseFEN(InitialFEN)}
}

// NewGameFromFEN returns a game starting from fen.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{pos: pos}, nil
}

// LoadFEN replaces the game with the position in fen. On error the game is
// left as it was.
func (g *Game) LoadFEN(fen string) error {
	pos, err := ParseFEN(fen)
	if err != nil {
		return err
	}
	g.pos = pos
	return nil
}

// Reset returns the game to the starting position and clears its history.
func (g *Game) Reset() {
	g.pos = MustParseFEN(InitialFEN)
}

// Position returns a copy of the current position.
func (g *Game) Position() *Position {
	return g.pos.Clone()
}

// LegalMoves returns every legal move for the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return g.pos.LegalMoves()
}

// LegalMovesFrom returns the legal moves of the piece on sq.
func (g *Game) LegalMovesFrom(sq chess.Square) []chess.Move {
	return g.pos.LegalMovesFrom(sq)
}

// Move plays the legal move from one square to another. A pawn reaching
// the last rank promotes to the given piece, or to a queen if none is
// given. A promotion piece on any other move makes the request illegal.
// Once Status is terminal every move is refused until Undo, LoadFEN or
// Reset.
func (g *Game) Move(from, to chess.Square, promotion ...chess.PieceType) (chess.Move, error) {
	var promo chess.PieceType
	if len(promotion) > 0 {
		promo = promotion[0]
	}
	return g.play(chess.UCIMove{From: from, To: to, Promotion: promo})
}

// MoveUCI plays a move written in long algebraic form, such as "e2e4" or
// "e7e8n".
func (g *Game) MoveUCI(s string) (chess.Move, error) {
	req, err := chess.ParseUCI(s)
	if err != nil {
		return chess.Move{}, &errors.MoveError{
			Err:      errors.ErrIllegalMove,
			MoveText: s,
			PlyNum:   g.pos.Plies() + 1,
			Reason:   err.Error(),
		}
	}
	return g.play(req)
}

func (g *Game) play(req chess.UCIMove) (chess.Move, error) {
	if g.pos.Status().IsTerminal() {
		return chess.Move{}, g.illegal(req, "game is over")
	}
	m, ok := g.match(req)
	if !ok {
		return chess.Move{}, g.illegal(req, "not in legal move list")
	}
	g.pos.Apply(m)
	return m, nil
}

func (g *Game) illegal(req chess.UCIMove, reason string) error {
	return &errors.MoveError{
		Err:      errors.ErrIllegalMove,
		MoveText: requestText(req),
		PlyNum:   g.pos.Plies() + 1,
		Reason:   reason,
	}
}

// match finds the legal move a request refers to.
func (g *Game) match(req chess.UCIMove) (chess.Move, bool) {
	if !req.From.Valid() || !req.To.Valid() {
		return chess.Move{}, false
	}
	for _, m := range g.pos.LegalMovesFrom(req.From) {
		if m.To != req.To {
			continue
		}
		if !m.IsPromotion() {
			if req.Promotion == 0 {
				return m, true
			}
			continue
		}
		want := req.Promotion
		if want == 0 {
			want = chess.Queen
		}
		if m.Promotion == want {
			return m, true
		}
	}
	return chess.Move{}, false
}

func requestText(req chess.UCIMove) string {
	s := fmt.Sprintf("%s%s", req.From, req.To)
	if req.Promotion != 0 {
		s += string(req.Promotion.Letter() + 'a' - 'A')
	}
	return s
}

// Undo takes back the last move. With no moves played it returns
// ErrNoHistory and changes nothing.
func (g *Game) Undo() error {
	if !g.pos.Undo() {
		return errors.ErrNoHistory
	}
	return nil
}

// Status evaluates the current position.
func (g *Game) Status() Status {
	return g.pos.Status()
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return g.pos.InCheck()
}

// Result returns the PGN result string for the current position.
func (g *Game) Result() string {
	return Result(g.pos.Status(), g.pos.Turn())
}

// FEN returns the current position as a FEN string.
func (g *Game) FEN() string {
	return g.pos.FEN()
}

// PieceAt returns the piece on sq, if any.
func (g *Game) PieceAt(sq chess.Square) (chess.Piece, bool) {
	return g.pos.PieceAt(sq)
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.pos.Turn()
}

// FullmoveNumber returns the current move number.
func (g *Game) FullmoveNumber() int {
	return g.pos.state.FullmoveNumber
}

// HalfmoveClock returns the plies since the last pawn move or capture.
func (g *Game) HalfmoveClock() int {
	return g.pos.state.HalfmoveClock
}

// Plies returns the number of moves played that can be undone.
func (g *Game) Plies() int {
	return g.pos.Plies()
}

// History returns the signature of every position reached so far.
func (g *Game) History() []Signature {
	return g.pos.History()
}

// String draws the board.
func (g *Game) String() string {
	return g.pos.board.String()
}
