package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chesscore/chess"
	"github.com/lgbarn/chesscore/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated FEN fields.
const fenFields = 6

// fenError builds the error returned for a bad field.
func fenError(field, value, reason string) error {
	return &errors.FENError{Err: errors.ErrInvalidFEN, Field: field, Value: value, Reason: reason}
}

// ParseFEN builds a position from a FEN string. Nothing is returned unless
// every field is valid.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) != fenFields {
		return nil, fenError(errors.FieldCount, fen,
			fmt.Sprintf("expected %d space-separated fields, got %d", fenFields, len(parts)))
	}

	board, err := parsePiecePlacement(parts[0])
	if err != nil {
		return nil, err
	}

	var state State
	if state.Turn, err = parseSideToMove(parts[1]); err != nil {
		return nil, err
	}
	if state.Castling, err = parseCastlingRights(parts[2]); err != nil {
		return nil, err
	}
	if state.EnPassant, state.HasEnPassant, err = parseEnPassant(parts[3], state.Turn); err != nil {
		return nil, err
	}
	if state.HalfmoveClock, err = parseCounter(errors.FieldHalfmove, parts[4], 0); err != nil {
		return nil, err
	}
	if state.FullmoveNumber, err = parseCounter(errors.FieldFullmove, parts[5], 1); err != nil {
		return nil, err
	}

	pos := newPosition(board, state)
	// The side that just moved cannot have left its own king attacked.
	if them := state.Turn.Opposite(); pos.IsAttacked(pos.kings[them], state.Turn) {
		return nil, fenError(errors.FieldTurn, parts[1],
			fmt.Sprintf("%s king is in check with %s to move", them, state.Turn))
	}
	return pos, nil
}

// MustParseFEN is like ParseFEN but panics on error. Intended for constants
// and tests.
func MustParseFEN(fen string) *Position {
	p, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

// parsePiecePlacement parses the piece placement field of a FEN string.
func parsePiecePlacement(placement string) (chess.Board, error) {
	var board chess.Board

	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return board, fenError(errors.FieldPlacement, placement,
			fmt.Sprintf("expected %d ranks, got %d", chess.BoardSize, len(ranks)))
	}

	for row, rank := range ranks {
		file := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromFEN(c)
			if !ok {
				return board, fenError(errors.FieldPlacement, rank,
					fmt.Sprintf("invalid piece character %q", c))
			}
			if file >= chess.BoardSize {
				return board, fenError(errors.FieldPlacement, rank,
					fmt.Sprintf("rank %d has more than %d files", chess.BoardSize-row, chess.BoardSize))
			}
			board.Set(chess.Square(row*chess.BoardSize+file), piece)
			file++
		}
		if file != chess.BoardSize {
			return board, fenError(errors.FieldPlacement, rank,
				fmt.Sprintf("rank %d does not describe exactly %d files", chess.BoardSize-row, chess.BoardSize))
		}
	}

	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if n := board.Count(chess.NewPiece(c, chess.King)); n != 1 {
			return board, fenError(errors.FieldPlacement, placement,
				fmt.Sprintf("%s has %d kings, want 1", c, n))
		}
	}
	return board, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(s string) (chess.Colour, error) {
	switch s {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fenError(errors.FieldTurn, s, "want w or b")
}

// parseCastlingRights parses the castling availability field. Letters must
// appear in KQkq order without repeats.
func parseCastlingRights(s string) (chess.CastlingRights, error) {
	if s == "-" {
		return chess.NoCastling, nil
	}
	if s == "" {
		return chess.NoCastling, fenError(errors.FieldCastling, s, "empty field")
	}

	order := "KQkq"
	rights := []chess.CastlingRights{chess.WhiteKingside, chess.WhiteQueenside, chess.BlackKingside, chess.BlackQueenside}

	var result chess.CastlingRights
	next := 0
	for i := 0; i < len(s); i++ {
		idx := strings.IndexByte(order, s[i])
		if idx < 0 {
			return chess.NoCastling, fenError(errors.FieldCastling, s, fmt.Sprintf("invalid character %q", s[i]))
		}
		if idx < next {
			return chess.NoCastling, fenError(errors.FieldCastling, s, "rights out of order or repeated")
		}
		result |= rights[idx]
		next = idx + 1
	}
	return result, nil
}

// parseEnPassant parses the en passant target square field. The square must
// be on the rank a pawn of the side not to move just passed over.
func parseEnPassant(s string, turn chess.Colour) (chess.Square, bool, error) {
	if s == "-" {
		return chess.NoSquare, false, nil
	}
	sq, err := chess.ParseSquare(s)
	if err != nil {
		return chess.NoSquare, false, fenError(errors.FieldEnPassant, s, "not a square")
	}
	wantRank := 5
	if turn == chess.Black {
		wantRank = 2
	}
	if sq.Rank() != wantRank {
		return chess.NoSquare, false, fenError(errors.FieldEnPassant, s,
			fmt.Sprintf("must be on rank %d with %s to move", wantRank+1, turn))
	}
	return sq, true, nil
}

// parseCounter parses a decimal clock field that must be at least min.
func parseCounter(field, s string, min int) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fenError(field, s, "not a non-negative integer")
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fenError(field, s, "not a non-negative integer")
	}
	if n < min {
		return 0, fenError(field, s, fmt.Sprintf("must be at least %d", min))
	}
	return n, nil
}

// FEN converts the position to a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder

	writePiecePlacement(&sb, &p.board)
	sb.WriteByte(' ')
	if p.state.Turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	sb.WriteString(p.state.Castling.String())
	sb.WriteByte(' ')
	if p.state.HasEnPassant {
		sb.WriteString(p.state.EnPassant.String())
	} else {
		sb.WriteByte('-')
	}
	fmt.Fprintf(&sb, " %d %d", p.state.HalfmoveClock, p.state.FullmoveNumber)

	return sb.String()
}

// writePiecePlacement writes the placement field with minimal digit runs.
func writePiecePlacement(sb *strings.Builder, board *chess.Board) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece, ok := board.PieceAt(chess.Square(row*chess.BoardSize + file))
			if !ok {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.FENLetter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// CanonicalFEN parses fen and serialises it again.
func CanonicalFEN(fen string) (string, error) {
	p, err := ParseFEN(fen)
	if err != nil {
		return "", err
	}
	return p.FEN(), nil
}
