package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrNoHistory", ErrNoHistory, ErrNoHistory},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalMove, ErrInvalidFEN) {
		t.Error("ErrIllegalMove should not match ErrInvalidFEN")
	}
	if errors.Is(ErrNoHistory, ErrIllegalMove) {
		t.Error("ErrNoHistory should not match ErrIllegalMove")
	}
}

func TestFENError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *FENError
		contains []string
	}{
		{
			name: "full context",
			err: &FENError{
				Err:    ErrInvalidFEN,
				Field:  FieldPlacement,
				Value:  "rnbqkbnr/ppp",
				Reason: "expected 8 ranks, got 2",
			},
			contains: []string{"piece placement", "rnbqkbnr/ppp", "8 ranks", "invalid FEN"},
		},
		{
			name:     "field only",
			err:      &FENError{Err: ErrInvalidFEN, Field: FieldTurn},
			contains: []string{"side to move", "invalid FEN"},
		},
		{
			name:     "no underlying error",
			err:      &FENError{Field: FieldHalfmove, Value: "-3"},
			contains: []string{"halfmove clock", "-3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("FENError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestFENError_As(t *testing.T) {
	fenErr := &FENError{Err: ErrInvalidFEN, Field: FieldCastling, Value: "KX"}
	wrapped := fmt.Errorf("loading position: %w", fenErr)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}

	var extracted *FENError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract FENError")
	}
	if extracted.Field != FieldCastling {
		t.Errorf("extracted.Field = %q, want %q", extracted.Field, FieldCastling)
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name:     "full context",
			err:      &MoveError{Err: ErrIllegalMove, MoveText: "e2e5", PlyNum: 3, Reason: "not in legal move list"},
			contains: []string{"ply 3", "e2e5", "legal move list", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrIllegalMove},
			contains: []string{"illegal move"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_Unwrap verifies that MoveError properly implements Unwrap
func TestMoveError_Unwrap(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, MoveText: "e1g1"}

	if !errors.Is(errors.Unwrap(moveErr), ErrIllegalMove) {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(moveErr), ErrIllegalMove)
	}
	if !Is(moveErr, ErrIllegalMove) {
		t.Error("Is(moveErr, ErrIllegalMove) = false, want true")
	}
	var extracted *MoveError
	if !As(fmt.Errorf("ui: %w", moveErr), &extracted) || extracted.MoveText != "e1g1" {
		t.Errorf("As() did not extract MoveError, got %+v", extracted)
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if msg := wrapped.Error(); !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}
	if Wrap(nil, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
