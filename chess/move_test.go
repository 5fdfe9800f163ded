package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	cerrors "github.com/lgbarn/chesscore/errors"
)

func TestMove_String(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{From: MustParseSquare("e2"), To: MustParseSquare("e4"), Flag: DoublePawnPush}, "e2e4"},
		{Move{From: E1, To: G1, Flag: Castle}, "e1g1"},
		{Move{From: MustParseSquare("a7"), To: A8, Flag: Promotion, Promotion: Knight}, "a7a8n"},
		{Move{From: MustParseSquare("b2"), To: A1, Flag: Promotion, Promotion: Queen}, "b2a1q"},
	}
	for _, tt := range tests {
		if got := tt.move.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestParseUCI(t *testing.T) {
	tests := []struct {
		in   string
		want UCIMove
	}{
		{"g1f3", UCIMove{From: G1, To: MustParseSquare("f3")}},
		{"a7a8n", UCIMove{From: MustParseSquare("a7"), To: A8, Promotion: Knight}},
		{"h2h1Q", UCIMove{From: MustParseSquare("h2"), To: H1, Promotion: Queen}},
	}
	for _, tt := range tests {
		got, err := ParseUCI(tt.in)
		if err != nil {
			t.Fatalf("ParseUCI(%q) error: %v", tt.in, err)
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("ParseUCI(%q) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestParseUCI_Invalid(t *testing.T) {
	tests := []struct {
		in     string
		target error
	}{
		{"", cerrors.ErrIllegalMove},
		{"e2", cerrors.ErrIllegalMove},
		{"e2e4e5", cerrors.ErrIllegalMove},
		{"a7a8k", cerrors.ErrIllegalMove},
		{"a7a8p", cerrors.ErrIllegalMove},
		{"a7a8x", cerrors.ErrIllegalMove},
		{"z2e4", cerrors.ErrInvalidSquare},
		{"e2e9", cerrors.ErrInvalidSquare},
	}
	for _, tt := range tests {
		_, err := ParseUCI(tt.in)
		if !errors.Is(err, tt.target) {
			t.Errorf("ParseUCI(%q) error = %v, want %v", tt.in, err, tt.target)
		}
	}
}

func TestMoveFlag_String(t *testing.T) {
	if EnPassant.String() != "EnPassant" || MoveFlag(99).String() != "Unknown" {
		t.Error("unexpected flag names")
	}
}
