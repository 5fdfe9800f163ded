package chess

import (
	"errors"
	"testing"

	cerrors "github.com/lgbarn/chesscore/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in   string
		want Square
		file int
		rank int
	}{
		{"a8", A8, 0, 7},
		{"h8", H8, 7, 7},
		{"a1", A1, 0, 0},
		{"h1", H1, 7, 0},
		{"e4", 36, 4, 3},
		{"d5", 27, 3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if err != nil {
				t.Fatalf("ParseSquare(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %d, want %d", tt.in, got, tt.want)
			}
			if got.File() != tt.file || got.Rank() != tt.rank {
				t.Errorf("%s: file/rank = %d/%d, want %d/%d", tt.in, got.File(), got.Rank(), tt.file, tt.rank)
			}
			if got.String() != tt.in {
				t.Errorf("String() = %q, want %q", got.String(), tt.in)
			}
			if NewSquare(tt.file, tt.rank) != got {
				t.Errorf("NewSquare(%d, %d) = %d, want %d", tt.file, tt.rank, NewSquare(tt.file, tt.rank), got)
			}
		})
	}
}

func TestParseSquare_Invalid(t *testing.T) {
	for _, in := range []string{"", "e", "e44", "i1", "a9", "a0", "E4", "44"} {
		_, err := ParseSquare(in)
		if !errors.Is(err, cerrors.ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", in, err)
		}
	}
}

func TestSquare_IsLight(t *testing.T) {
	tests := []struct {
		sq    string
		light bool
	}{
		{"h1", true},
		{"a1", false},
		{"a8", true},
		{"h8", false},
		{"d1", true},
		{"e1", false},
	}
	for _, tt := range tests {
		if got := MustParseSquare(tt.sq).IsLight(); got != tt.light {
			t.Errorf("%s.IsLight() = %v, want %v", tt.sq, got, tt.light)
		}
	}
}

func TestNoSquare(t *testing.T) {
	if NoSquare.Valid() {
		t.Error("NoSquare should not be valid")
	}
	if NoSquare.String() != "-" {
		t.Errorf("NoSquare.String() = %q, want -", NoSquare.String())
	}
}
