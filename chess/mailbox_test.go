package chess

import "testing"

func TestStep(t *testing.T) {
	tests := []struct {
		name   string
		from   string
		offset int
		want   string // empty when off the board
	}{
		{"north", "e4", North, "e5"},
		{"south", "e4", South, "e3"},
		{"east", "e4", East, "f4"},
		{"west", "e4", West, "d4"},
		{"north off top", "e8", North, ""},
		{"south off bottom", "e1", South, ""},
		{"east wraps never", "h4", East, ""},
		{"west wraps never", "a4", West, ""},
		{"north east corner", "h8", NorthEast, ""},
		{"knight long jump", "b1", -21, "a3"},
		{"knight off top", "b7", -21, ""},
		{"knight off left", "b1", -12, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Step(MustParseSquare(tt.from), tt.offset)
			if tt.want == "" {
				if ok {
					t.Errorf("Step(%s, %d) = %s, want off board", tt.from, tt.offset, got)
				}
				return
			}
			if !ok || got.String() != tt.want {
				t.Errorf("Step(%s, %d) = %s, %v; want %s", tt.from, tt.offset, got, ok, tt.want)
			}
		})
	}
}

func TestStep_KnightCounts(t *testing.T) {
	tests := []struct {
		sq   string
		want int
	}{
		{"a1", 2},
		{"h8", 2},
		{"b1", 3},
		{"a4", 4},
		{"e4", 8},
	}
	for _, tt := range tests {
		n := 0
		for _, off := range KnightOffsets {
			if _, ok := Step(MustParseSquare(tt.sq), off); ok {
				n++
			}
		}
		if n != tt.want {
			t.Errorf("knight on %s has %d targets, want %d", tt.sq, n, tt.want)
		}
	}
}

func TestPawnTables(t *testing.T) {
	if PawnPush(White) != North || PawnPush(Black) != South {
		t.Error("pawns push toward the opponent")
	}
	if PawnHomeRank(White) != 1 || PawnHomeRank(Black) != 6 {
		t.Error("wrong pawn home ranks")
	}
	if PromotionRank(White) != 7 || PromotionRank(Black) != 0 {
		t.Error("wrong promotion ranks")
	}
	for _, off := range PawnCaptureOffsets(White) {
		to, ok := Step(MustParseSquare("e4"), off)
		if !ok || to.Rank() != 4 {
			t.Errorf("white capture offset %d from e4 lands on %s", off, to)
		}
	}
}
