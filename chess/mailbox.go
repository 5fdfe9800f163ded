package chess

// The board is embedded in a 10x12 array whose border cells are off-board.
// Two border rows above and below absorb knight jumps; one border column
// each side is enough because the left and right borders are adjacent.
const (
	mailboxWidth  = 10
	mailboxHeight = 12
	mailboxSize   = mailboxWidth * mailboxHeight
	offBoard      = -1
)

// Direction offsets in mailbox space. Moving toward rank 8 is negative.
const (
	North = -mailboxWidth
	South = mailboxWidth
	East  = 1
	West  = -1

	NorthEast = North + East
	NorthWest = North + West
	SouthEast = South + East
	SouthWest = South + West
)

var (
	// KnightOffsets in generation order.
	KnightOffsets = [...]int{-21, -19, -12, -8, 8, 12, 19, 21}
	// BishopOffsets are the diagonal ray directions.
	BishopOffsets = [...]int{NorthWest, NorthEast, SouthWest, SouthEast}
	// RookOffsets are the orthogonal ray directions.
	RookOffsets = [...]int{North, West, East, South}
	// KingOffsets are all eight directions; queens slide along the same set.
	KingOffsets = [...]int{NorthWest, North, NorthEast, West, East, SouthWest, South, SouthEast}
)

var (
	mailbox120 [mailboxSize]int8
	mailbox64  [NumSquares]int8
)

func init() {
	for i := range mailbox120 {
		mailbox120[i] = offBoard
	}
	for sq := 0; sq < NumSquares; sq++ {
		idx := (sq/BoardSize+2)*mailboxWidth + sq%BoardSize + 1
		mailbox64[sq] = int8(idx)
		mailbox120[idx] = int8(sq)
	}
}

// Step moves one offset from sq and reports whether the target is on the
// board.
func Step(sq Square, offset int) (Square, bool) {
	t := mailbox120[int(mailbox64[sq])+offset]
	if t == offBoard {
		return NoSquare, false
	}
	return Square(t), true
}

// PawnPush returns the forward offset for a pawn of colour c.
func PawnPush(c Colour) int {
	if c == White {
		return North
	}
	return South
}

// PawnCaptureOffsets returns the two capture directions for a pawn of colour c,
// west-most first.
func PawnCaptureOffsets(c Colour) [2]int {
	if c == White {
		return [2]int{NorthWest, NorthEast}
	}
	return [2]int{SouthWest, SouthEast}
}

// PawnHomeRank returns the rank index pawns of colour c start on.
func PawnHomeRank(c Colour) int {
	if c == White {
		return 1
	}
	return 6
}

// PromotionRank returns the rank index on which pawns of colour c promote.
func PromotionRank(c Colour) int {
	if c == White {
		return 7
	}
	return 0
}
