package gridmg

// Step offsets as {row, col} pairs.
var knightOffsets = [8][2]int{
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// Rook directions: N, S, E, W
var rookDirections = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Bishop directions: NE, NW, SE, SW
var bishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

var queenDirections = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ==========================
// Attack queries
// ==========================

// Attacks reports whether the piece on from could capture on to next move,
// given the current occupancy. The attacker's own king safety is ignored.
// A piece never attacks its own square, and blocked or off-board squares are
// never attacked.
func (b *Board) Attacks(from, to Square) bool {
	attacker := b.PieceAt(from)
	if !attacker.IsPiece() || b.PieceAt(to) == Blocked || from == to {
		return false
	}

	dr := to.Row - from.Row
	dc := to.Col - from.Col
	adr := abs(dr)
	adc := abs(dc)

	switch attacker.Type() {
	case PieceTypePawn:
		return dr == b.PawnDirection(attacker.Color()) && adc == 1
	case PieceTypeKing:
		return adr <= 1 && adc <= 1
	case PieceTypeKnight:
		return (adr == 1 && adc == 2) || (adr == 2 && adc == 1)
	case PieceTypeRook:
		if dr != 0 && dc != 0 {
			return false
		}
		return b.isPathClear(from, sign(dr), sign(dc), max(adr, adc))
	case PieceTypeBishop:
		if adr != adc {
			return false
		}
		return b.isPathClear(from, sign(dr), sign(dc), adr)
	case PieceTypeQueen:
		if dr != 0 && dc != 0 && adr != adc {
			return false
		}
		return b.isPathClear(from, sign(dr), sign(dc), max(adr, adc))
	}
	return false
}

// isPathClear reports whether every square strictly between from and the
// square steps away along (dr, dc) is empty. The end square itself may be occupied.
func (b *Board) isPathClear(from Square, dr, dc, steps int) bool {
	for i := 1; i < steps; i++ {
		sq := Square{Row: from.Row + dr*i, Col: from.Col + dc*i}
		if b.PieceAt(sq) != NoPiece {
			return false
		}
	}
	return true
}

// IsSquareAttacked reports whether any piece of color by attacks sq.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	for idx, p := range b.cells {
		if !p.IsPiece() || p.Color() != by {
			continue
		}
		from := Square{Row: idx / b.width, Col: idx % b.width}
		if b.Attacks(from, sq) {
			return true
		}
	}
	return false
}

// InCheck reports whether color's king is attacked. A side without a king is
// treated as already lost and reported as in check.
func (b *Board) InCheck(color Color) bool {
	ks, ok := b.KingSquare(color)
	if !ok {
		return true
	}
	return b.IsSquareAttacked(ks, color.Other())
}
