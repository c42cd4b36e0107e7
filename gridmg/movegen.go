package gridmg

// canEnter reports whether a piece of color c may move onto sq: the square
// must be on the board and either empty or held by the other side.
func (b *Board) canEnter(sq Square, c Color) bool {
	p := b.PieceAt(sq)
	if p == NoPiece {
		return true
	}
	return p.IsPiece() && p.Color() != c
}

// CandidateMoves returns the pseudo-legal target squares of the piece on sq.
// Own king safety is not considered.
func (b *Board) CandidateMoves(sq Square) []Square {
	return b.candidateMovesInto(make([]Square, 0, 32), sq)
}

func (b *Board) candidateMovesInto(dst []Square, sq Square) []Square {
	p := b.PieceAt(sq)
	if !p.IsPiece() {
		return dst
	}
	c := p.Color()

	switch p.Type() {
	case PieceTypePawn:
		dir := b.PawnDirection(c)
		fwd := Square{Row: sq.Row + dir, Col: sq.Col}
		if b.PieceAt(fwd) == NoPiece {
			dst = append(dst, fwd)
		}
		for _, dc := range [2]int{-1, 1} {
			diag := Square{Row: sq.Row + dir, Col: sq.Col + dc}
			if t := b.PieceAt(diag); t.IsPiece() && t.Color() != c {
				dst = append(dst, diag)
			}
		}
	case PieceTypeKnight:
		dst = b.stepMovesInto(dst, sq, c, knightOffsets[:])
	case PieceTypeKing:
		dst = b.stepMovesInto(dst, sq, c, kingOffsets[:])
	case PieceTypeRook:
		dst = b.rayMovesInto(dst, sq, c, rookDirections[:])
	case PieceTypeBishop:
		dst = b.rayMovesInto(dst, sq, c, bishopDirections[:])
	case PieceTypeQueen:
		dst = b.rayMovesInto(dst, sq, c, queenDirections[:])
	}
	return dst
}

func (b *Board) stepMovesInto(dst []Square, sq Square, c Color, offsets [][2]int) []Square {
	for _, off := range offsets {
		t := Square{Row: sq.Row + off[0], Col: sq.Col + off[1]}
		if b.canEnter(t, c) {
			dst = append(dst, t)
		}
	}
	return dst
}

// rayMovesInto walks each direction until the edge, stopping before an own
// piece or a blocked cell and after an enemy piece.
func (b *Board) rayMovesInto(dst []Square, sq Square, c Color, dirs [][2]int) []Square {
	for _, d := range dirs {
		for step := 1; ; step++ {
			t := Square{Row: sq.Row + d[0]*step, Col: sq.Col + d[1]*step}
			p := b.PieceAt(t)
			if p == NoPiece {
				dst = append(dst, t)
				continue
			}
			if p.IsPiece() && p.Color() != c {
				dst = append(dst, t)
			}
			break
		}
	}
	return dst
}

// LegalMoves returns one child board per legal move of the piece on sq.
// Children in which the mover's king is attacked are discarded. A side that
// has no king at all is not filtered.
func (b *Board) LegalMoves(sq Square) []*Board {
	return b.LegalMovesInto(nil, sq)
}

// LegalMovesInto appends the legal children of the piece on sq to dst.
func (b *Board) LegalMovesInto(dst []*Board, sq Square) []*Board {
	p := b.PieceAt(sq)
	if !p.IsPiece() {
		return dst
	}
	mover := p.Color()
	hasKing := b.HasKing(mover)

	var buf [32]Square
	for _, to := range b.candidateMovesInto(buf[:0], sq) {
		child := b.Apply(Move{From: sq, To: to})
		if hasKing && child.InCheck(mover) {
			continue
		}
		dst = append(dst, child)
	}
	return dst
}

// GenerateMoves returns every legal move of color c, scanning squares in
// row-major order.
func (b *Board) GenerateMoves(c Color) []Move {
	moves := make([]Move, 0, 64)
	hasKing := b.HasKing(c)
	var buf [32]Square
	for _, from := range b.PieceSquares(c) {
		for _, to := range b.candidateMovesInto(buf[:0], from) {
			m := Move{From: from, To: to}
			if hasKing && b.Apply(m).InCheck(c) {
				continue
			}
			moves = append(moves, m)
		}
	}
	return moves
}

// HasLegalMoves reports whether color c can move at all.
func (b *Board) HasLegalMoves(c Color) bool {
	for _, from := range b.PieceSquares(c) {
		if len(b.LegalMoves(from)) > 0 {
			return true
		}
	}
	return false
}

// IsLegal reports whether m is a legal move for the piece standing on m.From.
func (b *Board) IsLegal(m Move) bool {
	p := b.PieceAt(m.From)
	if !p.IsPiece() {
		return false
	}
	for _, to := range b.CandidateMoves(m.From) {
		if to != m.To {
			continue
		}
		c := p.Color()
		return !b.HasKing(c) || !b.Apply(m).InCheck(c)
	}
	return false
}

// ==========================
// Perft
// ==========================

// Perft counts leaf nodes (move sequences) of the given depth with c to move.
func Perft(b *Board, c Color, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	for _, m := range b.GenerateMoves(c) {
		nodes += Perft(b.Apply(m), c.Other(), depth-1)
	}
	return nodes
}

// PerftDivide returns a map from each legal root move to the number of leaf nodes
// reachable from that move at the given depth. Useful for debugging.
func PerftDivide(b *Board, c Color, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.GenerateMoves(c) {
		result[m] = Perft(b.Apply(m), c.Other(), depth-1)
	}
	return result
}
