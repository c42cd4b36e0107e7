package gridmg

import "fmt"

// Move relocates the occupant of From to To. Whatever stood on To is captured.
// There are no special moves.
type Move struct {
	From Square
	To   Square
}

// NullMove is returned when the side to move has nothing to play. Callers treat
// it as a forfeit.
var NullMove = Move{}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool { return m == NullMove }

// String renders the move as "(r,c)->(r,c)".
func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)->(%d,%d)", m.From.Row, m.From.Col, m.To.Row, m.To.Col)
}

// Apply returns a new board with m played. The receiver is left untouched.
//
// A board that has not been reached by any move records m as its own
// origin/destination; deeper boards inherit the first move of their parent so
// the root move stays reachable from any node of the tree.
//
// A move with either end off the board is not played: the result is an
// unchanged copy of b with no move recorded.
func (b *Board) Apply(m Move) *Board {
	child := b.Clone()
	if !b.InBounds(m.From) || !b.InBounds(m.To) {
		return child
	}
	from := child.index(m.From)
	to := child.index(m.To)
	moving := child.cells[from]
	child.set(to, moving)
	child.set(from, NoPiece)

	if b.origin == NoSquare {
		child.origin = m.From
		child.destination = m.To
	}
	return child
}

// IsCapture reports whether m takes a piece on b.
func IsCapture(m Move, b *Board) bool {
	return b.PieceAt(m.To).IsPiece()
}
