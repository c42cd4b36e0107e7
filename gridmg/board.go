package gridmg

import "strings"

// PieceType is a colorless representation of a piece used for table lookups.
type PieceType uint8

const (
	PieceTypeNone   PieceType = 0
	PieceTypePawn   PieceType = 1
	PieceTypeKnight PieceType = 2
	PieceTypeBishop PieceType = 3
	PieceTypeRook   PieceType = 4
	PieceTypeQueen  PieceType = 5
	PieceTypeKing   PieceType = 6
)

// Color is one of the two sides. The external letter for each side lives in a Palette.
type Color uint8

const (
	ColorA Color = 0
	ColorB Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

// Piece packs a type and a color into one cell value.
//
// Pieces are encoded as (type | color<<3) so that
//   - piece & 7 gives the type in [1..6]
//   - piece & 8 != 0 indicates ColorB
//
// NoPiece is an empty cell and Blocked is a sentinel cell that holds no piece
// but can never be entered.
type Piece uint8

const (
	NoPiece Piece = 0
	Blocked Piece = 7
)

// MakePiece combines a colorless type with a side to produce a concrete Piece.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PieceTypeNone || pt > PieceTypeKing {
		return NoPiece
	}
	return Piece(pt) | Piece(c)<<3
}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType {
	if p == Blocked {
		return PieceTypeNone
	}
	return PieceType(p & 7)
}

// Color returns the side that owns the piece. Only meaningful when IsPiece is true.
func (p Piece) Color() Color { return Color(p>>3) & 1 }

// IsPiece reports whether the cell holds a real piece.
func (p Piece) IsPiece() bool { return p != NoPiece && p != Blocked }

// Square is a (row, col) grid coordinate.
type Square struct {
	Row int
	Col int
}

// NoSquare marks a board that has not been reached by any move yet.
var NoSquare = Square{Row: -1, Col: -1}

// Palette maps each Color slot to the single-letter tag used by callers.
type Palette [2]byte

// DefaultPalette is the white/black palette.
var DefaultPalette = Palette{'w', 'b'}

// ColorOf resolves a color letter to its slot.
func (p Palette) ColorOf(letter byte) (Color, bool) {
	switch letter {
	case p[ColorA]:
		return ColorA, true
	case p[ColorB]:
		return ColorB, true
	}
	return ColorA, false
}

// Letter returns the external tag for a color.
func (p Palette) Letter(c Color) byte { return p[c&1] }

// Board is an immutable-by-convention W×H grid snapshot. Every search node owns
// its own Board; Apply always returns a fresh copy.
type Board struct {
	width  int
	height int
	cells  []Piece

	palette Palette

	// Pawns of the perspective color move toward increasing rows.
	perspective Color

	// The first move that led from the root snapshot to this board.
	origin      Square
	destination Square

	// Zobrist key of the cell contents, maintained by set.
	zobristKey uint64
}

// NewBoard returns an empty board with no recorded move.
func NewBoard(width, height int, palette Palette, perspective Color) *Board {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Board{
		width:       width,
		height:      height,
		cells:       make([]Piece, width*height),
		palette:     palette,
		perspective: perspective,
		origin:      NoSquare,
		destination: NoSquare,
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Palette returns the color letters of this board.
func (b *Board) Palette() Palette { return b.palette }

// Perspective returns the color whose pawns move toward increasing rows.
func (b *Board) Perspective() Color { return b.perspective }

// Origin returns the source square of the first move that produced this board,
// or NoSquare for a root snapshot.
func (b *Board) Origin() Square { return b.origin }

// Destination returns the target square of the first move that produced this board.
func (b *Board) Destination() Square { return b.destination }

// FirstMove returns the recorded first move, or NullMove for a root snapshot.
func (b *Board) FirstMove() Move {
	if b.origin == NoSquare {
		return NullMove
	}
	return Move{From: b.origin, To: b.destination}
}

// Hash returns the Zobrist key of the cell contents.
func (b *Board) Hash() uint64 { return b.zobristKey }

// InBounds reports whether sq lies on the board.
func (b *Board) InBounds(sq Square) bool {
	return sq.Row >= 0 && sq.Row < b.height && sq.Col >= 0 && sq.Col < b.width
}

func (b *Board) index(sq Square) int { return sq.Row*b.width + sq.Col }

// PieceAt returns the content of a square. Off-board squares read as Blocked.
func (b *Board) PieceAt(sq Square) Piece {
	if !b.InBounds(sq) {
		return Blocked
	}
	return b.cells[b.index(sq)]
}

// SetPiece places p on sq, replacing any existing content. Intended for building
// positions; search code only ever goes through Apply.
func (b *Board) SetPiece(sq Square, p Piece) {
	if !b.InBounds(sq) {
		return
	}
	b.set(b.index(sq), p)
}

// ClearSquare empties sq.
func (b *Board) ClearSquare(sq Square) { b.SetPiece(sq, NoPiece) }

func (b *Board) set(idx int, p Piece) {
	old := b.cells[idx]
	if old == p {
		return
	}
	b.zobristKey ^= zobristCell(old, idx) ^ zobristCell(p, idx)
	b.cells[idx] = p
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	c.cells = make([]Piece, len(b.cells))
	copy(c.cells, b.cells)
	return &c
}

// AsRoot returns b itself when no move has been recorded yet, otherwise a
// copy with the recorded move cleared.
func (b *Board) AsRoot() *Board {
	if b.origin == NoSquare {
		return b
	}
	c := b.Clone()
	c.origin, c.destination = NoSquare, NoSquare
	return c
}

// PawnDirection returns the row step of pawns of color c.
func (b *Board) PawnDirection(c Color) int {
	if c == b.perspective {
		return 1
	}
	return -1
}

// KingSquare returns the square of c's king.
func (b *Board) KingSquare(c Color) (Square, bool) {
	king := MakePiece(c, PieceTypeKing)
	for idx, p := range b.cells {
		if p == king {
			return Square{Row: idx / b.width, Col: idx % b.width}, true
		}
	}
	return NoSquare, false
}

// HasKing reports whether c still has a king on the board.
func (b *Board) HasKing(c Color) bool {
	_, ok := b.KingSquare(c)
	return ok
}

// PieceSquares returns the squares holding pieces of color c in row-major order.
func (b *Board) PieceSquares(c Color) []Square {
	squares := make([]Square, 0, 16)
	for idx, p := range b.cells {
		if p.IsPiece() && p.Color() == c {
			squares = append(squares, Square{Row: idx / b.width, Col: idx % b.width})
		}
	}
	return squares
}

// PieceCount returns the number of real pieces on the board. Blocked cells do not count.
func (b *Board) PieceCount() int {
	n := 0
	for _, p := range b.cells {
		if p.IsPiece() {
			n++
		}
	}
	return n
}

// Validate checks that the cached Zobrist key matches the cell contents.
func (b *Board) Validate() bool {
	return len(b.cells) == b.width*b.height && b.zobristKey == b.ComputeZobrist()
}

// ==========================
// Rendering
// ==========================

// Descriptors renders the board back into the caller grid format.
func (b *Board) Descriptors() [][]string {
	grid := make([][]string, b.height)
	for r := 0; r < b.height; r++ {
		row := make([]string, b.width)
		for c := 0; c < b.width; c++ {
			row[c] = b.descriptor(b.cells[r*b.width+c])
		}
		grid[r] = row
	}
	return grid
}

func (b *Board) descriptor(p Piece) string {
	switch {
	case p == NoPiece:
		return ""
	case p == Blocked:
		return "X"
	}
	return string([]byte{pieceLetters[p.Type()], b.palette.Letter(p.Color())})
}

// String renders the board with row 0 at the bottom.
func (b *Board) String() string {
	var sb strings.Builder
	for r := b.height - 1; r >= 0; r-- {
		for c := 0; c < b.width; c++ {
			d := b.descriptor(b.cells[r*b.width+c])
			switch d {
			case "":
				d = ".."
			case "X":
				d = "XX"
			}
			sb.WriteString(d)
			if c < b.width-1 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
