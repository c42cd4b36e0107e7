package gridmg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedBoard is wrapped by every snapshot rejection.
var ErrMalformedBoard = errors.New("malformed board")

// pieceLetters maps a PieceType to its descriptor letter.
var pieceLetters = [7]byte{'?', 'p', 'n', 'b', 'r', 'q', 'k'}

// pieceTypeFromLetter converts a descriptor letter (either case) to a PieceType.
func pieceTypeFromLetter(ch byte) PieceType {
	switch ch {
	case 'p', 'P':
		return PieceTypePawn
	case 'n', 'N':
		return PieceTypeKnight
	case 'b', 'B':
		return PieceTypeBishop
	case 'r', 'R':
		return PieceTypeRook
	case 'q', 'Q':
		return PieceTypeQueen
	case 'k', 'K':
		return PieceTypeKing
	default:
		return PieceTypeNone
	}
}

// ParseCell converts one cell descriptor into a Piece.
//
// Accepted forms are "" (or blank, or ".") for an empty square, "X" for a
// blocked square and "<piece><color>" where piece is one of k q r b n p.
func ParseCell(desc string, palette Palette) (Piece, error) {
	desc = strings.TrimSpace(desc)
	switch desc {
	case "", ".":
		return NoPiece, nil
	case "X", "x":
		return Blocked, nil
	}
	if len(desc) != 2 {
		return NoPiece, fmt.Errorf("%w: cell %q is not a 2-character descriptor", ErrMalformedBoard, desc)
	}
	pt := pieceTypeFromLetter(desc[0])
	if pt == PieceTypeNone {
		return NoPiece, fmt.Errorf("%w: unrecognized piece letter %q", ErrMalformedBoard, desc[0])
	}
	c, ok := palette.ColorOf(desc[1])
	if !ok {
		return NoPiece, fmt.Errorf("%w: color %q is not part of this game", ErrMalformedBoard, desc[1])
	}
	return MakePiece(c, pt), nil
}

// Snapshot converts an externally supplied H×W grid of cell descriptors into a
// Board. raw[row][col] maps to Square{Row: row, Col: col}.
func Snapshot(raw [][]string, palette Palette, perspective Color) (*Board, error) {
	if len(raw) == 0 || len(raw[0]) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrMalformedBoard)
	}
	height := len(raw)
	width := len(raw[0])
	if width*height > MaxSquares {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d squares", ErrMalformedBoard, width, height, MaxSquares)
	}

	b := NewBoard(width, height, palette, perspective)
	for r, row := range raw {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, r, len(row), width)
		}
		for c, desc := range row {
			p, err := ParseCell(desc, palette)
			if err != nil {
				return nil, fmt.Errorf("square (%d,%d): %w", r, c, err)
			}
			b.set(r*width+c, p)
		}
	}
	return b, nil
}

// ReadGrid decodes a JSON [][]string grid from r and snapshots it.
func ReadGrid(r io.Reader, palette Palette, perspective Color) (*Board, error) {
	var raw [][]string
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBoard, err)
	}
	return Snapshot(raw, palette, perspective)
}

// WriteGrid encodes b as a JSON [][]string grid that ReadGrid accepts.
func WriteGrid(w io.Writer, b *Board) error {
	return json.NewEncoder(w).Encode(b.Descriptors())
}
