package gridmg

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// FENStartPos is the FEN string for the standard initial chess position.
const FENStartPos = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrInvalidFEN is wrapped by FromFEN rejections.
var ErrInvalidFEN = errors.New("invalid FEN")

// FromFEN builds an 8×8 board from a FEN string. Rank 1 is row 0 and file a is
// column 0, so White (ColorA, letter 'w') is the perspective color. Castling and
// en passant fields are accepted and ignored. The side to move is returned
// alongside the board.
func FromFEN(fen string) (*Board, Color, error) {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return nil, ColorA, fmt.Errorf("%w: not enough fields", ErrInvalidFEN)
	}
	if err := validatePlacement(fields[0]); err != nil {
		return nil, ColorA, err
	}
	side := ColorA
	switch fields[1] {
	case "w":
	case "b":
		side = ColorB
	default:
		return nil, ColorA, fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}
	// dragontoothmg expects all six fields
	defaults := []string{"", "", "-", "-", "0", "1"}
	for len(fields) < 6 {
		fields = append(fields, defaults[len(fields)])
	}

	var db dragontoothmg.Board
	if err := parseDragon(strings.Join(fields[:6], " "), &db); err != nil {
		return nil, ColorA, err
	}

	b := NewBoard(8, 8, DefaultPalette, ColorA)
	b.placeBitboards(&db.White, ColorA)
	b.placeBitboards(&db.Black, ColorB)
	return b, side, nil
}

func parseDragon(fen string, db *dragontoothmg.Board) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrInvalidFEN, r)
		}
	}()
	*db = dragontoothmg.ParseFen(fen)
	return nil
}

func (b *Board) placeBitboards(bbs *dragontoothmg.Bitboards, c Color) {
	sets := [...]struct {
		mask uint64
		pt   PieceType
	}{
		{bbs.Pawns, PieceTypePawn},
		{bbs.Knights, PieceTypeKnight},
		{bbs.Bishops, PieceTypeBishop},
		{bbs.Rooks, PieceTypeRook},
		{bbs.Queens, PieceTypeQueen},
		{bbs.Kings, PieceTypeKing},
	}
	for _, s := range sets {
		mask := s.mask
		for mask != 0 {
			idx := bits.TrailingZeros64(mask)
			mask &= mask - 1
			b.SetPiece(Square{Row: idx / 8, Col: idx % 8}, MakePiece(c, s.pt))
		}
	}
}

// validatePlacement checks the piece placement field before handing it to
// dragontoothmg, which does not report errors.
func validatePlacement(placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: incorrect number of ranks", ErrInvalidFEN)
	}
	for i, rank := range ranks {
		files := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				files += int(ch - '0')
			case pieceTypeFromLetter(byte(ch)) != PieceTypeNone:
				files++
			default:
				return fmt.Errorf("%w: unrecognized piece character %q", ErrInvalidFEN, ch)
			}
		}
		if files != 8 {
			return fmt.Errorf("%w: rank %d describes %d files", ErrInvalidFEN, 8-i, files)
		}
	}
	return nil
}

// ToFEN renders an 8×8 board oriented like FromFEN. ColorA is written as White.
func (b *Board) ToFEN(side Color) string {
	if b.width != 8 || b.height != 8 {
		return ""
	}
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		empty := 0
		for c := 0; c < 8; c++ {
			p := b.cells[r*8+c]
			if !p.IsPiece() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			ch := pieceLetters[p.Type()]
			if p.Color() == ColorA {
				ch -= 'a' - 'A'
			}
			sb.WriteByte(ch)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r > 0 {
			sb.WriteByte('/')
		}
	}
	if side == ColorA {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}
