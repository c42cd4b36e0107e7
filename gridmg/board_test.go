package gridmg

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"
)

// helper: empty 8x8 board, white ('w') is the perspective color
func emptyBoard(t *testing.T) *Board {
	t.Helper()
	return NewBoard(8, 8, DefaultPalette, ColorA)
}

func sq(r, c int) Square { return Square{Row: r, Col: c} }

var (
	wPawn   = MakePiece(ColorA, PieceTypePawn)
	wKnight = MakePiece(ColorA, PieceTypeKnight)
	wBishop = MakePiece(ColorA, PieceTypeBishop)
	wRook   = MakePiece(ColorA, PieceTypeRook)
	wQueen  = MakePiece(ColorA, PieceTypeQueen)
	wKing   = MakePiece(ColorA, PieceTypeKing)
	bPawn   = MakePiece(ColorB, PieceTypePawn)
	bKnight = MakePiece(ColorB, PieceTypeKnight)
	bBishop = MakePiece(ColorB, PieceTypeBishop)
	bRook   = MakePiece(ColorB, PieceTypeRook)
	bQueen  = MakePiece(ColorB, PieceTypeQueen)
	bKing   = MakePiece(ColorB, PieceTypeKing)
)

func TestPieceEncoding(t *testing.T) {
	if bKing.Type() != PieceTypeKing || bKing.Color() != ColorB {
		t.Fatalf("black king decoded as %v/%v", bKing.Type(), bKing.Color())
	}
	if wPawn.Type() != PieceTypePawn || wPawn.Color() != ColorA {
		t.Fatalf("white pawn decoded as %v/%v", wPawn.Type(), wPawn.Color())
	}
	if Blocked.IsPiece() || NoPiece.IsPiece() {
		t.Fatalf("sentinels must not count as pieces")
	}
	if Blocked.Type() != PieceTypeNone {
		t.Fatalf("blocked cell has a piece type")
	}
	if MakePiece(ColorA, PieceTypeNone) != NoPiece {
		t.Fatalf("PieceTypeNone must map to NoPiece")
	}
}

func TestSnapshotParsesDescriptors(t *testing.T) {
	raw := [][]string{
		{"rw", "", "X", "kb"},
		{"Pw", ".", " ", "qb"},
		{"", "nw", "bb", ""},
	}
	b, err := Snapshot(raw, DefaultPalette, ColorA)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if b.Width() != 4 || b.Height() != 3 {
		t.Fatalf("dimensions %dx%d, want 4x3", b.Width(), b.Height())
	}
	if b.PieceAt(sq(1, 0)) != wPawn {
		t.Errorf("uppercase piece letter not accepted, got %v", b.PieceAt(sq(1, 0)))
	}
	if b.PieceAt(sq(0, 2)) != Blocked {
		t.Errorf("expected blocked cell at (0,2)")
	}
	if b.PieceAt(sq(2, 2)) != bBishop {
		t.Errorf("expected black bishop at (2,2), got %v", b.PieceAt(sq(2, 2)))
	}
	if b.PieceCount() != 6 {
		t.Errorf("PieceCount = %d, want 6", b.PieceCount())
	}
	want := [][]string{
		{"rw", "", "X", "kb"},
		{"pw", "", "", "qb"},
		{"", "nw", "bb", ""},
	}
	if got := b.Descriptors(); !reflect.DeepEqual(got, want) {
		t.Errorf("Descriptors = %v, want %v", got, want)
	}
	if b.Origin() != NoSquare || !b.FirstMove().IsNull() {
		t.Errorf("root snapshot must not carry a move")
	}
	if !b.Validate() {
		t.Errorf("zobrist key out of sync after Snapshot")
	}
}

func TestGridJSONRoundTrip(t *testing.T) {
	b := NewBoard(5, 3, DefaultPalette, ColorB)
	b.SetPiece(sq(0, 0), wKing)
	b.SetPiece(sq(1, 2), Blocked)
	b.SetPiece(sq(2, 4), bQueen)

	var buf bytes.Buffer
	if err := WriteGrid(&buf, b); err != nil {
		t.Fatalf("WriteGrid: %v", err)
	}
	got, err := ReadGrid(&buf, DefaultPalette, ColorB)
	if err != nil {
		t.Fatalf("ReadGrid: %v", err)
	}
	if got.Hash() != b.Hash() || got.Width() != 5 || got.Height() != 3 {
		t.Fatalf("grid changed on the way through JSON: %v", got.Descriptors())
	}

	if _, err := ReadGrid(strings.NewReader(`{"not": "a grid"}`), DefaultPalette, ColorA); !errors.Is(err, ErrMalformedBoard) {
		t.Fatalf("expected ErrMalformedBoard, got %v", err)
	}
}

func TestSnapshotRejectsMalformedInput(t *testing.T) {
	cases := map[string][][]string{
		"empty":          {},
		"empty row":      {{}},
		"ragged":         {{"", ""}, {""}},
		"unknown piece":  {{"zw", ""}},
		"unknown color":  {{"pr", ""}},
		"too long":       {{"pwb", ""}},
		"single letter":  {{"p", ""}},
		"too many cells": make([][]string, 40),
	}
	for i := range cases["too many cells"] {
		cases["too many cells"][i] = make([]string, 40)
	}
	for name, raw := range cases {
		if _, err := Snapshot(raw, DefaultPalette, ColorA); !errors.Is(err, ErrMalformedBoard) {
			t.Errorf("%s: expected ErrMalformedBoard, got %v", name, err)
		}
	}
}

func TestApplyRecordsFirstMove(t *testing.T) {
	b := emptyBoard(t)
	b.SetPiece(sq(1, 0), wPawn)
	b.SetPiece(sq(6, 7), bPawn)

	first := Move{From: sq(1, 0), To: sq(2, 0)}
	child := b.Apply(first)
	if child.Origin() != first.From || child.Destination() != first.To {
		t.Fatalf("child recorded %v -> %v, want %v", child.Origin(), child.Destination(), first)
	}
	if b.PieceAt(sq(1, 0)) != wPawn || b.PieceAt(sq(2, 0)) != NoPiece {
		t.Fatalf("Apply mutated its receiver")
	}

	grandchild := child.Apply(Move{From: sq(6, 7), To: sq(5, 7)})
	if grandchild.FirstMove() != first {
		t.Fatalf("grandchild first move = %v, want %v", grandchild.FirstMove(), first)
	}
	if grandchild.PieceAt(sq(5, 7)) != bPawn || grandchild.PieceAt(sq(6, 7)) != NoPiece {
		t.Fatalf("second move not applied")
	}
	if child.PieceAt(sq(6, 7)) != bPawn {
		t.Fatalf("grandchild aliases its parent's cells")
	}
	if !grandchild.Validate() {
		t.Fatalf("zobrist key out of sync after Apply")
	}
}

func TestApplyCaptureOverwrites(t *testing.T) {
	b := emptyBoard(t)
	b.SetPiece(sq(0, 0), wRook)
	b.SetPiece(sq(0, 5), bPawn)
	m := Move{From: sq(0, 0), To: sq(0, 5)}
	if !IsCapture(m, b) {
		t.Fatalf("expected capture")
	}
	child := b.Apply(m)
	if child.PieceAt(sq(0, 5)) != wRook || child.PieceCount() != 1 {
		t.Fatalf("capture did not overwrite target: %v", child.Descriptors()[0])
	}
}

func TestApplyIgnoresOffBoardMoves(t *testing.T) {
	b := emptyBoard(t)
	b.SetPiece(sq(0, 0), wRook)
	b.SetPiece(sq(7, 0), bKing)

	for _, m := range []Move{
		{From: sq(0, 0), To: sq(0, 8)},
		{From: sq(7, 0), To: sq(8, 0)},
		{From: sq(-1, 3), To: sq(0, 0)},
	} {
		child := b.Apply(m)
		if child.Hash() != b.Hash() || child.PieceAt(sq(1, 0)) != NoPiece {
			t.Fatalf("%v changed the board", m)
		}
		if child.PieceAt(sq(0, 0)) != wRook || child.PieceAt(sq(7, 0)) != bKing {
			t.Fatalf("%v moved a piece", m)
		}
		if child.Origin() != NoSquare || !child.Validate() {
			t.Fatalf("%v recorded origin %v", m, child.Origin())
		}
	}
}

func TestHashDependsOnContentsOnly(t *testing.T) {
	a := emptyBoard(t)
	a.SetPiece(sq(0, 0), wRook)
	a.SetPiece(sq(7, 7), bKing)

	b := emptyBoard(t)
	b.SetPiece(sq(7, 7), bKing)
	b.SetPiece(sq(0, 0), wRook)
	if a.Hash() != b.Hash() {
		t.Fatalf("same layout built in different order hashes differently")
	}
	b.ClearSquare(sq(0, 0))
	if a.Hash() == b.Hash() {
		t.Fatalf("different layouts share a hash")
	}
}

func TestKingSquare(t *testing.T) {
	b := emptyBoard(t)
	if b.HasKing(ColorA) {
		t.Fatalf("empty board has a king")
	}
	b.SetPiece(sq(3, 4), wKing)
	ks, ok := b.KingSquare(ColorA)
	if !ok || ks != sq(3, 4) {
		t.Fatalf("KingSquare = %v,%v", ks, ok)
	}
	if b.HasKing(ColorB) {
		t.Fatalf("black king reported on a board without one")
	}
}
