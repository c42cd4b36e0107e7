package engine

import (
	"testing"

	gm "gridchess/gridmg"
)

func TestMemoBoundFlags(t *testing.T) {
	b := gm.NewBoard(4, 4, gm.DefaultPalette, gm.ColorA)
	b.SetPiece(sq(0, 0), wKing)
	mt := NewMemoTable(0)

	mt.storeEntry(b, 2, gm.ColorA, 0, 10, 5, nil)
	if ok, e := mt.useEntry(b, 2, gm.ColorA, -100, 100); !ok || e.Flag != ExactFlag || e.Score != 5 {
		t.Fatalf("exact entry not usable: %v %+v", ok, e)
	}
	if ok, _ := mt.useEntry(b, 3, gm.ColorA, -100, 100); ok {
		t.Fatalf("entry leaked to another depth")
	}
	if ok, _ := mt.useEntry(b, 2, gm.ColorB, -100, 100); ok {
		t.Fatalf("entry leaked to the other side to move")
	}

	// failed low: only an upper bound
	mt.storeEntry(b, 1, gm.ColorA, 0, 10, -3, nil)
	if ok, _ := mt.useEntry(b, 1, gm.ColorA, -5, 10); ok {
		t.Fatalf("upper bound used above alpha")
	}
	if ok, e := mt.useEntry(b, 1, gm.ColorA, -3, 10); !ok || e.Flag != AlphaFlag {
		t.Fatalf("upper bound not used at alpha: %v %+v", ok, e)
	}

	// failed high: only a lower bound
	mt.storeEntry(b, 3, gm.ColorA, 0, 10, 12, b)
	if ok, _ := mt.useEntry(b, 3, gm.ColorA, 0, 20); ok {
		t.Fatalf("lower bound used below beta")
	}
	if ok, e := mt.useEntry(b, 3, gm.ColorA, 0, 11); !ok || e.Flag != BetaFlag || e.Best != b {
		t.Fatalf("lower bound not used under beta: %v %+v", ok, e)
	}
}

func TestMemoLimit(t *testing.T) {
	b := gm.NewBoard(4, 4, gm.DefaultPalette, gm.ColorA)
	mt := NewMemoTable(1)
	if !mt.storeEntry(b, 1, gm.ColorA, 0, 1, 0.5, nil) {
		t.Fatalf("first store rejected")
	}
	if mt.storeEntry(b, 2, gm.ColorA, 0, 1, 0.5, nil) {
		t.Fatalf("store beyond limit accepted")
	}
	if !mt.storeEntry(b, 1, gm.ColorA, 0, 1, 0.25, nil) {
		t.Fatalf("overwriting an existing key must be allowed")
	}
	if mt.Len() != 1 {
		t.Fatalf("len = %d", mt.Len())
	}
}
