package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gridchess/engine"
	gm "gridchess/gridmg"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "grid.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadGrid(t *testing.T) {
	e, err := engine.New(engine.DefaultConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	b, side, err := loadGrid(writeFile(t, `[["kw",""],["X","kb"]]`), "b", e)
	if err != nil {
		t.Fatalf("loadGrid: %v", err)
	}
	if side != gm.ColorB || b.PieceAt(gm.Square{Row: 1, Col: 0}) != gm.Blocked {
		t.Fatalf("side %v, grid %v", side, b.Descriptors())
	}

	if _, _, err := loadGrid(writeFile(t, `[["kw",""],["kb"]]`), "w", e); !errors.Is(err, gm.ErrMalformedBoard) {
		t.Fatalf("ragged grid: expected ErrMalformedBoard, got %v", err)
	}
	if _, _, err := loadGrid(writeFile(t, `[["kw"]]`), "z", e); err == nil {
		t.Fatalf("unknown color accepted")
	}
	if _, _, err := loadGrid(filepath.Join(t.TempDir(), "missing.json"), "w", e); err == nil {
		t.Fatalf("missing file accepted")
	}
}
