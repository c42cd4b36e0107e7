package engine

import (
	"errors"
	"testing"

	gm "gridchess/gridmg"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}
	if cfg.Weights[gm.PieceTypeKing] != 100 || cfg.Weights[gm.PieceTypeQueen] != 9 {
		t.Fatalf("unexpected weights %v", cfg.Weights)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"depth":      func(c *Config) { c.Depth = 0 },
		"late bonus": func(c *Config) { c.LateDepthBonus = -1 },
		"safety low": func(c *Config) { c.SafetyFraction = 0 },
		"safety hi":  func(c *Config) { c.SafetyFraction = 1.5 },
		"thresholds": func(c *Config) { c.MidThreshold = 40 },
		"memo":       func(c *Config) { c.MemoLimit = -5 },
		"palette":    func(c *Config) { c.Palette = gm.Palette{'w', 'w'} },
	}
	for name, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: err = %v", name, err)
		}
		if _, err := New(cfg); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: New err = %v", name, err)
		}
	}
}

func TestEngineConfigIsCopied(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CenterSquares = []gm.Square{sq(1, 1)}
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cfg.CenterSquares[0] = sq(2, 2)
	if got := e.Config().CenterSquares[0]; got != sq(1, 1) {
		t.Fatalf("engine config aliased caller slice: %v", got)
	}
}

func TestCustomPalette(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Palette = gm.Palette{'r', 'g'}
	e, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	raw := emptyGrid(6, 6)
	raw[1][2] = "pg"
	raw[4][4] = "kr"
	got, err := e.FindBestMove("g", raw, 0)
	if err != nil {
		t.Fatalf("FindBestMove: %v", err)
	}
	if want := (gm.Move{From: sq(1, 2), To: sq(2, 2)}); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
	if _, err := e.FindBestMove("w", raw, 0); !errors.Is(err, ErrUnknownColor) {
		t.Fatalf("default letter accepted by custom palette: %v", err)
	}
}
