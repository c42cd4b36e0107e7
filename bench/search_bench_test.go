package bench

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"gridchess/engine"
	gm "gridchess/gridmg"
)

func benchSearch(b *testing.B, fen string, depth int) {
	board, side, err := gm.FromFEN(fen)
	if err != nil {
		b.Fatalf("FromFEN: %v", err)
	}
	cfg := engine.DefaultConfig()
	cfg.Depth = depth
	cfg.LateDepthBonus = 0
	cfg.Seed = 1
	e, err := engine.New(cfg, engine.WithLogger(zerolog.Nop()))
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := e.Search(board, side, time.Minute); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSearch_Initial_D3(b *testing.B) {
	benchSearch(b, gm.FENStartPos, 3)
}

func BenchmarkSearch_Kiwipete_D2(b *testing.B) {
	benchSearch(b, kiwipete, 2)
}

func BenchmarkEvaluate_Kiwipete(b *testing.B) {
	board, side, err := gm.FromFEN(kiwipete)
	if err != nil {
		b.Fatal(err)
	}
	cfg := engine.DefaultConfig()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = engine.Evaluate(board, side, &cfg)
	}
}
