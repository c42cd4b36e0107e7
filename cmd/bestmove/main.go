package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/notnil/chess"
	"gridchess/config"
	"gridchess/engine"
	gm "gridchess/gridmg"
)

func main() {
	boardFile := flag.String("board", "", "JSON file holding the grid as [][]string")
	fen := flag.String("fen", "", "FEN to search instead of -board")
	color := flag.String("color", "w", "color to move for -board")
	budget := flag.Float64("budget", 1, "time budget in seconds")
	depth := flag.Int("depth", 0, "search depth (0 = ENGINE_DEPTH or default)")
	seed := flag.Uint64("seed", 0, "shuffle seed (0 = ENGINE_SEED or random)")
	draw := flag.Bool("draw", false, "draw the resulting position (8x8 boards only)")
	evalFile := flag.String("eval", "", "JSON evaluator parameters (see export_eval)")
	flag.Parse()

	if (*boardFile == "") == (*fen == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -board or -fen is required")
		os.Exit(2)
	}

	appCfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(2)
	}
	logger, err := config.NewLogger(appCfg.Logs, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building logger: %v\n", err)
		os.Exit(2)
	}

	cfg := engine.DefaultConfig()
	appCfg.Engine.Apply(&cfg)
	if *depth > 0 {
		cfg.Depth = *depth
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *evalFile != "" {
		f, err := os.Open(*evalFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("eval params")
		}
		p, err := engine.ReadEvalParams(f)
		_ = f.Close()
		if err != nil {
			logger.Fatal().Err(err).Msg("eval params")
		}
		cfg.SetEvalParams(p)
	}
	e, err := engine.New(cfg, engine.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("engine")
	}

	var board *gm.Board
	var side gm.Color
	if *fen != "" {
		board, side, err = gm.FromFEN(*fen)
		if err != nil {
			logger.Fatal().Err(err).Msg("bad FEN")
		}
	} else {
		board, side, err = loadGrid(*boardFile, *color, e)
		if err != nil {
			logger.Fatal().Err(err).Msg("bad board")
		}
	}

	res, err := e.Search(board, side, time.Duration(*budget*float64(time.Second)))
	if err != nil {
		logger.Fatal().Err(err).Msg("search")
	}
	fmt.Printf("bestmove %s score %v\n", res.Move, res.Score)

	if *draw {
		drawPosition(board, side, res.Move)
	}
}

func loadGrid(path, color string, e *engine.Engine) (*gm.Board, gm.Color, error) {
	side, err := e.ParseColor(color)
	if err != nil {
		return nil, gm.ColorA, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, gm.ColorA, err
	}
	defer f.Close()
	b, err := gm.ReadGrid(f, e.Config().Palette, side)
	return b, side, err
}

func drawPosition(b *gm.Board, side gm.Color, m gm.Move) {
	next := side.Other()
	if !m.IsNull() {
		b = b.Apply(m)
	} else {
		next = side
	}
	fen := b.ToFEN(next)
	if fen == "" {
		fmt.Fprintln(os.Stderr, "-draw needs an 8x8 board")
		return
	}
	opt, err := chess.FEN(fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot draw %q: %v\n", fen, err)
		return
	}
	game := chess.NewGame(opt)
	fmt.Print(game.Position().Board().Draw())
}
