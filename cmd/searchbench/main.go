package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/sync/errgroup"
	"gridchess/config"
	"gridchess/engine"
	gm "gridchess/gridmg"
)

func main() {
	// --- Flags ---
	depthFlag := flag.Int("depth", 0, "search depth in plies (0 = ENGINE_DEPTH or default)")
	budgetFlag := flag.Float64("budget", 5, "time budget per search in seconds")
	repeatFlag := flag.Int("repeat", 1, "number of searches to run")
	parallelFlag := flag.Int("parallel", 1, "number of searches to run at once")
	fenFlag := flag.String("fen", "", "FEN to search (empty = startpos)")
	profFlag := flag.String("profile", "", "profile the run: cpu or mem")
	profPath := flag.String("profile-path", ".", "directory for profile output")
	flag.Parse()

	if *repeatFlag <= 0 || *parallelFlag <= 0 {
		fmt.Fprintln(os.Stderr, "repeat and parallel must be positive")
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
	if *depthFlag > 0 {
		cfg.Depth = *depthFlag
	}
	e, err := engine.New(cfg, engine.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Msg("engine")
	}

	switch *profFlag {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profPath), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(*profPath), profile.NoShutdownHook).Stop()
	default:
		logger.Fatal().Str("profile", *profFlag).Msg("unknown -profile (want cpu or mem)")
	}

	// FEN selection
	fen := gm.FENStartPos
	if *fenFlag != "" {
		fen = *fenFlag
	}
	board, side, err := gm.FromFEN(fen)
	if err != nil {
		logger.Fatal().Err(err).Msg("bad FEN")
	}

	budget := time.Duration(*budgetFlag * float64(time.Second))
	repeat := *repeatFlag

	fmt.Printf("searchbench: fen=%q depth=%d budget=%v repeat=%d parallel=%d\n", fen, cfg.Depth, budget, repeat, *parallelFlag)

	results := make([]engine.Result, repeat)
	var g errgroup.Group
	g.SetLimit(*parallelFlag)

	startAll := time.Now()
	for i := 0; i < repeat; i++ {
		i := i
		g.Go(func() error {
			// boards are never mutated by a search, so runs can share one
			res, err := e.Search(board, side, budget)
			if err != nil {
				return fmt.Errorf("iteration %d: %w", i+1, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("search failed")
	}
	totalElapsed := time.Since(startAll)

	var nodes uint64
	for i, res := range results {
		nodes += res.Stats.Nodes
		fmt.Printf("iteration %d: bestmove %v score %v depth %d nodes %d timeout %v time=%v\n",
			i+1, res.Move, res.Score, res.Depth, res.Stats.Nodes, res.TimedOut, res.Elapsed)
	}
	fmt.Printf("total time: %v  nodes: %d  nps: %.0f\n", totalElapsed, nodes, float64(nodes)/totalElapsed.Seconds())
}
