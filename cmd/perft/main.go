package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/pkg/profile"
	gm "gridchess/gridmg"
)

func main() {
	fen := flag.String("fen", gm.FENStartPos, "FEN string (defaults to initial position)")
	boardFile := flag.String("board", "", "JSON grid file to count instead of -fen")
	color := flag.String("color", "w", "side to move for -board; also the pawn perspective")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	prof := flag.String("profile", "", "Profile the run: cpu or mem")
	profPath := flag.String("profile-path", ".", "Directory for profile output")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	var board *gm.Board
	var side gm.Color
	var err error
	if *boardFile != "" {
		board, side, err = loadGrid(*boardFile, *color)
	} else {
		board, side, err = gm.FromFEN(*fen)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "position error: %v\n", err)
		os.Exit(2)
	}

	// Optional divide output
	if *divide {
		div := gm.PerftDivide(board, side, *depth)
		// Sort moves for stable output
		type kv struct {
			m gm.Move
			n uint64
		}
		arr := make([]kv, 0, len(div))
		var sum uint64
		for m, n := range div {
			arr = append(arr, kv{m, n})
			sum += n
		}
		sort.Slice(arr, func(i, j int) bool { return arr[i].m.String() < arr[j].m.String() })
		for _, x := range arr {
			fmt.Printf("%s: %d\n", x.m.String(), x.n)
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(*profPath), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(*profPath), profile.NoShutdownHook).Stop()
	default:
		fmt.Fprintf(os.Stderr, "unknown -profile %q (want cpu or mem)\n", *prof)
		os.Exit(2)
	}

	// Timing loop
	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += gm.Perft(board, side, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Single line: Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}

func loadGrid(path, color string) (*gm.Board, gm.Color, error) {
	if len(color) != 1 {
		return nil, gm.ColorA, fmt.Errorf("-color %q is not a single letter", color)
	}
	side, ok := gm.DefaultPalette.ColorOf(color[0])
	if !ok {
		return nil, gm.ColorA, fmt.Errorf("-color %q is not w or b", color)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, gm.ColorA, err
	}
	defer f.Close()
	b, err := gm.ReadGrid(f, gm.DefaultPalette, side)
	return b, side, err
}
