package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	gm "gridchess/gridmg"
)

// step is one command of the benchmark run. Required steps abort the run on
// failure.
type step struct {
	title    string
	args     []string
	required bool
}

// blockedGrid is a 12x12 board with the usual armies in the middle eight
// files and blocked cells in the corners and across the centre.
func blockedGrid() *gm.Board {
	const size = 12
	b := gm.NewBoard(size, size, gm.DefaultPalette, gm.ColorA)
	back := []gm.PieceType{
		gm.PieceTypeRook, gm.PieceTypeKnight, gm.PieceTypeBishop, gm.PieceTypeQueen,
		gm.PieceTypeKing, gm.PieceTypeBishop, gm.PieceTypeKnight, gm.PieceTypeRook,
	}
	for i, pt := range back {
		col := i + 2
		b.SetPiece(gm.Square{Row: 0, Col: col}, gm.MakePiece(gm.ColorA, pt))
		b.SetPiece(gm.Square{Row: 1, Col: col}, gm.MakePiece(gm.ColorA, gm.PieceTypePawn))
		b.SetPiece(gm.Square{Row: size - 2, Col: col}, gm.MakePiece(gm.ColorB, gm.PieceTypePawn))
		b.SetPiece(gm.Square{Row: size - 1, Col: col}, gm.MakePiece(gm.ColorB, pt))
	}
	for _, sq := range []gm.Square{
		{Row: 0, Col: 0}, {Row: 0, Col: size - 1}, {Row: size - 1, Col: 0}, {Row: size - 1, Col: size - 1},
		{Row: 5, Col: 3}, {Row: 6, Col: 3}, {Row: 5, Col: 8}, {Row: 6, Col: 8},
	} {
		b.SetPiece(sq, gm.Blocked)
	}
	return b
}

func writeGrid(b *gm.Board) (string, error) {
	path := filepath.Join(os.TempDir(), "gridchess-bench-12x12.json")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := gm.WriteGrid(f, b); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

// run executes one step and prints its combined output. Returns the exit code.
func run(s step) int {
	fmt.Printf("\n== %s\n", s.title)
	cmd := exec.Command("go", s.args...)
	cmd.Env = os.Environ()
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	err := cmd.Run()
	fmt.Print(out.String())
	if err == nil {
		return 0
	}
	var ee *exec.ExitError
	if errors.As(err, &ee) {
		return ee.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", s.title, err)
	return 1
}

func main() {
	// Usage: go run ./cmd/benchrun
	grid, err := writeGrid(blockedGrid())
	if err != nil {
		fmt.Fprintf(os.Stderr, "writing bench grid: %v\n", err)
		os.Exit(2)
	}
	defer os.Remove(grid)

	perft := func(args ...string) []string { return append([]string{"run", "./cmd/perft"}, args...) }
	steps := []step{
		{title: "Micro benchmarks (BENCHMARK  N  ns/op  B/op  allocs/op)",
			args: []string{"test", "./bench", "-run", "^$", "-bench", ".", "-benchmem", "-benchtime=1s"}, required: true},
		{title: "Perft 12x12 blocked grid, white to move",
			args: perft("-board", grid, "-color", "w", "-depth", "3", "-label", "Grid12")},
		{title: "Perft 12x12 blocked grid, divide by root move",
			args: perft("-board", grid, "-color", "w", "-depth", "2", "-divide")},
		{title: "Perft start position",
			args: perft("-depth", "3", "-label", "Initial")},
		{title: "Timed searches, four at once",
			args: []string{"run", "./cmd/searchbench", "-budget", "2", "-repeat", "4", "-parallel", "4"}},
	}

	failed := 0
	for _, s := range steps {
		code := run(s)
		if code == 0 {
			continue
		}
		if s.required {
			os.Remove(grid)
			os.Exit(code)
		}
		failed++
	}
	if failed > 0 {
		fmt.Printf("\n%d of %d steps failed\n", failed, len(steps))
	}
}
