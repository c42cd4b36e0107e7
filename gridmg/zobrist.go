package gridmg

import "math/rand"

// MaxSquares bounds the board area so every cell has a Zobrist key.
const MaxSquares = 32 * 32

// Zobrist keys indexed by cell code (piece, or Blocked) and square index.
var zobristPiece [16][MaxSquares]uint64

// Initialize Zobrist keys (called on package init)
func init() {
	initZobrist()
}

func initZobrist() {
	// Use a fixed seed so keys are identical across runs
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 16; p++ {
		for sq := 0; sq < MaxSquares; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
}

func zobristCell(p Piece, idx int) uint64 {
	if p == NoPiece {
		return 0
	}
	return zobristPiece[p&15][idx]
}

// ComputeZobrist calculates the Zobrist hash for the current cell contents.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for idx, p := range b.cells {
		key ^= zobristCell(p, idx)
	}
	return key
}
