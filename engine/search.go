package engine

import (
	"encoding/binary"
	"math"

	gm "gridchess/gridmg"
	"lukechampine.com/frand"
)

// searcher is the mutable state of one top-level search. Nothing in it
// outlives the call that created it.
type searcher struct {
	cfg      *Config
	root     gm.Color
	th       TimeHandler
	memo     *MemoTable
	rng      *frand.RNG
	stats    SearchStats
	timedOut bool
}

// nodeResult is what expand hands back to the parent. ok is false when the
// deadline fired before the node scored anything.
type nodeResult struct {
	score float64
	best  *gm.Board
	ok    bool
}

func newSearcher(cfg *Config, root gm.Color) *searcher {
	return &searcher{
		cfg:  cfg,
		root: root,
		memo: NewMemoTable(cfg.MemoLimit),
		rng:  newRNG(cfg.Seed),
	}
}

func newRNG(seed uint64) *frand.RNG {
	if seed == 0 {
		return frand.New()
	}
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return frand.NewCustom(key[:], 1024, 12)
}

// children returns every legal child of b for color c. Squares are visited
// in a shuffled order so that a truncated search does not always favour the
// same pieces.
func (s *searcher) children(b *gm.Board, c gm.Color) []*gm.Board {
	squares := b.PieceSquares(c)
	s.rng.Shuffle(len(squares), func(i, j int) {
		squares[i], squares[j] = squares[j], squares[i]
	})
	var out []*gm.Board
	for _, sq := range squares {
		out = b.LegalMovesInto(out, sq)
	}
	return out
}

// winFor is the decisive score for a win by color c, seen from the root.
func (s *searcher) winFor(c gm.Color) float64 {
	if c == s.root {
		return WinScore
	}
	return -WinScore
}

func (s *searcher) store(b *gm.Board, depth int8, color gm.Color, alpha, beta float64, r nodeResult) {
	if s.timedOut {
		return
	}
	if s.memo.storeEntry(b, depth, color, alpha, beta, r.score, r.best) {
		s.stats.MemoStores++
	} else {
		s.stats.MemoFull++
	}
}

// expand searches b with color to move and depth plies left. The side equal
// to the root color maximizes, the other minimizes; leaves are always scored
// for the root color.
func (s *searcher) expand(b *gm.Board, color gm.Color, depth int8, alpha, beta float64, ply int) nodeResult {
	s.stats.Nodes++

	if depth <= 0 {
		s.stats.LeafEvals++
		return nodeResult{score: Evaluate(b, s.root, s.cfg), best: b, ok: true}
	}

	if usable, entry := s.memo.useEntry(b, depth, color, alpha, beta); usable {
		s.stats.MemoHits++
		return nodeResult{score: entry.Score, best: entry.Best, ok: true}
	}

	children := s.children(b, color)
	opp := color.Other()

	if len(children) == 0 {
		// A side that cannot move has lost, in check or not.
		s.stats.NoMoveNodes++
		r := nodeResult{score: s.winFor(opp), ok: true}
		s.store(b, depth, color, alpha, beta, r)
		return r
	}

	// King capture ends the game, no need to look any further.
	if b.HasKing(opp) {
		for _, child := range children {
			if !child.HasKing(opp) {
				s.stats.KingCaptures++
				r := nodeResult{score: s.winFor(color), best: child, ok: true}
				s.store(b, depth, color, alpha, beta, r)
				return r
			}
		}
	}

	maximizing := color == s.root
	best := nodeResult{score: math.Inf(1)}
	if maximizing {
		best.score = math.Inf(-1)
	}
	a, bt := alpha, beta

	for _, child := range children {
		if s.th.TimeStatus() {
			s.timedOut = true
			break
		}
		r := s.expand(child, opp, depth-1, a, bt, ply+1)
		if !r.ok {
			s.stats.Aborted++
			continue
		}

		if maximizing {
			if r.score > best.score {
				best = nodeResult{score: r.score, best: child, ok: true}
			}
			if !s.cfg.DisablePruning {
				a = Max(a, r.score)
			}
		} else {
			if r.score < best.score {
				best = nodeResult{score: r.score, best: child, ok: true}
			}
			if !s.cfg.DisablePruning {
				bt = Min(bt, r.score)
			}
		}
		if a >= bt {
			s.stats.BetaCutoffs++
			break
		}
	}

	if !best.ok {
		// Out of time before any child was scored. The root still has to
		// answer with a real move.
		if ply == 0 {
			s.stats.LeafEvals++
			return nodeResult{score: Evaluate(children[0], s.root, s.cfg), best: children[0], ok: true}
		}
		return best
	}

	s.store(b, depth, color, alpha, beta, best)
	return best
}

// rootsearch runs one fixed-depth search from b with the full window.
func (s *searcher) rootsearch(b *gm.Board, depth int) nodeResult {
	return s.expand(b, s.root, int8(Clamp(depth, 0, math.MaxInt8)), math.Inf(-1), math.Inf(1), 0)
}
