package engine

import (
	"golang.org/x/exp/slices"
	gm "gridchess/gridmg"
)

// WinScore is returned when a king has been captured. No heuristic score can
// reach it.
const WinScore float64 = 999999

// Phase classifies a position by how many pieces remain.
type Phase uint8

const (
	PhaseEarly Phase = iota
	PhaseMid
	PhaseLate
)

func (p Phase) String() string {
	switch p {
	case PhaseEarly:
		return "early"
	case PhaseMid:
		return "mid"
	default:
		return "late"
	}
}

// GamePhase counts the pieces on b (blocked cells excluded) against the
// configured thresholds.
func GamePhase(b *gm.Board, cfg *Config) Phase {
	n := b.PieceCount()
	switch {
	case n >= cfg.EarlyThreshold:
		return PhaseEarly
	case n >= cfg.MidThreshold:
		return PhaseMid
	default:
		return PhaseLate
	}
}

// CenterSquares returns the configured center, or the 2×2 block in the
// middle of b clipped to the board.
func CenterSquares(b *gm.Board, cfg *Config) []gm.Square {
	if cfg.CenterSquares != nil {
		return cfg.CenterSquares
	}
	rows := [2]int{b.Height()/2 - 1, b.Height() / 2}
	cols := [2]int{b.Width()/2 - 1, b.Width() / 2}
	center := make([]gm.Square, 0, 4)
	for _, r := range rows {
		for _, c := range cols {
			s := gm.Square{Row: r, Col: c}
			if b.InBounds(s) && !slices.Contains(center, s) {
				center = append(center, s)
			}
		}
	}
	return center
}

// ==========================
// Evaluation
// ==========================

// Evaluate scores b from color's point of view: positive is good for color.
//
// A missing king is decisive. When color has lost its king the result is
// -WinScore, otherwise a missing opposing king gives +WinScore. Boards with
// no king on either side are scored heuristically.
func Evaluate(b *gm.Board, color gm.Color, cfg *Config) float64 {
	own, opp := color, color.Other()
	ownKing, oppKing := b.HasKing(own), b.HasKing(opp)
	switch {
	case !ownKing && oppKing:
		return -WinScore
	case ownKing && !oppKing:
		return WinScore
	}

	var values [2]float64
	phase := GamePhase(b, cfg)
	var center []gm.Square
	if phase != PhaseLate {
		center = CenterSquares(b, cfg)
	}

	for r := 0; r < b.Height(); r++ {
		for c := 0; c < b.Width(); c++ {
			sq := gm.Square{Row: r, Col: c}
			p := b.PieceAt(sq)
			if !p.IsPiece() {
				continue
			}
			pc := p.Color()
			values[pc] += cfg.Weights[p.Type()]

			switch phase {
			case PhaseEarly, PhaseMid:
				for _, cs := range center {
					if sq == cs || b.Attacks(sq, cs) {
						values[pc] += cfg.CenterControlBonus
					}
				}
			case PhaseLate:
				if p.Type() == gm.PieceTypePawn {
					values[pc] += float64(pawnAdvancement(b, sq, pc)) * cfg.AdvancedPawnBonus
				}
			}
		}
	}

	if !b.InCheck(own) {
		values[own] += cfg.KingSafeBonus
	}
	if b.InCheck(opp) {
		values[own] += cfg.EnemyInCheckBonus
	}
	return values[own] - values[opp]
}

// pawnAdvancement is the number of rows a pawn of color c on sq stands away
// from its own back row.
func pawnAdvancement(b *gm.Board, sq gm.Square, c gm.Color) int {
	if b.PawnDirection(c) > 0 {
		return sq.Row
	}
	return b.Height() - 1 - sq.Row
}
