package engine

import (
	gm "gridchess/gridmg"
)

const (
	// Flags
	AlphaFlag = iota // upper bound, the node failed low
	BetaFlag         // lower bound, the node failed high
	ExactFlag
)

type memoKey struct {
	hash  uint64
	depth int8
	color gm.Color
}

// MemoEntry is a stored node result. Best is the chosen child board, nil when
// the node had no legal moves.
type MemoEntry struct {
	Score float64
	Best  *gm.Board
	Flag  int8
}

// MemoTable caches node results for a single search. A fresh table is built
// for every top-level call.
type MemoTable struct {
	entries map[memoKey]MemoEntry
	limit   int
}

// NewMemoTable returns an empty table. limit caps the number of entries; 0
// means no cap.
func NewMemoTable(limit int) *MemoTable {
	return &MemoTable{
		entries: make(map[memoKey]MemoEntry),
		limit:   limit,
	}
}

// Len returns the number of stored entries.
func (mt *MemoTable) Len() int { return len(mt.entries) }

// useEntry reports whether a stored result decides the node for the window
// (alpha, beta).
func (mt *MemoTable) useEntry(b *gm.Board, depth int8, color gm.Color, alpha, beta float64) (usable bool, entry MemoEntry) {
	entry, ok := mt.entries[memoKey{b.Hash(), depth, color}]
	if !ok {
		return false, entry
	}
	switch entry.Flag {
	case ExactFlag:
		usable = true
	case AlphaFlag:
		usable = entry.Score <= alpha
	case BetaFlag:
		usable = entry.Score >= beta
	}
	return usable, entry
}

// storeEntry records a node result computed in the window (alpha, beta),
// flagged by which side of the window the score fell on. Returns false when
// the table is full.
func (mt *MemoTable) storeEntry(b *gm.Board, depth int8, color gm.Color, alpha, beta, score float64, best *gm.Board) bool {
	key := memoKey{b.Hash(), depth, color}
	if _, exists := mt.entries[key]; !exists && mt.limit > 0 && len(mt.entries) >= mt.limit {
		return false
	}
	flag := int8(ExactFlag)
	switch {
	case score <= alpha:
		flag = AlphaFlag
	case score >= beta:
		flag = BetaFlag
	}
	mt.entries[key] = MemoEntry{Score: score, Best: best, Flag: flag}
	return true
}
