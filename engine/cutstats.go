package engine

import "github.com/rs/zerolog"

// SearchStats collects per-search counters. Each search owns its own copy.
type SearchStats struct {
	Nodes        uint64
	LeafEvals    uint64
	MemoHits     uint64
	MemoStores   uint64
	MemoFull     uint64
	BetaCutoffs  uint64
	KingCaptures uint64
	NoMoveNodes  uint64
	Aborted      uint64

	// Deadline checks made while the clock was still running.
	DeadlinePolls uint64
}

// MarshalZerologObject lets the stats be logged with Event.Object.
func (s SearchStats) MarshalZerologObject(e *zerolog.Event) {
	e.Uint64("nodes", s.Nodes).
		Uint64("leaf_evals", s.LeafEvals).
		Uint64("memo_hits", s.MemoHits).
		Uint64("memo_stores", s.MemoStores).
		Uint64("memo_full", s.MemoFull).
		Uint64("cutoffs", s.BetaCutoffs).
		Uint64("king_captures", s.KingCaptures).
		Uint64("no_move_nodes", s.NoMoveNodes).
		Uint64("aborted", s.Aborted).
		Uint64("deadline_polls", s.DeadlinePolls)
}
