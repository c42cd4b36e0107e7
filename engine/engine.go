package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	gm "gridchess/gridmg"
)

// ErrUnknownColor is returned when the side to move is not one of the two
// palette letters.
var ErrUnknownColor = errors.New("unknown color")

// Engine answers best-move queries. It holds only configuration, so one
// Engine may serve several searches at once.
type Engine struct {
	cfg    Config
	logger zerolog.Logger
}

// Option customises an Engine.
type Option func(*Engine)

// WithLogger replaces the global zerolog logger.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New validates cfg and builds an Engine.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{cfg: cfg.clone(), logger: log.Logger}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config { return e.cfg.clone() }

// Result describes one finished search.
type Result struct {
	Move     gm.Move
	Score    float64
	Depth    int
	TimedOut bool
	Stats    SearchStats
	Elapsed  time.Duration
	SearchID uuid.UUID
}

// ParseColor maps a palette letter to its color slot.
func (e *Engine) ParseColor(letter string) (gm.Color, error) {
	if len(letter) == 1 {
		if c, ok := e.cfg.Palette.ColorOf(letter[0]); ok {
			return c, nil
		}
	}
	return gm.ColorA, fmt.Errorf("%w: %q", ErrUnknownColor, letter)
}

// FindBestMove picks a move for colorToMove on the raw grid within budget.
// The color to move is the perspective color, so its pawns advance toward
// higher rows. gm.NullMove is returned when there is no legal move.
func (e *Engine) FindBestMove(colorToMove string, raw [][]string, budget time.Duration) (gm.Move, error) {
	c, err := e.ParseColor(colorToMove)
	if err != nil {
		return gm.NullMove, err
	}
	b, err := gm.Snapshot(raw, e.cfg.Palette, c)
	if err != nil {
		return gm.NullMove, err
	}
	res, err := e.Search(b, c, budget)
	if err != nil {
		return gm.NullMove, err
	}
	return res.Move, nil
}

// Search runs one search on an already built board. The returned move is
// always legal for color, or gm.NullMove if color cannot move.
func (e *Engine) Search(b *gm.Board, color gm.Color, budget time.Duration) (Result, error) {
	if b == nil || b.Width() == 0 || b.Height() == 0 {
		return Result{}, fmt.Errorf("%w: empty board", gm.ErrMalformedBoard)
	}
	if color != gm.ColorA && color != gm.ColorB {
		return Result{}, fmt.Errorf("%w: color slot %d", ErrUnknownColor, color)
	}

	b = b.AsRoot()
	cfg := e.cfg
	depth := cfg.Depth
	phase := GamePhase(b, &cfg)
	if phase == PhaseLate {
		depth += cfg.LateDepthBonus
	}

	id := uuid.New()
	logger := e.logger.With().Str("search_id", id.String()).Logger()
	logger.Debug().
		Str("color", string(cfg.Palette.Letter(color))).
		Int("depth", depth).
		Stringer("phase", phase).
		Dur("budget", budget).
		Int("pieces", b.PieceCount()).
		Msg("search-start")

	s := newSearcher(&cfg, color)
	s.th.StartTime(budget, cfg.SafetyFraction)
	r := s.rootsearch(b, depth)

	s.stats.DeadlinePolls = s.th.Polls()
	res := Result{
		Move:     gm.NullMove,
		Score:    r.score,
		Depth:    depth,
		TimedOut: s.timedOut,
		Stats:    s.stats,
		Elapsed:  s.th.Elapsed(),
		SearchID: id,
	}
	if r.best != nil {
		res.Move = r.best.FirstMove()
	}

	if res.TimedOut {
		logger.Info().Dur("elapsed", res.Elapsed).Msg("search-timeout")
	}
	logger.Debug().
		Stringer("move", res.Move).
		Float64("score", res.Score).
		Dur("elapsed", res.Elapsed).
		Int("memo_entries", s.memo.Len()).
		Object("stats", res.Stats).
		Msg("search-done")
	return res, nil
}
