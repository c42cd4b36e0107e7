package engine

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
	gm "gridchess/gridmg"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("invalid engine config")

// Config holds every tunable of the evaluator and the search. It is passed by
// value into New; nothing here is shared between searches.
type Config struct {
	Palette gm.Palette

	// Material weights indexed by PieceType.
	Weights [7]float64

	// Phase thresholds on the number of pieces on the board.
	EarlyThreshold int
	MidThreshold   int

	CenterControlBonus float64
	AdvancedPawnBonus  float64
	KingSafeBonus      float64
	EnemyInCheckBonus  float64

	// Nil means the four central cells of whatever board is evaluated.
	CenterSquares []gm.Square

	Depth          int
	LateDepthBonus int

	// Fraction of the time budget the search may spend before returning.
	SafetyFraction float64

	// Seed for the square-scan shuffle. 0 draws a fresh seed per search.
	Seed uint64

	// Maximum memo entries per search, 0 for unlimited.
	MemoLimit int

	// Plain minimax, no alpha-beta cutoffs.
	DisablePruning bool
}

// DefaultConfig returns the stock weights and search settings.
func DefaultConfig() Config {
	return Config{
		Palette: gm.DefaultPalette,
		Weights: [7]float64{
			gm.PieceTypePawn:   1,
			gm.PieceTypeKnight: 3,
			gm.PieceTypeBishop: 3,
			gm.PieceTypeRook:   5,
			gm.PieceTypeQueen:  9,
			gm.PieceTypeKing:   100,
		},
		EarlyThreshold:     28,
		MidThreshold:       16,
		CenterControlBonus: 1,
		AdvancedPawnBonus:  0.5,
		KingSafeBonus:      5,
		EnemyInCheckBonus:  3,
		Depth:              3,
		LateDepthBonus:     1,
		SafetyFraction:     0.9,
	}
}

// Validate reports the first inconsistent field.
func (c *Config) Validate() error {
	switch {
	case c.Palette[0] == c.Palette[1]:
		return fmt.Errorf("%w: palette letters must differ, got %q twice", ErrInvalidConfig, c.Palette[0])
	case c.Depth < 1:
		return fmt.Errorf("%w: depth %d < 1", ErrInvalidConfig, c.Depth)
	case c.LateDepthBonus < 0:
		return fmt.Errorf("%w: negative late depth bonus", ErrInvalidConfig)
	case c.SafetyFraction <= 0 || c.SafetyFraction > 1:
		return fmt.Errorf("%w: safety fraction %v outside (0,1]", ErrInvalidConfig, c.SafetyFraction)
	case c.MidThreshold > c.EarlyThreshold:
		return fmt.Errorf("%w: mid threshold %d above early threshold %d", ErrInvalidConfig, c.MidThreshold, c.EarlyThreshold)
	case c.MemoLimit < 0:
		return fmt.Errorf("%w: negative memo limit", ErrInvalidConfig)
	}
	return nil
}

func (c Config) clone() Config {
	c.CenterSquares = slices.Clone(c.CenterSquares)
	return c
}
