package engine

import (
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/exp/slices"
	gm "gridchess/gridmg"
)

// MaterialJSON names the material weights for export.
type MaterialJSON struct {
	Pawn   float64 `json:"pawn"`
	Knight float64 `json:"knight"`
	Bishop float64 `json:"bishop"`
	Rook   float64 `json:"rook"`
	Queen  float64 `json:"queen"`
	King   float64 `json:"king"`
}

// EvalParams is the JSON form of the evaluator part of a Config.
type EvalParams struct {
	Material           MaterialJSON `json:"material"`
	EarlyThreshold     int          `json:"early_threshold"`
	MidThreshold       int          `json:"mid_threshold"`
	CenterControlBonus float64      `json:"center_control_bonus"`
	AdvancedPawnBonus  float64      `json:"advanced_pawn_bonus"`
	KingSafeBonus      float64      `json:"king_safe_bonus"`
	EnemyInCheckBonus  float64      `json:"enemy_in_check_bonus"`
	CenterSquares      []gm.Square  `json:"center_squares,omitempty"`
}

// EvalParams extracts the evaluator settings.
func (c *Config) EvalParams() EvalParams {
	w := c.Weights
	return EvalParams{
		Material: MaterialJSON{
			Pawn:   w[gm.PieceTypePawn],
			Knight: w[gm.PieceTypeKnight],
			Bishop: w[gm.PieceTypeBishop],
			Rook:   w[gm.PieceTypeRook],
			Queen:  w[gm.PieceTypeQueen],
			King:   w[gm.PieceTypeKing],
		},
		EarlyThreshold:     c.EarlyThreshold,
		MidThreshold:       c.MidThreshold,
		CenterControlBonus: c.CenterControlBonus,
		AdvancedPawnBonus:  c.AdvancedPawnBonus,
		KingSafeBonus:      c.KingSafeBonus,
		EnemyInCheckBonus:  c.EnemyInCheckBonus,
		CenterSquares:      slices.Clone(c.CenterSquares),
	}
}

// SetEvalParams overwrites the evaluator settings, leaving search settings alone.
func (c *Config) SetEvalParams(p EvalParams) {
	c.Weights[gm.PieceTypePawn] = p.Material.Pawn
	c.Weights[gm.PieceTypeKnight] = p.Material.Knight
	c.Weights[gm.PieceTypeBishop] = p.Material.Bishop
	c.Weights[gm.PieceTypeRook] = p.Material.Rook
	c.Weights[gm.PieceTypeQueen] = p.Material.Queen
	c.Weights[gm.PieceTypeKing] = p.Material.King
	c.EarlyThreshold = p.EarlyThreshold
	c.MidThreshold = p.MidThreshold
	c.CenterControlBonus = p.CenterControlBonus
	c.AdvancedPawnBonus = p.AdvancedPawnBonus
	c.KingSafeBonus = p.KingSafeBonus
	c.EnemyInCheckBonus = p.EnemyInCheckBonus
	c.CenterSquares = slices.Clone(p.CenterSquares)
}

// ReadEvalParams decodes parameters written by WriteEvalParams. Unknown keys
// are rejected so that typos do not silently fall back to zero.
func ReadEvalParams(r io.Reader) (EvalParams, error) {
	var p EvalParams
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return EvalParams{}, fmt.Errorf("%w: eval params: %v", ErrInvalidConfig, err)
	}
	return p, nil
}

// WriteEvalParams encodes p as indented JSON.
func WriteEvalParams(w io.Writer, p EvalParams) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
