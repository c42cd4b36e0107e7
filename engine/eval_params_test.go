package engine

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	gm "gridchess/gridmg"
)

func TestEvalParamsRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CenterSquares = []gm.Square{sq(2, 2)}
	cfg.Weights[gm.PieceTypeKnight] = 3.25

	var buf bytes.Buffer
	if err := WriteEvalParams(&buf, cfg.EvalParams()); err != nil {
		t.Fatalf("WriteEvalParams: %v", err)
	}
	if !strings.Contains(buf.String(), `"knight": 3.25`) {
		t.Fatalf("unexpected JSON:\n%s", buf.String())
	}
	p, err := ReadEvalParams(&buf)
	if err != nil {
		t.Fatalf("ReadEvalParams: %v", err)
	}

	got := DefaultConfig()
	got.Depth = 7
	got.SetEvalParams(p)
	if got.Depth != 7 {
		t.Fatalf("search settings were overwritten")
	}
	got.Depth = cfg.Depth
	if !reflect.DeepEqual(got, cfg) {
		t.Fatalf("round trip mismatch:\n%+v\n%+v", got, cfg)
	}
}

func TestReadEvalParamsRejectsUnknownKeys(t *testing.T) {
	_, err := ReadEvalParams(strings.NewReader(`{"materiel": {"pawn": 1}}`))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("err = %v", err)
	}
}
