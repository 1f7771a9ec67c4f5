package evalbe

import (
	"testing"

	"github.com/lhaig/tagless/internal/expr"
)

func TestEvalLiterals(t *testing.T) {
	in := Interp{}
	if got := Run(expr.Int[Value](in, 7)); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
	if got := Run(expr.Bool[Value](in, true)); !got {
		t.Errorf("expected true, got %v", got)
	}
}

func TestEvalAdd(t *testing.T) {
	in := Interp{}
	sum := expr.Add[Value](in, expr.Int[Value](in, 10), expr.Int[Value](in, -3))
	if got := Run(sum); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}
}

func TestEvalIfSelectsBranch(t *testing.T) {
	in := Interp{}
	tests := []struct {
		cond bool
		want int32
	}{
		{true, 1},
		{false, 2},
	}

	for _, tt := range tests {
		term := expr.If[Value](in, expr.Bool[Value](in, tt.cond), expr.Int[Value](in, 1), expr.Int[Value](in, 2))
		if got := Run(term); got != tt.want {
			t.Errorf("if %v: expected %d, got %d", tt.cond, tt.want, got)
		}
	}
}

func TestEvalBoolValuedIf(t *testing.T) {
	in := Interp{}
	term := expr.If[Value](in, expr.Bool[Value](in, false), expr.Bool[Value](in, false), expr.Bool[Value](in, true))
	if got := Run(term); !got {
		t.Errorf("expected true, got %v", got)
	}
}

func TestEvalPrograms(t *testing.T) {
	tests := []struct {
		name string
		got  int32
		want int32
	}{
		{"nested-if", RunProgram(expr.NestedIf[Value](Interp{})), 11},
		{"arith", RunProgram(expr.Arith[Value](Interp{})), 10},
		{"select", RunProgram(expr.Select[Value](Interp{})), 42},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, tt.got)
		}
	}
}

func TestEvalChains(t *testing.T) {
	if got := Run(expr.SumChain[Value](Interp{}, 100)); got != 5050 {
		t.Errorf("SumChain(100): expected 5050, got %d", got)
	}
	if got := Run(expr.IfChain[Value](Interp{}, 1)); got != 0 {
		t.Errorf("IfChain(1): expected 0, got %d", got)
	}
	if got := Run(expr.IfChain[Value](Interp{}, 8)); got != 2 {
		t.Errorf("IfChain(8): expected 2, got %d", got)
	}
}

func TestEvalAddNonIntPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic when adding a bool carrier")
		}
	}()
	Interp{}.Add(true, int32(1))
}
