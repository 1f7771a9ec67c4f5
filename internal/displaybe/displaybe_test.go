package displaybe

import (
	"testing"

	"github.com/lhaig/tagless/internal/expr"
)

func TestRenderLiterals(t *testing.T) {
	in := Interp{}
	tests := []struct {
		got  string
		want string
	}{
		{Render(expr.Int[string](in, 42)), "42"},
		{Render(expr.Int[string](in, -1)), "-1"},
		{Render(expr.Bool[string](in, true)), "true"},
		{Render(expr.Bool[string](in, false)), "false"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, tt.got)
		}
	}
}

func TestRenderAdd(t *testing.T) {
	in := Interp{}
	got := Render(expr.Add[string](in, expr.Int[string](in, 10), expr.Int[string](in, 1)))
	if got != "(10) + (1)" {
		t.Errorf("unexpected render: %q", got)
	}
}

func TestRenderPrograms(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{
			"nested-if",
			Render(expr.NestedIf[string](Interp{})),
			"if (if (false) then { false } else { true }) then { (10) + (1) } else { -1 }",
		},
		{
			"arith",
			Render(expr.Arith[string](Interp{})),
			"((1) + (2)) + ((3) + (4))",
		},
		{
			"select",
			Render(expr.Select[string](Interp{})),
			"if (true) then { (40) + (2) } else { 0 }",
		},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s:\nexpected %q\n     got %q", tt.name, tt.want, tt.got)
		}
	}
}

func TestRenderSumChain(t *testing.T) {
	got := Render(expr.SumChain[string](Interp{}, 3))
	if got != "(1) + ((2) + (3))" {
		t.Errorf("unexpected render: %q", got)
	}
}
