package backend

import (
	"strings"
	"testing"

	"github.com/lhaig/tagless/internal/cbe"
	"github.com/lhaig/tagless/internal/expr"
	"github.com/lhaig/tagless/internal/tagged"
)

func nestedIf() *Program {
	return &Program{
		Name:    "nested-if",
		Eval:    expr.NestedIf[any],
		Display: expr.NestedIf[string],
		C:       expr.NestedIf[cbe.Gen],
		Tagged: func() tagged.Node {
			return tagged.NewIf(
				tagged.NewIf(tagged.NewBool(false), tagged.NewBool(false), tagged.NewBool(true)),
				tagged.NewAdd(tagged.NewInt(10), tagged.NewInt(1)),
				tagged.NewInt(-1),
			)
		},
	}
}

func TestBackends(t *testing.T) {
	tests := []struct {
		be   Backend
		name string
		want string
	}{
		{&EvalBackend{}, "eval", "11"},
		{&TaggedBackend{}, "tagged", "11"},
		{&DisplayBackend{}, "display", "if (if (false) then { false } else { true }) then { (10) + (1) } else { -1 }"},
	}

	for _, tt := range tests {
		if tt.be.Name() != tt.name {
			t.Errorf("expected name %q, got %q", tt.name, tt.be.Name())
		}
		got, err := tt.be.Generate(nestedIf(), cbe.DefaultOptions())
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestCBackend(t *testing.T) {
	be := &CBackend{}
	if be.Name() != "c" {
		t.Errorf("expected name c, got %q", be.Name())
	}
	got, err := be.Generate(nestedIf(), cbe.DefaultOptions())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.HasPrefix(got, "#include <stdbool.h>\n#include <stdio.h>\nint main() {\n") {
		t.Errorf("missing prologue:\n%s", got)
	}
	if !strings.HasSuffix(got, "printf(\"%d\\n\", b);\nreturn 0;\n}") {
		t.Errorf("missing epilogue:\n%s", got)
	}
}

func TestTaggedBackendMissingTree(t *testing.T) {
	p := nestedIf()
	p.Tagged = nil
	if _, err := (&TaggedBackend{}).Generate(p, cbe.DefaultOptions()); err == nil {
		t.Error("expected error for program without tagged form")
	}
}
