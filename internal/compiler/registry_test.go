package compiler

import (
	"strings"
	"testing"

	"github.com/lhaig/tagless/internal/backend"
	"github.com/lhaig/tagless/internal/expr"
)

func TestBuiltinNames(t *testing.T) {
	got := strings.Join(Builtin().Names(), ",")
	if got != "arith,nested-if,select" {
		t.Errorf("unexpected names: %s", got)
	}
}

func TestRegistryLookup(t *testing.T) {
	r := Builtin()
	p, err := r.Lookup("nested-if")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if p.Description == "" {
		t.Error("expected description")
	}
	if _, err := r.Lookup("nope"); err == nil {
		t.Error("expected error for unknown program")
	}
}

func TestRegistryRejects(t *testing.T) {
	r := NewProgramRegistry()
	incomplete := &backend.Program{
		Name:    "p",
		Eval:    expr.Select[any],
		Display: expr.Select[string],
		C:       nil,
	}

	if err := r.Register(incomplete); err == nil {
		t.Error("expected error for missing C instantiation")
	}
	if err := r.Register(&backend.Program{}); err == nil {
		t.Error("expected error for unnamed program")
	}

	p, _ := Builtin().Lookup("select")
	if err := r.Register(p); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := r.Register(p); err == nil {
		t.Error("expected error for duplicate name")
	}
}
