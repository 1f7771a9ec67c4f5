package compiler

import (
	"fmt"
	"sort"

	"github.com/samber/lo"

	"github.com/lhaig/tagless/internal/backend"
	"github.com/lhaig/tagless/internal/cbe"
	"github.com/lhaig/tagless/internal/evalbe"
	"github.com/lhaig/tagless/internal/expr"
	"github.com/lhaig/tagless/internal/tagged"
)

// ProgramRegistry holds the programs the compiler knows by name.
type ProgramRegistry struct {
	programs map[string]*backend.Program
}

// NewProgramRegistry creates an empty registry.
func NewProgramRegistry() *ProgramRegistry {
	return &ProgramRegistry{programs: make(map[string]*backend.Program)}
}

// Register adds a program. Names must be unique.
func (r *ProgramRegistry) Register(p *backend.Program) error {
	if p.Name == "" {
		return fmt.Errorf("program has no name")
	}
	if _, ok := r.programs[p.Name]; ok {
		return fmt.Errorf("program already registered: %s", p.Name)
	}
	if p.Eval == nil || p.Display == nil || p.C == nil {
		return fmt.Errorf("program %s is missing a backend instantiation", p.Name)
	}
	r.programs[p.Name] = p
	return nil
}

// Lookup returns the named program.
func (r *ProgramRegistry) Lookup(name string) (*backend.Program, error) {
	p, ok := r.programs[name]
	if !ok {
		return nil, fmt.Errorf("unknown program: %s", name)
	}
	return p, nil
}

// Names returns the registered program names in sorted order.
func (r *ProgramRegistry) Names() []string {
	names := lo.Keys(r.programs)
	sort.Strings(names)
	return names
}

// Builtin returns a registry holding the built-in example programs.
func Builtin() *ProgramRegistry {
	r := NewProgramRegistry()
	for _, p := range builtinPrograms() {
		if err := r.Register(p); err != nil {
			panic(err)
		}
	}
	return r
}

func builtinPrograms() []*backend.Program {
	return []*backend.Program{
		{
			Name:        "nested-if",
			Description: "if (if false then false else true) then 10 + 1 else -1",
			Eval:        expr.NestedIf[evalbe.Value],
			Display:     expr.NestedIf[string],
			C:           expr.NestedIf[cbe.Gen],
			Tagged: func() tagged.Node {
				return tagged.NewIf(
					tagged.NewIf(tagged.NewBool(false), tagged.NewBool(false), tagged.NewBool(true)),
					tagged.NewAdd(tagged.NewInt(10), tagged.NewInt(1)),
					tagged.NewInt(-1),
				)
			},
		},
		{
			Name:        "arith",
			Description: "(1 + 2) + (3 + 4)",
			Eval:        expr.Arith[evalbe.Value],
			Display:     expr.Arith[string],
			C:           expr.Arith[cbe.Gen],
			Tagged: func() tagged.Node {
				return tagged.NewAdd(
					tagged.NewAdd(tagged.NewInt(1), tagged.NewInt(2)),
					tagged.NewAdd(tagged.NewInt(3), tagged.NewInt(4)),
				)
			},
		},
		{
			Name:        "select",
			Description: "if true then 40 + 2 else 0",
			Eval:        expr.Select[evalbe.Value],
			Display:     expr.Select[string],
			C:           expr.Select[cbe.Gen],
			Tagged: func() tagged.Node {
				return tagged.NewIf(tagged.NewBool(true), tagged.NewAdd(tagged.NewInt(40), tagged.NewInt(2)), tagged.NewInt(0))
			},
		},
	}
}
