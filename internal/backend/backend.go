package backend

import (
	"github.com/lhaig/tagless/internal/cbe"
	"github.com/lhaig/tagless/internal/evalbe"
	"github.com/lhaig/tagless/internal/expr"
	"github.com/lhaig/tagless/internal/repr"
	"github.com/lhaig/tagless/internal/tagged"
)

// Backend is the interface that all expression backends implement.
type Backend interface {
	// Name returns the target name (e.g., "eval", "display", "c")
	Name() string
	// Generate interprets a program and returns the output text.
	Generate(p *Program, opts cbe.Options) (string, error)
}

// Builder is a program instantiated for one backend's carrier type.
type Builder[V any] func(expr.Interp[V]) repr.Repr[V, expr.Program[int32]]

// Program is a named expression program. Go cannot store a generic
// function as a value, so each instantiation is kept separately; they
// must all come from the same generic definition.
type Program struct {
	Name        string
	Description string
	Eval        Builder[evalbe.Value]
	Display     Builder[string]
	C           Builder[cbe.Gen]
	// Tagged is the same program as a tagged tree, for the baseline
	// interpreter.
	Tagged func() tagged.Node
}
