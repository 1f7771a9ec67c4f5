// Package evalbe interprets expression terms by computing their values
// directly.
package evalbe

import (
	"fmt"

	"github.com/lhaig/tagless/internal/expr"
	"github.com/lhaig/tagless/internal/repr"
)

// Value is the carrier of the evaluator: the plain Go value of the term.
type Value = any

// Interp is the evaluating backend. It holds no state.
type Interp struct{}

var _ expr.Interp[Value] = Interp{}

func (Interp) Bool(b bool) Value { return b }

func (Interp) Int(n int32) Value { return n }

func (Interp) Add(a, b Value) Value {
	return asInt(a) + asInt(b)
}

func (Interp) If(c, a, b Value) Value {
	cond, ok := c.(bool)
	if !ok {
		panic(fmt.Sprintf("evalbe: condition must be a bool, got %T", c))
	}
	if cond {
		return a
	}
	return b
}

// Ast is the identity: an evaluated program is its value.
func (Interp) Ast(term Value) Value { return term }

// Run returns the value of a term.
func Run[T any](r repr.Repr[Value, T]) T {
	v, ok := r.Carrier().(T)
	if !ok {
		var want T
		panic(fmt.Sprintf("evalbe: term carries %T, expected %T", r.Carrier(), want))
	}
	return v
}

// RunProgram returns the value computed by a finalized program.
func RunProgram[T any](r repr.Repr[Value, expr.Program[T]]) T {
	return Run(repr.Of[T](r.Carrier()))
}

func asInt(v Value) int32 {
	n, ok := v.(int32)
	if !ok {
		panic(fmt.Sprintf("evalbe: can only add ints, got %T", v))
	}
	return n
}
