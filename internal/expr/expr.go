// Package expr defines the boolean/integer expression language as a
// contract that any backend can interpret.
//
// Terms are written once as generic functions over an Interp and then
// instantiated per backend. The typed builders in this package accept and
// return repr.Repr values, so a term that adds a boolean or mixes branch
// types is rejected by the Go compiler before any backend runs.
package expr

import "github.com/lhaig/tagless/internal/repr"

// Program marks a term of type T that has been finalized with Ast.
type Program[T any] struct {
	Value T
}

// Interp is implemented by every expression backend. All terms share the
// carrier type V; the semantic type lives in the typed builders below.
type Interp[V any] interface {
	Bool(b bool) V
	Int(n int32) V
	Add(a, b V) V
	If(c, a, b V) V
	Ast(term V) V
}

// Bool builds a boolean literal.
func Bool[V any](in Interp[V], b bool) repr.Repr[V, bool] {
	return repr.Of[bool](in.Bool(b))
}

// Int builds an integer literal.
func Int[V any](in Interp[V], n int32) repr.Repr[V, int32] {
	return repr.Of[int32](in.Int(n))
}

// Add builds the sum of two integer terms.
func Add[V any](in Interp[V], a, b repr.Repr[V, int32]) repr.Repr[V, int32] {
	return repr.Of[int32](in.Add(a.Carrier(), b.Carrier()))
}

// If builds a conditional. Both branches must have the same type.
func If[V, T any](in Interp[V], c repr.Repr[V, bool], a, b repr.Repr[V, T]) repr.Repr[V, T] {
	return repr.Of[T](in.If(c.Carrier(), a.Carrier(), b.Carrier()))
}

// Ast finalizes term as a whole program.
func Ast[V, T any](in Interp[V], term repr.Repr[V, T]) repr.Repr[V, Program[T]] {
	return repr.Of[Program[T]](in.Ast(term.Carrier()))
}
