// Package repr holds the typed wrapper shared by the term contracts.
//
// A backend works on one carrier type V for every term it builds. Repr
// pairs that carrier with a phantom semantic type T so the generic
// builders can reject ill-typed terms at compile time, even though the
// backend itself never sees T.
package repr

// Repr is the representation of a term of semantic type T under a
// backend whose carrier type is V.
type Repr[V, T any] struct {
	carrier V
}

// Of wraps a carrier value as a term of semantic type T. Only term
// builders should call this; doing so elsewhere bypasses type checking.
func Of[T, V any](v V) Repr[V, T] {
	return Repr[V, T]{carrier: v}
}

// Carrier returns the backend value behind the term.
func (r Repr[V, T]) Carrier() V {
	return r.carrier
}
