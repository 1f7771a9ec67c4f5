package lambda

import "github.com/lhaig/tagless/internal/repr"

// Length measures terms. Every representation is a count: a bound
// variable counts as 0, and each abstraction or application adds 1 to
// the sizes of its parts.
type Length struct{}

var _ Form[uint64] = Length{}

func (Length) Lam(body func(uint64) uint64) uint64 { return body(0) + 1 }

func (Length) Appl(f, x uint64) uint64 { return f + x + 1 }

// Size returns the measured size of a term.
func Size[T any](r repr.Repr[uint64, T]) uint64 {
	return r.Carrier()
}
