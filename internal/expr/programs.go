package expr

import "github.com/lhaig/tagless/internal/repr"

// NestedIf is the program
//
//	if (if false then false else true) then 10 + 1 else -1
//
// which evaluates to 11.
func NestedIf[V any](in Interp[V]) repr.Repr[V, Program[int32]] {
	return Ast(in, If(in,
		If(in, Bool(in, false), Bool(in, false), Bool(in, true)),
		Add(in, Int(in, 10), Int(in, 1)),
		Int(in, -1),
	))
}

// Arith is the program (1 + 2) + (3 + 4).
func Arith[V any](in Interp[V]) repr.Repr[V, Program[int32]] {
	return Ast(in, Add(in,
		Add(in, Int(in, 1), Int(in, 2)),
		Add(in, Int(in, 3), Int(in, 4)),
	))
}

// Select is the program if true then 40 + 2 else 0.
func Select[V any](in Interp[V]) repr.Repr[V, Program[int32]] {
	return Ast(in, If(in, Bool(in, true), Add(in, Int(in, 40), Int(in, 2)), Int(in, 0)))
}

// SumChain builds 1 + (2 + (3 + ... + n)), nesting to the right. n must be
// at least 1.
func SumChain[V any](in Interp[V], n int32) repr.Repr[V, int32] {
	term := Int(in, n)
	for k := n - 1; k >= 1; k-- {
		term = Add(in, Int(in, k), term)
	}
	return term
}

// IfChain builds depth nested conditionals in the else branch:
// if c then 1 else (if c then 2 else (... else 0)) where c alternates
// between false and true.
func IfChain[V any](in Interp[V], depth int) repr.Repr[V, int32] {
	term := Int(in, 0)
	for k := depth; k >= 1; k-- {
		term = If(in, Bool(in, k%2 == 0), Int(in, int32(k)), term)
	}
	return term
}
