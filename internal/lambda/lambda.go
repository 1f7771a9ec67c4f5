// Package lambda defines the untyped lambda calculus, with abstraction
// and application, as a contract that any backend can interpret.
//
// Abstractions are written in higher-order style: the body is a Go
// function from the bound variable's representation to the body's
// representation, so the same term can be run, measured or printed.
package lambda

import "github.com/lhaig/tagless/internal/repr"

// Fn is the semantic type of a function from A to B.
type Fn[A, B any] func(A) B

// Unit is the semantic type with a single value.
type Unit struct{}

// Form is implemented by every lambda-calculus backend.
type Form[V any] interface {
	Lam(body func(V) V) V
	Appl(f, x V) V
}

// Lam builds an abstraction.
func Lam[V, A, B any](f Form[V], body func(repr.Repr[V, A]) repr.Repr[V, B]) repr.Repr[V, Fn[A, B]] {
	return repr.Of[Fn[A, B]](f.Lam(func(x V) V {
		return body(repr.Of[A](x)).Carrier()
	}))
}

// Appl builds an application. The argument must match the function's
// domain.
func Appl[V, A, B any](f Form[V], fn repr.Repr[V, Fn[A, B]], x repr.Repr[V, A]) repr.Repr[V, B] {
	return repr.Of[B](f.Appl(fn.Carrier(), x.Carrier()))
}

// Identity builds \x. x at type A.
func Identity[V, A any](f Form[V]) repr.Repr[V, Fn[A, A]] {
	return Lam(f, func(x repr.Repr[V, A]) repr.Repr[V, A] { return x })
}

// IdApplyId applies the identity on functions to the identity on Unit.
func IdApplyId[V any](f Form[V]) repr.Repr[V, Fn[Unit, Unit]] {
	return Appl(f, Identity[V, Fn[Unit, Unit]](f), Identity[V, Unit](f))
}

// Twice builds \f. \x. f (f x).
func Twice[V, A any](f Form[V]) repr.Repr[V, Fn[Fn[A, A], Fn[A, A]]] {
	return Lam(f, func(g repr.Repr[V, Fn[A, A]]) repr.Repr[V, Fn[A, A]] {
		return Lam(f, func(x repr.Repr[V, A]) repr.Repr[V, A] {
			return Appl(f, g, Appl(f, g, x))
		})
	})
}
