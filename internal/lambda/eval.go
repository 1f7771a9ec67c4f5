package lambda

import (
	"fmt"

	"github.com/lhaig/tagless/internal/repr"
)

// Eval runs terms directly. An abstraction is carried as the Go function
// that implements it, and application calls it.
type Eval struct{}

var _ Form[any] = Eval{}

func (Eval) Lam(body func(any) any) any { return body }

func (Eval) Appl(f, x any) any {
	fn, ok := f.(func(any) any)
	if !ok {
		panic(fmt.Sprintf("lambda: cannot apply %T", f))
	}
	return fn(x)
}

// Call applies an evaluated function term to a Go value.
func Call[A, B any](r repr.Repr[any, Fn[A, B]], x A) B {
	v := Eval{}.Appl(r.Carrier(), x)
	out, ok := v.(B)
	if !ok {
		var want B
		panic(fmt.Sprintf("lambda: result is %T, expected %T", v, want))
	}
	return out
}
