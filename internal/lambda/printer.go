package lambda

import (
	"fmt"

	"github.com/lhaig/tagless/internal/repr"
)

// Doc renders a term given the number of enclosing binders.
type Doc func(depth int) string

// Printer renders terms as text, naming binders x0, x1, ... by depth.
type Printer struct{}

var _ Form[Doc] = Printer{}

func (Printer) Lam(body func(Doc) Doc) Doc {
	return func(depth int) string {
		name := fmt.Sprintf("x%d", depth)
		inner := body(func(int) string { return name })
		return fmt.Sprintf("\\%s. %s", name, inner(depth+1))
	}
}

func (Printer) Appl(f, x Doc) Doc {
	return func(depth int) string {
		return fmt.Sprintf("(%s) (%s)", f(depth), x(depth))
	}
}

// Print returns the text of a term.
func Print[T any](r repr.Repr[Doc, T]) string {
	return r.Carrier()(0)
}
