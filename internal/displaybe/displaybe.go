// Package displaybe renders expression terms as source-like text for
// people to read. The output is not meant to be parsed back.
package displaybe

import (
	"fmt"
	"strconv"

	"github.com/lhaig/tagless/internal/expr"
	"github.com/lhaig/tagless/internal/repr"
)

// Interp is the rendering backend. Every term is carried as a string.
type Interp struct{}

var _ expr.Interp[string] = Interp{}

func (Interp) Bool(b bool) string { return strconv.FormatBool(b) }

func (Interp) Int(n int32) string { return strconv.FormatInt(int64(n), 10) }

func (Interp) Add(a, b string) string {
	return fmt.Sprintf("(%s) + (%s)", a, b)
}

func (Interp) If(c, a, b string) string {
	return fmt.Sprintf("if (%s) then { %s } else { %s }", c, a, b)
}

func (Interp) Ast(term string) string { return term }

// Render returns the text of a term.
func Render[T any](r repr.Repr[string, T]) string {
	return r.Carrier()
}
