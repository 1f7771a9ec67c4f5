// Package cbe generates C source from expression terms.
//
// A term's carrier is a deferred generator. Nothing is emitted until the
// finished program is called with a naming Scheme and a starting index;
// each node then names its own variable after its index and hands derived
// indices to its children. Children are emitted before the statement that
// uses them, so every variable is declared before it is read.
package cbe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lhaig/tagless/internal/expr"
	"github.com/lhaig/tagless/internal/ident"
	"github.com/lhaig/tagless/internal/repr"
)

var (
	// ErrInvalidStart is returned when generation starts at index 0,
	// which has no identifier.
	ErrInvalidStart = errors.New("start index must be positive")
	// ErrIndexOverflow is returned when a derived index does not fit in
	// 64 bits.
	ErrIndexOverflow = errors.New("identifier index overflows uint64")
)

// Fragment is the output of one node: the statements it emits, including
// those of its children, and the variable holding its value.
type Fragment struct {
	Code  string
	Ident string
}

// Gen is the carrier of the C backend.
type Gen func(s Scheme, i uint64) (Fragment, error)

// Options configure a generation.
type Options struct {
	Start  uint64
	Naming Naming
}

// DefaultOptions starts at index 2 with the exponent scheme.
func DefaultOptions() Options {
	return Options{Start: 2, Naming: Exponent}
}

// Interp is the C generating backend.
type Interp struct{}

var _ expr.Interp[Gen] = Interp{}

func (Interp) Bool(b bool) Gen {
	return func(_ Scheme, i uint64) (Fragment, error) {
		id := ident.NameOf(i)
		return Fragment{Code: fmt.Sprintf("bool %s = %t;\n", id, b), Ident: id}, nil
	}
}

func (Interp) Int(n int32) Gen {
	return func(_ Scheme, i uint64) (Fragment, error) {
		id := ident.NameOf(i)
		return Fragment{Code: fmt.Sprintf("int %s = %d;\n", id, n), Ident: id}, nil
	}
}

func (Interp) Add(a, b Gen) Gen {
	return func(s Scheme, i uint64) (Fragment, error) {
		parts, err := children(s, i, a, b)
		if err != nil {
			return Fragment{}, err
		}
		id := ident.NameOf(i)
		var sb strings.Builder
		sb.WriteString(parts[0].Code)
		sb.WriteString(parts[1].Code)
		fmt.Fprintf(&sb, "int %s = %s + %s;\n", id, parts[0].Ident, parts[1].Ident)
		return Fragment{Code: sb.String(), Ident: id}, nil
	}
}

// If emits code for both branches; the condition is only known when the
// generated program runs.
func (Interp) If(c, a, b Gen) Gen {
	return func(s Scheme, i uint64) (Fragment, error) {
		parts, err := children(s, i, c, a, b)
		if err != nil {
			return Fragment{}, err
		}
		cond, then, els := parts[0], parts[1], parts[2]
		id := ident.NameOf(i)
		var sb strings.Builder
		sb.WriteString(cond.Code)
		fmt.Fprintf(&sb, "int %s;\n", id)
		fmt.Fprintf(&sb, "if (%s) {\n", cond.Ident)
		sb.WriteString(then.Code)
		fmt.Fprintf(&sb, "%s = %s;\n", id, then.Ident)
		sb.WriteString("} else {\n")
		sb.WriteString(els.Code)
		fmt.Fprintf(&sb, "%s = %s;\n", id, els.Ident)
		sb.WriteString("}\n")
		return Fragment{Code: sb.String(), Ident: id}, nil
	}
}

// Ast wraps the term in a main function that prints its value. The
// result is printed with %d, so the program should be integer-valued.
func (Interp) Ast(term Gen) Gen {
	return func(s Scheme, i uint64) (Fragment, error) {
		body, err := term(s, i)
		if err != nil {
			return Fragment{}, err
		}
		var sb strings.Builder
		sb.WriteString("#include <stdbool.h>\n")
		sb.WriteString("#include <stdio.h>\n")
		sb.WriteString("int main() {\n")
		sb.WriteString(body.Code)
		fmt.Fprintf(&sb, "printf(\"%%d\\n\", %s);\n", body.Ident)
		sb.WriteString("return 0;\n")
		sb.WriteString("}")
		return Fragment{Code: sb.String()}, nil
	}
}

// Generate emits the C translation unit for a finished program. It fails
// if an index overflows or if two declarations share a name.
func Generate[T any](prog repr.Repr[Gen, expr.Program[T]], opts Options) (string, error) {
	frag, err := Emit(repr.Of[T](prog.Carrier()), opts)
	if err != nil {
		return "", err
	}
	if err := CheckDeclarations(frag.Code); err != nil {
		return "", err
	}
	return frag.Code, nil
}

// Emit runs the generator of any term without checking for collisions.
func Emit[T any](r repr.Repr[Gen, T], opts Options) (Fragment, error) {
	if opts.Start == 0 {
		return Fragment{}, ErrInvalidStart
	}
	frag, err := r.Carrier()(NewScheme(opts.Naming, opts.Start), opts.Start)
	if err != nil {
		return Fragment{}, fmt.Errorf("generating C: %w", err)
	}
	return frag, nil
}

// children generates each part at the indices the scheme derives from i,
// in order.
func children(s Scheme, i uint64, parts ...Gen) ([]Fragment, error) {
	idx, err := s.Children(i, len(parts))
	if err != nil {
		return nil, err
	}
	out := make([]Fragment, len(parts))
	for k, g := range parts {
		frag, err := g(s, idx[k])
		if err != nil {
			return nil, err
		}
		out[k] = frag
	}
	return out, nil
}
