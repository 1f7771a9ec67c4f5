package compiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lhaig/tagless/internal/cbe"
	"github.com/lhaig/tagless/internal/diagnostic"
)

// Result holds the output of a compilation
type Result struct {
	Diagnostics *diagnostic.Diagnostics
	Output      string
}

// Compiler runs programs from a registry through the backends.
type Compiler struct {
	registry *ProgramRegistry
}

// New creates a compiler over the given registry.
func New(registry *ProgramRegistry) *Compiler {
	return &Compiler{registry: registry}
}

// Compile interprets the named program with the target's backend.
// Failures are reported as diagnostics rather than errors.
func (c *Compiler) Compile(name, target string, opts cbe.Options) *Result {
	res := &Result{Diagnostics: diagnostic.New()}

	prog, err := c.registry.Lookup(name)
	if err != nil {
		res.Diagnostics.Errorf("", "%s", err)
		return res
	}

	be, err := getBackend(target)
	if err != nil {
		res.Diagnostics.ErrorWithHint("", err.Error(), "targets: "+strings.Join(Targets, ", "))
		return res
	}

	if target == "c" && opts.Start == 1 && opts.Naming == cbe.Exponent {
		res.Diagnostics.Warningf(target, "start index 1 gives every node the same name")
	}

	out, err := be.Generate(prog, opts)
	if err != nil {
		reportGenerateError(res.Diagnostics, target, err)
		return res
	}
	res.Output = out
	return res
}

func reportGenerateError(d *diagnostic.Diagnostics, target string, err error) {
	var collision *cbe.CollisionError
	switch {
	case errors.As(err, &collision):
		for _, id := range collision.Idents {
			d.ErrorWithHint(target, fmt.Sprintf("identifier %s declared more than once", id), "use --naming sequential")
		}
	case errors.Is(err, cbe.ErrIndexOverflow):
		d.ErrorWithHint(target, err.Error(), "use a smaller --start or --naming sequential")
	default:
		d.Errorf(target, "%s", err)
	}
}
