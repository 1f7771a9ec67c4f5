package backend

import (
	"strconv"

	"github.com/lhaig/tagless/internal/cbe"
	"github.com/lhaig/tagless/internal/evalbe"
)

// EvalBackend computes the program's value.
type EvalBackend struct{}

// Name returns the backend name.
func (b *EvalBackend) Name() string {
	return "eval"
}

// Generate returns the program's value in decimal.
func (b *EvalBackend) Generate(p *Program, _ cbe.Options) (string, error) {
	v := evalbe.RunProgram(p.Eval(evalbe.Interp{}))
	return strconv.FormatInt(int64(v), 10), nil
}
