package backend

import "github.com/lhaig/tagless/internal/cbe"

// CBackend wraps cbe as a Backend implementation.
type CBackend struct{}

// Name returns the backend name.
func (b *CBackend) Name() string {
	return "c"
}

// Generate produces C source for the program.
func (b *CBackend) Generate(p *Program, opts cbe.Options) (string, error) {
	return cbe.Generate(p.C(cbe.Interp{}), opts)
}
