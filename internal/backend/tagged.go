package backend

import (
	"fmt"

	"github.com/lhaig/tagless/internal/cbe"
)

// TaggedBackend evaluates the program's tagged tree.
type TaggedBackend struct{}

// Name returns the backend name.
func (b *TaggedBackend) Name() string {
	return "tagged"
}

// Generate returns the value of the tagged tree.
func (b *TaggedBackend) Generate(p *Program, _ cbe.Options) (string, error) {
	if p.Tagged == nil {
		return "", fmt.Errorf("program %s has no tagged form", p.Name)
	}
	return p.Tagged().Eval().String(), nil
}
