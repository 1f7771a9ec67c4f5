package backend

import (
	"github.com/lhaig/tagless/internal/cbe"
	"github.com/lhaig/tagless/internal/displaybe"
)

// DisplayBackend renders the program as text.
type DisplayBackend struct{}

// Name returns the backend name.
func (b *DisplayBackend) Name() string {
	return "display"
}

// Generate returns the rendered program.
func (b *DisplayBackend) Generate(p *Program, _ cbe.Options) (string, error) {
	return displaybe.Render(p.Display(displaybe.Interp{})), nil
}
