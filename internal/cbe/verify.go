package cbe

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

var declPattern = regexp.MustCompile(`(?m)^(?:bool|int) ([a-z]+)(?: = [^;\n]*)?;$`)

// CollisionError reports identifiers declared more than once in one
// generated program.
type CollisionError struct {
	Idents []string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("identifier collision: %s declared more than once", strings.Join(e.Idents, ", "))
}

// Declarations lists the variables declared by generated code, in the
// order they are declared.
func Declarations(code string) []string {
	return lo.Map(declPattern.FindAllStringSubmatch(code, -1), func(m []string, _ int) string {
		return m[1]
	})
}

// CheckDeclarations returns a *CollisionError if code declares any name
// twice.
func CheckDeclarations(code string) error {
	dups := lo.FindDuplicates(Declarations(code))
	if len(dups) > 0 {
		return &CollisionError{Idents: dups}
	}
	return nil
}
