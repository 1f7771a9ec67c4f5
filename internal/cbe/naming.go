package cbe

import (
	"fmt"
	"math/bits"
)

// Naming selects how child indices are derived during generation.
type Naming int

const (
	// Exponent raises the parent index to coprime powers: i^2 and i^3
	// for the operands of an addition, i^5, i^7 and i^11 for the parts of
	// a conditional.
	Exponent Naming = iota
	// Sequential hands out consecutive indices from a counter that lives
	// for one generation. It never repeats an index.
	Sequential
)

// String returns the flag spelling of the naming scheme.
func (n Naming) String() string {
	switch n {
	case Exponent:
		return "exponent"
	case Sequential:
		return "sequential"
	default:
		return "unknown"
	}
}

// ParseNaming maps a flag value to a Naming.
func ParseNaming(s string) (Naming, error) {
	switch s {
	case "exponent":
		return Exponent, nil
	case "sequential":
		return Sequential, nil
	default:
		return 0, fmt.Errorf("unknown naming scheme: %s", s)
	}
}

// Scheme derives the indices of a node's children from the node's own
// index. Leaves use their index directly and never call it.
type Scheme interface {
	Children(i uint64, n int) ([]uint64, error)
}

// NewScheme returns a Scheme for a generation rooted at start.
func NewScheme(n Naming, start uint64) Scheme {
	switch n {
	case Sequential:
		return &sequentialScheme{next: start + 1}
	default:
		return exponentScheme{}
	}
}

var childExponents = map[int][]uint64{
	2: {2, 3},
	3: {5, 7, 11},
}

type exponentScheme struct{}

func (exponentScheme) Children(i uint64, n int) ([]uint64, error) {
	exps, ok := childExponents[n]
	if !ok {
		panic(fmt.Sprintf("cbe: no exponents for %d children", n))
	}
	out := make([]uint64, len(exps))
	for k, e := range exps {
		p, err := pow(i, e)
		if err != nil {
			return nil, err
		}
		out[k] = p
	}
	return out, nil
}

type sequentialScheme struct {
	next uint64
}

func (s *sequentialScheme) Children(_ uint64, n int) ([]uint64, error) {
	out := make([]uint64, n)
	for k := range out {
		if s.next == 0 {
			return nil, fmt.Errorf("%w: counter exhausted", ErrIndexOverflow)
		}
		out[k] = s.next
		s.next++
	}
	return out, nil
}

// pow computes base^exp, failing instead of wrapping around.
func pow(base, exp uint64) (uint64, error) {
	result := uint64(1)
	for k := uint64(0); k < exp; k++ {
		hi, lo := bits.Mul64(result, base)
		if hi != 0 {
			return 0, fmt.Errorf("%w: %d^%d", ErrIndexOverflow, base, exp)
		}
		result = lo
	}
	return result, nil
}
