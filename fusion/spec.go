package fusion

import (
	"errors"
	"fmt"
)

var (
	// ErrStrandCount is returned for strand counts below 3, where the
	// fusion-tree basis is not defined.
	ErrStrandCount = errors.New("fusion: generator requires at least 3 strands")
	// ErrGeneratorIndex is returned when a generator's pair index lies
	// outside the braid group on NStrands strands.
	ErrGeneratorIndex = errors.New("fusion: generator index out of range")
	// ErrEvenStrands is returned when the odd-one-out generator is requested
	// for an even strand count.
	ErrEvenStrands = errors.New("fusion: odd-one-out generator requires an odd strand count")
	// ErrUnknownKind is returned for an unrecognized generator kind.
	ErrUnknownKind = errors.New("fusion: unknown generator kind")
)

// GeneratorKind discriminates the braid-generator variants.
type GeneratorKind uint8

const (
	// MidGenerator is an even-indexed generator sigma_2k, braiding the two
	// strands between leaf pairs k and k+1.
	MidGenerator GeneratorKind = iota + 1
	// OddOneOut is the rightmost generator when the strand count is odd.
	OddOneOut
	// DiagonalGenerator is an odd-indexed generator sigma_{2j+1}, diagonal
	// in the computational basis.
	DiagonalGenerator
)

func (k GeneratorKind) String() string {
	switch k {
	case MidGenerator:
		return "mid"
	case OddOneOut:
		return "odd-one-out"
	case DiagonalGenerator:
		return "diagonal"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// GeneratorSpec identifies exactly one braid-generator matrix: the kind, the
// pair index (K for mid generators, the 0-based leaf-pair index J for
// diagonal ones), the fusing anyon A, the total charge B and the strand
// count.
type GeneratorSpec struct {
	Kind     GeneratorKind
	K        int
	A, B     Object
	NStrands int
}

// Mid specifies the mid generator with pair index k (1-based).
func Mid(k int, a, b Object, nStrands int) GeneratorSpec {
	return GeneratorSpec{Kind: MidGenerator, K: k, A: a, B: b, NStrands: nStrands}
}

// Odd specifies the odd-one-out generator.
func Odd(a, b Object, nStrands int) GeneratorSpec {
	return GeneratorSpec{Kind: OddOneOut, A: a, B: b, NStrands: nStrands}
}

// Diag specifies the diagonal generator sigma_{2j+1}, j 0-based.
func Diag(j int, a, b Object, nStrands int) GeneratorSpec {
	return GeneratorSpec{Kind: DiagonalGenerator, K: j, A: a, B: b, NStrands: nStrands}
}

// Validate checks the generator identification for internal consistency.
func (s GeneratorSpec) Validate() error {
	if s.NStrands < 3 {
		return ErrStrandCount
	}
	switch s.Kind {
	case MidGenerator:
		if s.NStrands < 4 || s.K < 1 || s.K > s.NStrands/2-1 {
			return ErrGeneratorIndex
		}
	case OddOneOut:
		if s.NStrands%2 == 0 {
			return ErrEvenStrands
		}
	case DiagonalGenerator:
		if s.K < 0 || s.K >= s.NStrands/2 {
			return ErrGeneratorIndex
		}
	default:
		return ErrUnknownKind
	}
	return nil
}

func (s GeneratorSpec) String() string {
	return fmt.Sprintf("%s{k=%d a=%d b=%d strands=%d}", s.Kind, s.K, s.A, s.B, s.NStrands)
}
