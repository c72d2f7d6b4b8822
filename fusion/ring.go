package fusion

import (
	"strings"

	"github.com/anyonkit/braidrep/algebra"
)

// Object labels a simple object of a fusion ring. Labels are opaque to the
// kernels: only equality matters. Rings conventionally label their basis
// with consecutive values starting at 0.
type Object int32

// Labels is an ordered tuple of internal edge labels of a fusion tree: one
// computational basis element. Treat values as immutable once produced by a
// ring; Clone before overwriting positions.
type Labels []Object

// Clone returns a fresh copy.
func (l Labels) Clone() Labels {
	return append(Labels(nil), l...)
}

// Equal reports element-wise equality.
func (l Labels) Equal(o Labels) bool {
	if len(l) != len(o) {
		return false
	}
	for i := range l {
		if l[i] != o[i] {
			return false
		}
	}
	return true
}

// Key packs the tuple into a map key.
func (l Labels) Key() string {
	b := make([]byte, 0, 4*len(l))
	for _, o := range l {
		b = append(b, byte(o), byte(o>>8), byte(o>>16), byte(o>>24))
	}
	return string(b)
}

func (l Labels) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, o := range l {
		if i > 0 {
			b.WriteByte(',')
		}
		writeInt(&b, int(o))
	}
	b.WriteByte(')')
	return b.String()
}

func writeInt(b *strings.Builder, n int) {
	if n < 0 {
		b.WriteByte('-')
		n = -n
	}
	if n >= 10 {
		writeInt(b, n/10)
	}
	b.WriteByte(byte('0' + n%10))
}

// Ring is the fusion-ring collaborator. Implementations must be safe for
// concurrent read access: one Ring instance is shared by all workers of a
// generator computation and must not be mutated while a computation runs.
//
// Basis and ComputationalBasis must return identical sequences across
// repeated calls with the same arguments: the deterministic work partition
// depends on it.
type Ring interface {
	// Basis enumerates the simple objects in a stable order.
	Basis() []Object
	// One returns the identity (vacuum) object.
	One() Object
	// Multiplicity returns the fusion multiplicity N(i,j,k), the number of
	// ways i and j fuse to k.
	Multiplicity(i, j, k Object) int
	// ComputationalBasis enumerates the fusion-tree basis for nStrands
	// leaves labelled a with total charge b.
	ComputationalBasis(a, b Object, nStrands int) []Labels
	// ScalarField identifies the field pinned recoupling data lives in.
	ScalarField() algebra.Field
	// Recoupling returns the F-matrix coefficient F(a,b,c;d)_{x,y}: a field
	// scalar when pinned, a polynomial in formal unknowns otherwise.
	Recoupling(a, b, c, d, x, y Object) algebra.Value
	// BraidingEigenvalue returns the R-matrix eigenvalue R(i,j;k).
	BraidingEigenvalue(i, j, k Object) algebra.Value
}
