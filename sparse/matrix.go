// Package sparse holds the assembled braid-generator matrix: a square sparse
// matrix of algebraic values with its dimension and basis index, plus the
// small amount of matrix arithmetic needed to state representation
// properties such as unitarity.
package sparse

import (
	"errors"
	"fmt"

	"github.com/anyonkit/braidrep/algebra"
	"github.com/anyonkit/braidrep/fusion"
)

// ErrPolynomialMatrix is returned by operations that require pinned scalar
// entries, such as conjugate transposition.
var ErrPolynomialMatrix = errors.New("sparse: operation requires scalar entries")

// Entry is one nonzero (or structurally emitted) position of a generator
// matrix.
type Entry struct {
	Row, Col int
	Value    algebra.Value
}

// Matrix is a square sparse matrix of algebraic values. Entries keep their
// insertion order; setting an occupied position overwrites it in place.
type Matrix struct {
	dim     int
	field   algebra.Field
	entries []Entry
	byKey   map[uint64]int
	index   *fusion.BasisIndex
}

// New returns an empty dim x dim matrix over the given field. index may be
// nil when the basis bijection is not needed.
func New(dim int, field algebra.Field, index *fusion.BasisIndex) *Matrix {
	return &Matrix{
		dim:   dim,
		field: field,
		byKey: make(map[uint64]int),
		index: index,
	}
}

// Dim returns the matrix dimension.
func (m *Matrix) Dim() int { return m.dim }

// Field returns the scalar field of the entries.
func (m *Matrix) Field() algebra.Field { return m.field }

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int { return len(m.entries) }

// Entries returns the stored entries in insertion order. The slice is
// shared; callers must not mutate it.
func (m *Matrix) Entries() []Entry { return m.entries }

// Index returns the basis bijection the row/column indices refer to, or nil.
func (m *Matrix) Index() *fusion.BasisIndex { return m.index }

// Set stores v at (r, c), overwriting any previous value.
func (m *Matrix) Set(r, c int, v algebra.Value) error {
	if r < 0 || r >= m.dim || c < 0 || c >= m.dim {
		return fmt.Errorf("sparse: entry (%d,%d) outside %dx%d matrix", r, c, m.dim, m.dim)
	}
	k := posKey(r, c)
	if i, ok := m.byKey[k]; ok {
		m.entries[i].Value = v
		return nil
	}
	m.byKey[k] = len(m.entries)
	m.entries = append(m.entries, Entry{Row: r, Col: c, Value: v})
	return nil
}

// At returns the value stored at (r, c).
func (m *Matrix) At(r, c int) (algebra.Value, bool) {
	i, ok := m.byKey[posKey(r, c)]
	if !ok {
		return algebra.Value{}, false
	}
	return m.entries[i].Value, true
}

// Mul returns the matrix product m * o.
func (m *Matrix) Mul(o *Matrix) (*Matrix, error) {
	if m.dim != o.dim {
		return nil, fmt.Errorf("sparse: dimension mismatch %d vs %d", m.dim, o.dim)
	}
	byRow := make(map[int][]Entry)
	for _, e := range o.entries {
		byRow[e.Row] = append(byRow[e.Row], e)
	}
	out := New(m.dim, m.field, m.index)
	for _, a := range m.entries {
		for _, b := range byRow[a.Col] {
			prod := a.Value.Mul(b.Value)
			if prod.IsZero() {
				continue
			}
			if cur, ok := out.At(a.Row, b.Col); ok {
				prod = cur.Add(prod)
			}
			if err := out.Set(a.Row, b.Col, prod); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// ConjTranspose returns the conjugate transpose. Entries must be scalars.
func (m *Matrix) ConjTranspose() (*Matrix, error) {
	out := New(m.dim, m.field, m.index)
	for _, e := range m.entries {
		v, err := e.Value.Conj()
		if err != nil {
			return nil, ErrPolynomialMatrix
		}
		if err := out.Set(e.Col, e.Row, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// IsIdentity reports whether the matrix equals the identity: every stored
// off-diagonal entry is zero and every diagonal position holds one.
func (m *Matrix) IsIdentity() bool {
	one := algebra.One(m.field)
	onDiag := 0
	for _, e := range m.entries {
		if e.Row != e.Col {
			if !e.Value.IsZero() {
				return false
			}
			continue
		}
		if !e.Value.Equal(one) {
			return false
		}
		onDiag++
	}
	return onDiag == m.dim
}

func posKey(r, c int) uint64 {
	return uint64(uint32(r))<<32 | uint64(uint32(c))
}
