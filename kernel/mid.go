package kernel

import (
	"context"
	"errors"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/anyonkit/braidrep/algebra"
	"github.com/anyonkit/braidrep/fusion"
)

// ErrChildRange is returned when a worker's child id does not lie in
// [0, nProc).
var ErrChildRange = errors.New("kernel: child id must lie in [0, n_proc)")

// EmitFunc receives one sparse generator-matrix entry. Row and column are
// dense basis indices.
type EmitFunc func(row, col int, v algebra.Value) error

// MidParams identifies one mid-generator matrix.
type MidParams struct {
	K        int
	A, B     fusion.Object
	NStrands int
}

// MidGenerator emits worker childID's slice of the nonzero entries of the
// mid generator with pair index K.
//
// For every row index and every ordered triple (f,e,q) of basis objects, a
// global counter advances; the combination is handled only when
// counter mod nProc == childID. The candidate column is the row's label
// tuple with the pair positions overwritten by (f,e) and, for K > 1, the
// level position by q; candidates outside the computational basis are
// skipped. When K == 1 the q dimension is redundant and repeated (row,col)
// pairs are deduplicated per worker.
func MidGenerator(ctx context.Context, r fusion.Ring, cache *Cache, childID, nProc int, p MidParams, emit EmitFunc) error {
	if nProc < 1 || childID < 0 || childID >= nProc {
		return ErrChildRange
	}
	if err := fusion.Mid(p.K, p.A, p.B, p.NStrands).Validate(); err != nil {
		return err
	}

	basis := r.ComputationalBasis(p.A, p.B, p.NStrands)
	idx := fusion.NewBasisIndex(basis)
	objs := r.Basis()
	half := p.NStrands / 2

	field := r.ScalarField()
	seen := roaring64.New()
	ctr := -1
	for i, rowElt := range basis {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, f := range objs {
			for _, e := range objs {
				for _, q := range objs {
					ctr++
					if ctr%nProc != childID {
						continue
					}

					nnz := rowElt.Clone()
					nnz[p.K-1], nnz[p.K] = f, e
					if p.K > 1 {
						nnz[half+p.K-2] = q
					}
					j, ok := idx.Lookup(nnz)
					if !ok {
						continue
					}

					m, l := rowElt[:half], rowElt[half:]
					root := p.B
					if p.K-1 < len(l) {
						root = l[p.K-1]
					}

					if p.K == 1 {
						// q is a don't-care dimension here: the same
						// (row,col) pair comes around once per basis object.
						key := uint64(j)<<32 | uint64(uint32(i))
						if seen.Contains(key) {
							continue
						}
						entry := cache.Mid(r, [2]fusion.Object{m[0], m[1]}, [2]fusion.Object{f, e}, p.A, root)
						seen.Add(key)
						if err := emit(j, i, entry); err != nil {
							return err
						}
						continue
					}

					topLeft := m[0]
					if p.K >= 3 {
						topLeft = l[p.K-3]
					}
					entry := algebra.Zero(field)
					for _, pp := range objs {
						fLeft := FSymbol(r, topLeft, m[p.K-1], m[p.K], root, l[p.K-2], pp)
						if fLeft.IsZero() {
							continue
						}
						fRight := FSymbol(r, topLeft, f, e, root, q, pp)
						if fRight.IsZero() {
							continue
						}
						mid := cache.Mid(r, [2]fusion.Object{m[p.K-1], m[p.K]}, [2]fusion.Object{f, e}, p.A, pp)
						entry = entry.Add(fLeft.Mul(mid).Mul(fRight))
					}
					if err := emit(j, i, entry); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}
