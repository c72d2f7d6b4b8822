package kernel

import (
	"context"

	"github.com/anyonkit/braidrep/algebra"
	"github.com/anyonkit/braidrep/fusion"
)

// OddParams identifies the odd-one-out generator matrix for an odd strand
// count.
type OddParams struct {
	A, B     fusion.Object
	NStrands int
}

// OddOneOut emits worker childID's slice of the entries of the generator
// braiding the last two strands. The candidate space is the ordered pair
// (f,q) of basis objects; the partition discipline matches MidGenerator.
//
// For NStrands == 3 the q position does not exist and the enumeration
// revisits each (row,col) pair once per basis object, emitting identical
// values; the aggregator collapses them.
func OddOneOut(ctx context.Context, r fusion.Ring, cache *Cache, childID, nProc int, p OddParams, emit EmitFunc) error {
	if nProc < 1 || childID < 0 || childID >= nProc {
		return ErrChildRange
	}
	if err := fusion.Odd(p.A, p.B, p.NStrands).Validate(); err != nil {
		return err
	}

	basis := r.ComputationalBasis(p.A, p.B, p.NStrands)
	idx := fusion.NewBasisIndex(basis)
	objs := r.Basis()
	half := p.NStrands / 2

	field := r.ScalarField()
	ctr := -1
	for i, rowElt := range basis {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, f := range objs {
			for _, q := range objs {
				ctr++
				if ctr%nProc != childID {
					continue
				}

				nnz := rowElt.Clone()
				nnz[half-1] = f
				if p.NStrands > 3 {
					nnz[len(nnz)-1] = q
				}
				j, ok := idx.Lookup(nnz)
				if !ok {
					continue
				}

				m, l := rowElt[:half], rowElt[half:]

				if p.NStrands == 3 {
					entry := cache.Odd(r, m[len(m)-1], f, p.A, p.B)
					if err := emit(j, i, entry); err != nil {
						return err
					}
					continue
				}

				topLeft := m[0]
				if p.NStrands > 5 {
					topLeft = l[len(l)-2]
				}
				root := p.B
				entry := algebra.Zero(field)
				for _, pp := range objs {
					fLeft := FSymbol(r, topLeft, m[len(m)-1], p.A, root, l[len(l)-1], pp)
					if fLeft.IsZero() {
						continue
					}
					fRight := FSymbol(r, topLeft, f, p.A, root, q, pp)
					if fRight.IsZero() {
						continue
					}
					odd := cache.Odd(r, m[len(m)-1], f, p.A, pp)
					entry = entry.Add(fLeft.Mul(odd).Mul(fRight))
				}
				if err := emit(j, i, entry); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
