package kernel

import (
	"context"

	"github.com/anyonkit/braidrep/fusion"
)

// DiagParams identifies the diagonal generator sigma_{2j+1}.
type DiagParams struct {
	J        int
	A, B     fusion.Object
	NStrands int
}

// Diagonal emits worker childID's slice of the odd-indexed generator
// sigma_{2J+1}, which is diagonal in the computational basis: entry (i,i) is
// the braiding eigenvalue R(a,a,x) for x the J-th top label of basis element
// i. The row counter carries the same modulo partition as the other kernels.
func Diagonal(ctx context.Context, r fusion.Ring, childID, nProc int, p DiagParams, emit EmitFunc) error {
	if nProc < 1 || childID < 0 || childID >= nProc {
		return ErrChildRange
	}
	if err := fusion.Diag(p.J, p.A, p.B, p.NStrands).Validate(); err != nil {
		return err
	}

	basis := r.ComputationalBasis(p.A, p.B, p.NStrands)
	ctr := -1
	for i, elt := range basis {
		if err := ctx.Err(); err != nil {
			return err
		}
		ctr++
		if ctr%nProc != childID {
			continue
		}
		if err := emit(i, i, r.BraidingEigenvalue(p.A, p.A, elt[p.J])); err != nil {
			return err
		}
	}
	return nil
}
