// Package su2k implements the level-k sl2 (Verlinde) fusion ring with
// formal, unpinned recoupling data: Recoupling and BraidingEigenvalue return
// polynomials in formal unknowns rather than field scalars.
//
// Simple objects are labelled 0..k by weight (twice the spin), the identity
// is 0, and N(i,j,l) = 1 exactly when i+j+l is even, |i-j| <= l <= i+j and
// i+j+l <= 2k.
package su2k

import (
	"github.com/anyonkit/braidrep/algebra"
	"github.com/anyonkit/braidrep/fusion"
)

// Ring is the level-k sl2 fusion ring.
type Ring struct {
	level int
	basis []fusion.Object
	field algebra.Field

	// Deterministic formal-unknown tables, assigned at construction in
	// basis-enumeration order so every process sees the same indices.
	fvar  map[[6]fusion.Object]int
	rvar  map[[3]fusion.Object]int
	nvars int
}

// New constructs the level-k ring. Panics if level < 1.
func New(level int) *Ring {
	if level < 1 {
		panic("su2k: level must be at least 1")
	}
	r := &Ring{
		level: level,
		basis: make([]fusion.Object, level+1),
		field: algebra.QQ,
		fvar:  make(map[[6]fusion.Object]int),
		rvar:  make(map[[3]fusion.Object]int),
	}
	for i := range r.basis {
		r.basis[i] = fusion.Object(i)
	}
	r.assignUnknowns()
	return r
}

// assignUnknowns numbers every recoupling coefficient and braiding
// eigenvalue the kernels can ask for. Inadmissible or identity-determined
// coefficients get no unknown: the kernels resolve those structurally.
func (r *Ring) assignUnknowns() {
	for _, a := range r.basis {
		if a == r.One() {
			continue
		}
		for _, b := range r.basis {
			if b == r.One() {
				continue
			}
			for _, c := range r.basis {
				if c == r.One() {
					continue
				}
				for _, d := range r.basis {
					for _, x := range r.basis {
						if r.Multiplicity(a, b, x) == 0 || r.Multiplicity(x, c, d) == 0 {
							continue
						}
						for _, y := range r.basis {
							if r.Multiplicity(b, c, y) == 0 || r.Multiplicity(a, y, d) == 0 {
								continue
							}
							r.fvar[[6]fusion.Object{a, b, c, d, x, y}] = r.nvars
							r.nvars++
						}
					}
				}
			}
		}
	}
	for _, i := range r.basis {
		for _, j := range r.basis {
			for _, k := range r.basis {
				if r.Multiplicity(i, j, k) == 0 {
					continue
				}
				r.rvar[[3]fusion.Object{i, j, k}] = r.nvars
				r.nvars++
			}
		}
	}
}

// Level returns k.
func (r *Ring) Level() int { return r.level }

// Unknowns returns the number of formal unknowns the ring hands out.
func (r *Ring) Unknowns() int { return r.nvars }

func (r *Ring) Basis() []fusion.Object { return r.basis }

func (r *Ring) One() fusion.Object { return 0 }

func (r *Ring) Multiplicity(i, j, k fusion.Object) int {
	a, b, c := int(i), int(j), int(k)
	if (a+b+c)%2 != 0 {
		return 0
	}
	lo := a - b
	if lo < 0 {
		lo = -lo
	}
	if c < lo || c > a+b || a+b+c > 2*r.level {
		return 0
	}
	return 1
}

func (r *Ring) ComputationalBasis(a, b fusion.Object, nStrands int) []fusion.Labels {
	return fusion.EnumerateBasis(r, a, b, nStrands)
}

func (r *Ring) ScalarField() algebra.Field { return r.field }

func (r *Ring) Recoupling(a, b, c, d, x, y fusion.Object) algebra.Value {
	idx, ok := r.fvar[[6]fusion.Object{a, b, c, d, x, y}]
	if !ok {
		return algebra.Zero(r.field)
	}
	return algebra.FromPolynomial(algebra.Variable(r.field, idx))
}

func (r *Ring) BraidingEigenvalue(i, j, k fusion.Object) algebra.Value {
	idx, ok := r.rvar[[3]fusion.Object{i, j, k}]
	if !ok {
		return algebra.Zero(r.field)
	}
	return algebra.FromPolynomial(algebra.Variable(r.field, idx))
}
