// Package ising implements the Ising fusion category with its recoupling
// data fully pinned over the cyclotomic field QQ(zeta_16): three simple
// objects (vacuum, sigma, psi), orthogonal F-matrices and the standard
// R-matrix eigenvalues. It is the canonical small example producing field
// scalars rather than formal unknowns.
package ising

import (
	"math/big"

	"github.com/anyonkit/braidrep/algebra"
	"github.com/anyonkit/braidrep/fusion"
)

// Simple object labels.
const (
	Vacuum fusion.Object = 0
	Sigma  fusion.Object = 1
	Psi    fusion.Object = 2
)

// Ring is the Ising fusion ring.
type Ring struct {
	field *algebra.CyclotomicField
	basis []fusion.Object

	one      algebra.Value
	minusOne algebra.Value
	invSqrt2 algebra.Value // (zeta^2 - zeta^6)/2
	rVacuum  algebra.Value // R(sigma,sigma,vacuum) = zeta^-1
	rPsi     algebra.Value // R(sigma,sigma,psi) = zeta^3
	rSigma   algebra.Value // R(sigma,psi,sigma) = -zeta^4 = -i
}

// New constructs the ring with its exact QQ(zeta_16) data.
func New() *Ring {
	f := algebra.Cyclotomic(16)
	half := f.FromRat(big.NewRat(1, 2))
	sqrt2 := f.Root(2).Add(f.Root(6).Neg()) // zeta^2 - zeta^6
	return &Ring{
		field:    f,
		basis:    []fusion.Object{Vacuum, Sigma, Psi},
		one:      algebra.One(f),
		minusOne: algebra.FromScalar(f.One().Neg()),
		invSqrt2: algebra.FromScalar(sqrt2.Mul(half)),
		rVacuum:  algebra.FromScalar(f.Root(-1)),
		rPsi:     algebra.FromScalar(f.Root(3)),
		rSigma:   algebra.FromScalar(f.Root(4).Neg()),
	}
}

func (r *Ring) Basis() []fusion.Object { return r.basis }

func (r *Ring) One() fusion.Object { return Vacuum }

// Multiplicity implements the Ising fusion rules: sigma x sigma = 1 + psi,
// sigma x psi = sigma, psi x psi = 1, fully symmetric in all three slots.
func (r *Ring) Multiplicity(i, j, k fusion.Object) int {
	sigmas, psis := 0, 0
	for _, o := range [3]fusion.Object{i, j, k} {
		switch o {
		case Sigma:
			sigmas++
		case Psi:
			psis++
		}
	}
	switch sigmas {
	case 0:
		if psis%2 == 0 {
			return 1
		}
	case 2:
		return 1
	}
	return 0
}

func (r *Ring) ComputationalBasis(a, b fusion.Object, nStrands int) []fusion.Labels {
	return fusion.EnumerateBasis(r, a, b, nStrands)
}

func (r *Ring) ScalarField() algebra.Field { return r.field }

// Recoupling returns the pinned F-symbols: the sigma-sigma-sigma-sigma
// matrix (1/sqrt2)[[1,1],[1,-1]] over internal labels {vacuum,psi}, the two
// -1 symbols with alternating sigma/psi externals, and 1 for every other
// admissible tuple.
func (r *Ring) Recoupling(a, b, c, d, x, y fusion.Object) algebra.Value {
	if r.Multiplicity(a, b, x) == 0 || r.Multiplicity(x, c, d) == 0 ||
		r.Multiplicity(b, c, y) == 0 || r.Multiplicity(a, y, d) == 0 {
		return algebra.Zero(r.field)
	}
	if a == Sigma && b == Sigma && c == Sigma && d == Sigma {
		if x == Psi && y == Psi {
			return algebra.FromScalar(r.invSqrt2.Scalar().Neg())
		}
		return r.invSqrt2
	}
	if (a == Sigma && b == Psi && c == Sigma && d == Psi) ||
		(a == Psi && b == Sigma && c == Psi && d == Sigma) {
		return r.minusOne
	}
	return r.one
}

// BraidingEigenvalue returns the standard Ising R-symbols.
func (r *Ring) BraidingEigenvalue(i, j, k fusion.Object) algebra.Value {
	if r.Multiplicity(i, j, k) == 0 {
		return algebra.Zero(r.field)
	}
	switch {
	case i == Sigma && j == Sigma && k == Vacuum:
		return r.rVacuum
	case i == Sigma && j == Sigma && k == Psi:
		return r.rPsi
	case i == Psi && j == Psi && k == Vacuum:
		return r.minusOne
	case (i == Sigma && j == Psi) || (i == Psi && j == Sigma):
		return r.rSigma
	}
	return r.one
}
