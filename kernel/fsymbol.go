package kernel

import (
	"github.com/anyonkit/braidrep/algebra"
	"github.com/anyonkit/braidrep/fusion"
)

// FSymbol returns the recoupling coefficient F(a,b,c;d)_{x,y}, applying the
// structural shortcuts before consulting the ring: zero when any of the four
// couplings is inadmissible, and 0/1 when one of the first three labels is
// the identity object.
func FSymbol(r fusion.Ring, a, b, c, d, x, y fusion.Object) algebra.Value {
	f := r.ScalarField()
	if r.Multiplicity(a, b, x) == 0 || r.Multiplicity(x, c, d) == 0 ||
		r.Multiplicity(b, c, y) == 0 || r.Multiplicity(a, y, d) == 0 {
		return algebra.Zero(f)
	}
	one := r.One()
	switch {
	case a == one:
		if x == b && y == d {
			return algebra.One(f)
		}
		return algebra.Zero(f)
	case b == one:
		if x == a && y == c {
			return algebra.One(f)
		}
		return algebra.Zero(f)
	case c == one:
		if x == d && y == b {
			return algebra.One(f)
		}
		return algebra.Zero(f)
	}
	return r.Recoupling(a, b, c, d, x, y)
}
