package algebra

import (
	"fmt"
	"math/big"
	"strings"
)

// CyclotomicField is the n-th cyclotomic field QQ(zeta_n). Elements are
// stored as coordinate vectors over the power basis
// 1, zeta, ..., zeta^(phi(n)-1), reduced modulo the n-th cyclotomic
// polynomial.
type CyclotomicField struct {
	n   int
	phi int
	// min holds the monic cyclotomic polynomial Phi_n, length phi+1,
	// min[i] = coefficient of x^i.
	min []*big.Rat
}

// Cyclotomic constructs QQ(zeta_n). Panics if n < 1.
func Cyclotomic(n int) *CyclotomicField {
	if n < 1 {
		panic(fmt.Sprintf("algebra: invalid cyclotomic order %d", n))
	}
	min := cyclotomicPoly(n, map[int][]*big.Rat{})
	return &CyclotomicField{n: n, phi: len(min) - 1, min: min}
}

// cyclotomicPoly computes Phi_n by dividing x^n - 1 by Phi_d for every
// proper divisor d of n. memo is shared across the recursion.
func cyclotomicPoly(n int, memo map[int][]*big.Rat) []*big.Rat {
	if p, ok := memo[n]; ok {
		return p
	}
	// x^n - 1
	p := ratZeros(n + 1)
	p[0] = big.NewRat(-1, 1)
	p[n] = big.NewRat(1, 1)
	for d := 1; d < n; d++ {
		if n%d == 0 {
			p = polyQuo(p, cyclotomicPoly(d, memo))
		}
	}
	memo[n] = p
	return p
}

func (f *CyclotomicField) Name() string { return fmt.Sprintf("QQ(zeta%d)", f.n) }

// Order returns n, the order of the root of unity generating the field.
func (f *CyclotomicField) Order() int { return f.n }

func (f *CyclotomicField) Degree() int { return f.phi }

func (f *CyclotomicField) Zero() Element {
	return cycElem{f: f, c: ratZeros(f.phi)}
}

func (f *CyclotomicField) One() Element {
	c := ratZeros(f.phi)
	c[0] = big.NewRat(1, 1)
	return cycElem{f: f, c: c}
}

func (f *CyclotomicField) FromRat(q *big.Rat) Element {
	c := ratZeros(f.phi)
	c[0] = new(big.Rat).Set(q)
	return cycElem{f: f, c: c}
}

func (f *CyclotomicField) FromCoords(coords []*big.Rat) (Element, error) {
	if len(coords) != f.phi {
		return nil, fmt.Errorf("algebra: %s expects %d coordinates, got %d", f.Name(), f.phi, len(coords))
	}
	c := make([]*big.Rat, f.phi)
	for i, q := range coords {
		c[i] = new(big.Rat).Set(q)
	}
	return cycElem{f: f, c: c}, nil
}

// Zeta returns the generating root of unity zeta_n.
func (f *CyclotomicField) Zeta() Element { return f.Root(1) }

// Root returns zeta_n^k for any integer k (negative exponents allowed).
func (f *CyclotomicField) Root(k int) Element {
	k = ((k % f.n) + f.n) % f.n
	p := ratZeros(k + 1)
	p[k] = big.NewRat(1, 1)
	return cycElem{f: f, c: f.reduce(p)}
}

// reduce returns p mod Phi_n as a coordinate vector of length phi.
func (f *CyclotomicField) reduce(p []*big.Rat) []*big.Rat {
	p = append([]*big.Rat(nil), p...)
	for i := range p {
		p[i] = new(big.Rat).Set(p[i])
	}
	for i := len(p) - 1; i >= f.phi; i-- {
		c := p[i]
		if c.Sign() == 0 {
			continue
		}
		// p -= c * x^(i-phi) * Phi_n  (Phi_n is monic)
		for j := 0; j < f.phi; j++ {
			tmp := new(big.Rat).Mul(c, f.min[j])
			p[i-f.phi+j] = new(big.Rat).Sub(p[i-f.phi+j], tmp)
		}
		p[i] = new(big.Rat)
	}
	out := ratZeros(f.phi)
	for i := 0; i < f.phi && i < len(p); i++ {
		out[i] = p[i]
	}
	return out
}

type cycElem struct {
	f *CyclotomicField
	c []*big.Rat
}

func (e cycElem) Field() Field { return e.f }

func (e cycElem) Add(o Element) Element {
	w := e.sameField(o)
	c := make([]*big.Rat, e.f.phi)
	for i := range c {
		c[i] = new(big.Rat).Add(e.c[i], w.c[i])
	}
	return cycElem{f: e.f, c: c}
}

func (e cycElem) Mul(o Element) Element {
	w := e.sameField(o)
	prod := ratZeros(2*e.f.phi - 1)
	for i, a := range e.c {
		if a.Sign() == 0 {
			continue
		}
		for j, b := range w.c {
			if b.Sign() == 0 {
				continue
			}
			tmp := new(big.Rat).Mul(a, b)
			prod[i+j] = new(big.Rat).Add(prod[i+j], tmp)
		}
	}
	return cycElem{f: e.f, c: e.f.reduce(prod)}
}

func (e cycElem) Neg() Element {
	c := make([]*big.Rat, e.f.phi)
	for i := range c {
		c[i] = new(big.Rat).Neg(e.c[i])
	}
	return cycElem{f: e.f, c: c}
}

// Conj maps zeta^k to zeta^(n-k), i.e. complex conjugation.
func (e cycElem) Conj() Element {
	p := ratZeros(e.f.n)
	p[0] = new(big.Rat).Set(e.c[0])
	for k := 1; k < e.f.phi; k++ {
		p[e.f.n-k] = new(big.Rat).Add(p[e.f.n-k], e.c[k])
	}
	return cycElem{f: e.f, c: e.f.reduce(p)}
}

func (e cycElem) IsZero() bool {
	for _, q := range e.c {
		if q.Sign() != 0 {
			return false
		}
	}
	return true
}

func (e cycElem) Equal(o Element) bool {
	w, ok := o.(cycElem)
	if !ok || w.f.Name() != e.f.Name() {
		return false
	}
	for i := range e.c {
		if e.c[i].Cmp(w.c[i]) != 0 {
			return false
		}
	}
	return true
}

func (e cycElem) Coords() []*big.Rat {
	out := make([]*big.Rat, len(e.c))
	for i, q := range e.c {
		out[i] = new(big.Rat).Set(q)
	}
	return out
}

func (e cycElem) String() string {
	var b strings.Builder
	first := true
	for i, q := range e.c {
		if q.Sign() == 0 {
			continue
		}
		if !first {
			b.WriteString(" + ")
		}
		first = false
		switch i {
		case 0:
			b.WriteString(q.RatString())
		case 1:
			fmt.Fprintf(&b, "%s*z", q.RatString())
		default:
			fmt.Fprintf(&b, "%s*z^%d", q.RatString(), i)
		}
	}
	if first {
		return "0"
	}
	return b.String()
}

func (e cycElem) sameField(o Element) cycElem {
	w, ok := o.(cycElem)
	if !ok || w.f.Name() != e.f.Name() {
		panic(fmt.Sprintf("algebra: mixed-field arithmetic: %s with %s", e.f.Name(), o.Field().Name()))
	}
	return w
}

func ratZeros(n int) []*big.Rat {
	out := make([]*big.Rat, n)
	for i := range out {
		out[i] = new(big.Rat)
	}
	return out
}

// polyQuo divides p by the monic polynomial d, assuming exact division.
func polyQuo(p, d []*big.Rat) []*big.Rat {
	p = append([]*big.Rat(nil), p...)
	for i := range p {
		p[i] = new(big.Rat).Set(p[i])
	}
	dd := len(d) - 1
	q := ratZeros(len(p) - dd)
	for i := len(p) - 1; i >= dd; i-- {
		c := p[i]
		if c.Sign() == 0 {
			continue
		}
		q[i-dd] = new(big.Rat).Set(c)
		for j := 0; j <= dd; j++ {
			tmp := new(big.Rat).Mul(c, d[j])
			p[i-dd+j] = new(big.Rat).Sub(p[i-dd+j], tmp)
		}
	}
	return q
}
