package algebra

import (
	"fmt"
	"sort"
	"strings"
)

// Exp is one variable/power pair of a monomial.
type Exp struct {
	Var int
	Pow int
}

// Term is one monomial of a Polynomial: a coefficient times a product of
// formal unknowns. Exps is sorted by Var and contains no zero powers.
type Term struct {
	Exps  []Exp
	Coeff Element
}

// Polynomial is a sparse multivariate polynomial in the formal unknowns
// x0, x1, ... over a scalar field. The unknowns stand for unpinned
// recoupling coefficients; their indices are assigned by the fusion ring.
//
// Polynomials are immutable: all operations return fresh values.
type Polynomial struct {
	field Field
	terms map[string]Term
}

// NewPolynomial returns the zero polynomial over f.
func NewPolynomial(f Field) *Polynomial {
	return &Polynomial{field: f, terms: map[string]Term{}}
}

// Constant returns the polynomial with a single constant term.
func Constant(e Element) *Polynomial {
	p := NewPolynomial(e.Field())
	p.addTerm(nil, e)
	return p
}

// Variable returns the formal unknown x_i over f.
func Variable(f Field, i int) *Polynomial {
	p := NewPolynomial(f)
	p.addTerm([]Exp{{Var: i, Pow: 1}}, f.One())
	return p
}

func (p *Polynomial) Field() Field { return p.field }

func (p *Polynomial) IsZero() bool { return len(p.terms) == 0 }

// Constant reports the constant value of p when p has no variable terms.
func (p *Polynomial) Constant() (Element, bool) {
	switch len(p.terms) {
	case 0:
		return p.field.Zero(), true
	case 1:
		t, ok := p.terms[""]
		if ok {
			return t.Coeff, true
		}
	}
	return nil, false
}

func (p *Polynomial) Add(q *Polynomial) *Polynomial {
	out := p.clone()
	for _, t := range q.terms {
		out.addTerm(t.Exps, t.Coeff)
	}
	return out
}

func (p *Polynomial) Mul(q *Polynomial) *Polynomial {
	out := NewPolynomial(p.field)
	for _, a := range p.terms {
		for _, b := range q.terms {
			out.addTerm(mulExps(a.Exps, b.Exps), a.Coeff.Mul(b.Coeff))
		}
	}
	return out
}

func (p *Polynomial) Neg() *Polynomial {
	out := NewPolynomial(p.field)
	for _, t := range p.terms {
		out.addTerm(t.Exps, t.Coeff.Neg())
	}
	return out
}

// Scale multiplies every coefficient by e.
func (p *Polynomial) Scale(e Element) *Polynomial {
	out := NewPolynomial(p.field)
	for _, t := range p.terms {
		out.addTerm(t.Exps, t.Coeff.Mul(e))
	}
	return out
}

func (p *Polynomial) Equal(q *Polynomial) bool {
	if !SameField(p.field, q.field) || len(p.terms) != len(q.terms) {
		return false
	}
	for k, t := range p.terms {
		u, ok := q.terms[k]
		if !ok || !t.Coeff.Equal(u.Coeff) {
			return false
		}
	}
	return true
}

// Terms returns the terms in a canonical deterministic order.
func (p *Polynomial) Terms() []Term {
	keys := make([]string, 0, len(p.terms))
	for k := range p.terms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Term, len(keys))
	for i, k := range keys {
		t := p.terms[k]
		out[i] = Term{Exps: append([]Exp(nil), t.Exps...), Coeff: t.Coeff}
	}
	return out
}

func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	parts := make([]string, 0, len(p.terms))
	for _, t := range p.Terms() {
		var b strings.Builder
		fmt.Fprintf(&b, "(%s)", t.Coeff)
		for _, e := range t.Exps {
			if e.Pow == 1 {
				fmt.Fprintf(&b, "*x%d", e.Var)
			} else {
				fmt.Fprintf(&b, "*x%d^%d", e.Var, e.Pow)
			}
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, " + ")
}

func (p *Polynomial) clone() *Polynomial {
	out := NewPolynomial(p.field)
	for k, t := range p.terms {
		out.terms[k] = t
	}
	return out
}

// addTerm accumulates coeff onto the monomial with the given exponents,
// pruning the term when the coefficient cancels to zero.
func (p *Polynomial) addTerm(exps []Exp, coeff Element) {
	if coeff.IsZero() {
		return
	}
	k := expKey(exps)
	if prev, ok := p.terms[k]; ok {
		sum := prev.Coeff.Add(coeff)
		if sum.IsZero() {
			delete(p.terms, k)
			return
		}
		p.terms[k] = Term{Exps: prev.Exps, Coeff: sum}
		return
	}
	p.terms[k] = Term{Exps: append([]Exp(nil), exps...), Coeff: coeff}
}

func expKey(exps []Exp) string {
	if len(exps) == 0 {
		return ""
	}
	var b strings.Builder
	for _, e := range exps {
		fmt.Fprintf(&b, "x%d^%d,", e.Var, e.Pow)
	}
	return b.String()
}

// mulExps merges two sorted exponent lists, adding powers of shared
// variables.
func mulExps(a, b []Exp) []Exp {
	out := make([]Exp, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Var < b[j].Var:
			out = append(out, a[i])
			i++
		case a[i].Var > b[j].Var:
			out = append(out, b[j])
			j++
		default:
			out = append(out, Exp{Var: a[i].Var, Pow: a[i].Pow + b[j].Pow})
			i, j = i+1, j+1
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
