package algebra

import "errors"

// ErrPolynomialConj is returned when conjugation is requested for a value
// that still contains formal unknowns.
var ErrPolynomialConj = errors.New("algebra: conjugation undefined for polynomial values")

// Value is a scalar-or-polynomial algebraic value, discriminated at
// construction time. The zero Value is not valid; construct with FromScalar,
// FromPolynomial, Zero or One.
type Value struct {
	scalar Element
	poly   *Polynomial
}

// FromScalar wraps a field element.
func FromScalar(e Element) Value { return Value{scalar: e} }

// FromPolynomial wraps a polynomial in formal unknowns.
func FromPolynomial(p *Polynomial) Value { return Value{poly: p} }

// Zero returns the scalar zero of f.
func Zero(f Field) Value { return Value{scalar: f.Zero()} }

// One returns the scalar one of f.
func One(f Field) Value { return Value{scalar: f.One()} }

// IsPolynomial reports whether v carries the polynomial variant.
func (v Value) IsPolynomial() bool { return v.poly != nil }

// Scalar returns the field-element variant, or nil for polynomials.
func (v Value) Scalar() Element { return v.scalar }

// Polynomial returns the polynomial variant, or nil for scalars.
func (v Value) Polynomial() *Polynomial { return v.poly }

// FieldOf returns the scalar field the value lives over.
func (v Value) FieldOf() Field {
	if v.poly != nil {
		return v.poly.Field()
	}
	return v.scalar.Field()
}

func (v Value) IsZero() bool {
	if v.poly != nil {
		return v.poly.IsZero()
	}
	return v.scalar.IsZero()
}

// Add returns v + w, promoting to the polynomial variant when either
// operand is polynomial.
func (v Value) Add(w Value) Value {
	if v.poly == nil && w.poly == nil {
		return Value{scalar: v.scalar.Add(w.scalar)}
	}
	return Value{poly: v.asPolynomial().Add(w.asPolynomial())}
}

// Mul returns v * w with the same promotion rule as Add.
func (v Value) Mul(w Value) Value {
	if v.poly == nil && w.poly == nil {
		return Value{scalar: v.scalar.Mul(w.scalar)}
	}
	return Value{poly: v.asPolynomial().Mul(w.asPolynomial())}
}

func (v Value) Neg() Value {
	if v.poly != nil {
		return Value{poly: v.poly.Neg()}
	}
	return Value{scalar: v.scalar.Neg()}
}

// Conj conjugates a scalar value. Polynomial values have no involution
// until their unknowns are pinned.
func (v Value) Conj() (Value, error) {
	if v.poly != nil {
		return Value{}, ErrPolynomialConj
	}
	return Value{scalar: v.scalar.Conj()}, nil
}

// Equal compares values; a scalar and a constant polynomial with the same
// value compare equal.
func (v Value) Equal(w Value) bool {
	if v.poly == nil && w.poly == nil {
		return v.scalar.Equal(w.scalar)
	}
	return v.asPolynomial().Equal(w.asPolynomial())
}

func (v Value) String() string {
	if v.poly != nil {
		return v.poly.String()
	}
	return v.scalar.String()
}

func (v Value) asPolynomial() *Polynomial {
	if v.poly != nil {
		return v.poly
	}
	return Constant(v.scalar)
}
