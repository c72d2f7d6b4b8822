package algebra

import "math/big"

// Field identifies a scalar field and constructs its elements.
//
// Fields are compared by Name: two Field values with the same name must be
// arithmetically interchangeable. The name doubles as the codec tag checked
// by Unflatten.
type Field interface {
	// Name returns a stable identifier, e.g. "QQ" or "QQ(zeta16)".
	Name() string
	// Degree returns the dimension of the field over the rationals.
	// Element coordinates have exactly this length.
	Degree() int
	Zero() Element
	One() Element
	// FromRat embeds a rational number into the field.
	FromRat(q *big.Rat) Element
	// FromCoords reconstructs an element from its coordinate list over the
	// field's defining basis, the inverse of Element.Coords.
	FromCoords(coords []*big.Rat) (Element, error)
}

// Element is an immutable element of a Field. All arithmetic returns fresh
// values; operands are never mutated.
//
// Mixing elements of different fields is a programming error and panics.
type Element interface {
	Field() Field
	Add(Element) Element
	Mul(Element) Element
	Neg() Element
	// Conj applies the field's natural involution (complex conjugation for
	// cyclotomic fields, the identity on the rationals).
	Conj() Element
	IsZero() bool
	Equal(Element) bool
	// Coords returns the coordinates over the field's defining basis.
	// The returned slice and its entries are fresh copies.
	Coords() []*big.Rat
	String() string
}

// SameField reports whether two fields are interchangeable.
func SameField(a, b Field) bool {
	return a != nil && b != nil && a.Name() == b.Name()
}
