package algebra

import (
	"fmt"
	"math/big"
)

// QQ is the field of rational numbers.
var QQ Field = rationals{}

type rationals struct{}

func (rationals) Name() string { return "QQ" }
func (rationals) Degree() int  { return 1 }

func (rationals) Zero() Element { return ratElem{new(big.Rat)} }
func (rationals) One() Element  { return ratElem{big.NewRat(1, 1)} }

func (rationals) FromRat(q *big.Rat) Element {
	return ratElem{new(big.Rat).Set(q)}
}

func (rationals) FromCoords(coords []*big.Rat) (Element, error) {
	if len(coords) != 1 {
		return nil, fmt.Errorf("algebra: QQ expects 1 coordinate, got %d", len(coords))
	}
	return ratElem{new(big.Rat).Set(coords[0])}, nil
}

type ratElem struct {
	v *big.Rat
}

func (e ratElem) Field() Field { return QQ }

func (e ratElem) Add(o Element) Element {
	return ratElem{new(big.Rat).Add(e.v, mustRat(o))}
}

func (e ratElem) Mul(o Element) Element {
	return ratElem{new(big.Rat).Mul(e.v, mustRat(o))}
}

func (e ratElem) Neg() Element {
	return ratElem{new(big.Rat).Neg(e.v)}
}

func (e ratElem) Conj() Element {
	return ratElem{new(big.Rat).Set(e.v)}
}

func (e ratElem) IsZero() bool { return e.v.Sign() == 0 }

func (e ratElem) Equal(o Element) bool {
	r, ok := o.(ratElem)
	return ok && e.v.Cmp(r.v) == 0
}

func (e ratElem) Coords() []*big.Rat {
	return []*big.Rat{new(big.Rat).Set(e.v)}
}

func (e ratElem) String() string { return e.v.RatString() }

func mustRat(o Element) *big.Rat {
	r, ok := o.(ratElem)
	if !ok {
		panic(fmt.Sprintf("algebra: mixed-field arithmetic: QQ with %s", o.Field().Name()))
	}
	return r.v
}
