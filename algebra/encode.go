package algebra

import (
	"fmt"
	"math/big"
)

// Encoded kind tags. Stored in serialized form; do not renumber.
const (
	KindScalar     = "scalar"
	KindPolynomial = "poly"
)

// Encoded is the flat, process-transferable form of a Value: plain slices
// and strings only, safe to move through any codec. Rationals are encoded
// with big.Rat's RatString ("num/den" or "num").
type Encoded struct {
	Field  string        `json:"field"`
	Kind   string        `json:"kind"`
	Coords []string      `json:"coords,omitempty"`
	Terms  []EncodedTerm `json:"terms,omitempty"`
}

// EncodedTerm is one polynomial term: (variable, power) pairs plus the
// coefficient's coordinates over the field basis.
type EncodedTerm struct {
	Exps   [][2]int `json:"exps,omitempty"`
	Coords []string `json:"coords"`
}

// FieldMismatchError reports an Encoded produced for a different scalar
// field than the one it is being decoded into.
type FieldMismatchError struct {
	Want string
	Got  string
}

func (e *FieldMismatchError) Error() string {
	return fmt.Sprintf("algebra: encoded value belongs to field %s, decoding into %s", e.Got, e.Want)
}

// Flatten converts a value into its transferable encoding. The inverse is
// Unflatten.
func Flatten(v Value) Encoded {
	if !v.IsPolynomial() {
		return Encoded{
			Field:  v.FieldOf().Name(),
			Kind:   KindScalar,
			Coords: coordStrings(v.Scalar().Coords()),
		}
	}
	terms := v.Polynomial().Terms()
	enc := Encoded{
		Field: v.FieldOf().Name(),
		Kind:  KindPolynomial,
		Terms: make([]EncodedTerm, len(terms)),
	}
	for i, t := range terms {
		et := EncodedTerm{Coords: coordStrings(t.Coeff.Coords())}
		for _, e := range t.Exps {
			et.Exps = append(et.Exps, [2]int{e.Var, e.Pow})
		}
		enc.Terms[i] = et
	}
	return enc
}

// Unflatten reconstructs a value in the given field. It fails fast with a
// FieldMismatchError when the encoding was produced for a different field.
func Unflatten(f Field, enc Encoded) (Value, error) {
	if enc.Field != f.Name() {
		return Value{}, &FieldMismatchError{Want: f.Name(), Got: enc.Field}
	}
	switch enc.Kind {
	case KindScalar:
		e, err := decodeElement(f, enc.Coords)
		if err != nil {
			return Value{}, err
		}
		return FromScalar(e), nil
	case KindPolynomial:
		p := NewPolynomial(f)
		for _, t := range enc.Terms {
			coeff, err := decodeElement(f, t.Coords)
			if err != nil {
				return Value{}, err
			}
			exps := make([]Exp, len(t.Exps))
			for i, e := range t.Exps {
				exps[i] = Exp{Var: e[0], Pow: e[1]}
			}
			p.addTerm(exps, coeff)
		}
		return FromPolynomial(p), nil
	default:
		return Value{}, fmt.Errorf("algebra: unknown encoded kind %q", enc.Kind)
	}
}

func coordStrings(coords []*big.Rat) []string {
	out := make([]string, len(coords))
	for i, q := range coords {
		out[i] = q.RatString()
	}
	return out
}

func decodeElement(f Field, coords []string) (Element, error) {
	rats := make([]*big.Rat, len(coords))
	for i, s := range coords {
		q, ok := new(big.Rat).SetString(s)
		if !ok {
			return nil, fmt.Errorf("algebra: malformed rational coordinate %q", s)
		}
		rats[i] = q
	}
	return f.FromCoords(rats)
}
