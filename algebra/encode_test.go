package algebra

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRoundTrip(t *testing.T) {
	t.Run("Scalar", func(t *testing.T) {
		f := Cyclotomic(16)
		v := FromScalar(f.Root(3).Add(f.FromRat(big.NewRat(-1, 2))))

		enc := Flatten(v)
		assert.Equal(t, "QQ(zeta16)", enc.Field)
		assert.Equal(t, KindScalar, enc.Kind)

		back, err := Unflatten(f, enc)
		require.NoError(t, err)
		assert.True(t, back.Equal(v))
	})

	t.Run("Zero", func(t *testing.T) {
		enc := Flatten(Zero(QQ))
		back, err := Unflatten(QQ, enc)
		require.NoError(t, err)
		assert.True(t, back.IsZero())
	})

	t.Run("Polynomial", func(t *testing.T) {
		// 2*x0*x3^2 - 1/3
		p := Variable(QQ, 0).Mul(Variable(QQ, 3)).Mul(Variable(QQ, 3)).
			Scale(QQ.FromRat(big.NewRat(2, 1))).
			Add(Constant(QQ.FromRat(big.NewRat(-1, 3))))
		v := FromPolynomial(p)

		enc := Flatten(v)
		assert.Equal(t, KindPolynomial, enc.Kind)
		require.Len(t, enc.Terms, 2)

		back, err := Unflatten(QQ, enc)
		require.NoError(t, err)
		require.True(t, back.IsPolynomial())
		assert.True(t, back.Equal(v))
	})

	t.Run("FieldMismatch", func(t *testing.T) {
		enc := Flatten(One(QQ))
		_, err := Unflatten(Cyclotomic(16), enc)
		var mismatch *FieldMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, "QQ", mismatch.Got)
		assert.Equal(t, "QQ(zeta16)", mismatch.Want)
	})

	t.Run("MalformedCoordinate", func(t *testing.T) {
		enc := Encoded{Field: "QQ", Kind: KindScalar, Coords: []string{"not-a-rational"}}
		_, err := Unflatten(QQ, enc)
		assert.Error(t, err)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		enc := Encoded{Field: "QQ", Kind: "bogus"}
		_, err := Unflatten(QQ, enc)
		assert.Error(t, err)
	})
}
