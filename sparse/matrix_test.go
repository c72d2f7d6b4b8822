package sparse

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyonkit/braidrep/algebra"
)

func rat(num, den int64) algebra.Value {
	return algebra.FromScalar(algebra.QQ.FromRat(big.NewRat(num, den)))
}

func TestMatrix(t *testing.T) {
	t.Run("SetAndAt", func(t *testing.T) {
		m := New(3, algebra.QQ, nil)
		require.NoError(t, m.Set(0, 2, rat(1, 2)))
		require.NoError(t, m.Set(1, 1, rat(3, 1)))
		assert.Equal(t, 2, m.NNZ())
		assert.Equal(t, 3, m.Dim())

		v, ok := m.At(0, 2)
		require.True(t, ok)
		assert.True(t, v.Equal(rat(1, 2)))

		_, ok = m.At(2, 0)
		assert.False(t, ok)

		// Overwrite keeps NNZ stable.
		require.NoError(t, m.Set(0, 2, rat(5, 1)))
		assert.Equal(t, 2, m.NNZ())
		v, _ = m.At(0, 2)
		assert.True(t, v.Equal(rat(5, 1)))
	})

	t.Run("Bounds", func(t *testing.T) {
		m := New(2, algebra.QQ, nil)
		assert.Error(t, m.Set(2, 0, rat(1, 1)))
		assert.Error(t, m.Set(0, -1, rat(1, 1)))
	})

	t.Run("Mul", func(t *testing.T) {
		// [[1,2],[0,3]] * [[0,1],[1,0]] = [[2,1],[3,0]]
		a := New(2, algebra.QQ, nil)
		require.NoError(t, a.Set(0, 0, rat(1, 1)))
		require.NoError(t, a.Set(0, 1, rat(2, 1)))
		require.NoError(t, a.Set(1, 1, rat(3, 1)))

		b := New(2, algebra.QQ, nil)
		require.NoError(t, b.Set(0, 1, rat(1, 1)))
		require.NoError(t, b.Set(1, 0, rat(1, 1)))

		prod, err := a.Mul(b)
		require.NoError(t, err)

		v, _ := prod.At(0, 0)
		assert.True(t, v.Equal(rat(2, 1)))
		v, _ = prod.At(0, 1)
		assert.True(t, v.Equal(rat(1, 1)))
		v, _ = prod.At(1, 0)
		assert.True(t, v.Equal(rat(3, 1)))
		_, ok := prod.At(1, 1)
		assert.False(t, ok)

		c := New(3, algebra.QQ, nil)
		_, err = a.Mul(c)
		assert.Error(t, err)
	})

	t.Run("ConjTranspose", func(t *testing.T) {
		f := algebra.Cyclotomic(16)
		m := New(2, f, nil)
		require.NoError(t, m.Set(0, 1, algebra.FromScalar(f.Zeta())))

		ct, err := m.ConjTranspose()
		require.NoError(t, err)
		v, ok := ct.At(1, 0)
		require.True(t, ok)
		assert.True(t, v.Equal(algebra.FromScalar(f.Root(15))))

		// Polynomial entries cannot be conjugated.
		p := New(1, algebra.QQ, nil)
		require.NoError(t, p.Set(0, 0, algebra.FromPolynomial(algebra.Variable(algebra.QQ, 0))))
		_, err = p.ConjTranspose()
		assert.ErrorIs(t, err, ErrPolynomialMatrix)
	})

	t.Run("IsIdentity", func(t *testing.T) {
		m := New(2, algebra.QQ, nil)
		require.NoError(t, m.Set(0, 0, rat(1, 1)))
		assert.False(t, m.IsIdentity()) // missing (1,1)

		require.NoError(t, m.Set(1, 1, rat(1, 1)))
		assert.True(t, m.IsIdentity())

		// A stored zero off the diagonal is still the identity.
		require.NoError(t, m.Set(0, 1, rat(0, 1)))
		assert.True(t, m.IsIdentity())

		require.NoError(t, m.Set(1, 0, rat(1, 2)))
		assert.False(t, m.IsIdentity())
	})
}
