package algebra

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	t.Run("ScalarArithmetic", func(t *testing.T) {
		a := FromScalar(QQ.FromRat(big.NewRat(1, 2)))
		b := FromScalar(QQ.FromRat(big.NewRat(1, 3)))

		sum := a.Add(b)
		assert.False(t, sum.IsPolynomial())
		assert.True(t, sum.Equal(FromScalar(QQ.FromRat(big.NewRat(5, 6)))))

		prod := a.Mul(b)
		assert.True(t, prod.Equal(FromScalar(QQ.FromRat(big.NewRat(1, 6)))))

		assert.True(t, a.Add(a.Neg()).IsZero())
	})

	t.Run("Promotion", func(t *testing.T) {
		x := FromPolynomial(Variable(QQ, 0))
		c := FromScalar(QQ.FromRat(big.NewRat(2, 1)))

		sum := x.Add(c)
		require.True(t, sum.IsPolynomial())
		assert.Len(t, sum.Polynomial().Terms(), 2)

		// 2x stays a single term.
		prod := x.Mul(c)
		require.True(t, prod.IsPolynomial())
		assert.Len(t, prod.Polynomial().Terms(), 1)
	})

	t.Run("ScalarEqualsConstantPolynomial", func(t *testing.T) {
		c := FromScalar(QQ.FromRat(big.NewRat(7, 1)))
		p := FromPolynomial(Constant(QQ.FromRat(big.NewRat(7, 1))))
		assert.True(t, c.Equal(p))
		assert.True(t, p.Equal(c))
	})

	t.Run("ConjOfPolynomial", func(t *testing.T) {
		x := FromPolynomial(Variable(QQ, 0))
		_, err := x.Conj()
		assert.ErrorIs(t, err, ErrPolynomialConj)

		c, err := One(QQ).Conj()
		require.NoError(t, err)
		assert.True(t, c.Equal(One(QQ)))
	})

	t.Run("TermCancellation", func(t *testing.T) {
		x := FromPolynomial(Variable(QQ, 3))
		assert.True(t, x.Add(x.Neg()).IsZero())
	})
}

func TestPolynomial(t *testing.T) {
	t.Run("MulMergesExponents", func(t *testing.T) {
		x := Variable(QQ, 0)
		y := Variable(QQ, 1)

		p := x.Mul(x).Mul(y) // x0^2 * x1
		terms := p.Terms()
		require.Len(t, terms, 1)
		assert.Equal(t, []Exp{{Var: 0, Pow: 2}, {Var: 1, Pow: 1}}, terms[0].Exps)
	})

	t.Run("TermsDeterministic", func(t *testing.T) {
		p := Variable(QQ, 2).Add(Variable(QQ, 0)).Add(Variable(QQ, 1))
		q := Variable(QQ, 1).Add(Variable(QQ, 2)).Add(Variable(QQ, 0))
		assert.Equal(t, p.Terms(), q.Terms())
		assert.True(t, p.Equal(q))
	})

	t.Run("Constant", func(t *testing.T) {
		c, ok := Constant(QQ.FromRat(big.NewRat(4, 1))).Constant()
		require.True(t, ok)
		assert.True(t, c.Equal(QQ.FromRat(big.NewRat(4, 1))))

		_, ok = Variable(QQ, 0).Constant()
		assert.False(t, ok)
	})
}
