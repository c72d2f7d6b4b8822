package kernel

import (
	"sync"
	"sync/atomic"

	"github.com/anyonkit/braidrep/algebra"
	"github.com/anyonkit/braidrep/fusion"
)

type midKey struct {
	xi, yi, xj, yj, a, b fusion.Object
}

type oddKey struct {
	xi, xj, a, b fusion.Object
}

// Cache memoizes the two atomic two-strand braiding coefficients that recur
// across generator-matrix entries. One Cache is scoped to one generator
// computation's snapshot: keys are value tuples and the ring they refer to
// is pinned by the snapshot, so entries are never invalidated.
//
// Safe for concurrent use by all workers of the computation.
type Cache struct {
	mid sync.Map // midKey -> algebra.Value
	odd sync.Map // oddKey -> algebra.Value

	hits   atomic.Int64
	misses atomic.Int64
}

// NewCache returns an empty cache.
func NewCache() *Cache { return &Cache{} }

// Stats returns cumulative hit/miss counters.
func (c *Cache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}

// Mid returns the coefficient mapping the 4-leaf tree b -> xi#yi onto
// b -> xj#yj under a crossing of the middle two strands: the double sum over
// basis objects of four recoupling coefficients and one braiding eigenvalue.
//
// The formula uses the transpose of the recoupling matrices in place of
// their inverse; it is only valid for orthogonal recoupling data.
func (c *Cache) Mid(r fusion.Ring, row, col [2]fusion.Object, a, b fusion.Object) algebra.Value {
	key := midKey{xi: row[0], yi: row[1], xj: col[0], yj: col[1], a: a, b: b}
	if v, ok := c.mid.Load(key); ok {
		c.hits.Add(1)
		return v.(algebra.Value)
	}
	c.misses.Add(1)

	field := r.ScalarField()
	entry := algebra.Zero(field)
	for _, cc := range r.Basis() {
		f1 := FSymbol(r, a, a, row[1], b, row[0], cc)
		if f1.IsZero() {
			continue
		}
		f4 := FSymbol(r, a, a, col[1], b, col[0], cc)
		if f4.IsZero() {
			continue
		}
		for _, d := range r.Basis() {
			f2 := FSymbol(r, a, a, a, cc, d, row[1])
			if f2.IsZero() {
				continue
			}
			f3 := FSymbol(r, a, a, a, cc, d, col[1])
			if f3.IsZero() {
				continue
			}
			rr := r.BraidingEigenvalue(a, a, d)
			entry = entry.Add(f1.Mul(f2).Mul(rr).Mul(f3).Mul(f4))
		}
	}
	actual, _ := c.mid.LoadOrStore(key, entry)
	return actual.(algebra.Value)
}

// Odd returns the coefficient mapping the 3-leaf tree b -> xi onto b -> xj
// under a crossing of the last two strands: a single sum over basis objects
// of two recoupling coefficients and one braiding eigenvalue. Same
// orthogonality precondition as Mid.
func (c *Cache) Odd(r fusion.Ring, xi, xj, a, b fusion.Object) algebra.Value {
	key := oddKey{xi: xi, xj: xj, a: a, b: b}
	if v, ok := c.odd.Load(key); ok {
		c.hits.Add(1)
		return v.(algebra.Value)
	}
	c.misses.Add(1)

	field := r.ScalarField()
	entry := algebra.Zero(field)
	for _, cc := range r.Basis() {
		f1 := FSymbol(r, a, a, a, b, xi, cc)
		if f1.IsZero() {
			continue
		}
		f2 := FSymbol(r, a, a, a, b, xj, cc)
		if f2.IsZero() {
			continue
		}
		rr := r.BraidingEigenvalue(a, a, cc)
		entry = entry.Add(f1.Mul(rr).Mul(f2))
	}
	actual, _ := c.odd.LoadOrStore(key, entry)
	return actual.(algebra.Value)
}
