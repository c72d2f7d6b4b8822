// Package braidrep computes sparse matrix representations of braid-group
// generators acting on the computational basis of a fusion ring, the step
// that turns an anyonic/fusion-category model into a braid-group
// representation.
//
// The fusion ring, its F-matrix (recoupling) data and its R-matrix
// (braiding) data are consumed through the fusion.Ring interface; this
// module computes, in parallel, the generator matrices they induce.
//
// # Quick Start
//
//	ctx := context.Background()
//	ring := ising.New()
//
//	// sigma_2 on 4 strands of the Ising anyon with total charge vacuum.
//	m, err := braidrep.Compute(ctx, ring, fusion.Mid(1, ising.Sigma, ising.Vacuum, 4))
//	if err != nil { ... }
//	fmt.Println(m.Dim(), m.NNZ())
//
//	// All generators sigma_1 .. sigma_{n-1} at once.
//	gens, err := braidrep.AllGenerators(ctx, ring, ising.Sigma, ising.Vacuum, 5)
//
// # Parallelism
//
// Compute fans the dense entry enumeration out over workers with a
// deterministic counter-modulo partition: every candidate entry is produced
// by exactly one worker, so assembly is pure concatenation and the result is
// identical for every worker count. Workers share one read-only snapshot of
// the ring plus a memoizing recoupling cache and never communicate.
//
// # Values
//
// Matrix entries are algebra.Value: exact field scalars when the ring's
// recoupling data is pinned, polynomials in formal F-symbol unknowns when it
// is not. Entries cross the worker/aggregator boundary in a flat encoded
// form; matio persists assembled matrices in the same encoding.
package braidrep
