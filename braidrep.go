package braidrep

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/anyonkit/braidrep/fusion"
	"github.com/anyonkit/braidrep/sparse"
	"github.com/anyonkit/braidrep/worker"
)

// Compute builds the sparse matrix of one braid-group generator acting on the
// computational basis of the fusion ring.
//
// The dense entry enumeration is partitioned over workers by a deterministic
// counter-modulo scheme, so the returned matrix is identical for every worker
// count. Cancel ctx to abandon the computation.
func Compute(ctx context.Context, ring fusion.Ring, spec fusion.GeneratorSpec, opts ...Option) (*sparse.Matrix, error) {
	if ring == nil {
		return nil, ErrNilRing
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	o := applyOptions(opts)
	log := o.logger.WithGenerator(spec).WithWorkers(o.workers)

	snap := worker.NewSnapshot(ring)
	harnesses := make([]*worker.Harness, o.workers)
	for i := range harnesses {
		harnesses[i] = worker.NewHarness(snap, log.Logger)
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for child, h := range harnesses {
		child, h := child, h
		g.Go(func() error {
			return h.RunWorker(gctx, worker.WorkItem{
				ChildID: child,
				NProc:   o.workers,
				Spec:    spec,
			})
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	batches := make([]worker.Batch, len(harnesses))
	for i, h := range harnesses {
		batches[i] = h.Collect()
	}
	m, err := Assemble(ring, spec, batches)
	if err != nil {
		return nil, err
	}
	hits, misses := snap.Cache().Stats()
	log.Info("braid generator computed",
		"dim", m.Dim(),
		"nnz", m.NNZ(),
		"cache_hits", hits,
		"cache_misses", misses,
		"elapsed", time.Since(start),
	)
	return m, nil
}

// AllGenerators computes sigma_1 .. sigma_{nStrands-1} in order. Generator i
// (1-based) is diagonal for odd i, a mid generator for even i, except that on
// an odd strand count the last generator is the odd-one-out.
func AllGenerators(ctx context.Context, ring fusion.Ring, a, b fusion.Object, nStrands int, opts ...Option) ([]*sparse.Matrix, error) {
	if ring == nil {
		return nil, ErrNilRing
	}
	if nStrands < 3 {
		return nil, fusion.ErrStrandCount
	}

	mats := make([]*sparse.Matrix, 0, nStrands-1)
	for i := 1; i < nStrands; i++ {
		var spec fusion.GeneratorSpec
		switch {
		case i%2 == 1:
			spec = fusion.Diag((i-1)/2, a, b, nStrands)
		case nStrands%2 == 1 && i == nStrands-1:
			spec = fusion.Odd(a, b, nStrands)
		default:
			spec = fusion.Mid(i/2, a, b, nStrands)
		}
		m, err := Compute(ctx, ring, spec, opts...)
		if err != nil {
			return nil, err
		}
		mats = append(mats, m)
	}
	return mats, nil
}
