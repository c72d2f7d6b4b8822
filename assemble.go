package braidrep

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/google/uuid"

	"github.com/anyonkit/braidrep/algebra"
	"github.com/anyonkit/braidrep/fusion"
	"github.com/anyonkit/braidrep/sparse"
	"github.com/anyonkit/braidrep/worker"
)

// Assemble concatenates per-worker batches into the full sparse generator
// matrix, decoding every entry back to native form.
//
// The partition guarantees each (row,col) key is produced by at most one
// worker (the odd-one-out 3-strand case revisits keys with identical values;
// repeats are collapsed), so no merge logic is needed. Batches must all stem
// from the same computation snapshot.
func Assemble(ring fusion.Ring, spec fusion.GeneratorSpec, batches []worker.Batch) (*sparse.Matrix, error) {
	if ring == nil {
		return nil, ErrNilRing
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	basis := ring.ComputationalBasis(spec.A, spec.B, spec.NStrands)
	idx := fusion.NewBasisIndex(basis)
	dim := idx.Dim()
	field := ring.ScalarField()

	m := sparse.New(dim, field, idx)
	occupied := roaring64.New()
	var snapID uuid.UUID
	for bi, batch := range batches {
		if bi == 0 {
			snapID = batch.SnapshotID
		} else if batch.SnapshotID != snapID {
			return nil, &SnapshotMismatchError{Want: snapID, Got: batch.SnapshotID}
		}
		for _, e := range batch.Entries {
			if e.Row < 0 || e.Row >= dim || e.Col < 0 || e.Col >= dim {
				return nil, &EntryRangeError{Row: e.Row, Col: e.Col, Dim: dim}
			}
			key := uint64(uint32(e.Row))<<32 | uint64(uint32(e.Col))
			if occupied.Contains(key) {
				continue
			}
			v, err := algebra.Unflatten(field, e.Value)
			if err != nil {
				return nil, fmt.Errorf("braidrep: decoding entry (%d,%d): %w", e.Row, e.Col, err)
			}
			occupied.Add(key)
			if err := m.Set(e.Row, e.Col, v); err != nil {
				return nil, err
			}
		}
	}
	return m, nil
}
