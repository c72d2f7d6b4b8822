package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyonkit/braidrep/fusion"
	"github.com/anyonkit/braidrep/fusion/su2k"
)

func TestSnapshot(t *testing.T) {
	ring := su2k.New(4)
	a, b := NewSnapshot(ring), NewSnapshot(ring)

	assert.NotEqual(t, a.ID(), b.ID())
	assert.NotNil(t, a.Cache())
	assert.Equal(t, fusion.Ring(ring), a.Ring())
}

func TestHarness(t *testing.T) {
	spec := fusion.Mid(1, 1, 1, 5)

	t.Run("RunAndCollect", func(t *testing.T) {
		snap := NewSnapshot(su2k.New(4))
		h := NewHarness(snap, nil)

		err := h.RunWorker(context.Background(), WorkItem{ChildID: 0, NProc: 1, Spec: spec})
		require.NoError(t, err)

		batch := h.Collect()
		assert.Equal(t, snap.ID(), batch.SnapshotID)
		assert.Equal(t, spec, batch.Spec)
		assert.Len(t, batch.Entries, 13)
	})

	t.Run("CollectIsADrain", func(t *testing.T) {
		snap := NewSnapshot(su2k.New(4))
		h := NewHarness(snap, nil)

		// Before any run the batch is empty.
		assert.Empty(t, h.Collect().Entries)

		require.NoError(t, h.RunWorker(context.Background(), WorkItem{ChildID: 0, NProc: 1, Spec: spec}))
		assert.NotEmpty(t, h.Collect().Entries)

		// A second drain yields nothing.
		assert.Empty(t, h.Collect().Entries)
	})

	t.Run("Deterministic", func(t *testing.T) {
		snap := NewSnapshot(su2k.New(4))
		item := WorkItem{ChildID: 1, NProc: 3, Spec: spec}

		h1 := NewHarness(snap, nil)
		h2 := NewHarness(snap, nil)
		require.NoError(t, h1.RunWorker(context.Background(), item))
		require.NoError(t, h2.RunWorker(context.Background(), item))

		assert.Equal(t, h1.Collect(), h2.Collect())
	})

	t.Run("NilSnapshot", func(t *testing.T) {
		h := NewHarness(nil, nil)
		err := h.RunWorker(context.Background(), WorkItem{ChildID: 0, NProc: 1, Spec: spec})
		assert.ErrorIs(t, err, ErrNilSnapshot)
		assert.Empty(t, h.Collect().Entries)
	})

	t.Run("InvalidSpec", func(t *testing.T) {
		h := NewHarness(NewSnapshot(su2k.New(4)), nil)
		err := h.RunWorker(context.Background(), WorkItem{
			ChildID: 0, NProc: 1,
			Spec: fusion.Mid(7, 1, 1, 5),
		})
		assert.ErrorIs(t, err, fusion.ErrGeneratorIndex)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		h := NewHarness(NewSnapshot(su2k.New(4)), nil)
		err := h.RunWorker(context.Background(), WorkItem{
			ChildID: 0, NProc: 1,
			Spec: fusion.GeneratorSpec{NStrands: 5},
		})
		assert.ErrorIs(t, err, fusion.ErrUnknownKind)
	})
}
