package worker

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/anyonkit/braidrep/algebra"
	"github.com/anyonkit/braidrep/fusion"
	"github.com/anyonkit/braidrep/kernel"
)

var (
	// ErrNilSnapshot is returned when a harness has no snapshot to run
	// against.
	ErrNilSnapshot = errors.New("worker: nil computation snapshot")
)

// WorkItem assigns one worker its disjoint subset of a generator matrix.
type WorkItem struct {
	ChildID int
	NProc   int
	Spec    fusion.GeneratorSpec
}

// EncodedEntry is one sparse matrix entry in transferable form.
type EncodedEntry struct {
	Row, Col int
	Value    algebra.Encoded
}

// Batch is one worker's drained output.
type Batch struct {
	SnapshotID uuid.UUID
	Spec       fusion.GeneratorSpec
	ChildID    int
	NProc      int
	Entries    []EncodedEntry
}

// Harness runs kernels for one worker and owns that worker's result buffer.
// The buffer is append-only while RunWorker executes and is drained by
// Collect.
type Harness struct {
	snap *Snapshot
	log  *slog.Logger

	mu   sync.Mutex
	buf  []EncodedEntry
	item WorkItem
}

// NewHarness binds a harness to a computation snapshot. A nil logger
// discards output.
func NewHarness(snap *Snapshot, logger *slog.Logger) *Harness {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Harness{snap: snap, log: logger}
}

// RunWorker computes the work item's entry subset into the harness buffer:
// it dispatches on the generator kind, encodes every produced value and
// appends it. It runs the partition to completion synchronously.
func (h *Harness) RunWorker(ctx context.Context, item WorkItem) error {
	if h.snap == nil {
		return ErrNilSnapshot
	}
	if err := item.Spec.Validate(); err != nil {
		return err
	}

	ring := h.snap.Ring()
	progress := rate.Sometimes{Interval: 2 * time.Second}
	emit := func(row, col int, v algebra.Value) error {
		h.mu.Lock()
		h.buf = append(h.buf, EncodedEntry{Row: row, Col: col, Value: algebra.Flatten(v)})
		n := len(h.buf)
		h.mu.Unlock()
		progress.Do(func() {
			h.log.Debug("braid worker progress",
				"generator", item.Spec.String(),
				"child_id", item.ChildID,
				"entries", n,
			)
		})
		return nil
	}

	var err error
	switch item.Spec.Kind {
	case fusion.MidGenerator:
		err = kernel.MidGenerator(ctx, ring, h.snap.Cache(), item.ChildID, item.NProc,
			kernel.MidParams{K: item.Spec.K, A: item.Spec.A, B: item.Spec.B, NStrands: item.Spec.NStrands}, emit)
	case fusion.OddOneOut:
		err = kernel.OddOneOut(ctx, ring, h.snap.Cache(), item.ChildID, item.NProc,
			kernel.OddParams{A: item.Spec.A, B: item.Spec.B, NStrands: item.Spec.NStrands}, emit)
	case fusion.DiagonalGenerator:
		err = kernel.Diagonal(ctx, ring, item.ChildID, item.NProc,
			kernel.DiagParams{J: item.Spec.K, A: item.Spec.A, B: item.Spec.B, NStrands: item.Spec.NStrands}, emit)
	default:
		err = fusion.ErrUnknownKind
	}
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.item = item
	n := len(h.buf)
	h.mu.Unlock()
	h.log.Debug("braid worker finished",
		"generator", item.Spec.String(),
		"child_id", item.ChildID,
		"entries", n,
	)
	return nil
}

// Collect drains the buffer: it swaps in an empty one and returns the
// previous contents. Calling it before RunWorker, or a second time, returns
// an empty batch; it is a drain, not a query.
func (h *Harness) Collect() Batch {
	if h.snap == nil {
		return Batch{}
	}
	h.mu.Lock()
	entries := h.buf
	item := h.item
	h.buf = nil
	h.mu.Unlock()
	return Batch{
		SnapshotID: h.snap.ID(),
		Spec:       item.Spec,
		ChildID:    item.ChildID,
		NProc:      item.NProc,
		Entries:    entries,
	}
}
