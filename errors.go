package braidrep

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrNilRing is returned when no fusion ring is supplied.
	ErrNilRing = errors.New("braidrep: fusion ring is nil")
	// ErrSnapshotMismatch is returned when result batches were produced
	// against different computation snapshots.
	ErrSnapshotMismatch = errors.New("braidrep: batches from different computation snapshots")
)

// EntryRangeError reports a sparse entry outside the generator matrix.
//
// It indicates a caller contract violation: the batches being assembled were
// not produced for the generator they are attributed to.
type EntryRangeError struct {
	Row, Col int
	Dim      int
}

func (e *EntryRangeError) Error() string {
	return fmt.Sprintf("braidrep: entry (%d,%d) outside %dx%d generator matrix", e.Row, e.Col, e.Dim, e.Dim)
}

// SnapshotMismatchError carries the two conflicting snapshot identities.
// It unwraps to ErrSnapshotMismatch.
type SnapshotMismatchError struct {
	Want, Got uuid.UUID
}

func (e *SnapshotMismatchError) Error() string {
	return fmt.Sprintf("braidrep: batch from snapshot %s, expected %s", e.Got, e.Want)
}

func (e *SnapshotMismatchError) Unwrap() error { return ErrSnapshotMismatch }
