package worker

import (
	"github.com/google/uuid"

	"github.com/anyonkit/braidrep/fusion"
	"github.com/anyonkit/braidrep/kernel"
)

// Snapshot is the process-context bridge: an immutable handle to the
// fusion-ring state and recoupling cache shared by all workers of one
// generator computation. The UUID identifies the computation; results from
// different snapshots must never be aggregated together.
type Snapshot struct {
	id    uuid.UUID
	ring  fusion.Ring
	cache *kernel.Cache
}

// NewSnapshot pins ring for one generator computation with a fresh cache.
func NewSnapshot(ring fusion.Ring) *Snapshot {
	return &Snapshot{
		id:    uuid.New(),
		ring:  ring,
		cache: kernel.NewCache(),
	}
}

// ID returns the computation identity.
func (s *Snapshot) ID() uuid.UUID { return s.id }

// Ring returns the pinned fusion ring.
func (s *Snapshot) Ring() fusion.Ring { return s.ring }

// Cache returns the recoupling cache shared across this computation's
// workers.
func (s *Snapshot) Cache() *kernel.Cache { return s.cache }
