// Package worker runs one worker's slice of a generator computation and
// buffers its results until the orchestrator drains them.
//
// A Snapshot pins the read-only fusion-ring state and the shared recoupling
// cache for the lifetime of one generator computation; every worker of that
// computation holds the same Snapshot and none may mutate the ring while it
// runs. Batches record the snapshot identity so the aggregator can reject
// results that were produced against a different snapshot.
package worker
