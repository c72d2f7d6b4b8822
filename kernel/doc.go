// Package kernel computes braid-generator matrix entries from fusion-ring
// primitives: the two atomic two-strand braiding coefficients (memoized in a
// Cache shared by all workers of one computation) and the per-row generator
// kernels.
//
// Work is partitioned across workers by a global iteration counter taken
// modulo the worker count, in a fixed iteration order. Every candidate
// combination is therefore visited by exactly one worker with no
// coordination, and the union of all workers' outputs is independent of the
// worker count.
package kernel
