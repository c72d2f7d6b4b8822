// Package algebra provides the scalar domain the braid-generator kernels
// compute in: exact field elements (rationals, cyclotomic fields) and sparse
// polynomials in formal recoupling unknowns, unified behind a single Value
// sum type with a flat, process-transferable encoding.
//
// Which Value variant occurs is decided at construction time: a fusion ring
// whose recoupling data is fully pinned produces field scalars, one with
// unsolved F-symbols produces polynomials in the corresponding unknowns.
package algebra
