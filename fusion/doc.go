// Package fusion declares the fusion-ring collaborator interface consumed by
// the braid-generator kernels, the computational-basis machinery (fusion-tree
// leaf-label tuples and their dense index) and the generator specification.
//
// How a ring derives its fusion multiplicities, F-matrices and R-matrices is
// an external concern; this package only states the contract the
// kernels rely on.
package fusion
