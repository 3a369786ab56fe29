// Package matrix offers the dense linear-algebra primitives used by the sparse-grid
// packages.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return errors)
//     and a finite-only numeric policy.
//   - Kron / KronAll for Kronecker products and Dense.SetBlock for writing blocks
//     into a pre-sized arena at computed offsets.
//   - Transpose, MatVec and AllClose with *Dense fast paths.
//   - Solve, a pivoted LU solve backed by gonum.
//
// All kernels validate their inputs and return sentinel errors (see errors.go)
// wrapped with an operation tag; match them with errors.Is.
//
// Dense matrices are best for the small-to-medium systems produced by Smolyak
// bases, where O(d²) memory and O(d³) solves are acceptable.
package matrix
