// Package smolyak builds Smolyak sparse tensor bases from a univariate family.
//
// 🚀 What is a Smolyak basis?
//
//	A full tensor grid of m points per dimension costs m^N degrees of freedom.
//	A Smolyak basis keeps only the tensor blocks whose set indices satisfy
//
//	  Σ_k shape_k·(i_k − 1) <= level,
//
//	so the cost grows roughly like m·(log m)^(N−1) for the isotropic shape.
//	Nested families make every block contribute only NEW points and functions,
//	so nothing is counted twice.
//
// ✨ Operations:
//   - NewBasis          — validated, immutable descriptor (family, shape, level).
//   - DegreesOfFreedom  — d, counted without enumerating the admissible set.
//   - BasisMatrix       — d×d matrix A[p][q] = φ_q(x[p]) and the coordinates x,
//     assembled from per-dimension Kronecker blocks.
//   - Interpolate / InterpolatedBasis — evaluation at one arbitrary point, no matrix.
//   - EvaluateBatch     — many points, optionally parallel (WithWorkers).
//   - Fit               — solve A·c = f(x) and get an Interpolant.
//
// ⚙️ Usage:
//
//	b, _ := smolyak.NewBasis(univariate.NewChebyshev(), smolyak.Isotropic(2), 2)
//	u, _ := smolyak.Fit(b, func(x []float64) float64 { return x[0] * x[1] })
//	v, _ := u.Eval([]float64{0.3, -0.2}) // ≈ -0.06
//
// Ordering:
//
//	Blocks follow index.Domain.Enumerate (first dimension fastest) and inside a block
//	the first dimension varies fastest too. BasisMatrix rows, its coordinates and the
//	evaluator's basis vector all use this one order.
//
// A Basis is safe for concurrent use; options only affect execution, never results.
package smolyak
