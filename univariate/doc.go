// Package univariate provides the one-dimensional building blocks of Smolyak
// sparse grids: nested point sequences paired with basis functions.
//
// 🚀 What is a univariate family?
//
//	A family hands out points and functions in "set indices" 1, 2, 3, ...
//	Set index i adds SetLength(i) new points and the same number of new
//	functions, stored at offsets SetRange(i) of the shared arrays:
//
//	  set:    1 | 2     | 3         | 4 ...
//	  points: 0 | -1, 1 | ±0.707    | ...      (Chebyshev extrema)
//	  funcs:  T0| T1, T2| T3, T4    | ...
//
// ✨ Families:
//   - Chebyshev — Clenshaw–Curtis doubling rule m(i) = 2^(i-1)+1.
//   - Leja      — discrete Leja sequence, linear growth (WithGrowth, default 2).
//
// Both evaluate Chebyshev polynomials T_n via the three-term recurrence and can be
// mapped onto any finite interval with WithInterval(a, b).
//
// ⚙️ Usage:
//
//	fam := univariate.NewChebyshev(univariate.WithInterval(0, 1))
//	pts, _ := fam.Gridpoints(3)       // 5 nested points
//	vals, _ := fam.Evaluate(3, pts)   // 5×5, rows = T0..T4, cols = points
//
// Families are immutable and safe for concurrent use.
package univariate
