// Package sparsegrid builds Smolyak sparse tensor bases for polynomial
// interpolation in many dimensions, from univariate node families up to
// assembled interpolation systems and fitted interpolants.
//
// 🚀 What is sparsegrid?
//
//	A small, dependency-light library that brings together:
//		• Univariate families: Chebyshev/Clenshaw–Curtis and Leja nodes
//		• Index domains: weighted admissible multi-indices, odometer order
//		• Counting: exact degrees of freedom without enumerating points
//		• Assembly: the block-Kronecker basis matrix and its grid
//		• Evaluation: interpolate or expand the basis at any point
//		• Fitting: sample a function, solve, evaluate in batches
//
// Under the hood, everything is organized under four subpackages:
//
//	univariate/ — nested 1-D node families and Chebyshev Vandermonde blocks
//	index/      — admissible index domains, tuple iteration, count tables
//	matrix/     — dense row-major matrices, Kronecker products, LU solve
//	smolyak/    — Basis descriptor, DoF, BasisMatrix, Interpolate, Fit
//
// Quick sketch of a level-1 grid in 2-D (Clenshaw–Curtis):
//
//	        (0, 1)
//	          │
//	(-1,0)──(0,0)──(1,0)
//	          │
//	        (0,-1)
//
// Five points, five functions: T0, T1(x), T2(x), T1(y), T2(y).
//
// See examples/ for runnable scenarios.
package sparsegrid
