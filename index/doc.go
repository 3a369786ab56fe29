// Package index enumerates capped Smolyak multi-indices and counts the degrees of
// freedom they carry.
//
// A Domain is fixed by a cap and a per-dimension shape. Its admissible multi-indices
// satisfy Σ shape_k·(i_k − 1) <= cap − N; Enumerate lists them in a stable odometer
// order (first dimension fastest), and that order is what the sparse-grid assembler
// and evaluator rely on to agree row for row.
//
// Counting does not need the enumeration: each dimension yields a Counts tally keyed
// by weighted cost, and CountCombinations folds the tallies with a budget-truncated
// convolution.
//
//	d, _ := index.NewDomain(4, []int{1, 1})   // N = 2, level 2
//	set := d.Enumerate()                      // (1,1) (2,1) (3,1) (1,2) (2,2) (1,3)
//
// ForEachTuple and Product are the small Cartesian-product helpers shared by the
// assembler and evaluator.
package index
