// SPDX-License-Identifier: MIT

// Package boundary turns loosely typed tree-construction requests into
// validated native buffers and dispatches them to a named Builder.
//
// 🚀 What is it?
//
//	Callers hand over an algorithm name, a list of taxon labels and a
//	distance matrix in whatever shape they have at hand: a []any decoded
//	from JSON, a []float64, a [][]float64, a custom Sequence, or an
//	ndarray.Array that already knows its element type and shape.
//	boundary checks every precondition in a fixed order, stops at the first
//	failure and reports it as a single *Error whose text begins "Error: ".
//
// ✨ Validation order (first failure wins):
//  1. algorithm name present            → ErrMissingAlgorithmName
//  2. algorithm registered              → ErrUnknownAlgorithm
//  3. distances present                 → ErrMissingDistances
//  4. sequences collected, at least 3   → ErrMissingSequences, ErrNotASequence,
//     ErrElementNotTextCoercible, ErrTooFewSequences
//  5. distances materialised, N² values → ErrWrongElementType,
//     ErrWrongDimensionality, ErrNotASequence, ErrElementNotNumeric,
//     ErrDistanceMatrixSizeMismatch
//
// Then the thread count is applied, the builder runs, and a failure or an
// empty tree is reported as ErrConstructionFailed.
//
// Distance paths:
//
//   - ndarray.Array: borrowed. The Float64 backing slice is passed to the
//     builder without a copy and is not retained after the call returns.
//   - any other sequence: owned. Each element is coerced to float64 into a
//     fresh slice.
//
// ⚙️ Usage:
//
//	tree, err := boundary.ConstructTree(boundary.Request{
//	  Algorithm: "NJ",
//	  Sequences: []string{"A", "B", "C"},
//	  Distances: []float64{0, 1, 2, 1, 0, 3, 2, 3, 0},
//	})
//	if errors.Is(err, boundary.ErrTooFewSequences) {
//	  // ...
//	}
//
// Threads:
//
//	NumberOfThreads > 0 sets the process-wide starttree worker count for this
//	and every later call. Values above starttree.MaxWorkers() are ignored.
//	Concurrent calls asking for different counts race on that setting.
package boundary
