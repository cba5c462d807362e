// SPDX-License-Identifier: MIT

// Package ndarray provides a typed, n-dimensional numeric array with a flat
// row-major backing slice.
//
// 🚀 What is it for?
//
//	Distance matrices arrive at the boundary either as loose sequences of
//	numbers or as arrays that already carry native metadata (element type
//	and shape). ndarray models the second kind: it knows its DType and its
//	Shape, and it hands out its backing storage without copying.
//
// ✨ Key features:
//   - DType-tagged storage: Float64, Float32, Int64, Int32
//   - zero-copy constructors (NewFloat64 wraps the caller's slice)
//   - Float64s() exposes the backing []float64 only for Float64 arrays
//   - Reshape shares storage; AsFloat64 converts with a copy
//   - sentinel errors for every user-triggered failure (errors.Is friendly)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/decenttree/ndarray"
//
//	data := []float64{0, 1, 2, 1, 0, 3, 2, 3, 0}
//	a, err := ndarray.NewFloat64(data, 3, 3) // no copy: a.Float64s() aliases data
//	if err != nil {
//	  // ErrBadShape or ErrDataLength
//	}
//
// Complexity:
//
//   - Construction: O(ndim) (validation only, storage is wrapped)
//   - At/Set:       O(ndim)
//   - AsFloat64:    O(size) time and memory
package ndarray
