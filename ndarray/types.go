// SPDX-License-Identifier: MIT

// Package ndarray: element types and the read-only Array view.
package ndarray

// DType identifies the element type stored by an array.
type DType int

const (
	// Float64 is IEEE-754 double precision (the only type accepted as a distance buffer).
	Float64 DType = iota

	// Float32 is IEEE-754 single precision.
	Float32

	// Int64 is a signed 64-bit integer.
	Int64

	// Int32 is a signed 32-bit integer.
	Int32
)

// String returns the conventional lower-case dtype name.
func (d DType) String() string {
	switch d {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int64:
		return "int64"
	case Int32:
		return "int32"
	default:
		return "unknown"
	}
}

// Array is the read-only view consumed by readers that only need metadata
// and, for Float64 arrays, the backing storage.
//
// Complexity notes: DType, NDim and Size are O(1); Shape is O(ndim).
type Array interface {
	// DType reports the element type.
	DType() DType

	// NDim reports the number of dimensions.
	NDim() int

	// Shape returns a copy of the extents, outermost first.
	Shape() []int

	// Size returns the product of all extents.
	Size() int

	// Float64s returns the backing storage when DType() == Float64, nil otherwise.
	// The slice aliases the array; callers must not retain it past the
	// lifetime they were granted.
	Float64s() []float64
}
