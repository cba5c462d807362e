// SPDX-License-Identifier: MIT

// Package ndarray: Dense is the concrete, row-major implementation of Array.
// Exactly one of the typed backing slices is non-nil, selected by dtype.
package ndarray

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, err error) error {
	return fmt.Errorf("Dense.%s: %w", method, err)
}

// Dense is a row-major n-dimensional array.
// shape holds the extents, data length == product(shape).
type Dense struct {
	dtype DType
	shape []int

	f64 []float64 // dtype == Float64
	f32 []float32 // dtype == Float32
	i64 []int64   // dtype == Int64
	i32 []int32   // dtype == Int32
}

// elements returns the product of the extents, or ErrBadShape on a negative extent.
// A zero-dimensional shape describes a scalar and has one element.
// Complexity: O(ndim).
func elements(shape []int) (int, error) {
	n := 1
	for _, extent := range shape {
		if extent < 0 {
			return 0, ErrBadShape
		}
		n *= extent
	}

	return n, nil
}

// newDense validates shape against length and copies the shape slice.
// Stage 1 (Validate): extents non-negative, product equals length.
// Stage 2 (Finalize): return a Dense with the dtype set and no storage bound.
func newDense(dtype DType, length int, shape []int) (*Dense, error) {
	n, err := elements(shape)
	if err != nil {
		return nil, err
	}
	if n != length {
		return nil, fmt.Errorf("%w: shape %v needs %d elements, got %d", ErrDataLength, shape, n, length)
	}

	return &Dense{dtype: dtype, shape: append([]int(nil), shape...)}, nil
}

// NewFloat64 wraps data as a Float64 array of the given shape without copying.
// Mutations through the array are visible in data and vice versa.
//
// Errors: ErrBadShape, ErrDataLength.
// Complexity: O(ndim).
func NewFloat64(data []float64, shape ...int) (*Dense, error) {
	d, err := newDense(Float64, len(data), shape)
	if err != nil {
		return nil, err
	}
	d.f64 = data

	return d, nil
}

// NewFloat32 wraps data as a Float32 array of the given shape without copying.
func NewFloat32(data []float32, shape ...int) (*Dense, error) {
	d, err := newDense(Float32, len(data), shape)
	if err != nil {
		return nil, err
	}
	d.f32 = data

	return d, nil
}

// NewInt64 wraps data as an Int64 array of the given shape without copying.
func NewInt64(data []int64, shape ...int) (*Dense, error) {
	d, err := newDense(Int64, len(data), shape)
	if err != nil {
		return nil, err
	}
	d.i64 = data

	return d, nil
}

// NewInt32 wraps data as an Int32 array of the given shape without copying.
func NewInt32(data []int32, shape ...int) (*Dense, error) {
	d, err := newDense(Int32, len(data), shape)
	if err != nil {
		return nil, err
	}
	d.i32 = data

	return d, nil
}

// Zeros allocates a zero-filled Float64 array of the given shape.
// Complexity: O(size) time and memory.
func Zeros(shape ...int) (*Dense, error) {
	n, err := elements(shape)
	if err != nil {
		return nil, err
	}

	return NewFloat64(make([]float64, n), shape...)
}

// DType reports the element type.
func (a *Dense) DType() DType { return a.dtype }

// NDim reports the number of dimensions.
func (a *Dense) NDim() int { return len(a.shape) }

// Shape returns a copy of the extents.
func (a *Dense) Shape() []int { return append([]int(nil), a.shape...) }

// Size returns the number of stored elements.
func (a *Dense) Size() int {
	switch a.dtype {
	case Float32:
		return len(a.f32)
	case Int64:
		return len(a.i64)
	case Int32:
		return len(a.i32)
	default:
		return len(a.f64)
	}
}

// Float64s returns the backing storage of a Float64 array, nil otherwise.
// Complexity: O(1), no copy.
func (a *Dense) Float64s() []float64 {
	if a.dtype != Float64 {
		return nil
	}

	return a.f64
}

// offset computes the flat row-major index for idx.
// Stage 1 (Validate): len(idx) == ndim and 0 ≤ idx[k] < shape[k].
// Stage 2 (Execute): accumulate offset = offset*extent + idx[k].
// Complexity: O(ndim).
func (a *Dense) offset(idx []int) (int, error) {
	if len(idx) != len(a.shape) {
		return 0, ErrOutOfRange
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			return 0, ErrOutOfRange
		}
		off = off*a.shape[k] + i
	}

	return off, nil
}

// At returns the element at idx converted to float64.
// Errors: ErrNilArray, ErrOutOfRange.
func (a *Dense) At(idx ...int) (float64, error) {
	if a == nil {
		return 0, denseErrorf("At", ErrNilArray)
	}
	off, err := a.offset(idx)
	if err != nil {
		return 0, denseErrorf("At", err)
	}

	return a.valueAt(off), nil
}

// valueAt reads the flat element off as float64; off must be in range.
func (a *Dense) valueAt(off int) float64 {
	switch a.dtype {
	case Float32:
		return float64(a.f32[off])
	case Int64:
		return float64(a.i64[off])
	case Int32:
		return float64(a.i32[off])
	default:
		return a.f64[off]
	}
}

// Set stores v at idx. Only Float64 arrays are writable through Set.
// Errors: ErrNilArray, ErrDType, ErrOutOfRange.
func (a *Dense) Set(v float64, idx ...int) error {
	if a == nil {
		return denseErrorf("Set", ErrNilArray)
	}
	if a.dtype != Float64 {
		return denseErrorf("Set", ErrDType)
	}
	off, err := a.offset(idx)
	if err != nil {
		return denseErrorf("Set", err)
	}
	a.f64[off] = v

	return nil
}

// Reshape returns a view with a new shape over the same storage.
// Errors: ErrBadShape, ErrDataLength.
// Complexity: O(ndim), no copy.
func (a *Dense) Reshape(shape ...int) (*Dense, error) {
	d, err := newDense(a.dtype, a.Size(), shape)
	if err != nil {
		return nil, denseErrorf("Reshape", err)
	}
	d.f64, d.f32, d.i64, d.i32 = a.f64, a.f32, a.i64, a.i32

	return d, nil
}

// AsFloat64 returns a Float64 copy of the array with the same shape.
// A Float64 source is copied too, so the result never aliases a.
// Complexity: O(size) time and memory.
func (a *Dense) AsFloat64() *Dense {
	out := make([]float64, a.Size())
	for i := range out {
		out[i] = a.valueAt(i)
	}

	return &Dense{dtype: Float64, shape: a.Shape(), f64: out}
}

// String implements fmt.Stringer for debugging: dtype, shape, flat values.
func (a *Dense) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s%v[", a.dtype, a.shape)
	for i, n := 0, a.Size(); i < n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", a.valueAt(i))
	}
	sb.WriteString("]")

	return sb.String()
}

var _ Array = (*Dense)(nil)
