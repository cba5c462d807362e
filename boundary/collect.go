// SPDX-License-Identifier: MIT
package boundary

import (
	"errors"

	"github.com/katalvlaran/decenttree/ndarray"
)

// Buffer is a validated distance buffer.
// Borrowed buffers alias caller memory and are valid only for the call that
// produced them; owned buffers were freshly allocated by the collector.
type Buffer struct {
	Data     []float64
	Borrowed bool
}

// Len returns the element count.
func (b Buffer) Len() int { return len(b.Data) }

// Strings collects the labels in seq, coercing each element to text.
// arg names the argument in diagnostics.
//
// Errors: ErrNotASequence, ErrElementNotTextCoercible.
// Complexity: O(n).
func Strings(arg string, seq any) ([]string, error) {
	if labels, ok := seq.([]string); ok {
		return append([]string(nil), labels...), nil
	}
	s, ok := asSequence(seq)
	if !ok {
		return nil, newError(ErrNotASequence, "%s is not a sequence.", arg)
	}

	n := s.Len()
	out := make([]string, n)
	for i := 0; i < n; i++ {
		text, err := toText(s.At(i))
		if err != nil {
			e := newError(ErrElementNotTextCoercible, "%s could not convert item %d to string.", arg, i)
			e.Cause = err

			return nil, e
		}
		out[i] = text
	}

	return out, nil
}

// Float64s collects the numbers in seq into a freshly allocated buffer.
// arg names the argument in diagnostics.
//
// Errors: ErrNotASequence, ErrElementNotNumeric.
// Complexity: O(n).
func Float64s(arg string, seq any) ([]float64, error) {
	if values, ok := seq.([]float64); ok {
		return append([]float64(nil), values...), nil
	}
	s, ok := asSequence(seq)
	if !ok {
		return nil, newError(ErrNotASequence, "%s is not a sequence.", arg)
	}

	n := s.Len()
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := toFloat(s.At(i))
		if err != nil {
			e := newError(ErrElementNotNumeric, "%s could not convert item %d to double.", arg, i)
			e.Cause = err

			return nil, e
		}
		out[i] = v
	}

	return out, nil
}

// ReadTyped validates a typed array and borrows its backing storage.
// Stage 1 (Validate): dtype is Float64, rank is 1 or 2.
// Stage 2 (Expose): element count is the product of the extents; the
// Float64 slice is returned without a copy.
//
// Errors: ErrMissingDistances (nil array), ErrWrongElementType (also when
// the storage is shorter than the shape), ErrWrongDimensionality.
// Complexity: O(ndim).
func ReadTyped(a ndarray.Array) (Buffer, error) {
	if err := ndarray.ValidateFloat64Matrix(a); err != nil {
		switch {
		case errors.Is(err, ndarray.ErrNilArray):
			return Buffer{}, newError(ErrMissingDistances, "No distances were supplied")
		case errors.Is(err, ndarray.ErrDType):
			return Buffer{}, newError(ErrWrongElementType,
				"distance matrix is not a matrix of type float64 (element type is %s).", a.DType())
		default:
			return Buffer{}, newError(ErrWrongDimensionality,
				"distance matrix has %d dimensions (only 1 and 2 dimensional matrices are allowed).", a.NDim())
		}
	}

	count := 1
	for _, extent := range a.Shape() {
		if extent < 0 {
			count = -1
			break
		}
		count *= extent
	}
	data := a.Float64s()
	if count < 0 || len(data) < count {
		return Buffer{}, newError(ErrWrongElementType,
			"distance matrix of shape %v does not expose its float64 storage (%d values available).",
			a.Shape(), len(data))
	}

	return Buffer{Data: data[:count], Borrowed: true}, nil
}

// distancesBuffer picks the typed path for ndarray.Array values and the
// copying path for everything else.
func distancesBuffer(v any) (Buffer, error) {
	if a, ok := v.(ndarray.Array); ok {
		return ReadTyped(a)
	}
	data, err := Float64s("distances", v)
	if err != nil {
		return Buffer{}, err
	}

	return Buffer{Data: data}, nil
}
