// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//  - Provide the canonical metadata checks used by readers of typed arrays.
//  - Return tagged sentinel errors so call sites can match with errors.Is.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → DType → Rank).
//  - All checks are O(1) or O(ndim) and allocate nothing on success.

package ndarray

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the array reference is non-nil, including a typed nil *Dense.
//
// Returns ErrNilArray on a nil reference.
// Complexity: O(1).
func ValidateNotNil(a Array) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArray)
	}
	if d, ok := a.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArray)
	}

	return nil
}

// ValidateDType ensures the array stores elements of type want.
//
// Implementation: assumes a is not nil (caller must ensure).
// Returns wrapped ErrDType on mismatch.
// Complexity: O(1).
func ValidateDType(a Array, want DType) error {
	if a.DType() != want {
		return validatorErrorf("ValidateDType", fmt.Errorf("%w: have %s, want %s", ErrDType, a.DType(), want))
	}

	return nil
}

// ValidateRank ensures minDims ≤ a.NDim() ≤ maxDims.
//
// Implementation: assumes a is not nil (caller must ensure).
// Returns wrapped ErrRank on violation.
// Complexity: O(1).
func ValidateRank(a Array, minDims, maxDims int) error {
	if nd := a.NDim(); nd < minDims || nd > maxDims {
		return validatorErrorf("ValidateRank", fmt.Errorf("%w: %d not in [%d, %d]", ErrRank, nd, minDims, maxDims))
	}

	return nil
}

// ValidateFloat64Matrix – Composite: NotNil → DType(Float64) → Rank(1..2).
//
// This is the acceptance rule for a borrowed distance buffer: a flat vector
// or a 2-D matrix of doubles. Size is not checked here; the caller knows N.
// Errors: ErrNilArray, ErrDType, ErrRank (first failure wins).
// Complexity: O(1).
func ValidateFloat64Matrix(a Array) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateFloat64Matrix", err)
	}
	if err := ValidateDType(a, Float64); err != nil {
		return validatorErrorf("ValidateFloat64Matrix", err)
	}
	if err := ValidateRank(a, 1, 2); err != nil {
		return validatorErrorf("ValidateFloat64Matrix", err)
	}

	return nil
}
