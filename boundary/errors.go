// SPDX-License-Identifier: MIT
package boundary

import (
	"errors"
	"fmt"
)

// Error kinds. Every *Error returned by this package wraps exactly one of them.
var (
	// ErrMissingAlgorithmName indicates an empty algorithm name.
	ErrMissingAlgorithmName = errors.New("boundary: algorithm name not specified")

	// ErrUnknownAlgorithm indicates a name absent from the registry.
	ErrUnknownAlgorithm = errors.New("boundary: unknown algorithm")

	// ErrMissingDistances indicates no distance argument.
	ErrMissingDistances = errors.New("boundary: no distances supplied")

	// ErrMissingSequences indicates no sequence-name argument.
	ErrMissingSequences = errors.New("boundary: no sequences supplied")

	// ErrNotASequence indicates an argument that is not sequence-shaped.
	ErrNotASequence = errors.New("boundary: not a sequence")

	// ErrElementNotTextCoercible indicates a label that has no text form.
	ErrElementNotTextCoercible = errors.New("boundary: element not convertible to text")

	// ErrElementNotNumeric indicates a distance that has no float64 form.
	ErrElementNotNumeric = errors.New("boundary: element not numeric")

	// ErrWrongElementType indicates a typed array whose dtype is not float64.
	ErrWrongElementType = errors.New("boundary: typed array element type is not float64")

	// ErrWrongDimensionality indicates a typed array that is not 1-D or 2-D.
	ErrWrongDimensionality = errors.New("boundary: typed array must have 1 or 2 dimensions")

	// ErrTooFewSequences indicates fewer than three labels.
	ErrTooFewSequences = errors.New("boundary: fewer than 3 sequences")

	// ErrDistanceMatrixSizeMismatch indicates a distance count other than N².
	ErrDistanceMatrixSizeMismatch = errors.New("boundary: distance matrix size mismatch")

	// ErrConstructionFailed indicates the builder failed or returned no tree.
	ErrConstructionFailed = errors.New("boundary: tree construction failed")

	// ErrInvalidArguments indicates a keyword map that cannot be decoded.
	ErrInvalidArguments = errors.New("boundary: invalid arguments")
)

var codes = map[error]string{
	ErrMissingAlgorithmName:       "MISSING_ALGORITHM_NAME",
	ErrUnknownAlgorithm:           "UNKNOWN_ALGORITHM",
	ErrMissingDistances:           "MISSING_DISTANCES",
	ErrMissingSequences:           "MISSING_SEQUENCES",
	ErrNotASequence:               "NOT_A_SEQUENCE",
	ErrElementNotTextCoercible:    "ELEMENT_NOT_TEXT_COERCIBLE",
	ErrElementNotNumeric:          "ELEMENT_NOT_NUMERIC",
	ErrWrongElementType:           "WRONG_ELEMENT_TYPE",
	ErrWrongDimensionality:        "WRONG_DIMENSIONALITY",
	ErrTooFewSequences:            "TOO_FEW_SEQUENCES",
	ErrDistanceMatrixSizeMismatch: "DISTANCE_MATRIX_SIZE_MISMATCH",
	ErrConstructionFailed:         "CONSTRUCTION_FAILED",
	ErrInvalidArguments:           "INVALID_ARGUMENTS",
}

// Error is the single diagnostic produced by a failed call.
// Kind is one of the Err* sentinels; Cause, when set, is the underlying
// failure (builder error, decoder error).
type Error struct {
	Kind    error
	Message string
	Cause   error
}

// Error renders the caller-facing text, always prefixed with "Error: ".
func (e *Error) Error() string { return "Error: " + e.Message }

// Unwrap exposes Kind and Cause to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}

	return []error{e.Kind}
}

// Code returns a stable upper-snake identifier for Kind, e.g. "TOO_FEW_SEQUENCES".
func (e *Error) Code() string {
	if c, ok := codes[e.Kind]; ok {
		return c
	}

	return "UNKNOWN"
}

func newError(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// AsError extracts the *Error from err, if any.
func AsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)

	return e, ok
}
