// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// Every message is prefixed with "ndarray: ..." for easy grepping across logs.
// Callers match with errors.Is; context is attached with fmt.Errorf("%w").

package ndarray

import "errors"

var (
	// ErrNilArray indicates that a nil *Dense (receiver or argument) was used.
	ErrNilArray = errors.New("ndarray: nil array")

	// ErrBadShape is returned when a shape is empty or has a negative extent.
	ErrBadShape = errors.New("ndarray: invalid shape")

	// ErrDataLength is returned when the backing slice length differs from
	// the product of the shape extents.
	ErrDataLength = errors.New("ndarray: data length does not match shape")

	// ErrOutOfRange indicates that an index is outside valid bounds or that
	// the number of indices differs from the number of dimensions.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrDType is returned when an operation requires a different element type.
	ErrDType = errors.New("ndarray: unexpected element type")

	// ErrRank is returned when the number of dimensions is outside an allowed range.
	ErrRank = errors.New("ndarray: unexpected number of dimensions")
)
