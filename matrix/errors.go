// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Operations return these sentinels wrapped once with the operation tag via
// matrixErrorf; tests and callers match them with errors.Is.
// Panics are reserved for programmer errors: an invalid Dim marker or a
// backend that breaks its contract.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when a literal does not have exactly R rows
	// of C values. Nothing is truncated or zero-padded.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrIndexOutOfBounds indicates a row or column outside the declared extents.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrSingularMatrix is returned by Inverse when the backend reports that
	// no well-defined inverse exists.
	ErrSingularMatrix = errors.New("matrix: singular matrix")

	// ErrBackendFailure marks a backend error other than singularity. It is
	// raised as a panic value since it means the backend broke its contract.
	ErrBackendFailure = errors.New("matrix: backend failure")

	// ErrBadShape marks a Dim marker with a non-positive extent or a shape
	// whose element count exceeds MaxElements. Raised as a panic value.
	ErrBadShape = errors.New("matrix: invalid shape")
)

// Operation tags for uniform error wrapping.
const (
	opFromRows  = "FromRows"
	opAt        = "At"
	opSet       = "Set"
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opInverse   = "Inverse"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// err must be non-nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
