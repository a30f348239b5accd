// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "kernel: ..." so backend failures are easy
// to tell apart from matrix-level errors in logs. Wrap with kernelErrorf at
// the backend method boundary; callers match with errors.Is.
var (
	// ErrShape is returned when a descriptor has non-positive extents, a data
	// slice shorter than rows*cols, or shapes that do not conform for the
	// requested operation.
	ErrShape = errors.New("kernel: invalid descriptor shape")

	// ErrSingular is returned by Inverse when no pivot above the singularity
	// tolerance exists.
	ErrSingular = errors.New("kernel: singular matrix")

	// ErrUnknownBackend is returned by Lookup for an unregistered name.
	ErrUnknownBackend = errors.New("kernel: unknown backend")
)

// Operation tags used in wrapped errors.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opInverse   = "Inverse"
	opLookup    = "Lookup"
)

// kernelErrorf wraps err as "<backend>.<op>: <err>". err must be non-nil.
func kernelErrorf(backend, op string, err error) error {
	return fmt.Errorf("%s.%s: %w", backend, op, err)
}
