// SPDX-License-Identifier: MIT

package kernel

import "fmt"

// MaxOrder is the largest square order the software backend inverts using
// fixed-size scratch space. Larger inputs are still handled, with heap scratch.
const MaxOrder = 12

// MaxElements is the element capacity matching MaxOrder×MaxOrder.
const MaxElements = MaxOrder * MaxOrder

// Descriptor is a non-owning view of a column-major matrix.
// Element (i, j) lives at Data[Rows*j+i]. Only the first Rows*Cols entries of
// Data are read or written.
type Descriptor struct {
	Rows int       // number of rows
	Cols int       // number of columns
	Data []float32 // column-major storage, len(Data) >= Rows*Cols
}

// Len returns the number of meaningful elements (Rows*Cols).
func (d Descriptor) Len() int { return d.Rows * d.Cols }

// At returns element (i, j) without bounds checking beyond the slice's own.
func (d Descriptor) At(i, j int) float32 { return d.Data[d.Rows*j+i] }

// String renders the shape for error messages.
func (d Descriptor) String() string { return fmt.Sprintf("%dx%d", d.Rows, d.Cols) }

// validateDescriptor checks extents and backing length.
// Returns a plain ErrShape wrapped with the offending shape.
func validateDescriptor(d Descriptor) error {
	if d.Rows <= 0 || d.Cols <= 0 {
		return fmt.Errorf("%v: extents: %w", d, ErrShape)
	}
	if len(d.Data) < d.Len() {
		return fmt.Errorf("%v: data length %d: %w", d, len(d.Data), ErrShape)
	}

	return nil
}

// validateSameShape checks that every descriptor is valid and has the shape
// of the first one. Used by Add and Sub.
func validateSameShape(ds ...Descriptor) error {
	for _, d := range ds {
		if err := validateDescriptor(d); err != nil {
			return err
		}
		if d.Rows != ds[0].Rows || d.Cols != ds[0].Cols {
			return fmt.Errorf("%v vs %v: %w", ds[0], d, ErrShape)
		}
	}

	return nil
}

// validateMulCompatible checks (m×n)·(n×p) → (m×p).
func validateMulCompatible(lhs, rhs, out Descriptor) error {
	for _, d := range []Descriptor{lhs, rhs, out} {
		if err := validateDescriptor(d); err != nil {
			return err
		}
	}
	if lhs.Cols != rhs.Rows {
		return fmt.Errorf("inner %v·%v: %w", lhs, rhs, ErrShape)
	}
	if out.Rows != lhs.Rows || out.Cols != rhs.Cols {
		return fmt.Errorf("result %v for %v·%v: %w", out, lhs, rhs, ErrShape)
	}

	return nil
}

// validateTransposed checks that out has the swapped shape of in.
func validateTransposed(in, out Descriptor) error {
	if err := validateDescriptor(in); err != nil {
		return err
	}
	if err := validateDescriptor(out); err != nil {
		return err
	}
	if out.Rows != in.Cols || out.Cols != in.Rows {
		return fmt.Errorf("%v -> %v: %w", in, out, ErrShape)
	}

	return nil
}

// validateSquarePair checks that in is square and out matches it.
func validateSquarePair(in, out Descriptor) error {
	if err := validateSameShape(in, out); err != nil {
		return err
	}
	if in.Rows != in.Cols {
		return fmt.Errorf("non-square %v: %w", in, ErrShape)
	}

	return nil
}
