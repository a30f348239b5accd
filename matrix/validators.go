// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the shape and index checks used by Matrix.
//  - Return plain sentinels wrapped with the check's tag; facades add the
//    operation tag on top.
//
// All checks are pure and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf tags a sentinel with the validator that raised it.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeOf returns the extents encoded by R and C.
// Panics with ErrBadShape for non-positive extents or R*C > MaxElements.
func shapeOf[R, C Dim]() (rows, cols int) {
	var r R
	var c C
	rows, cols = r.Len(), c.Len()
	if rows <= 0 || cols <= 0 || rows*cols > MaxElements {
		panic(fmt.Errorf("%dx%d (capacity %d): %w", rows, cols, MaxElements, ErrBadShape))
	}

	return rows, cols
}

// validateLiteral checks that rows holds exactly r sequences of exactly c values.
func validateLiteral(rows [][]float32, r, c int) error {
	if len(rows) != r {
		return validatorErrorf("validateLiteral",
			fmt.Errorf("got %d rows, want %d: %w", len(rows), r, ErrShapeMismatch))
	}
	for i, row := range rows {
		if len(row) != c {
			return validatorErrorf("validateLiteral",
				fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrShapeMismatch))
		}
	}

	return nil
}

// validateIndex checks 0 <= row < r and 0 <= col < c.
func validateIndex(row, col, r, c int) error {
	if row < 0 || row >= r || col < 0 || col >= c {
		return validatorErrorf("validateIndex",
			fmt.Errorf("(%d,%d) outside %dx%d: %w", row, col, r, c, ErrIndexOutOfBounds))
	}

	return nil
}
