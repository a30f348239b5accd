// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Matrix is an R×C matrix of float32 values with a compile-time shape.
//
// Storage is a fixed array held inside the value, so a Matrix never touches
// the heap by itself and plain assignment copies it. Only the first R*C
// entries are meaningful; they are laid out column-major, with element (i, j)
// at index R*j+i.
//
// The zero value is a valid all-zero matrix.
type Matrix[R, C Dim] struct {
	data [MaxElements]float32
}

// New returns a zero-filled R×C matrix.
// Panics with ErrBadShape if R or C is not a valid extent.
func New[R, C Dim]() Matrix[R, C] {
	shapeOf[R, C]()

	return Matrix[R, C]{}
}

// FromRows builds a matrix from a row-major literal: exactly R rows, each
// holding exactly C values. Any other shape yields ErrShapeMismatch.
//
// Stage 1 (Validate): outer length == R, every inner length == C.
// Stage 2 (Execute): copy into column-major storage.
// Complexity: O(R*C).
func FromRows[R, C Dim](rows [][]float32) (Matrix[R, C], error) {
	r, c := shapeOf[R, C]()
	if err := validateLiteral(rows, r, c); err != nil {
		return Matrix[R, C]{}, matrixErrorf(opFromRows, err)
	}

	var m Matrix[R, C]
	for i, row := range rows {
		for j, v := range row {
			m.data[r*j+i] = v
		}
	}

	return m, nil
}

// MustFromRows is like FromRows but panics on error. Intended for literal
// fixtures whose shape is known to be right.
func MustFromRows[R, C Dim](rows [][]float32) Matrix[R, C] {
	m, err := FromRows[R, C](rows)
	if err != nil {
		panic(err)
	}

	return m
}

// NewIdentity returns a zero matrix with ones on the main diagonal.
func NewIdentity[R, C Dim]() Matrix[R, C] {
	m := New[R, C]()
	m.Identity()

	return m
}

// Rows returns R. Complexity: O(1).
func (m Matrix[R, C]) Rows() int {
	var r R

	return r.Len()
}

// Cols returns C. Complexity: O(1).
func (m Matrix[R, C]) Cols() int {
	var c C

	return c.Len()
}

// Shape returns (R, C).
func (m Matrix[R, C]) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// At returns element (row, col), or ErrIndexOutOfBounds.
func (m Matrix[R, C]) At(row, col int) (float32, error) {
	r, c := shapeOf[R, C]()
	if err := validateIndex(row, col, r, c); err != nil {
		return 0, matrixErrorf(opAt, err)
	}

	return m.data[r*col+row], nil
}

// Set assigns v at (row, col), or returns ErrIndexOutOfBounds.
func (m *Matrix[R, C]) Set(row, col int, v float32) error {
	r, c := shapeOf[R, C]()
	if err := validateIndex(row, col, r, c); err != nil {
		return matrixErrorf(opSet, err)
	}
	m.data[r*col+row] = v

	return nil
}

// Identity sets every diagonal element (i, i), i < min(R, C), to 1 and
// leaves all other elements as they were. It does not reset the matrix:
// apply it to a zero matrix to get the canonical identity.
// Returns m for chaining.
func (m *Matrix[R, C]) Identity() *Matrix[R, C] {
	r, c := shapeOf[R, C]()
	for i := 0; i < min(r, c); i++ {
		m.data[r*i+i] = 1
	}

	return m
}

// Assign copies src into m's storage and returns m for chaining.
func (m *Matrix[R, C]) Assign(src Matrix[R, C]) *Matrix[R, C] {
	r, c := shapeOf[R, C]()
	copy(m.data[:r*c], src.data[:r*c])

	return m
}

// Data returns the R*C meaningful elements in column-major order.
// The slice aliases m's storage.
func (m *Matrix[R, C]) Data() []float32 {
	r, c := shapeOf[R, C]()

	return m.data[:r*c]
}

// ToRows returns a row-major copy of the matrix.
func (m Matrix[R, C]) ToRows() [][]float32 {
	r, c := shapeOf[R, C]()
	out := make([][]float32, r)
	for i := range out {
		out[i] = make([]float32, c)
		for j := range out[i] {
			out[i][j] = m.data[r*j+i]
		}
	}

	return out
}

// String renders one bracketed row per line, for debugging.
func (m Matrix[R, C]) String() string {
	r, c := shapeOf[R, C]()
	var sb strings.Builder
	for i := 0; i < r; i++ {
		sb.WriteByte('[')
		for j := 0; j < c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[r*j+i])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
