// SPDX-License-Identifier: MIT
// Package kernel_test contains shared fixtures for backend tests.
//
// Fixtures are written row-major (the natural literal order) and converted to
// column-major descriptors by colMajor.

package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/kernel"
)

// fixtureEps is the tolerance used by the reference program's checks.
const fixtureEps = 1e-5

// colMajor builds a descriptor from a row-major literal.
func colMajor(rows [][]float32) kernel.Descriptor {
	r, c := len(rows), len(rows[0])
	d := kernel.Descriptor{Rows: r, Cols: c, Data: make([]float32, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			d.Data[r*j+i] = rows[i][j]
		}
	}

	return d
}

// zeros allocates an r×c descriptor filled with zeros.
func zeros(r, c int) kernel.Descriptor {
	return kernel.Descriptor{Rows: r, Cols: c, Data: make([]float32, r*c)}
}

// fill allocates an r×c descriptor filled with v.
func fill(r, c int, v float32) kernel.Descriptor {
	d := zeros(r, c)
	for k := range d.Data {
		d.Data[k] = v
	}

	return d
}

// requireClose asserts shape equality and |want-got| <= eps element-wise.
func requireClose(t *testing.T, want, got kernel.Descriptor, eps float64) {
	t.Helper()
	require.Equal(t, want.Rows, got.Rows, "rows")
	require.Equal(t, want.Cols, got.Cols, "cols")
	for i := 0; i < want.Rows; i++ {
		for j := 0; j < want.Cols; j++ {
			w, g := float64(want.At(i, j)), float64(got.At(i, j))
			if math.Abs(w-g) > eps {
				t.Fatalf("(%d,%d): want %v, got %v (eps %g)", i, j, w, g, eps)
			}
		}
	}
}

// Literal fixtures shared by the suites.
var (
	addA = [][]float32{{1.75, 2.45, 3.12}, {5.14, 6.65, 8.17}, {-9.234, 10.241, 12.1322}}
	addB = [][]float32{{-1.11, 3.65, 6.12}, {-0.41, -2.65, 8.17}, {4.234, -11.251, 8.192}}

	addWant = [][]float32{{0.64, 6.1, 9.24}, {4.73, 4.0, 16.34}, {-5.0, -1.01, 20.3242}}
	subWant = [][]float32{{2.86, -1.2, -3.0}, {5.55, 9.3, 0.0}, {-13.468, 21.492, 3.9402}}

	mulA    = [][]float32{{13, 15, 1}, {5, 9, 11}, {34, 24, 2}, {17, 2, 6}}
	mulB    = [][]float32{{3, 7, 31, 17}, {5, 21, 45, 5}, {9, 11, 3, 16}}
	mulWant = [][]float32{
		{123, 417, 1081, 312},
		{159, 345, 593, 306},
		{240, 764, 2140, 730},
		{115, 227, 635, 395},
	}

	invA    = [][]float32{{1, 2, 3}, {5, 6, 8}, {9, 10, 12}}
	invWant = [][]float32{{-2, 1.5, -0.5}, {3, -3.75, 1.75}, {-1, 2, -1}}
)
