// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures (the reference program's literals).
//   - Backend switching that always restores the previous backend.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/fixmat/kernel"
	"github.com/katalvlaran/fixmat/matrix"
)

// Reference literals.
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

// useBackend installs b for the duration of the test.
// Tests calling it must not run in parallel with each other.
func useBackend(t testing.TB, b kernel.Backend) {
	t.Helper()
	prev := matrix.Use(b)
	t.Cleanup(func() { matrix.Use(prev) })
}

// randomFill writes deterministic values in [-1, 1) into m.
func randomFill[R, C matrix.Dim](m *matrix.Matrix[R, C], seed int64) {
	rng := rand.New(rand.NewSource(seed))
	data := m.Data()
	for k := range data {
		data[k] = rng.Float32()*2 - 1
	}
}

// diagDominant returns a well-conditioned random square matrix.
func diagDominant[N matrix.Dim](seed int64) matrix.Matrix[N, N] {
	m := matrix.New[N, N]()
	randomFill(&m, seed)
	n := m.Rows()
	for i := 0; i < n; i++ {
		v, _ := m.At(i, i)
		_ = m.Set(i, i, v+float32(n))
	}

	return m
}

// maxAbsDiff returns max |a[k]-b[k]| over two equally-shaped matrices.
func maxAbsDiff[R, C matrix.Dim](a, b matrix.Matrix[R, C]) float64 {
	da, db := a.Data(), b.Data()
	worst := 0.0
	for k := range da {
		worst = math.Max(worst, math.Abs(float64(da[k])-float64(db[k])))
	}

	return worst
}
