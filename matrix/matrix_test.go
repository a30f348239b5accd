// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for construction, indexing and the
// in-place operations of Matrix.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/matrix"
)

func TestNew_DefaultZero(t *testing.T) {
	m := matrix.New[matrix.D4, matrix.D3]()
	require.Equal(t, 4, m.Rows())
	require.Equal(t, 3, m.Cols())
	for i := 0; i < 4; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			require.Zero(t, v, "element [%d,%d] of a new matrix must be 0", i, j)
		}
	}

	var zero matrix.Matrix[matrix.D2, matrix.D2]
	require.True(t, zero.IsEqual(matrix.New[matrix.D2, matrix.D2](), 0))
}

func TestFromRows_ColumnMajorLayout(t *testing.T) {
	m, err := matrix.FromRows[matrix.D2, matrix.D3]([][]float32{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	require.Equal(t, []float32{1, 4, 2, 5, 3, 6}, m.Data())
	require.Equal(t, [][]float32{{1, 2, 3}, {4, 5, 6}}, m.ToRows())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, float32(6), v)
}

func TestFromRows_ShapeMismatch(t *testing.T) {
	cases := map[string][][]float32{
		"too few rows":  {{1, 2}},
		"too many rows": {{1, 2}, {3, 4}, {5, 6}},
		"short row":     {{1, 2}, {3}},
		"long row":      {{1, 2, 3}, {4, 5}},
		"nil":           nil,
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := matrix.FromRows[matrix.D2, matrix.D2](rows)
			require.ErrorIs(t, err, matrix.ErrShapeMismatch)
			require.True(t, m.IsEqual(matrix.New[matrix.D2, matrix.D2](), 0), "no partial result")
		})
	}

	require.Panics(t, func() { matrix.MustFromRows[matrix.D2, matrix.D2]([][]float32{{1}}) })
}

func TestAtSet_OutOfBounds(t *testing.T) {
	m := matrix.New[matrix.D2, matrix.D3]()
	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 3}, {5, 5}} {
		t.Run(fmt.Sprintf("%d,%d", idx[0], idx[1]), func(t *testing.T) {
			_, err := m.At(idx[0], idx[1])
			require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
			require.ErrorIs(t, m.Set(idx[0], idx[1], 1), matrix.ErrIndexOutOfBounds)
		})
	}

	require.NoError(t, m.Set(1, 2, 7))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, float32(7), v)
}

func TestIdentity_OnZeroIsCanonical(t *testing.T) {
	m := matrix.New[matrix.D3, matrix.D3]()
	got := m.Identity()
	require.Same(t, &m, got, "Identity must return its receiver")

	want := matrix.MustFromRows[matrix.D3, matrix.D3]([][]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	require.True(t, m.IsEqual(want, matrix.DefaultEpsilon))
	require.True(t, matrix.NewIdentity[matrix.D3, matrix.D3]().IsEqual(want, 0))
}

// TestIdentity_KeepsOffDiagonal pins the "set diagonal to one" semantics.
func TestIdentity_KeepsOffDiagonal(t *testing.T) {
	m := matrix.MustFromRows[matrix.D3, matrix.D3]([][]float32{{5, 2, 3}, {4, 5, 6}, {7, 8, 9}})
	m.Identity()

	want := matrix.MustFromRows[matrix.D3, matrix.D3]([][]float32{{1, 2, 3}, {4, 1, 6}, {7, 8, 1}})
	require.True(t, m.IsEqual(want, 0))
}

func TestIdentity_NonSquare(t *testing.T) {
	wide := matrix.NewIdentity[matrix.D2, matrix.D4]()
	require.Equal(t, [][]float32{{1, 0, 0, 0}, {0, 1, 0, 0}}, wide.ToRows())

	tall := matrix.NewIdentity[matrix.D3, matrix.D2]()
	require.Equal(t, [][]float32{{1, 0}, {0, 1}, {0, 0}}, tall.ToRows())
}

func TestAssign_CopiesAndChains(t *testing.T) {
	src := matrix.MustFromRows[matrix.D2, matrix.D2]([][]float32{{1, 2}, {3, 4}})
	var dst matrix.Matrix[matrix.D2, matrix.D2]

	got := dst.Assign(src).Identity()
	require.Same(t, &dst, got)
	require.Equal(t, [][]float32{{1, 2}, {3, 1}}, dst.ToRows())
	require.Equal(t, [][]float32{{1, 2}, {3, 4}}, src.ToRows(), "source must not change")
}

// TestValueSemantics checks that plain assignment copies storage.
func TestValueSemantics(t *testing.T) {
	a := matrix.MustFromRows[matrix.D2, matrix.D2]([][]float32{{1, 2}, {3, 4}})
	b := a
	require.NoError(t, b.Set(0, 0, 9))

	v, _ := a.At(0, 0)
	require.Equal(t, float32(1), v)
}

func TestString(t *testing.T) {
	m := matrix.MustFromRows[matrix.D2, matrix.D2]([][]float32{{1, 2.5}, {-3, 0}})
	require.Equal(t, "[1, 2.5]\n[-3, 0]\n", m.String())
}

// d13 is a caller-declared extent: 13×13 exceeds MaxElements, 13×4 does not.
type d13 struct{}

func (d13) Len() int { return 13 }

// dZero is an invalid extent.
type dZero struct{}

func (dZero) Len() int { return 0 }

func TestCustomDims(t *testing.T) {
	tall := matrix.New[d13, matrix.D4]()
	require.Equal(t, 13, tall.Rows())
	require.Len(t, tall.Data(), 52)

	require.PanicsWithError(t, "13x13 (capacity 144): matrix: invalid shape", func() {
		matrix.New[d13, d13]()
	})
	require.Panics(t, func() { matrix.New[dZero, matrix.D1]() })
}

// TestIsEqual pins the comparison contract on a single differing element.
func TestIsEqual(t *testing.T) {
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := []struct {
		name string
		a, b float32
		eps  float32
		want bool
	}{
		{"identical, zero eps", 3.5, 3.5, 0, true},
		{"difference equals eps", 1, 1.25, 0.25, true},
		{"difference equals eps, swapped", 1.25, 1, 0.25, true},
		{"just over eps", 1, 1.25, math.Nextafter32(0.25, 0), false},
		{"one ulp apart, zero eps", 1, math.Nextafter32(1, 2), 0, false},
		{"NaN left", nan, 1, 1e30, false},
		{"NaN right", 1, nan, 1e30, false},
		{"NaN both", nan, nan, 1e30, false},
		{"same +Inf", inf, inf, 0, true},
		{"same -Inf", -inf, -inf, 0, true},
		{"opposite Inf", inf, -inf, math.MaxFloat32, false},
		{"Inf against finite", inf, math.MaxFloat32, math.MaxFloat32, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := matrix.MustFromRows[matrix.D2, matrix.D2]([][]float32{{7, -2}, {tc.a, 0}})
			b := matrix.MustFromRows[matrix.D2, matrix.D2]([][]float32{{7, -2}, {tc.b, 0}})
			require.Equal(t, tc.want, a.IsEqual(b, tc.eps))
			require.Equal(t, tc.want, b.IsEqual(a, tc.eps))
		})
	}
}
