// SPDX-License-Identifier: MIT
// Package matrix: algebra on Matrix values.
//
// Scale, IsEqual and Identity iterate on their own. Add, Sub, Mul,
// Transpose and Inverse copy their operands into the active backend's scratch
// (see Use), run the backend on descriptors over it and copy the result back.
//
// Shapes are checked by the compiler: Add/Sub/IsEqual take the receiver's own
// type, Mul requires the inner extents to be the same Dim type, and Inverse
// only accepts Matrix[N, N].

package matrix

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fixmat/kernel"
)

// DefaultEpsilon is the tolerance the reference fixtures are checked with.
const DefaultEpsilon float32 = 1e-5

// Add returns m + rhs, element-wise.
// Panics with ErrBackendFailure if the backend fails.
// Complexity: O(R*C).
func (m Matrix[R, C]) Add(rhs Matrix[R, C]) Matrix[R, C] {
	r, c := shapeOf[R, C]()
	h := acquire()
	defer h.mu.Unlock()

	mustDelegate(opAdd, h.b.Add(h.operand(slotLHS, r, c, &m.data), h.operand(slotRHS, r, c, &rhs.data), h.result(r, c)))
	var out Matrix[R, C]
	h.collect(r*c, &out.data)

	return out
}

// Sub returns m - rhs, element-wise.
// Panics with ErrBackendFailure if the backend fails.
// Complexity: O(R*C).
func (m Matrix[R, C]) Sub(rhs Matrix[R, C]) Matrix[R, C] {
	r, c := shapeOf[R, C]()
	h := acquire()
	defer h.mu.Unlock()

	mustDelegate(opSub, h.b.Sub(h.operand(slotLHS, r, c, &m.data), h.operand(slotRHS, r, c, &rhs.data), h.result(r, c)))
	var out Matrix[R, C]
	h.collect(r*c, &out.data)

	return out
}

// Scale returns a new matrix with every element of m multiplied by s.
// Complexity: O(R*C).
func (m Matrix[R, C]) Scale(s float32) Matrix[R, C] {
	r, c := shapeOf[R, C]()
	var out Matrix[R, C]
	for k := 0; k < r*c; k++ {
		out.data[k] = m.data[k] * s
	}

	return out
}

// Mul returns the product lhs·rhs of an R×C and a C×P matrix.
//
// Implementation:
//   - Stage 1: the compiler guarantees lhs.Cols == rhs.Rows through the shared C.
//   - Stage 2: the backend fills a fresh R×P result.
//
// Panics with ErrBackendFailure if the backend fails.
// Complexity: O(R*C*P) for the software backend.
func Mul[R, C, P Dim](lhs Matrix[R, C], rhs Matrix[C, P]) Matrix[R, P] {
	r, c := shapeOf[R, C]()
	_, p := shapeOf[C, P]()
	h := acquire()
	defer h.mu.Unlock()

	mustDelegate(opMul, h.b.Mul(h.operand(slotLHS, r, c, &lhs.data), h.operand(slotRHS, c, p, &rhs.data), h.result(r, p)))
	var out Matrix[R, P]
	h.collect(r*p, &out.data)

	return out
}

// Mul returns m·rhs for a C×R right operand, yielding an R×R matrix.
// Use the package-level Mul for other conformable shapes.
func (m Matrix[R, C]) Mul(rhs Matrix[C, R]) Matrix[R, R] {
	return Mul[R, C, R](m, rhs)
}

// Transpose returns mᵀ, a C×R matrix with result(j, i) = m(i, j).
// Panics with ErrBackendFailure if the backend fails.
func (m Matrix[R, C]) Transpose() Matrix[C, R] {
	r, c := shapeOf[R, C]()
	h := acquire()
	defer h.mu.Unlock()

	mustDelegate(opTranspose, h.b.Transpose(h.operand(slotLHS, r, c, &m.data), h.result(c, r)))
	var out Matrix[C, R]
	h.collect(r*c, &out.data)

	return out
}

// Inverse returns m⁻¹ for a square matrix.
//
// Errors:
//   - ErrSingularMatrix when the backend finds no usable pivot. The returned
//     matrix is then the zero value, never partially computed storage.
//
// Any other backend error panics with ErrBackendFailure.
// Complexity: O(N³) for the software backend.
func Inverse[N Dim](m Matrix[N, N]) (Matrix[N, N], error) {
	n, _ := shapeOf[N, N]()
	h := acquire()
	defer h.mu.Unlock()

	err := h.b.Inverse(h.operand(slotLHS, n, n, &m.data), h.result(n, n))
	if err == nil {
		var out Matrix[N, N]
		h.collect(n*n, &out.data)

		return out, nil
	}
	if errors.Is(err, kernel.ErrSingular) {
		return Matrix[N, N]{}, matrixErrorf(opInverse, fmt.Errorf("%w: %w", ErrSingularMatrix, err))
	}
	mustDelegate(opInverse, err)

	return Matrix[N, N]{}, nil // unreachable
}

// IsEqual reports whether |m[k] - other[k]| <= eps for every element.
// The bound is inclusive and evaluated in float64. A NaN element never
// compares equal; infinities are equal only to the same infinity.
// Complexity: O(R*C).
func (m Matrix[R, C]) IsEqual(other Matrix[R, C], eps float32) bool {
	r, c := shapeOf[R, C]()
	for k := 0; k < r*c; k++ {
		if m.data[k] == other.data[k] {
			continue
		}
		d := float64(m.data[k]) - float64(other.data[k])
		if !(math.Abs(d) <= float64(eps)) {
			return false
		}
	}

	return true
}
