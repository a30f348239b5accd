// SPDX-License-Identifier: MIT

package kernel

import (
	"fmt"
	"math"
)

// luFactors is the float64 working set of one inversion. Its slices view
// arrays owned by the caller, so shapes up to MaxOrder stay on the stack.
type luFactors struct {
	n        int
	a        []float64 // n×n column-major, overwritten by L (unit, below diag) and U
	perm     []int     // perm[i] = original row now at position i
	rowScale []float64 // rowScale[r] = max_j |a(r, j)| of original row r
}

// Inverse implements Backend.
//
// Implementation:
//   - Stage 1: validate in/out are equal square shapes.
//   - Stage 2: widen to float64 and factor P·A = L·U with scaled partial
//     pivoting. A zero row, or a pivot |p| <= tol * (max |a_rj| of p's
//     original row r), is singular.
//   - Stage 3: for each identity column e_c solve L·y = P·e_c, then U·x = y,
//     and narrow x into column c of out.
//
// out is written only after factorization succeeds; on ErrSingular it is left
// untouched.
//
// Complexity: O(n³) time, O(n²) scratch (stack-resident for n <= MaxOrder).
func (s *Software) Inverse(in, out Descriptor) error {
	if err := validateSquarePair(in, out); err != nil {
		return kernelErrorf(NameSoftware, opInverse, err)
	}

	n := in.Rows
	var (
		aBuf                 [MaxElements]float64
		permBuf              [MaxOrder]int
		scaleBuf, yBuf, xBuf [MaxOrder]float64
		lu                   luFactors
		y, x                 []float64
	)
	if n <= MaxOrder {
		lu = luFactors{n: n, a: aBuf[:n*n], perm: permBuf[:n], rowScale: scaleBuf[:n]}
		y, x = yBuf[:n], xBuf[:n]
	} else {
		lu = luFactors{n: n, a: make([]float64, n*n), perm: make([]int, n), rowScale: make([]float64, n)}
		y, x = make([]float64, n), make([]float64, n)
	}

	if err := luFactor(lu, in, s.opts.singularTol); err != nil {
		return kernelErrorf(NameSoftware, opInverse, err)
	}
	luSolveIdentity(lu, y, x, out)

	return nil
}

// luFactor widens in into lu.a and factors it in place (Doolittle with scaled
// row partial pivoting). Returns a wrapped ErrSingular on a zero row or a
// negligible pivot.
func luFactor(lu luFactors, in Descriptor, tol float64) error {
	n, a := lu.n, lu.a

	for k := range a {
		a[k] = float64(in.Data[k])
	}

	var (
		i, j, k, p  int
		best, v, mx float64
		pivot, lik  float64
	)
	for i = 0; i < n; i++ {
		mx = 0
		for j = 0; j < n; j++ {
			mx = math.Max(mx, math.Abs(a[n*j+i]))
		}
		if mx == 0 {
			return fmt.Errorf("row %d is zero: %w", i, ErrSingular)
		}
		lu.rowScale[i] = mx
		lu.perm[i] = i
	}

	for k = 0; k < n; k++ {
		// Select the largest |a(i,k)| relative to its row scale, i >= k.
		p, best = k, math.Abs(a[n*k+k])/lu.rowScale[lu.perm[k]]
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[n*k+i]) / lu.rowScale[lu.perm[i]]; v > best {
				p, best = i, v
			}
		}
		if best <= tol {
			return fmt.Errorf("pivot %d: %w", k, ErrSingular)
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[n*j+k], a[n*j+p] = a[n*j+p], a[n*j+k]
			}
			lu.perm[k], lu.perm[p] = lu.perm[p], lu.perm[k]
		}

		pivot = a[n*k+k]
		for i = k + 1; i < n; i++ {
			a[n*k+i] /= pivot
		}
		for j = k + 1; j < n; j++ {
			ukj := a[n*j+k]
			if ukj == 0 {
				continue
			}
			for i = k + 1; i < n; i++ {
				lik = a[n*k+i]
				a[n*j+i] -= lik * ukj
			}
		}
	}

	return nil
}

// luSolveIdentity writes A⁻¹ column by column into out using the factors in lu.
func luSolveIdentity(lu luFactors, y, x []float64, out Descriptor) {
	n, a := lu.n, lu.a

	var (
		c, i, k int
		sum     float64
	)
	for c = 0; c < n; c++ {
		// Forward substitution: L·y = P·e_c (L has a unit diagonal).
		for i = 0; i < n; i++ {
			sum = 0
			for k = 0; k < i; k++ {
				sum += a[n*k+i] * y[k]
			}
			if lu.perm[i] == c {
				y[i] = 1 - sum
			} else {
				y[i] = -sum
			}
		}
		// Backward substitution: U·x = y.
		for i = n - 1; i >= 0; i-- {
			sum = 0
			for k = i + 1; k < n; k++ {
				sum += a[n*k+i] * x[k]
			}
			x[i] = (y[i] - sum) / a[n*i+i]
		}
		col := out.Data[n*c : n*c+n]
		for i = 0; i < n; i++ {
			col[i] = float32(x[i])
		}
	}
}
