// SPDX-License-Identifier: MIT
// Software is the pure Go backend: plain loops over column-major storage,
// deterministic iteration order, no allocation for the shapes fixmat uses.
//
// Implementation notes:
//   - Add/Sub share one flat loop (addSub) driven by a ±1 sign.
//   - Mul walks j→k→i so both the output column and the lhs column are
//     contiguous, and accumulates each output column in float64.
//   - Transpose is a direct permutation.
//   - Inverse lives in software_inverse.go.

package kernel

// Software is the pure Go backend. The zero value is not configured; use
// NewSoftware.
type Software struct {
	opts Options
}

var _ Backend = (*Software)(nil)

// NewSoftware returns a software backend with the given options applied on
// top of the defaults.
func NewSoftware(opts ...Option) *Software {
	return &Software{opts: gatherOptions(opts...)}
}

// Name implements Backend.
func (s *Software) Name() string { return NameSoftware }

// Options returns the effective configuration.
func (s *Software) Options() Options { return s.opts }

// Add implements Backend.
func (s *Software) Add(lhs, rhs, out Descriptor) error {
	return s.addSub(lhs, rhs, out, +1, opAdd)
}

// Sub implements Backend.
func (s *Software) Sub(lhs, rhs, out Descriptor) error {
	return s.addSub(lhs, rhs, out, -1, opSub)
}

// addSub computes out = lhs + sign*rhs with sign ∈ {+1, -1}.
// Complexity: O(r*c).
func (s *Software) addSub(lhs, rhs, out Descriptor, sign float32, opTag string) error {
	if err := validateSameShape(lhs, rhs, out); err != nil {
		return kernelErrorf(NameSoftware, opTag, err)
	}

	n := lhs.Len()
	l, r, o := lhs.Data[:n], rhs.Data[:n], out.Data[:n]
	for k := range o {
		o[k] = l[k] + sign*r[k]
	}

	return nil
}

// Mul implements Backend.
// Stage 1: validate (m×n)·(n×p) → (m×p).
// Stage 2: for each output column j, accumulate Σ_k lhs[:,k]*rhs[k,j] in float64.
// Complexity: O(m*n*p) time, O(m) stack scratch when m <= MaxOrder.
func (s *Software) Mul(lhs, rhs, out Descriptor) error {
	if err := validateMulCompatible(lhs, rhs, out); err != nil {
		return kernelErrorf(NameSoftware, opMul, err)
	}

	m, n, p := lhs.Rows, lhs.Cols, rhs.Cols
	var stack [MaxOrder]float64
	acc := stack[:]
	if m > len(stack) {
		acc = make([]float64, m)
	}
	acc = acc[:m]

	var (
		i, j, k int
		b       float64
		colA    []float32
	)
	for j = 0; j < p; j++ {
		for i = range acc {
			acc[i] = 0
		}
		for k = 0; k < n; k++ {
			b = float64(rhs.Data[n*j+k])
			if b == 0 {
				continue
			}
			colA = lhs.Data[m*k : m*k+m]
			for i = 0; i < m; i++ {
				acc[i] += float64(colA[i]) * b
			}
		}
		colOut := out.Data[m*j : m*j+m]
		for i = 0; i < m; i++ {
			colOut[i] = float32(acc[i])
		}
	}

	return nil
}

// Transpose implements Backend. out(j,i) = in(i,j).
func (s *Software) Transpose(in, out Descriptor) error {
	if err := validateTransposed(in, out); err != nil {
		return kernelErrorf(NameSoftware, opTranspose, err)
	}

	m, n := in.Rows, in.Cols
	for j := 0; j < n; j++ {
		for i := 0; i < m; i++ {
			out.Data[n*i+j] = in.Data[m*j+i]
		}
	}

	return nil
}
