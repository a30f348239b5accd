// SPDX-License-Identifier: MIT

package kernel

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/gonum"
	"gonum.org/v1/gonum/mat"
)

// BLAS32 delegates to gonum's blas32 package, which dispatches to whatever
// implementation blas32.Use installed (pure Go gonum by default, netlib when
// registered by the application).
//
// gonum's General is row-major, so a column-major m×n descriptor is handed
// over as the row-major n×m view of its transpose:
//
//	out = lhs·rhs  ⇔  outᵀ = rhsᵀ·lhsᵀ
//
// Inverse widens to float64 and uses gonum/mat, which allocates; it is the
// one BLAS32 operation that is not allocation-free.
type BLAS32 struct{}

var _ Backend = BLAS32{}

// NewBLAS32 returns the gonum-backed backend.
func NewBLAS32() BLAS32 { return BLAS32{} }

// HasNativeBLAS reports whether blas32.Use has replaced gonum's pure Go
// implementation (for example with netlib).
func HasNativeBLAS() bool {
	_, pureGo := blas32.Implementation().(gonum.Implementation)

	return !pureGo
}

// Name implements Backend.
func (BLAS32) Name() string { return NameBLAS32 }

// vector views the first d.Len() elements of d as a unit-stride blas32 vector.
func vector(d Descriptor) blas32.Vector {
	return blas32.Vector{N: d.Len(), Data: d.Data[:d.Len()], Inc: 1}
}

// transposedGeneral views column-major d (r×c) as row-major dᵀ (c×r).
func transposedGeneral(d Descriptor) blas32.General {
	return blas32.General{Rows: d.Cols, Cols: d.Rows, Stride: d.Rows, Data: d.Data[:d.Len()]}
}

// Add implements Backend: out = lhs; out += rhs.
func (b BLAS32) Add(lhs, rhs, out Descriptor) error {
	if err := validateSameShape(lhs, rhs, out); err != nil {
		return kernelErrorf(NameBLAS32, opAdd, err)
	}
	blas32.Copy(vector(lhs), vector(out))
	blas32.Axpy(1, vector(rhs), vector(out))

	return nil
}

// Sub implements Backend: out = lhs; out -= rhs.
func (b BLAS32) Sub(lhs, rhs, out Descriptor) error {
	if err := validateSameShape(lhs, rhs, out); err != nil {
		return kernelErrorf(NameBLAS32, opSub, err)
	}
	blas32.Copy(vector(lhs), vector(out))
	blas32.Axpy(-1, vector(rhs), vector(out))

	return nil
}

// Mul implements Backend with a single Gemm on the transposed views.
func (b BLAS32) Mul(lhs, rhs, out Descriptor) error {
	if err := validateMulCompatible(lhs, rhs, out); err != nil {
		return kernelErrorf(NameBLAS32, opMul, err)
	}
	blas32.Gemm(blas.NoTrans, blas.NoTrans, 1,
		transposedGeneral(rhs), transposedGeneral(lhs),
		0, transposedGeneral(out))

	return nil
}

// Transpose implements Backend: row i of in (stride in.Rows) is copied into
// column i of out.
func (b BLAS32) Transpose(in, out Descriptor) error {
	if err := validateTransposed(in, out); err != nil {
		return kernelErrorf(NameBLAS32, opTranspose, err)
	}

	m, n := in.Rows, in.Cols
	for i := 0; i < m; i++ {
		row := blas32.Vector{N: n, Data: in.Data[i:m*n], Inc: m}
		col := blas32.Vector{N: n, Data: out.Data[n*i : n*i+n], Inc: 1}
		blas32.Copy(row, col)
	}

	return nil
}

// Inverse implements Backend through mat.Dense.Inverse in float64.
// Any inversion failure reported by gonum (exactly singular or
// ill-conditioned beyond its tolerance) maps to ErrSingular.
func (b BLAS32) Inverse(in, out Descriptor) error {
	if err := validateSquarePair(in, out); err != nil {
		return kernelErrorf(NameBLAS32, opInverse, err)
	}

	n := in.Rows
	wide := make([]float64, n*n)
	for k := range wide {
		wide[k] = float64(in.Data[k])
	}

	// Row-major reading of column-major data yields Aᵀ, and (Aᵀ)⁻¹ = (A⁻¹)ᵀ,
	// so the row-major result is A⁻¹ in column-major order.
	var inv mat.Dense
	if err := inv.Inverse(mat.NewDense(n, n, wide)); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return kernelErrorf(NameBLAS32, opInverse, fmt.Errorf("condition %g: %w", float64(cond), ErrSingular))
		}

		return kernelErrorf(NameBLAS32, opInverse, fmt.Errorf("%v: %w", err, ErrSingular))
	}

	raw := inv.RawMatrix()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Data[n*i+j] = float32(raw.Data[raw.Stride*i+j])
		}
	}

	return nil
}
