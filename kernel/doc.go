// SPDX-License-Identifier: MIT

// Package kernel provides the numeric backends that perform the bulk
// arithmetic behind fixmat matrices.
//
// A backend works on Descriptors: plain (rows, cols, data) views over
// column-major float32 storage owned by the caller. Backends never retain a
// descriptor after the call returns.
//
// Available implementations:
//
//   - software: pure Go, no allocation for shapes up to MaxOrder×MaxOrder.
//     Products accumulate in float64; inversion is LU with scaled partial pivoting.
//   - blas32: gonum blas32 (Gemm, Axpy, strided Copy); inversion through
//     gonum/mat in float64.
//
// Auto picks blas32 only when the application has installed a native BLAS
// with blas32.Use, and software otherwise. HasSIMDFMA and Features describe
// the host for logs.
package kernel
