// Package fixmat is a fixed-shape float32 matrix library for small embedded
// workloads: state estimation, sensor fusion, control loops.
//
// Shapes are type parameters, storage lives inside the value, and the
// numeric kernels sit behind a swappable backend.
//
// Under the hood, everything is organized under three packages and a command:
//
//	matrix/              : Matrix[R, C], D1…D12 extents, Add/Sub/Mul/Scale/Transpose/Inverse
//	kernel/              : Backend interface, Descriptor, software and gonum BLAS32 backends, registry
//	selftest/            : reference fixtures run against any backend, .env/FIXMAT_* configuration
//	cmd/fixmat-selftest/ : power-on style self test with structured logging
//
// Quick example:
//
//	a := matrix.MustFromRows[matrix.D2, matrix.D2]([][]float32{{4, 7}, {2, 6}})
//	inv, err := matrix.Inverse(a)
//	if errors.Is(err, matrix.ErrSingularMatrix) {
//		// handle
//	}
//	fmt.Print(matrix.Mul(a, inv)) // ≈ identity
//
//	go get github.com/katalvlaran/fixmat/matrix
package fixmat
