// Package matrix provides Matrix[R, C], a fixed-shape dense float32 matrix
// for small embedded workloads such as sensor fusion and control loops.
//
// Shapes are type parameters (D1…D12 or caller-declared Dim markers), so
// shape mismatches between operands are compile errors:
//
//	a := matrix.MustFromRows[matrix.D4, matrix.D3](rows43)
//	b := matrix.MustFromRows[matrix.D3, matrix.D4](rows34)
//	c := a.Mul(b)            // Matrix[D4, D4]
//	t := c.Transpose()       // Matrix[D4, D4]
//	inv, err := matrix.Inverse(c)
//
// Storage lives inside the value (column-major, fixed capacity), so matrices
// are copied on assignment and never share memory.
//
// Add, Sub, Mul, Transpose and Inverse are delegated to a kernel.Backend,
// installed with Use; the default is the pure Go software backend. Scale,
// IsEqual and Identity run locally.
//
// Errors are sentinels (ErrShapeMismatch, ErrIndexOutOfBounds,
// ErrSingularMatrix) wrapped with the operation name; match them with
// errors.Is.
package matrix
