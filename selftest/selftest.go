// SPDX-License-Identifier: MIT

// Package selftest runs the reference matrix fixtures against a backend and
// reports pass/fail per check. It is the host-side counterpart of a firmware
// power-on self test: a caller turns Report.Passed into whatever signal the
// platform offers (exit status, indicator pin).
package selftest

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/fixmat/kernel"
	"github.com/katalvlaran/fixmat/matrix"
)

// Check is one named self-test. Run returns nil on success.
type Check struct {
	Name string
	Run  func(eps float32) error
}

// Result is the outcome of one Check.
type Result struct {
	Name    string
	Err     error
	Elapsed time.Duration
}

// Passed reports whether the check succeeded.
func (r Result) Passed() bool { return r.Err == nil }

// Report collects the results of one Run.
type Report struct {
	Backend string
	Epsilon float32
	Results []Result
}

// Passed reports whether every check succeeded.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}

	return true
}

// Failed returns the failing results in check order.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.Passed() {
			out = append(out, res)
		}
	}

	return out
}

// ErrMismatch is returned by a check whose result differs from the expected
// matrix by more than the tolerance.
var ErrMismatch = errors.New("selftest: result mismatch")

// Run installs b as the matrix backend, runs every check in Checks order and
// restores the previous backend. Checks run sequentially.
func Run(b kernel.Backend, eps float32) Report {
	prev := matrix.Use(b)
	defer matrix.Use(prev)

	rep := Report{Backend: b.Name(), Epsilon: eps}
	for _, c := range Checks() {
		start := time.Now()
		err := runCheck(c, eps)
		rep.Results = append(rep.Results, Result{Name: c.Name, Err: err, Elapsed: time.Since(start)})
	}

	return rep
}

// runCheck converts a panic inside a check into its error.
func runCheck(c Check, eps float32) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok {
				err = fmt.Errorf("%s: panic: %w", c.Name, e)
				return
			}
			err = fmt.Errorf("%s: panic: %v", c.Name, rec)
		}
	}()

	return c.Run(eps)
}

// expect compares got to want within eps.
func expect[R, C matrix.Dim](name string, got, want matrix.Matrix[R, C], eps float32) error {
	if got.IsEqual(want, eps) {
		return nil
	}

	return fmt.Errorf("%s: got\n%vwant\n%v%w", name, got, want, ErrMismatch)
}

// Checks returns the self-test checks in execution order.
func Checks() []Check {
	return []Check{
		{Name: "add", Run: checkAdd},
		{Name: "sub", Run: checkSub},
		{Name: "mul", Run: checkMul},
		{Name: "inv", Run: checkInv},
		{Name: "identity", Run: checkIdentity},
		{Name: "inv-assign", Run: checkInvAssign},
		{Name: "scale", Run: checkScale},
		{Name: "transpose", Run: checkTranspose},
		{Name: "singular", Run: checkSingular},
	}
}

type m33 = matrix.Matrix[matrix.D3, matrix.D3]

var (
	fixtureA = [][]float32{{1.75, 2.45, 3.12}, {5.14, 6.65, 8.17}, {-9.234, 10.241, 12.1322}}
	fixtureB = [][]float32{{-1.11, 3.65, 6.12}, {-0.41, -2.65, 8.17}, {4.234, -11.251, 8.192}}
	fixtureI = [][]float32{{1, 2, 3}, {5, 6, 8}, {9, 10, 12}}
)

func checkAdd(eps float32) error {
	a := matrix.MustFromRows[matrix.D3, matrix.D3](fixtureA)
	b := matrix.MustFromRows[matrix.D3, matrix.D3](fixtureB)
	want := matrix.MustFromRows[matrix.D3, matrix.D3]([][]float32{
		{0.64, 6.1, 9.24}, {4.73, 4.0, 16.34}, {-5.0, -1.01, 20.3242},
	})

	var result m33
	result.Assign(a.Add(b))

	return expect("add", result, want, eps)
}

func checkSub(eps float32) error {
	a := matrix.MustFromRows[matrix.D3, matrix.D3](fixtureA)
	b := matrix.MustFromRows[matrix.D3, matrix.D3](fixtureB)
	want := matrix.MustFromRows[matrix.D3, matrix.D3]([][]float32{
		{2.86, -1.2, -3.0}, {5.55, 9.3, 0.0}, {-13.468, 21.492, 3.9402},
	})

	return expect("sub", a.Sub(b), want, eps)
}

func checkMul(eps float32) error {
	a := matrix.MustFromRows[matrix.D4, matrix.D3]([][]float32{
		{13, 15, 1}, {5, 9, 11}, {34, 24, 2}, {17, 2, 6},
	})
	b := matrix.MustFromRows[matrix.D3, matrix.D4]([][]float32{
		{3, 7, 31, 17}, {5, 21, 45, 5}, {9, 11, 3, 16},
	})
	want := matrix.MustFromRows[matrix.D4, matrix.D4]([][]float32{
		{123, 417, 1081, 312},
		{159, 345, 593, 306},
		{240, 764, 2140, 730},
		{115, 227, 635, 395},
	})

	return expect("mul", a.Mul(b), want, eps)
}

var invWant = [][]float32{{-2, 1.5, -0.5}, {3, -3.75, 1.75}, {-1, 2, -1}}

func checkInv(eps float32) error {
	inv, err := matrix.Inverse(matrix.MustFromRows[matrix.D3, matrix.D3](fixtureI))
	if err != nil {
		return fmt.Errorf("inv: %w", err)
	}

	return expect("inv", inv, matrix.MustFromRows[matrix.D3, matrix.D3](invWant), eps)
}

func checkIdentity(eps float32) error {
	var a m33
	want := matrix.MustFromRows[matrix.D3, matrix.D3]([][]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})

	var result m33
	result.Assign(*a.Identity())

	return expect("identity", result, want, eps)
}

// checkInvAssign overwrites a matrix with its own inverse.
func checkInvAssign(eps float32) error {
	a := matrix.MustFromRows[matrix.D3, matrix.D3](fixtureI)
	inv, err := matrix.Inverse(a)
	if err != nil {
		return fmt.Errorf("inv-assign: %w", err)
	}
	a.Assign(inv)

	return expect("inv-assign", a, matrix.MustFromRows[matrix.D3, matrix.D3](invWant), eps)
}

// checkScale guards against a scalar product taken from a zero-filled result.
func checkScale(eps float32) error {
	a := matrix.MustFromRows[matrix.D3, matrix.D3](fixtureI)
	want := matrix.MustFromRows[matrix.D3, matrix.D3]([][]float32{{2, 4, 6}, {10, 12, 16}, {18, 20, 24}})

	return expect("scale", a.Scale(2), want, eps)
}

func checkTranspose(_ float32) error {
	a := matrix.MustFromRows[matrix.D4, matrix.D3]([][]float32{
		{13, 15, 1}, {5, 9, 11}, {34, 24, 2}, {17, 2, 6},
	})

	return expect("transpose", a.Transpose().Transpose(), a, 0)
}

func checkSingular(_ float32) error {
	a := matrix.MustFromRows[matrix.D3, matrix.D3]([][]float32{{1, 2, 3}, {0, 0, 0}, {4, 5, 6}})
	_, err := matrix.Inverse(a)
	if errors.Is(err, matrix.ErrSingularMatrix) {
		return nil
	}
	if err == nil {
		return fmt.Errorf("singular: inverse of a matrix with a zero row succeeded: %w", ErrMismatch)
	}

	return fmt.Errorf("singular: %w", err)
}
