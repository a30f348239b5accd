// SPDX-License-Identifier: MIT

// Functional configuration for backends.
//
// Defaults live in constants below and are the single source of truth for a
// backend built without options. WithX constructors panic on nonsensical
// values (programmer error); everything else is reported through errors.

package kernel

import "math"

// DefaultSingularTolerance is the relative pivot threshold used by Inverse.
// A pivot p taken from original row r is treated as zero when
// |p| <= tol * max_j |a_rj|, so rows in different units are judged separately.
const DefaultSingularTolerance = 1e-6

const panicToleranceInvalid = "kernel: WithSingularTolerance: tol must be finite, in [0, 1)"

// Option mutates Options. Safe to apply repeatedly.
type Option func(*Options)

// Options holds the effective backend configuration.
type Options struct {
	singularTol float64 // relative pivot threshold, DefaultSingularTolerance
}

// WithSingularTolerance sets the relative pivot threshold for Inverse.
// tol=0 treats only exact zero pivots as singular.
// Panics when tol is NaN, ±Inf, negative or >= 1.
func WithSingularTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 || tol >= 1 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.singularTol = tol }
}

// SingularTolerance reports the configured relative pivot threshold.
func (o Options) SingularTolerance() float64 { return o.singularTol }

// gatherOptions applies opts on top of the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{singularTol: DefaultSingularTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
