// SPDX-License-Identifier: MIT

// Package majorization: functional configuration of the numeric policy.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithTolerance panics on nonsensical values
//     (programmer error); user data never triggers a panic.
//   - Type-aware defaults: an unset tolerance is resolved per call from the
//     operand element types (see resolveTolerance).
package majorization

import "math"

// DefaultTolerance is the slack used for floating-point comparisons and
// probability checks when the caller does not set one.
const DefaultTolerance = 1e-8

const panicToleranceInvalid = "majorization: WithTolerance: tol must be finite, non-negative"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	tol    float64 // >= 0
	tolSet bool    // tol was set explicitly; otherwise resolved from element types
}

// WithTolerance sets the comparison tolerance.
//
// Behavior highlights:
//   - Applies to prefix-sum comparisons in Precedes/Majorizes and to the
//     probability checks in Max, Min and LocalBound.
//   - Overrides the type-dependent default (DefaultTolerance for floats,
//     exact zero for integer operands).
//
// Panics with a stable message when tol is negative, NaN or infinite.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.tol = tol
		o.tolSet = true
	}
}

// gatherOptions applies opts over the defaults. nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{tol: DefaultTolerance}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// resolveTolerance returns the explicit tolerance if one was given, else
// DefaultTolerance when exact is false and zero when it is true.
func (o Options) resolveTolerance(exact bool) float64 {
	if o.tolSet {
		return o.tol
	}
	if exact {
		return 0
	}

	return DefaultTolerance
}
