// SPDX-License-Identifier: MIT

package majorization

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ValidateProbability checks that p is a probability vector within tol:
// non-empty, finite, every entry ≥ −tol and |Σp − 1| ≤ tol.
//
// Errors:
//   - ErrEmptyVector, ErrNaNInf, ErrNotProbability (unwrapped).
//
// Complexity: O(n).
func ValidateProbability(p []float64, tol float64) error {
	if len(p) == 0 {
		return ErrEmptyVector
	}
	if err := validateFinite(p); err != nil {
		return err
	}
	for _, v := range p {
		if v < -tol {
			return ErrNotProbability
		}
	}
	if math.Abs(floats.Sum(p)-1) > tol {
		return ErrNotProbability
	}

	return nil
}

// validateFinite rejects NaN and ±Inf entries.
func validateFinite(p []float64) error {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}

// validateRadius rejects negative, NaN and infinite radii.
func validateRadius(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return ErrInvalidRadius
	}

	return nil
}
