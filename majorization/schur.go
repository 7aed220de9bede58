// SPDX-License-Identifier: MIT

package majorization

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const panicRenyiOrderInvalid = "majorization: Renyi: alpha must be non-negative and not NaN"

// ShannonEntropy returns −Σ pᵢ·ln pᵢ (nats). Schur-concave.
func ShannonEntropy(p []float64) float64 {
	return stat.Entropy(p)
}

// MaxEntry returns the largest entry of p, or 0 for an empty vector.
// Schur-convex.
func MaxEntry(p []float64) float64 {
	if len(p) == 0 {
		return 0
	}

	return floats.Max(p)
}

// Renyi returns the Rényi entropy of order alpha (nats) as a function
// suitable for LocalBound. Schur-concave for every alpha ≥ 0.
//
//	alpha = 0    → ln |supp p|
//	alpha = 1    → ShannonEntropy
//	alpha = +Inf → −ln max pᵢ
//
// Panics when alpha is negative or NaN (programmer error).
func Renyi(alpha float64) func([]float64) float64 {
	if math.IsNaN(alpha) || alpha < 0 {
		panic(panicRenyiOrderInvalid)
	}

	switch {
	case alpha == 1:
		return ShannonEntropy
	case math.IsInf(alpha, 1):
		return func(p []float64) float64 {
			return -math.Log(MaxEntry(p))
		}
	}

	return func(p []float64) float64 {
		var s float64
		for _, v := range p {
			if v > 0 {
				s += math.Pow(v, alpha)
			}
		}

		return math.Log(s) / (1 - alpha)
	}
}
