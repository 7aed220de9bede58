// SPDX-License-Identifier: MIT

package majorization

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Max returns the maximum in majorization order over the TV ball of radius
// eps around the probability vector q: the unique (up to ties) vector p with
// TV(p, q) ≤ eps such that r ≺ p for every probability vector r in the ball.
//
// Implementation:
//   - Stage 1: validate q and eps; eps == 0 returns a copy of q.
//   - Stage 2: stable-sort q descending, remembering the permutation.
//   - Stage 3: move gain = min(eps, 1 − q↓₁) onto the largest entry and take
//     the same mass away from the smallest entries, zeroing them one by one
//     from the bottom.
//   - Stage 4: clamp into [0,1], renormalize and restore q's coordinate order.
//
// Behavior highlights:
//   - Saturates at the point mass once eps ≥ 1 − max(q).
//   - Among tied largest entries the one with the lowest index gains mass.
//
// Errors:
//   - ErrEmptyVector, ErrInvalidRadius, ErrNaNInf, ErrNotProbability
//     (wrapped with "Max: ").
//
// Complexity: O(n log n) time, O(n) space.
func Max(q []float64, eps float64, opts ...Option) ([]float64, error) {
	tol := gatherOptions(opts...).resolveTolerance(false)
	if err := validateBall(q, eps, tol); err != nil {
		return nil, opErrorf(opMax, err)
	}
	if eps == 0 {
		return slices.Clone(q), nil
	}

	s, idx := argsortDesc(q)

	gain := math.Min(eps, floats.Sum(s[1:]))
	s[0] += gain
	for i := len(s) - 1; i > 0 && gain > 0; i-- {
		take := math.Min(s[i], gain)
		s[i] -= take
		gain -= take
	}

	return restoreOrder(normalize(s), idx), nil
}

// Min returns the minimum in majorization order over the TV ball of radius
// eps around the probability vector q: the vector p with TV(p, q) ≤ eps such
// that p ≺ r for every probability vector r in the ball.
//
// Implementation:
//   - Stage 1: validate q and eps; eps == 0 returns a copy of q.
//   - Stage 2: if eps ≥ TV(q, u) for the uniform vector u, return u.
//   - Stage 3: otherwise find the water levels α and β with
//     Σ(q↓ᵢ − α)₊ = eps and Σ(β − q↓ᵢ)₊ = eps, then set pᵢ = min(max(qᵢ, β), α).
//     Since eps < TV(q, u), α > 1/n > β and the two adjustments are disjoint.
//   - Stage 4: clamp into [0,1], renormalize and restore q's coordinate order.
//
// Errors:
//   - ErrEmptyVector, ErrInvalidRadius, ErrNaNInf, ErrNotProbability
//     (wrapped with "Min: ").
//
// Complexity: O(n log n) time, O(n) space.
func Min(q []float64, eps float64, opts ...Option) ([]float64, error) {
	tol := gatherOptions(opts...).resolveTolerance(false)
	if err := validateBall(q, eps, tol); err != nil {
		return nil, opErrorf(opMin, err)
	}
	if eps == 0 {
		return slices.Clone(q), nil
	}

	n := len(q)
	u := 1 / float64(n)
	s, idx := argsortDesc(q)

	var excess float64
	for _, v := range s {
		if v > u {
			excess += v - u
		}
	}
	if eps >= excess {
		out := make([]float64, n)
		for i := range out {
			out[i] = u
		}

		return out, nil
	}

	alpha := upperLevel(s, eps)
	beta := lowerLevel(s, eps)
	for i, v := range s {
		s[i] = math.Min(math.Max(v, beta), alpha)
	}

	return restoreOrder(normalize(s), idx), nil
}

// validateBall checks the center and radius shared by Max, Min and LocalBound.
func validateBall(q []float64, eps, tol float64) error {
	if len(q) == 0 {
		return ErrEmptyVector
	}
	if err := validateRadius(eps); err != nil {
		return err
	}

	return ValidateProbability(q, tol)
}

// argsortDesc returns q sorted in descending order (clamped into [0,1]) and
// idx such that the i-th sorted value came from q[idx[i]]. Ties keep their
// original relative order.
func argsortDesc(q []float64) ([]float64, []int) {
	s := make([]float64, len(q))
	for i, v := range q {
		s[i] = -clampUnit(v)
	}
	idx := make([]int, len(q))
	floats.ArgsortStable(s, idx)
	floats.Scale(-1, s)

	return s, idx
}

// upperLevel returns α with Σ(s[i] − α)₊ = eps for s sorted descending.
func upperLevel(s []float64, eps float64) float64 {
	var cum float64
	n := len(s)
	for k := 1; k <= n; k++ {
		cum += s[k-1]
		level := (cum - eps) / float64(k)
		if k == n || level >= s[k] {
			return level
		}
	}

	return s[n-1]
}

// lowerLevel returns β with Σ(β − s[i])₊ = eps for s sorted descending.
func lowerLevel(s []float64, eps float64) float64 {
	var cum float64
	n := len(s)
	for k := 1; k <= n; k++ {
		cum += s[n-k]
		level := (cum + eps) / float64(k)
		if k == n || level <= s[n-k-1] {
			return level
		}
	}

	return s[0]
}

// normalize clamps s into [0,1] in place and rescales it to unit mass.
func normalize(s []float64) []float64 {
	for i, v := range s {
		s[i] = clampUnit(v)
	}
	if sum := floats.Sum(s); sum > 0 && sum != 1 {
		floats.Scale(1/sum, s)
	}

	return s
}

// restoreOrder scatters sorted values back to the original coordinates.
func restoreOrder(s []float64, idx []int) []float64 {
	out := make([]float64, len(s))
	for i, j := range idx {
		out[j] = s[i]
	}

	return out
}

// clampUnit clamps v into [0,1].
func clampUnit(v float64) float64 {
	return math.Min(math.Max(v, 0), 1)
}
