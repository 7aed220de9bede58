// SPDX-License-Identifier: MIT

package majorization

import "math"

// LocalBound returns δ ≥ 0 such that |f(p) − f(q)| ≤ δ for every probability
// vector q with TV(p, q) ≤ eps.
//
// f must be Schur-convex or Schur-concave on the simplex; this is NOT
// checked, and the result is meaningless otherwise. Under either property
// f is monotone along ≺, and Min(p, eps) ≺ q ≺ Max(p, eps) for every q in
// the ball (p included), so f(q) and f(p) both lie between f(Min) and f(Max).
//
// Implementation:
//   - Stage 1: validate f, p and eps.
//   - Stage 2: compute hi = Max(p, eps) and lo = Min(p, eps).
//   - Stage 3: return max(|f(p) − f(hi)|, |f(p) − f(lo)|).
//
// Errors:
//   - ErrNilFunction, ErrEmptyVector, ErrInvalidRadius, ErrNaNInf,
//     ErrNotProbability (wrapped with "LocalBound: ").
//
// Complexity: O(n log n) plus three evaluations of f.
func LocalBound(f func([]float64) float64, p []float64, eps float64, opts ...Option) (float64, error) {
	if f == nil {
		return 0, opErrorf(opLocalBound, ErrNilFunction)
	}
	tol := gatherOptions(opts...).resolveTolerance(false)
	if err := validateBall(p, eps, tol); err != nil {
		return 0, opErrorf(opLocalBound, err)
	}

	hi, err := Max(p, eps, opts...)
	if err != nil {
		return 0, opErrorf(opLocalBound, err)
	}
	lo, err := Min(p, eps, opts...)
	if err != nil {
		return 0, opErrorf(opLocalBound, err)
	}

	fp := f(p)

	return math.Max(math.Abs(fp-f(hi)), math.Abs(fp-f(lo))), nil
}
