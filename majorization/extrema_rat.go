// SPDX-License-Identifier: MIT

package majorization

import (
	"math/big"
	"slices"
)

// MaxRat is the exact counterpart of Max: the majorization maximum of the TV
// ball of radius eps around the rational probability vector q.
//
// Implementation:
//   - Stage 1: validate q (no nil entries, nonnegative, Σq = 1 exactly) and eps.
//   - Stage 2: stable-sort q descending, remembering the permutation.
//   - Stage 3: move gain = min(eps, 1 − q↓₁) onto the largest entry and take
//     the same mass away from the smallest entries, from the bottom up.
//   - Stage 4: restore q's coordinate order.
//
// No tolerance is involved: the result lies in the ball and sums to one
// exactly. Ties are broken as in Max (lowest index gains).
//
// Errors:
//   - ErrEmptyVector, ErrNilRat, ErrInvalidRadius (nil or negative eps),
//     ErrNotProbability (wrapped with "MaxRat: ").
//
// Complexity: O(n log n) rational operations.
func MaxRat(q []*big.Rat, eps *big.Rat) ([]*big.Rat, error) {
	if err := validateBallRat(q, eps); err != nil {
		return nil, opErrorf(opMaxRat, err)
	}

	s, idx := argsortDescRat(q)

	tail := new(big.Rat)
	for _, v := range s[1:] {
		tail.Add(tail, v)
	}
	gain := minRat(eps, tail)
	s[0].Add(s[0], gain)

	left := new(big.Rat).Set(gain)
	for i := len(s) - 1; i > 0 && left.Sign() > 0; i-- {
		take := minRat(s[i], left)
		left.Sub(left, take)
		s[i].Sub(s[i], take)
	}

	return restoreOrderRat(s, idx), nil
}

// MinRat is the exact counterpart of Min: the majorization minimum of the TV
// ball of radius eps around the rational probability vector q.
//
// The water levels α and β are solved exactly; pᵢ = min(max(qᵢ, β), α), or
// the uniform vector once eps ≥ TV(q, u).
//
// Errors:
//   - ErrEmptyVector, ErrNilRat, ErrInvalidRadius, ErrNotProbability
//     (wrapped with "MinRat: ").
func MinRat(q []*big.Rat, eps *big.Rat) ([]*big.Rat, error) {
	if err := validateBallRat(q, eps); err != nil {
		return nil, opErrorf(opMinRat, err)
	}

	n := len(q)
	u := big.NewRat(1, int64(n))
	s, idx := argsortDescRat(q)

	excess, d := new(big.Rat), new(big.Rat)
	for _, v := range s {
		if v.Cmp(u) > 0 {
			excess.Add(excess, d.Sub(v, u))
		}
	}
	if eps.Cmp(excess) >= 0 {
		out := make([]*big.Rat, n)
		for i := range out {
			out[i] = new(big.Rat).Set(u)
		}

		return out, nil
	}

	alpha := upperLevelRat(s, eps)
	beta := lowerLevelRat(s, eps)
	for _, v := range s {
		if v.Cmp(beta) < 0 {
			v.Set(beta)
		}
		if v.Cmp(alpha) > 0 {
			v.Set(alpha)
		}
	}

	return restoreOrderRat(s, idx), nil
}

// validateBallRat checks an exact center and radius.
func validateBallRat(q []*big.Rat, eps *big.Rat) error {
	if len(q) == 0 {
		return ErrEmptyVector
	}
	if eps == nil || eps.Sign() < 0 {
		return ErrInvalidRadius
	}

	sum := new(big.Rat)
	for _, v := range q {
		if v == nil {
			return ErrNilRat
		}
		if v.Sign() < 0 {
			return ErrNotProbability
		}
		sum.Add(sum, v)
	}
	if sum.Cmp(big.NewRat(1, 1)) != 0 {
		return ErrNotProbability
	}

	return nil
}

// argsortDescRat returns fresh copies of q's entries sorted descending and
// idx such that the i-th sorted value came from q[idx[i]]. Stable on ties.
func argsortDescRat(q []*big.Rat) ([]*big.Rat, []int) {
	idx := make([]int, len(q))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int { return q[b].Cmp(q[a]) })

	s := make([]*big.Rat, len(q))
	for i, j := range idx {
		s[i] = new(big.Rat).Set(q[j])
	}

	return s, idx
}

// upperLevelRat returns α with Σ(s[i] − α)₊ = eps for s sorted descending.
func upperLevelRat(s []*big.Rat, eps *big.Rat) *big.Rat {
	cum := new(big.Rat)
	n := len(s)
	for k := 1; k <= n; k++ {
		cum.Add(cum, s[k-1])
		level := new(big.Rat).Sub(cum, eps)
		level.Quo(level, big.NewRat(int64(k), 1))
		if k == n || level.Cmp(s[k]) >= 0 {
			return level
		}
	}

	return new(big.Rat).Set(s[n-1])
}

// lowerLevelRat returns β with Σ(β − s[i])₊ = eps for s sorted descending.
func lowerLevelRat(s []*big.Rat, eps *big.Rat) *big.Rat {
	cum := new(big.Rat)
	n := len(s)
	for k := 1; k <= n; k++ {
		cum.Add(cum, s[n-k])
		level := new(big.Rat).Add(cum, eps)
		level.Quo(level, big.NewRat(int64(k), 1))
		if k == n || level.Cmp(s[n-k-1]) <= 0 {
			return level
		}
	}

	return new(big.Rat).Set(s[0])
}

// restoreOrderRat scatters sorted values back to the original coordinates.
func restoreOrderRat(s []*big.Rat, idx []int) []*big.Rat {
	out := make([]*big.Rat, len(s))
	for i, j := range idx {
		out[j] = s[i]
	}

	return out
}

// minRat returns a fresh copy of the smaller of a and b.
func minRat(a, b *big.Rat) *big.Rat {
	if a.Cmp(b) <= 0 {
		return new(big.Rat).Set(a)
	}

	return new(big.Rat).Set(b)
}
