// SPDX-License-Identifier: MIT

package majorization

import (
	"math/big"

	"gonum.org/v1/gonum/floats"
)

// TotalVariation returns the total variation distance between p and q,
// half the L1 distance ½·Σ|pᵢ−qᵢ|.
//
// Errors:
//   - ErrEmptyVector if either input is empty.
//   - ErrDimensionMismatch if len(p) != len(q); vectors are never padded.
//   - ErrNaNInf if an entry is not finite.
//
// Complexity: O(n).
func TotalVariation(p, q []float64) (float64, error) {
	if len(p) == 0 || len(q) == 0 {
		return 0, opErrorf(opTotalVariation, ErrEmptyVector)
	}
	if len(p) != len(q) {
		return 0, opErrorf(opTotalVariation, ErrDimensionMismatch)
	}
	if err := validateFinite(p); err != nil {
		return 0, opErrorf(opTotalVariation, err)
	}
	if err := validateFinite(q); err != nil {
		return 0, opErrorf(opTotalVariation, err)
	}

	return floats.Distance(p, q, 1) / 2, nil
}

// TotalVariationRat returns the exact total variation distance between p
// and q. Errors mirror TotalVariation, plus ErrNilRat for nil entries.
func TotalVariationRat(p, q []*big.Rat) (*big.Rat, error) {
	if len(p) == 0 || len(q) == 0 {
		return nil, opErrorf(opTotalVariationRat, ErrEmptyVector)
	}
	if len(p) != len(q) {
		return nil, opErrorf(opTotalVariationRat, ErrDimensionMismatch)
	}

	sum, diff := new(big.Rat), new(big.Rat)
	for i := range p {
		if p[i] == nil || q[i] == nil {
			return nil, opErrorf(opTotalVariationRat, ErrNilRat)
		}
		diff.Sub(p[i], q[i])
		sum.Add(sum, diff.Abs(diff))
	}

	return sum.Quo(sum, big.NewRat(2, 1)), nil
}
