package simplex

import (
	"math"
	"math/big"
	"slices"
)

// Point maps d−1 values from [0,1] to a point of the d-dimensional standard
// simplex: the values are sorted, framed by 0 and 1, and the d consecutive
// gaps are returned. When unif holds i.i.d. U(0,1) draws the result is
// uniform on the simplex (Smith–Tromble).
//
// Behavior highlights:
//   - unif is not mutated; an empty unif yields [1].
//   - Repeated cut points produce zero entries.
//
// Errors:
//   - ErrOutOfUnitInterval if a value is NaN or outside [0,1].
//
// Complexity: O(d log d) time, O(d) space.
func Point(unif []float64) ([]float64, error) {
	for _, u := range unif {
		if math.IsNaN(u) || u < 0 || u > 1 {
			return nil, simplexErrorf(opPoint, ErrOutOfUnitInterval)
		}
	}

	cuts := slices.Clone(unif)
	slices.Sort(cuts)

	out := make([]float64, len(cuts)+1)
	prev := 0.0
	for i, c := range cuts {
		out[i] = c - prev
		prev = c
	}
	out[len(cuts)] = 1 - prev

	return out, nil
}

// PointInt is the exact lattice counterpart of Point: d−1 integer cut points
// from [0,n] are sorted, framed by 0 and n, and the gaps are returned divided
// by n. Every entry has a denominator dividing n and the entries sum to 1.
//
// Errors:
//   - ErrBadDenominator if n <= 0.
//   - ErrCutOutOfRange if a cut point lies outside [0,n].
//
// Complexity: O(d log d) time, O(d) space.
func PointInt(cuts []int64, n int64) ([]*big.Rat, error) {
	if n <= 0 {
		return nil, simplexErrorf(opPointInt, ErrBadDenominator)
	}
	for _, c := range cuts {
		if c < 0 || c > n {
			return nil, simplexErrorf(opPointInt, ErrCutOutOfRange)
		}
	}

	sorted := slices.Clone(cuts)
	slices.Sort(sorted)

	out := make([]*big.Rat, len(sorted)+1)
	var prev int64
	for i, c := range sorted {
		out[i] = big.NewRat(c-prev, n)
		prev = c
	}
	out[len(sorted)] = big.NewRat(n-prev, n)

	return out, nil
}
