package simplex

import (
	"math"
	"math/big"
	"math/rand"
	"slices"
)

// Random draws a point uniformly from the (d−1)-dimensional standard simplex
// using d−1 calls to rng.Float64 and Point. A nil rng selects the
// deterministic default stream.
//
// Errors:
//   - ErrBadDimension if d <= 0.
//
// Complexity: O(d log d) time, O(d) space.
func Random(rng *rand.Rand, d int) ([]float64, error) {
	if d <= 0 {
		return nil, simplexErrorf(opRandom, ErrBadDimension)
	}
	r := orDefault(rng)

	unif := make([]float64, d-1)
	for i := range unif {
		unif[i] = r.Float64()
	}

	return Point(unif)
}

// RandomRational draws a point uniformly from the lattice
// {x/n : x ∈ ℕ^d, Σx = n}, i.e. a rational probability vector whose entries
// have denominators dividing n. Every lattice point has probability
// 1/C(n+d−1, d−1).
//
// Implementation:
//   - Stage 1: draw d−1 distinct values c₁<…<c_{d−1} from {1,…,n+d−1}
//     (Floyd's subset sampling, O(d) draws).
//   - Stage 2: shift cᵢ−i to a non-decreasing multiset in [0,n] and map it
//     with PointInt.
//
// A nil rng selects the deterministic default stream.
//
// Errors:
//   - ErrBadDimension if d <= 0.
//   - ErrBadDenominator if n <= 0 or n+d−1 overflows int64.
//
// Complexity: O(d log d) time, O(d) space.
func RandomRational(rng *rand.Rand, d int, n int64) ([]*big.Rat, error) {
	if d <= 0 {
		return nil, simplexErrorf(opRandomRational, ErrBadDimension)
	}
	if n <= 0 || n > math.MaxInt64-int64(d) {
		return nil, simplexErrorf(opRandomRational, ErrBadDenominator)
	}
	r := orDefault(rng)

	k := int64(d - 1)
	m := n + k
	chosen := make(map[int64]struct{}, k)
	for j := m - k + 1; j <= m; j++ {
		t := 1 + r.Int63n(j)
		if _, dup := chosen[t]; dup {
			chosen[j] = struct{}{}
		} else {
			chosen[t] = struct{}{}
		}
	}

	cuts := make([]int64, 0, k)
	for c := range chosen {
		cuts = append(cuts, c)
	}
	slices.Sort(cuts)
	for i := range cuts {
		cuts[i] -= int64(i + 1)
	}

	p, err := PointInt(cuts, n)
	if err != nil {
		return nil, simplexErrorf(opRandomRational, err)
	}

	return p, nil
}
