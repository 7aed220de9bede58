// SPDX-License-Identifier: MIT
// Package majorization_test contains shared fixtures.
//
// Purpose:
//   • Deterministic random probability vectors and TV-ball samples, both
//     along segments and on the boundary of the ball, float and exact.
//   • Assertions for the probability-vector invariant.

package majorization_test

import (
	"math"
	"math/big"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/majorize/majorization"
	"github.com/katalvlaran/majorize/simplex"
	"github.com/stretchr/testify/require"
)

const (
	seedDet  = 20240611 // fixed seed for property tests
	epsTight = 1e-9     // slack for float comparisons of derived quantities
	trials   = 500      // random instances per property test
)

// randomPoint draws a uniform simplex point of dimension d or fails the test.
func randomPoint(t *testing.T, rng *rand.Rand, d int) []float64 {
	t.Helper()
	p, err := simplex.Random(rng, d)
	require.NoError(t, err)

	return p
}

// ballSample returns a probability vector r with TV(q, r) <= eps by moving
// from q towards a random simplex point s, no further than the radius allows.
func ballSample(t *testing.T, rng *rand.Rand, q []float64, eps float64) []float64 {
	t.Helper()
	s := randomPoint(t, rng, len(q))
	d, err := majorization.TotalVariation(q, s)
	require.NoError(t, err)

	step := 1.0
	if d > eps {
		step = eps / d
	}
	r := make([]float64, len(q))
	for i := range q {
		r[i] = (1-step)*q[i] + step*s[i]
	}

	return r
}

// ballEdgeSample returns a probability vector r obtained by taking up to eps
// of mass from a random subset of coordinates (donors) and spreading it over
// the disjoint remaining coordinates (receivers) with random weights. TV(q, r)
// equals the moved mass, which is exactly eps whenever the donors hold that
// much, so the sample sits on the boundary of the ball. len(q) must be >= 2.
func ballEdgeSample(t *testing.T, rng *rand.Rand, q []float64, eps float64) []float64 {
	t.Helper()
	require.GreaterOrEqual(t, len(q), 2)
	perm := rng.Perm(len(q))
	k := 1 + rng.Intn(len(q)-1)
	donors, receivers := perm[:k], perm[k:]

	r := slices.Clone(q)
	left := eps
	for _, i := range donors {
		take := math.Min(r[i], left)
		r[i] -= take
		left -= take
	}
	moved := eps - left
	w := randomPoint(t, rng, len(receivers))
	for j, i := range receivers {
		r[i] += moved * w[j]
	}

	return r
}

// ballEdgeSampleRat is ballEdgeSample in exact arithmetic: TV(q, r) equals
// min(eps, donor mass) exactly.
func ballEdgeSampleRat(t *testing.T, rng *rand.Rand, q []*big.Rat, eps *big.Rat) []*big.Rat {
	t.Helper()
	require.GreaterOrEqual(t, len(q), 2)
	perm := rng.Perm(len(q))
	k := 1 + rng.Intn(len(q)-1)
	donors, receivers := perm[:k], perm[k:]

	r := make([]*big.Rat, len(q))
	for i, v := range q {
		r[i] = new(big.Rat).Set(v)
	}
	left := new(big.Rat).Set(eps)
	for _, i := range donors {
		take := new(big.Rat).Set(left)
		if r[i].Cmp(take) < 0 {
			take.Set(r[i])
		}
		r[i].Sub(r[i], take)
		left.Sub(left, take)
	}
	moved := new(big.Rat).Sub(eps, left)
	w, err := simplex.RandomRational(rng, len(receivers), 7)
	require.NoError(t, err)
	for j, i := range receivers {
		r[i].Add(r[i], new(big.Rat).Mul(moved, w[j]))
	}

	return r
}

// requireProbabilityRat asserts nonnegative rational entries summing to
// exactly one.
func requireProbabilityRat(t *testing.T, p []*big.Rat) {
	t.Helper()
	sum := new(big.Rat)
	for i, v := range p {
		require.NotNil(t, v, "entry %d nil", i)
		require.GreaterOrEqual(t, v.Sign(), 0, "entry %d negative: %v", i, v)
		sum.Add(sum, v)
	}
	require.Zero(t, sum.Cmp(big.NewRat(1, 1)), "mass %v != 1", sum.RatString())
}

// requireRatsEqual asserts exact entrywise equality.
func requireRatsEqual(t *testing.T, want, got []*big.Rat) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.Zero(t, want[i].Cmp(got[i]), "entry %d: want %v, got %v", i, want[i].RatString(), got[i].RatString())
	}
}

// rats builds an exact vector from numerator/denominator pairs.
func rats(pairs ...int64) []*big.Rat {
	out := make([]*big.Rat, len(pairs)/2)
	for i := range out {
		out[i] = big.NewRat(pairs[2*i], pairs[2*i+1])
	}

	return out
}

// requireProbability asserts nonnegative entries summing to one.
func requireProbability(t *testing.T, p []float64) {
	t.Helper()
	require.NoError(t, majorization.ValidateProbability(p, epsTight), "not a probability vector: %v", p)
	for i, v := range p {
		require.GreaterOrEqual(t, v, 0.0, "entry %d negative", i)
		require.LessOrEqual(t, v, 1.0, "entry %d above one", i)
	}
}
