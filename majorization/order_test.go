// SPDX-License-Identifier: MIT

package majorization_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/majorize/majorization"
	"github.com/katalvlaran/majorize/simplex"
	"github.com/stretchr/testify/assert"
)

// TestMajorizes_PointMassVersusUniform checks the two-point example in both
// argument orders and both relation names.
func TestMajorizes_PointMassVersusUniform(t *testing.T) {
	p := []float64{0.5, 0.5}
	q := []float64{1.0, 0.0}

	assert.False(t, majorization.Majorizes(p, q), "uniform must not majorize the point mass")
	assert.True(t, majorization.Majorizes(q, p), "point mass majorizes uniform")
	assert.True(t, majorization.Precedes(p, q), "p ≺ q")
	assert.False(t, majorization.Precedes(q, p), "q ⊀ p")
}

// TestPrecedes_Reflexive verifies p ≺ p on random points of several sizes.
func TestPrecedes_Reflexive(t *testing.T) {
	rng := simplex.NewRand(seedDet)
	for i := 0; i < trials; i++ {
		p := randomPoint(t, rng, 1+i%8)
		assert.True(t, majorization.Precedes(p, p), "reflexivity failed for %v", p)
	}
}

// TestPrecedes_Transitive checks transitivity on sampled triples and on
// chains built with Max, where both premises are known to hold.
func TestPrecedes_Transitive(t *testing.T) {
	rng := simplex.NewRand(seedDet)
	for i := 0; i < trials; i++ {
		d := 2 + i%4
		a, b, c := randomPoint(t, rng, d), randomPoint(t, rng, d), randomPoint(t, rng, d)
		if majorization.Precedes(a, b) && majorization.Precedes(b, c) {
			assert.True(t, majorization.Precedes(a, c), "sampled triple %v %v %v", a, b, c)
		}

		hi1, err := majorization.Max(a, 0.05)
		assert.NoError(t, err)
		hi2, err := majorization.Max(hi1, 0.05)
		assert.NoError(t, err)
		assert.True(t, majorization.Precedes(a, hi1))
		assert.True(t, majorization.Precedes(hi1, hi2))
		assert.True(t, majorization.Precedes(a, hi2), "chain %v %v %v", a, hi1, hi2)
	}
}

// TestPrecedes_Extremes verifies uniform ≺ p ≺ point mass for random p.
func TestPrecedes_Extremes(t *testing.T) {
	rng := simplex.NewRand(seedDet)
	const d = 5
	uniform := []float64{0.2, 0.2, 0.2, 0.2, 0.2}
	point := []float64{0, 0, 1, 0, 0}
	for i := 0; i < trials; i++ {
		p := randomPoint(t, rng, d)
		assert.True(t, majorization.Precedes(uniform, p))
		assert.True(t, majorization.Precedes(p, point))
	}
}

// TestPrecedes_ZeroPadding compares vectors of different lengths.
func TestPrecedes_ZeroPadding(t *testing.T) {
	assert.True(t, majorization.Precedes([]float64{0.5, 0.5}, []float64{1}))
	assert.False(t, majorization.Precedes([]float64{1}, []float64{0.5, 0.5}))
	assert.True(t, majorization.Precedes([]float64{0.3, 0.7}, []float64{0.7, 0.3, 0}))
}

// TestPrecedes_MassMismatch verifies that vectors with different totals are
// never comparable.
func TestPrecedes_MassMismatch(t *testing.T) {
	assert.False(t, majorization.Precedes([]float64{0.5, 0.5}, []float64{0.9, 0.2}))
	assert.False(t, majorization.Precedes([]float64{0.5, 0.4}, []float64{1, 0}))
}

// TestPrecedes_IntegerOperandsAreExact checks the exact-zero default for
// integer element types.
func TestPrecedes_IntegerOperandsAreExact(t *testing.T) {
	assert.True(t, majorization.Precedes([]int{1, 1, 1}, []int{3, 0, 0}))
	assert.True(t, majorization.Precedes([]int64{2, 2}, []int64{3, 1}))
	assert.False(t, majorization.Precedes([]int64{3, 1}, []int64{2, 2}))
	assert.False(t, majorization.Precedes([]int{1, 1}, []int{3, 0}), "mass 2 vs 3")
	assert.True(t, majorization.Precedes([]uint8{1, 1}, []int32{2, 0}))
}

// TestPrecedes_IntegerOperandsBeyondFloatPrecision compares integer vectors
// whose entries differ only below float64 resolution (> 2^53) or whose
// prefix sums overflow the element type.
func TestPrecedes_IntegerOperandsBeyondFloatPrecision(t *testing.T) {
	const big53 = int64(1) << 53

	// Same mass, but the first prefix of p exceeds q's by one.
	assert.False(t, majorization.Precedes([]int64{big53 + 1, 0}, []int64{big53, 1}))
	assert.True(t, majorization.Precedes([]int64{big53, 1}, []int64{big53 + 1, 0}))
	assert.True(t, majorization.Majorizes([]int64{big53 + 1, 0}, []int64{big53, 1}))

	// Masses differ by one unit only.
	assert.False(t, majorization.Precedes([]int64{big53, 0}, []int64{big53, 1}))

	// uint64 entries above MaxInt64 and sums above MaxUint64.
	top := uint64(math.MaxUint64)
	assert.False(t, majorization.Precedes([]uint64{top, 0}, []uint64{top - 1, 1}))
	assert.True(t, majorization.Precedes([]uint64{top - 1, 1}, []uint64{top, 0}))
	assert.True(t, majorization.Precedes([]uint64{top, top}, []uint64{top, top}))

	// An explicit tolerance is honored in whole units.
	assert.True(t, majorization.Precedes([]int64{big53 + 1, 0}, []int64{big53, 1}, majorization.WithTolerance(1.5)))
	assert.False(t, majorization.Precedes([]int64{big53 + 2, 0}, []int64{big53, 2}, majorization.WithTolerance(1.5)))
}

// TestPrecedes_MixedOperandsUseFloatTolerance checks that one float operand
// switches the default to DefaultTolerance.
func TestPrecedes_MixedOperandsUseFloatTolerance(t *testing.T) {
	q := []float64{2 - 1e-10, 1e-10 + 1e-10}
	assert.True(t, majorization.Precedes([]int{1, 1}, q))
	assert.False(t, majorization.Precedes([]int{1, 1}, q, majorization.WithTolerance(0)))
	assert.True(t, majorization.Precedes([]float32{0.5, 0.5}, []int{1, 0}))
}

// TestPrecedes_WithTolerance widens and narrows the comparison slack.
func TestPrecedes_WithTolerance(t *testing.T) {
	p := []float64{0.5, 0.5}
	q := []float64{0.6, 0.4000001}

	assert.False(t, majorization.Precedes(p, q), "mass differs by 1e-7 > default tolerance")
	assert.True(t, majorization.Precedes(p, q, majorization.WithTolerance(1e-6)))
}

// TestWithTolerance_PanicsOnInvalid covers the programmer-error guard.
func TestWithTolerance_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { majorization.WithTolerance(-1) })
	assert.NotPanics(t, func() { majorization.WithTolerance(0) })
}

// TestPrecedes_DoesNotMutate verifies inputs keep their order.
func TestPrecedes_DoesNotMutate(t *testing.T) {
	p := []float64{0.1, 0.6, 0.3}
	q := []float64{0.2, 0.1, 0.7}
	_ = majorization.Precedes(p, q)
	assert.Equal(t, []float64{0.1, 0.6, 0.3}, p)
	assert.Equal(t, []float64{0.2, 0.1, 0.7}, q)
}

// TestVector_Methods checks the infix-style method forms.
func TestVector_Methods(t *testing.T) {
	u := majorization.Vector{0.5, 0.5}
	pm := majorization.Vector{0, 1}

	assert.True(t, u.Precedes(pm))
	assert.True(t, pm.Majorizes(u))
	assert.False(t, u.Majorizes(pm))

	d, err := u.TV(pm)
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, d, epsTight)
}

// TestPrecedesRat_Exact checks the rational comparator.
func TestPrecedesRat_Exact(t *testing.T) {
	half := big.NewRat(1, 2)
	p := []*big.Rat{half, half}
	q := []*big.Rat{big.NewRat(1, 1), big.NewRat(0, 1)}
	r := []*big.Rat{big.NewRat(1, 3), big.NewRat(2, 3)}

	assert.True(t, majorization.PrecedesRat(p, q))
	assert.False(t, majorization.PrecedesRat(q, p))
	assert.True(t, majorization.MajorizesRat(q, p))
	assert.True(t, majorization.PrecedesRat(p, r))
	assert.True(t, majorization.PrecedesRat(r, r))
	assert.True(t, majorization.PrecedesRat(p, []*big.Rat{big.NewRat(1, 1)}), "zero padding")

	off := []*big.Rat{big.NewRat(1, 2), big.NewRat(1, 2), big.NewRat(1, 1000000)}
	assert.False(t, majorization.PrecedesRat(p, off), "exact mass mismatch")
	assert.False(t, majorization.PrecedesRat(p, []*big.Rat{nil, half}))
}

// TestPrecedesRat_OnLatticeSamples cross-checks the exact and float
// comparators on rational simplex points.
func TestPrecedesRat_OnLatticeSamples(t *testing.T) {
	rng := simplex.NewRand(seedDet)
	for i := 0; i < trials; i++ {
		a, err := simplex.RandomRational(rng, 3, 12)
		assert.NoError(t, err)
		b, err := simplex.RandomRational(rng, 3, 12)
		assert.NoError(t, err)

		exact := majorization.PrecedesRat(a, b)
		approx := majorization.Precedes(ratsToFloats(a), ratsToFloats(b))
		assert.Equal(t, exact, approx, "a=%v b=%v", a, b)
	}
}

func ratsToFloats(v []*big.Rat) []float64 {
	out := make([]float64, len(v))
	for i, r := range v {
		out[i], _ = r.Float64()
	}

	return out
}
