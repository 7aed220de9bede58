// SPDX-License-Identifier: MIT

package majorization

import (
	"math"
	"math/big"
	"slices"
)

// Precedes reports whether q majorizes p (p ≺ q).
//
// Implementation:
//   - Stage 1: copy both vectors, pad the shorter one with zeros and sort
//     descending. Integer operands are lifted to big.Int, everything else
//     to float64.
//   - Stage 2: walk the prefix sums; p ≺ q requires Σ_{i≤k} p↓ᵢ ≤ Σ_{i≤k} q↓ᵢ + tol
//     for every k and |Σp − Σq| ≤ tol.
//
// Tolerance:
//   - WithTolerance(tol) if given.
//   - Otherwise DefaultTolerance when either element type is floating-point,
//     and exact zero when both are integer types.
//
// When both element types are integers the prefix sums are exact big.Int
// sums whatever the magnitude of the entries (no float64 rounding above
// 2^53, no overflow); an explicit tolerance is then applied as ⌊tol⌋.
//
// Inputs are not validated as probability vectors: any two vectors of equal
// mass can be compared. Vectors of different mass never precede each other.
//
// Complexity: O(n log n) time, O(n) space with n = max(len(p), len(q)).
func Precedes[T1, T2 Number](p []T1, q []T2, opts ...Option) bool {
	o := gatherOptions(opts...)
	exact := isExact[T1]() && isExact[T2]()
	tol := o.resolveTolerance(exact)

	n := max(len(p), len(q))
	if exact {
		return prefixDominatedInt(sortedDescInt(p, n), sortedDescInt(q, n), tol)
	}
	ps := sortedDesc(p, n)
	qs := sortedDesc(q, n)

	return prefixDominated(ps, qs, tol)
}

// Majorizes reports whether p majorizes q (q ≺ p). It is Precedes with the
// arguments swapped, e.g. Majorizes([1,0], [0.5,0.5]) is true.
func Majorizes[T1, T2 Number](p []T1, q []T2, opts ...Option) bool {
	return Precedes(q, p, opts...)
}

// sortedDesc converts v to float64, pads it with zeros to length n and sorts
// it in descending order. v is left untouched.
func sortedDesc[T Number](v []T, n int) []float64 {
	out := make([]float64, n)
	for i, x := range v {
		out[i] = float64(x)
	}
	slices.Sort(out)
	slices.Reverse(out)

	return out
}

// prefixDominated checks Σ_{i≤k} a[i] ≤ Σ_{i≤k} b[i] + tol for all k and
// that the totals agree within tol. a and b have equal length.
func prefixDominated(a, b []float64, tol float64) bool {
	var sa, sb float64
	for i := range a {
		sa += a[i]
		sb += b[i]
		if sa > sb+tol {
			return false
		}
	}

	return math.Abs(sa-sb) <= tol
}

// sortedDescInt lifts the integer vector v into big.Int, pads it with zeros
// to length n and sorts it in descending order.
func sortedDescInt[T Number](v []T, n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := range out {
		if i < len(v) {
			out[i] = bigIntOf(v[i])
			continue
		}
		out[i] = new(big.Int)
	}
	slices.SortFunc(out, func(a, b *big.Int) int { return b.Cmp(a) })

	return out
}

// bigIntOf converts an integer value of any width and signedness.
func bigIntOf[T Number](x T) *big.Int {
	if x < 0 {
		return big.NewInt(int64(x))
	}

	return new(big.Int).SetUint64(uint64(x))
}

// prefixDominatedInt is prefixDominated over exact integer sums; the slack
// is ⌊tol⌋ since both sides are integers.
func prefixDominatedInt(a, b []*big.Int, tol float64) bool {
	slack, _ := new(big.Float).SetFloat64(math.Floor(tol)).Int(nil)
	sa, sb := new(big.Int), new(big.Int)
	bound, diff := new(big.Int), new(big.Int)
	for i := range a {
		sa.Add(sa, a[i])
		sb.Add(sb, b[i])
		if sa.Cmp(bound.Add(sb, slack)) > 0 {
			return false
		}
	}

	return diff.Sub(sa, sb).CmpAbs(slack) <= 0
}

// PrecedesRat reports whether q majorizes p using exact rational arithmetic.
// Tolerance is always zero. A nil entry makes the relation false.
func PrecedesRat(p, q []*big.Rat) bool {
	n := max(len(p), len(q))
	ps, ok := sortedDescRat(p, n)
	if !ok {
		return false
	}
	qs, ok := sortedDescRat(q, n)
	if !ok {
		return false
	}

	sa, sb := new(big.Rat), new(big.Rat)
	for i := 0; i < n; i++ {
		sa.Add(sa, ps[i])
		sb.Add(sb, qs[i])
		if sa.Cmp(sb) > 0 {
			return false
		}
	}

	return sa.Cmp(sb) == 0
}

// MajorizesRat reports whether p majorizes q using exact arithmetic.
func MajorizesRat(p, q []*big.Rat) bool {
	return PrecedesRat(q, p)
}

// sortedDescRat returns a zero-padded, descending copy of v (entries are
// shared, never mutated). ok is false when v holds a nil entry.
func sortedDescRat(v []*big.Rat, n int) ([]*big.Rat, bool) {
	out := make([]*big.Rat, n)
	zero := new(big.Rat)
	for i := range out {
		if i < len(v) {
			if v[i] == nil {
				return nil, false
			}
			out[i] = v[i]
			continue
		}
		out[i] = zero
	}
	slices.SortFunc(out, func(a, b *big.Rat) int { return b.Cmp(a) })

	return out, true
}
