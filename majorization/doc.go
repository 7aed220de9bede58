// SPDX-License-Identifier: MIT

// Package majorization compares and perturbs probability vectors under the
// majorization preorder and the total variation (TV) distance.
//
// 🚀 What is majorization?
//
//	For vectors of equal mass, q majorizes p (written p ≺ q) when every
//	prefix sum of q sorted in descending order is at least the matching
//	prefix sum of p sorted the same way. Intuitively q is "more peaked"
//	than p: the point mass (1,0,…,0) majorizes every probability vector and
//	every probability vector majorizes the uniform one.
//
// ✨ Key features:
//   - Precedes / Majorizes — the ≺ relation, generic over integer and float
//     element types, with a type-dependent default tolerance
//   - PrecedesRat / MajorizesRat — the same relation on exact *big.Rat vectors
//   - TotalVariation — ½·Σ|pᵢ−qᵢ|, plus the exact TotalVariationRat
//   - Max / Min — the majorization-maximal and -minimal probability vectors
//     inside the TV ball of radius ϵ around q, plus the exact MaxRat / MinRat
//   - LocalBound — a continuity bound for Schur-convex or Schur-concave
//     functions over that ball, built on Max and Min
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/majorize/majorization"
//
//	q := []float64{0.5, 0.3, 0.2}
//	hi, _ := majorization.Max(q, 0.1)  // [0.6 0.3 0.1]
//	lo, _ := majorization.Min(q, 0.1)  // [0.4 0.3 0.3]
//
//	// every r with TV(q, r) <= 0.1 satisfies lo ≺ r ≺ hi
//	majorization.Precedes(lo, q) // true
//	majorization.Precedes(q, hi) // true
//
//	// how far can the entropy move inside the ball?
//	delta, _ := majorization.LocalBound(majorization.ShannonEntropy, q, 0.1)
//
// Numeric policy:
//
//	Integer operands of Precedes are summed exactly in big.Int.
//	Float inputs are checked with DefaultTolerance (1e-8) unless
//	WithTolerance overrides it. Outputs of Max and Min are clamped into
//	[0,1] and renormalized, so they are valid probability vectors even
//	after floating-point drift.
//
// Complexity:
//
//   - Precedes/Majorizes: O(n log n) for the sorts, O(n) memory
//   - TotalVariation:     O(n)
//   - Max/Min:            O(n log n), O(n) memory
//   - LocalBound:         O(n log n) plus three evaluations of f
//
// All functions are pure and safe for concurrent use.
package majorization
