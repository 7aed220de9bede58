// Package majorize is a small toolkit for majorization theory over
// probability vectors: comparing them, sampling them and finding the
// extreme points of total-variation balls in majorization order.
//
// 🚀 What is inside?
//
//	A pure-Go, allocation-light library that brings together:
//		• Majorization order: p ≺ q for float, integer and exact rational vectors
//		• Total variation distance: ½·Σ|pᵢ−qᵢ|
//		• Extrema: the most peaked (Max) and flattest (Min) vector within a
//		  TV ball of radius ϵ
//		• Continuity bounds: how much a Schur-convex or Schur-concave function
//		  (entropies, max-probability, …) can change inside that ball
//		• Simplex sampling: Smith–Tromble uniform points, real or rational
//
// ✨ Why?
//
//   - Every function is pure: no global state, safe for concurrent use
//   - Sentinel errors, matchable with errors.Is
//   - Deterministic randomness: explicit *rand.Rand handles, seeded streams
//
// Subpackages:
//
//	majorization/ — Precedes/Majorizes, TotalVariation, Max, Min, LocalBound
//	simplex/      — Point, PointInt, Random, RandomRational, RNG streams
//
// Quick example:
//
//	q := []float64{0.5, 0.3, 0.2}
//	hi, _ := majorization.Max(q, 0.1) // [0.6 0.3 0.1]
//	lo, _ := majorization.Min(q, 0.1) // [0.4 0.3 0.3]
//
//	go get github.com/katalvlaran/majorize
package majorize
