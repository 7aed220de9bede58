// Package simplex maps and samples points of the standard probability
// simplex Δ_{d−1} = {x ∈ ℝ^d : xᵢ ≥ 0, Σxᵢ = 1}.
//
// 🚀 Smith–Tromble sampling
//
//	Sort d−1 independent U(0,1) draws, add the boundary points 0 and 1 and
//	take the d consecutive gaps. The gap vector is uniformly distributed on
//	the simplex. The discrete analogue draws d−1 distinct cut points from
//	{1,…,n+d−1} ("stars and bars") and yields every lattice point of
//	{x ∈ ℕ^d : Σx = n} with equal probability; dividing by n gives exact
//	rationals with denominator dividing n.
//
// ✨ API:
//   - Point(unif)                  — deterministic cube → simplex mapper
//   - PointInt(cuts, n)            — its exact lattice counterpart
//   - Random(rng, d)               — uniform float64 simplex point
//   - RandomRational(rng, d, n)    — uniform rational lattice point
//   - NewRand(seed), Streams(seed, k) — deterministic RNG handles
//
// Concurrency:
//
//	*rand.Rand is NOT goroutine-safe. Pass one handle per goroutine; Streams
//	derives independent handles from a single seed. A nil handle selects a
//	deterministic default stream (seed==0 policy), never a time-based source.
//
// ⚙️ Usage:
//
//	rng := simplex.NewRand(42)
//	p, _ := simplex.Random(rng, 4)             // e.g. [0.12 0.51 0.08 0.29]
//	r, _ := simplex.RandomRational(rng, 3, 10) // e.g. [3/10 1/2 1/5]
package simplex
