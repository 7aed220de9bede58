// Package simplex: seeding policy for the point generators.
//
// Random and RandomRational never create randomness of their own: they draw
// from the *rand.Rand the caller hands in, and fall back to a DefaultSeed
// stream on nil. A fixed seed therefore yields the same simplex points on
// every platform, which the property tests and the examples rely on.
// Sampling many points in parallel needs one handle per goroutine; Streams
// builds them.
package simplex

import "math/rand"

// DefaultSeed is the seed used when callers pass seed==0 or a nil *rand.Rand.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Streams returns k deterministic RNG handles for k sampling goroutines.
// Handle i depends only on (seed, i), so Streams(s, 2) is a prefix of
// Streams(s, 3). k <= 0 yields nil.
func Streams(seed int64, k int) []*rand.Rand {
	if k <= 0 {
		return nil
	}
	if seed == 0 {
		seed = DefaultSeed
	}

	out := make([]*rand.Rand, k)
	for i := range out {
		out[i] = rand.New(rand.NewSource(streamSeed(seed, i)))
	}

	return out
}

// streamSeed returns the seed of worker stream i: the (i+1)-th output of a
// SplitMix64 generator started at seed.
func streamSeed(seed int64, i int) int64 {
	const (
		gamma = 0x9e3779b97f4a7c15
		mul1  = 0xbf58476d1ce4e5b9
		mul2  = 0x94d049bb133111eb
	)
	z := uint64(seed) + uint64(i+1)*gamma
	z = (z ^ z>>30) * mul1
	z = (z ^ z>>27) * mul2

	return int64(z ^ z>>31)
}

// orDefault returns rng, or a fresh DefaultSeed stream when rng is nil.
func orDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return NewRand(0)
	}

	return rng
}
