// Deterministic randomness for random-mode searches.
//
// Concurrency:
//   - *rand.Rand is not goroutine-safe. Each engine owns its own instance;
//     Sweep derives one seed per parameter set with deriveSeed.

package search

import "math/rand"

// defaultRNGSeed replaces a zero seed so the default stream is stable.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 selects
// defaultRNGSeed. The result is not safe for concurrent use.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// deriveSeed mixes a parent seed and a stream id into a new seed so that
// Sweep members sample independent streams.
//
// Rationale:
//   - Adjacent stream ids (0, 1, 2, ...) must not yield correlated
//     sequences, so the pair goes through the SplitMix64 finalizer, whose
//     multipliers spread a one-bit input change over the whole word.
//   - The same (parent, stream) pair always yields the same seed, so a
//     seeded Sweep is reproducible regardless of goroutine scheduling.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	if parent == 0 {
		parent = defaultRNGSeed
	}
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
