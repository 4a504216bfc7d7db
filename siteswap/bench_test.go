// Benchmarks for the pattern model hot paths: canonical rotation, validity
// and transitions. Inputs are parsed outside the timer.
package siteswap_test

import (
	"testing"

	"github.com/katalvlaran/juggle/siteswap"
)

// benchPatterns mixes ground-state, excited and passing patterns of
// growing period.
var benchPatterns = []string{"531", "86277", "b97531", "db97531", "a8a8a8a80"}

func parseAll(b *testing.B, jugglers int) []*siteswap.Pattern {
	b.Helper()
	out := make([]*siteswap.Pattern, len(benchPatterns))
	for i, s := range benchPatterns {
		out[i] = siteswap.Parse(s, jugglers)
	}

	return out
}

// BenchmarkMakeCanonical rotates a copy of every pattern to canonical form.
//
// Complexity: O(p²) per pattern.
func BenchmarkMakeCanonical(b *testing.B) {
	ps := parseAll(b, 1)
	for _, p := range ps {
		p.RotateLeft(1) // start away from the canonical rotation
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range ps {
			_ = p.Canonical()
		}
	}
}

// BenchmarkIsValid checks landing collisions.
//
// Complexity: O(p) per pattern.
func BenchmarkIsValid(b *testing.B) {
	ps := parseAll(b, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range ps {
			_ = p.IsValid()
		}
	}
}

// BenchmarkGetinGetout computes both global transitions.
//
// Complexity: O(p + maxThrow) per pattern plus the slot scan.
func BenchmarkGetinGetout(b *testing.B) {
	ps := parseAll(b, 1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range ps {
			_ = p.Getin()
			_ = p.Getout()
		}
	}
}

// BenchmarkLocalTransitions splits transitions for two jugglers.
func BenchmarkLocalTransitions(b *testing.B) {
	ps := parseAll(b, 2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, p := range ps {
			_ = p.LocalGetins()
			_ = p.LocalGetouts()
		}
	}
}
