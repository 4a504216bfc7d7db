// Package juggle finds, checks and explains asynchronous siteswap juggling
// patterns for one juggler or a passing group.
//
// What is juggle?
//
//	A small library plus a CLI built around one exhaustive search:
//		• cyclic/   – fixed-length sequences with wrap-around indexing
//		• siteswap/ – throws, patterns, validity, canonical form, transitions
//		• filter/   – constraints on throw counts and sub-patterns
//		• search/   – backtracking generator, random sampling, parallel sweeps
//		• config/   – YAML search profiles
//		• cmd/juggle – generate and analyze from the terminal
//
// Why juggle?
//
//   - Complete: every valid pattern in the requested ranges is found once,
//     in its canonical rotation.
//   - Bounded: result caps, deadlines and context cancellation stop long
//     runs cleanly and report why they stopped.
//   - Passing aware: Self and Pass wildcards, per-juggler notation and
//     per-juggler get-in/get-out sequences.
//
// Quick example, three objects in period three for one juggler:
//
//	g := search.New(search.Params{Period: 3, MaxThrow: 5, Objects: 3, Jugglers: 1})
//	res := g.Generate(ctx)
//	// res.Patterns: 423 441 504 522 531
//
// The notation:
//
//	5 3 1 → throw a five, then a three, then a one; every ball lands on a
//	distinct beat, so the sequence repeats forever.
//
//	go install github.com/katalvlaran/juggle/cmd/juggle@latest
package juggle
