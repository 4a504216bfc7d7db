// Package siteswap models asynchronous siteswap juggling patterns for one
// or more jugglers.
//
// What:
//
//   - Throw: a tagged throw value. Either a height (beats until landing) or
//     one of the symbols Self, Pass, DontCare, Free, Invalid.
//   - Pattern: a periodic throw sequence plus a juggler count, stored in a
//     cyclic.Seq so every index wraps around the period.
//   - Landing interfaces: which throw lands on which beat. The cyclic
//     interface decides validity; the projected (linear) interface drives
//     the transition computations.
//   - Canonical form: one representative per rotation class.
//   - Symbolic matching: filter patterns may contain Self, Pass and DontCare
//     wildcards and are matched against concrete patterns.
//   - Transitions: get-in and get-out sequences that enter and leave a
//     pattern from the plain cascade, globally and split per juggler.
//
// Why:
//
//   - The search package mutates one Pattern and its interface in place;
//     the same type is then used to inspect, render and transform results.
//
// Key rules:
//
//   - Valid: no two throws land on the same beat (mod period).
//   - Objects = sum of heights / period.
//   - Self/Pass: in a pattern for n jugglers, height h is a self throw iff
//     h mod n == 0. With fewer than one juggler nothing is self or pass.
//   - Canonical: the rotation that compares greatest position by position,
//     which puts the highest throw first ("531", "441", "75314").
//
// Complexity:
//
//   - IsValid, Interface, CountValue: O(p)
//   - MakeCanonical: O(p²)
//   - IsPattern: O(p·q) for a filter pattern of length q
//   - Getin, Getout: O(p + maxThrow) plus the greedy slot scan
//
// Errors:
//
//   - ErrInvalidThrow  returned by ParseStrict when a character does not decode
//   - ErrSymbolicThrow returned by ParseHeights for Self, Pass, DontCare or Free
//
// Parsing is lenient by default: unknown characters become Invalid throws
// and the caller checks HasInvalid (or uses ParseStrict).
package siteswap
