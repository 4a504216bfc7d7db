// Package search enumerates siteswap patterns by depth-first backtracking.
//
// What:
//
//   - Generator: given a period, throw bounds, an object count and a juggler
//     count, lists every valid pattern in canonical rotation that the
//     configured filters accept, in discovery order.
//   - Random mode: samples patterns instead of enumerating them, restarting
//     the search until the result cap, the timeout or cancellation.
//   - Sweep: runs independent generators concurrently.
//   - Metrics: Prometheus collectors for runs, steps and accepted patterns.
//
// How:
//
//  1. One working pattern and its cyclic landing interface are mutated in
//     place; each recursion level sets one position and reverts it on return.
//  2. Collision pruning: a height whose landing beat is taken is skipped.
//  3. Sum pruning: the heights still to place must bring the total to
//     period·objects. Greedy scans over the free interface beats give the
//     smallest and largest sum the open positions can contribute, which
//     bounds the current value from both sides.
//  4. Rotation pruning: the first position takes the highest throw, every
//     later position is capped by the value at uniqueIndex. Matching the cap
//     advances uniqueIndex, anything smaller resets it. A full period that
//     ends with uniqueIndex != 0 is a non-canonical rotation or has a shorter
//     period and is dropped.
//  5. Filters: PartlyFulfilled prunes prefixes before each level past the
//     first; Fulfilled decides complete patterns.
//
// Termination:
//
//   - Exhausted: the space was searched completely (Result.Complete).
//   - Limit: MaxResults patterns were found.
//   - Timeout / Canceled: the deadline or ctx fired. Both are checked every
//     CheckInterval steps (at most 1000), and the abort unwinds every frame.
//
// Random mode draws one value per position uniformly from the pruned range.
// The first position is forced to MaxThrow, so samples are biased toward
// patterns that use the highest throw; the same pattern may be returned
// more than once. A random run always has a deadline: a disabled timeout
// selects DefaultTimeout. When the first position has no admissible value
// at all, a random run ends at once with StopExhausted and no results.
//
// Degenerate parameters (period < 1, inconsistent bounds, no jugglers) are
// not errors: the search finds nothing and reports StopExhausted.
// Params.Validate is an optional pre-check for callers that want one.
//
// Concurrency: a Generator may be reused and shared; every Generate call
// owns its working state. Filters must be stateless.
//
// Complexity: exponential in the period in the worst case; pruning keeps
// typical juggling parameters (period ≤ 8, max throw ≤ 10) interactive.
package search
