// Range pruning for the backtracking engine.
//
// Rationale:
//  1. Canonical cap: a canonical pattern is its greatest rotation, so no
//     position may exceed the value at uniqueIndex. Equality advances
//     uniqueIndex; the leaf accepts only uniqueIndex == 0, which also drops
//     patterns that repeat a shorter period.
//  2. Sum feasibility: the throws still to be placed must be able to bring
//     the total to period·objects. maxSum and minSum are greedy bounds over
//     the free landing beats, so they never cut a reachable pattern.
//  3. Both bounds read the working interface only; nothing here allocates.

package search

// bounds returns the admissible range lo..hi for position index and the
// rotation cap that advances uniqueIndex when matched.
//
// The first position ranges from the object count (MaxThrow in random
// mode) to MaxThrow; its cap lies above MaxThrow so it never advances
// uniqueIndex. Later positions are capped by the value at unique. All
// positions are then narrowed so the period sum can still reach
// period·objects. The result may be empty (lo > hi).
//
// Complexity: O(period + maxThrow), dominated by maxSum and minSum.
func (e *engine) bounds(index, unique int) (lo, hi, limit int) {
	var (
		target  = e.period * e.objects
		partial = e.pattern.PartialSum(0, index-1)
	)
	if index == 0 {
		lo, hi, limit = max(e.objects, e.minThrow), e.maxThrow, e.maxThrow+1
		if e.random {
			lo = e.maxThrow
		}
	} else {
		limit = e.pattern.At(unique).Height()
		lo, hi = e.minThrow, limit
	}

	lo = max(lo, target-partial-e.maxSum(index+1), 0)
	hi = min(hi, target-partial-e.minSum(index+1))

	return lo, hi, limit
}

// maxSum is an upper bound on the heights positions from..period-1 can
// add. Walking back from the last position, each takes the latest free
// beat left. The last position of a canonical pattern longer than one
// throw stays below MaxThrow, so the walk starts one beat early.
//
// Complexity: O(period + maxThrow); beat only moves backwards.
func (e *engine) maxSum(from int) int {
	var (
		sum  int
		beat = e.period + e.maxThrow - 2
	)
	for i := e.period - 1; i >= from; i-- {
		for !e.iface.At(beat).IsFree() {
			beat--
			if beat == 0 {
				return 0
			}
		}
		sum += beat - i
		beat--
	}

	return sum
}

// minSum is a lower bound on the heights positions from..period-1 can
// add. Walking forward, each takes the earliest free beat at least
// MinThrow ahead. The caller has placed fewer than period throws, so a
// free beat always exists.
//
// Complexity: O(period + minThrow); beat only moves forwards.
func (e *engine) minSum(from int) int {
	var (
		sum  int
		beat = from + e.minThrow
	)
	for i := from; i < e.period; i++ {
		for !e.iface.At(beat).IsFree() {
			beat++
		}
		sum += beat - i
		beat++
	}

	return sum
}
