package filter

import (
	"strconv"

	"github.com/katalvlaran/juggle/siteswap"
)

// Bound selects how a NumberFilter compares its count to the threshold.
type Bound uint8

const (
	// AtLeast accepts count >= threshold.
	AtLeast Bound = iota
	// AtMost accepts count <= threshold.
	AtMost
	// Exactly accepts count == threshold.
	Exactly
)

// String returns the config spelling of b.
func (b Bound) String() string {
	switch b {
	case AtLeast:
		return "at_least"
	case AtMost:
		return "at_most"
	case Exactly:
		return "exactly"
	}

	return "unknown"
}

// NumberFilter bounds the number of positions matching Value.
// Value may be a height or one of Self, Pass.
type NumberFilter struct {
	Value     siteswap.Throw
	Bound     Bound
	Threshold int
}

// NewNumberFilter returns a NumberFilter for v.
func NewNumberFilter(v siteswap.Throw, b Bound, threshold int) NumberFilter {
	return NumberFilter{Value: v, Bound: b, Threshold: threshold}
}

// Fulfilled compares the full count of Value against the threshold.
func (f NumberFilter) Fulfilled(p *siteswap.Pattern) bool {
	count := p.CountValue(f.Value)
	switch f.Bound {
	case AtLeast:
		return count >= f.Threshold
	case AtMost:
		return count <= f.Threshold
	default:
		return count == f.Threshold
	}
}

// PartlyFulfilled rejects a prefix once the count already exceeds an upper
// bound, or once the positions left after end cannot reach a lower one.
func (f NumberFilter) PartlyFulfilled(p *siteswap.Pattern, end int) bool {
	var (
		count = p.CountValuePartial(f.Value, end)
		// count + positions still open after end >= threshold
		reachable = count+(p.Period()-end) > f.Threshold
	)
	switch f.Bound {
	case AtLeast:
		return reachable
	case AtMost:
		return count <= f.Threshold
	default:
		return count <= f.Threshold && reachable
	}
}

// String reads like "at least 1 throw with height 5" or "no self".
func (f NumberFilter) String() string {
	var s string
	switch f.Bound {
	case Exactly:
		if f.Threshold == 0 {
			if f.Value.IsHeight() {
				return "no throws with height " + f.Value.String()
			}
			return "no " + f.Value.Word()
		}
		s = "exactly " + strconv.Itoa(f.Threshold)
	case AtLeast:
		s = "at least " + strconv.Itoa(f.Threshold)
	case AtMost:
		s = "not more than " + strconv.Itoa(f.Threshold)
	default:
		return ""
	}

	if !f.Value.IsHeight() {
		return s + " " + f.Value.Word()
	}
	if f.Threshold == 1 {
		s += " throw"
	} else {
		s += " throws"
	}

	return s + " with height " + f.Value.String()
}
