package filter

import "github.com/katalvlaran/juggle/siteswap"

// PatternMode selects whether a PatternFilter requires or forbids its
// sub-pattern.
type PatternMode uint8

const (
	// Include accepts patterns that contain the sub-pattern.
	Include PatternMode = iota
	// Exclude accepts patterns that do not contain the sub-pattern.
	Exclude
)

// String returns the config spelling of m.
func (m PatternMode) String() string {
	if m == Exclude {
		return "exclude"
	}

	return "include"
}

// PatternFilter matches a sub-pattern at any rotation, wrapping around the
// period. The sub-pattern may contain Self, Pass and DontCare.
type PatternFilter struct {
	Pattern *siteswap.Pattern
	Mode    PatternMode
}

// NewPatternFilter returns a PatternFilter for sub.
func NewPatternFilter(sub *siteswap.Pattern, m PatternMode) PatternFilter {
	return PatternFilter{Pattern: sub, Mode: m}
}

// Fulfilled reports whether the presence of the sub-pattern in p agrees
// with Mode.
func (f PatternFilter) Fulfilled(p *siteswap.Pattern) bool {
	found := p.IsPattern(f.Pattern)
	if f.Mode == Exclude {
		return !found
	}

	return found
}

// PartlyFulfilled never rejects for Include. For Exclude it rejects once
// the decided prefix already contains the sub-pattern; open positions are
// Free and never match.
func (f PatternFilter) PartlyFulfilled(p *siteswap.Pattern, end int) bool {
	if f.Mode == Include {
		return true
	}
	if f.Pattern.Period() == 0 {
		return false
	}

	return !p.IsPattern(f.Pattern)
}

// String reads like "include 5?".
func (f PatternFilter) String() string {
	return f.Mode.String() + " " + f.Pattern.String()
}
