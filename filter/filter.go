package filter

import (
	"strings"

	"github.com/katalvlaran/juggle/siteswap"
)

// Filter decides whether a pattern is acceptable.
type Filter interface {
	// Fulfilled reports whether the complete pattern p is accepted.
	Fulfilled(p *siteswap.Pattern) bool
	// PartlyFulfilled reports whether the prefix p[0..end] can still be
	// completed to an accepted pattern.
	PartlyFulfilled(p *siteswap.Pattern, end int) bool
	// String describes the filter for humans.
	String() string
}

// List is an ordered conjunction of filters. A nil List accepts everything.
type List []Filter

// Fulfilled reports whether every filter accepts p, stopping at the first
// rejection.
func (l List) Fulfilled(p *siteswap.Pattern) bool {
	for _, f := range l {
		if !f.Fulfilled(p) {
			return false
		}
	}

	return true
}

// PartlyFulfilled reports whether every filter accepts the prefix
// p[0..end], stopping at the first rejection.
func (l List) PartlyFulfilled(p *siteswap.Pattern, end int) bool {
	for _, f := range l {
		if !f.PartlyFulfilled(p, end) {
			return false
		}
	}

	return true
}

// String joins the filter descriptions with ", ".
func (l List) String() string {
	parts := make([]string, 0, len(l))
	for _, f := range l {
		parts = append(parts, f.String())
	}

	return strings.Join(parts, ", ")
}

// Defaults returns the filters applied when none are configured: nothing
// for a single juggler, at least one pass for a group.
func Defaults(jugglers int) List {
	if jugglers <= 1 {
		return List{}
	}

	return List{NewNumberFilter(siteswap.PassThrow, AtLeast, 1)}
}
