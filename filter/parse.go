package filter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/juggle/siteswap"
)

// ErrInvalidFilter indicates a malformed filter description.
var ErrInvalidFilter = errors.New("filter: invalid filter")

// ParseBound decodes "at_least", "at_most" or "exactly". Dashes and
// spaces are accepted in place of the underscore.
func ParseBound(s string) (Bound, error) {
	norm := strings.NewReplacer("-", "_", " ", "_").Replace(strings.ToLower(strings.TrimSpace(s)))
	switch norm {
	case "at_least", "min":
		return AtLeast, nil
	case "at_most", "max":
		return AtMost, nil
	case "exactly", "eq":
		return Exactly, nil
	}

	return 0, fmt.Errorf("%w: unknown bound %q", ErrInvalidFilter, s)
}

// ParsePatternMode decodes "include" or "exclude".
func ParsePatternMode(s string) (PatternMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "include":
		return Include, nil
	case "exclude":
		return Exclude, nil
	}

	return 0, fmt.Errorf("%w: unknown pattern mode %q", ErrInvalidFilter, s)
}

// ParseValue decodes a filter value: a throw character ("5", "a"), or a
// word such as "self" or "pass".
func ParseValue(s string) (siteswap.Throw, error) {
	v := siteswap.ParseWord(s)
	if v.Kind() != siteswap.Height && v.Kind() != siteswap.Self && v.Kind() != siteswap.Pass {
		return siteswap.InvalidThrow, fmt.Errorf("%w: value %q", ErrInvalidFilter, s)
	}

	return v, nil
}

// ParseNumber decodes "value:threshold", e.g. "5:1" or "self:0".
func ParseNumber(s string, b Bound) (NumberFilter, error) {
	value, count, ok := strings.Cut(s, ":")
	if !ok {
		return NumberFilter{}, fmt.Errorf("%w: %q is not value:threshold", ErrInvalidFilter, s)
	}
	v, err := ParseValue(value)
	if err != nil {
		return NumberFilter{}, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil || n < 0 {
		return NumberFilter{}, fmt.Errorf("%w: threshold %q", ErrInvalidFilter, count)
	}

	return NewNumberFilter(v, b, n), nil
}

// ParsePattern decodes a sub-pattern for a PatternFilter. Wildcards
// s, p and ? are allowed; empty input is rejected.
func ParsePattern(s string, m PatternMode, jugglers int) (PatternFilter, error) {
	sub, err := siteswap.ParseStrict(s, jugglers)
	if err != nil {
		return PatternFilter{}, fmt.Errorf("%w: %w", ErrInvalidFilter, err)
	}
	if sub.Period() == 0 {
		return PatternFilter{}, fmt.Errorf("%w: empty pattern", ErrInvalidFilter)
	}

	return NewPatternFilter(sub, m), nil
}
