// Package filter provides predicates that restrict which siteswap patterns
// a search accepts.
//
// What:
//
//   - Filter: the capability consumed by the search engine. Fulfilled judges
//     a complete pattern; PartlyFulfilled judges the prefix 0..end of a
//     pattern under construction and is used for pruning.
//   - NumberFilter: bounds how often a throw value (a height, or the Self /
//     Pass symbols) occurs in a pattern.
//   - PatternFilter: requires or forbids a sub-pattern, wildcards allowed.
//   - List: an ordered conjunction of filters.
//   - Defaults: the filter set applied when the caller asks for none.
//
// Contract:
//
//   - PartlyFulfilled must be a relaxation: it may only reject a prefix if
//     no completion of it can satisfy Fulfilled. Undecided positions of the
//     pattern hold Free, which matches nothing.
//   - Filters are stateless values and safe for concurrent use.
//
// Complexity:
//
//   - NumberFilter: O(p) per check.
//   - PatternFilter: O(p·q) per check for a filter pattern of length q.
//
// Errors:
//
//   - ErrInvalidFilter  returned by the parse helpers for malformed input
package filter
