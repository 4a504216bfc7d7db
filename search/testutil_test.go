package search_test

import (
	"sort"

	"github.com/katalvlaran/juggle/search"
	"github.com/katalvlaran/juggle/siteswap"
)

// strs renders patterns in result order.
func strs(ps []*siteswap.Pattern) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}

	return out
}

// bruteForce lists every primitive canonical valid pattern for p by plain
// enumeration, sorted. Filters are not applied.
func bruteForce(p search.Params) []string {
	var (
		out     []string
		heights = make([]int, p.Period)
		lo      = max(p.MinThrow, 0)
		rec     func(i int)
	)
	rec = func(i int) {
		if i == p.Period {
			sum := 0
			for _, h := range heights {
				sum += h
			}
			if sum != p.Period*p.Objects {
				return
			}
			pat := siteswap.FromHeights(heights, 1)
			if !pat.IsValid() || !pat.IsCanonical() || !primitive(pat) {
				return
			}
			out = append(out, pat.String())
			return
		}
		for h := lo; h <= p.MaxThrow; h++ {
			heights[i] = h
			rec(i + 1)
		}
	}
	rec(0)
	sort.Strings(out)

	return out
}

// primitive reports whether no proper rotation of p equals p.
func primitive(p *siteswap.Pattern) bool {
	for k := 1; k < p.Period(); k++ {
		r := p.Clone()
		r.RotateLeft(k)
		if r.Equal(p) {
			return false
		}
	}

	return true
}
