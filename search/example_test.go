package search_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/juggle/filter"
	"github.com/katalvlaran/juggle/search"
	"github.com/katalvlaran/juggle/siteswap"
)

// ExampleGenerator lists every three-ball pattern of period 3 with no
// throw above 5.
func ExampleGenerator() {
	g := search.New(search.Params{Period: 3, MaxThrow: 5, Objects: 3, Jugglers: 1})
	res := g.Generate(context.Background())
	fmt.Println(res.Patterns)
	fmt.Println(res.Stop, res.Complete)
	// Output:
	// [423 441 504 522 531]
	// exhausted true
}

// ExampleWithFilters keeps two-juggler patterns with a 5 and no selfs.
func ExampleWithFilters() {
	g := search.New(
		search.Params{Period: 4, MaxThrow: 7, Objects: 4, Jugglers: 2},
		search.WithFilters(
			filter.NewNumberFilter(siteswap.H(5), filter.AtLeast, 1),
			filter.NewNumberFilter(siteswap.SelfThrow, filter.Exactly, 0),
		),
	)
	for _, p := range g.Generate(context.Background()).Patterns {
		fmt.Printf("%s  %s\n", p, p.DividedString())
	}
	// Output:
	// 5551  2.5 2.5 2.5 0.5
	// 7135  3.5 0.5 1.5 2.5
	// 7531  3.5 2.5 1.5 0.5
}
