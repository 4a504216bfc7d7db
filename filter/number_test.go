package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/juggle/filter"
	"github.com/katalvlaran/juggle/siteswap"
)

func TestNumberFilter_Fulfilled(t *testing.T) {
	five := filter.NewNumberFilter(siteswap.H(5), filter.AtLeast, 1)
	assert.True(t, five.Fulfilled(siteswap.Parse("531", 1)))
	assert.False(t, five.Fulfilled(siteswap.Parse("441", 1)))

	group := siteswap.Parse("86277", 2) // three selfs, two passes
	assert.False(t, filter.NewNumberFilter(siteswap.SelfThrow, filter.Exactly, 0).Fulfilled(group))
	assert.True(t, filter.NewNumberFilter(siteswap.PassThrow, filter.Exactly, 2).Fulfilled(group))
	assert.True(t, filter.NewNumberFilter(siteswap.SelfThrow, filter.AtMost, 3).Fulfilled(group))
	assert.False(t, filter.NewNumberFilter(siteswap.SelfThrow, filter.AtMost, 2).Fulfilled(group))
}

func TestNumberFilter_PartlyFulfilled(t *testing.T) {
	five := filter.NewNumberFilter(siteswap.H(5), filter.AtLeast, 1)
	// two open positions can still take a 5
	assert.True(t, five.PartlyFulfilled(siteswap.Parse("44**", 1), 1))
	assert.True(t, five.PartlyFulfilled(siteswap.Parse("444*", 1), 2))
	// nothing left to place
	assert.False(t, five.PartlyFulfilled(siteswap.Parse("4444", 1), 3))

	noSelf := filter.NewNumberFilter(siteswap.SelfThrow, filter.Exactly, 0)
	assert.False(t, noSelf.PartlyFulfilled(siteswap.Parse("8****", 2), 0))
	assert.True(t, noSelf.PartlyFulfilled(siteswap.Parse("7****", 2), 0))

	twoPass := filter.NewNumberFilter(siteswap.PassThrow, filter.Exactly, 2)
	assert.True(t, twoPass.PartlyFulfilled(siteswap.Parse("862**", 2), 2))
	assert.False(t, twoPass.PartlyFulfilled(siteswap.Parse("777**", 2), 2))

	atMost := filter.NewNumberFilter(siteswap.H(3), filter.AtMost, 1)
	assert.True(t, atMost.PartlyFulfilled(siteswap.Parse("3***", 1), 0))
	assert.False(t, atMost.PartlyFulfilled(siteswap.Parse("33**", 1), 1))
}

// A prefix accepted at every depth must never hide a completion the full
// check accepts.
func TestNumberFilter_PartialIsRelaxation(t *testing.T) {
	filters := []filter.NumberFilter{
		filter.NewNumberFilter(siteswap.H(5), filter.AtLeast, 1),
		filter.NewNumberFilter(siteswap.H(5), filter.Exactly, 1),
		filter.NewNumberFilter(siteswap.SelfThrow, filter.AtMost, 1),
		filter.NewNumberFilter(siteswap.PassThrow, filter.AtLeast, 2),
	}
	for _, s := range []string{"531", "55500", "86277", "97531", "7531", "64"} {
		full := siteswap.Parse(s, 2)
		for _, f := range filters {
			if !f.Fulfilled(full) {
				continue
			}
			for end := 0; end < full.Period(); end++ {
				prefix := siteswap.Filled(full.Period(), siteswap.FreeThrow, 2)
				for i := 0; i <= end; i++ {
					prefix.Set(i, full.At(i))
				}
				assert.True(t, f.PartlyFulfilled(prefix, end), "%s rejects prefix %s of %s", f, prefix, s)
			}
		}
	}
}

func TestNumberFilter_String(t *testing.T) {
	cases := []struct {
		f    filter.NumberFilter
		want string
	}{
		{filter.NewNumberFilter(siteswap.H(5), filter.AtLeast, 1), "at least 1 throw with height 5"},
		{filter.NewNumberFilter(siteswap.H(3), filter.AtMost, 2), "not more than 2 throws with height 3"},
		{filter.NewNumberFilter(siteswap.H(7), filter.Exactly, 0), "no throws with height 7"},
		{filter.NewNumberFilter(siteswap.H(11), filter.Exactly, 3), "exactly 3 throws with height b"},
		{filter.NewNumberFilter(siteswap.SelfThrow, filter.Exactly, 0), "no self"},
		{filter.NewNumberFilter(siteswap.PassThrow, filter.Exactly, 2), "exactly 2 pass"},
		{filter.NewNumberFilter(siteswap.PassThrow, filter.AtLeast, 1), "at least 1 pass"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.f.String())
	}
}
