package search_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/juggle/search"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := search.NewMetrics(reg)

	p := search.Params{Period: 3, MaxThrow: 5, Objects: 3, Jugglers: 1}
	search.New(p, search.WithMetrics(m)).Generate(context.Background())
	search.New(p, search.WithMetrics(m), search.WithMaxResults(1)).Generate(context.Background())

	expected := `
# HELP juggle_search_patterns_total Patterns accepted by pattern searches.
# TYPE juggle_search_patterns_total counter
juggle_search_patterns_total 6
# HELP juggle_search_runs_total Finished pattern searches by stop reason.
# TYPE juggle_search_runs_total counter
juggle_search_runs_total{stop="exhausted"} 1
juggle_search_runs_total{stop="limit"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"juggle_search_patterns_total", "juggle_search_runs_total"))

	n, err := testutil.GatherAndCount(reg, "juggle_search_duration_seconds", "juggle_search_steps_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMetrics_Nil(t *testing.T) {
	p := search.Params{Period: 2, MaxThrow: 5, Objects: 3, Jugglers: 1}
	res := search.New(p, search.WithMetrics(nil)).Generate(context.Background())
	assert.Len(t, res.Patterns, 2)
	assert.NotPanics(t, func() { search.NewMetrics(nil) })
}
