// Backtracking engine behind Generate.
//
// Rationale:
//  1. One working pattern and one cyclic landing interface are shared by
//     every recursion level. A placement writes both, the return path
//     reverts both, so a run allocates only for accepted patterns.
//  2. Pruning happens before descent: collisions and the range from
//     bounds first, then partial filters on the prefix placed so far.
//  3. Termination is cooperative. The context and the deadline are polled
//     every CheckInterval steps; a false return unwinds every frame.
//
// Complexity:
//   - Time: exponential in the period in the worst case; each step costs
//     O(period + maxThrow) for the bounds plus the partial filter checks.
//   - Memory: O(period + maxThrow) working state plus the results.

package search

import (
	"context"
	"math/rand"
	"time"

	"github.com/katalvlaran/juggle/filter"
	"github.com/katalvlaran/juggle/siteswap"
)

// Generator runs pattern searches for fixed parameters and options.
type Generator struct {
	params Params
	opts   Options
}

// New returns a Generator for p. Options are applied over DefaultOptions.
func New(p Params, opts ...Option) *Generator {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return newGenerator(p, o)
}

func newGenerator(p Params, o Options) *Generator {
	if o.Filters == nil {
		o.Filters = filter.Defaults(p.Jugglers)
	}

	return &Generator{params: p, opts: o}
}

// Params returns the generation parameters.
func (g *Generator) Params() Params { return g.params }

// Filters returns the effective filter list.
func (g *Generator) Filters() filter.List { return g.opts.Filters }

// Generate runs one search. It never fails: degenerate parameters yield
// an empty, complete result, and early termination is reported through
// Result.Stop.
func (g *Generator) Generate(ctx context.Context) Result {
	start := time.Now()
	e := g.newEngine(ctx, start)

	g.opts.Logger.Debug("search started",
		"period", g.params.Period,
		"max_throw", g.params.MaxThrow,
		"min_throw", g.params.MinThrow,
		"objects", g.params.Objects,
		"jugglers", g.params.Jugglers,
		"random", g.opts.Random,
		"filters", g.opts.Filters.String(),
	)

	if e.period > 0 {
		e.run()
	}

	res := Result{
		Params:   g.params,
		Patterns: e.found,
		Steps:    e.steps,
		Passes:   e.passes,
		Complete: e.stop == StopExhausted,
		Stop:     e.stop,
		Elapsed:  time.Since(start),
	}
	g.opts.Metrics.observe(res)
	g.opts.Logger.Info("search finished",
		"period", g.params.Period,
		"objects", g.params.Objects,
		"stop", res.Stop.String(),
		"patterns", len(res.Patterns),
		"steps", res.Steps,
		"elapsed", res.Elapsed,
	)

	return res
}

// engine holds the state of one run. The working pattern and interface
// are shared by all recursion levels and reverted on the way back.
type engine struct {
	// Parameters
	period   int
	maxThrow int
	minThrow int
	objects  int
	jugglers int

	// Policy
	filters    filter.List
	maxResults int
	random     bool
	rng        *rand.Rand

	// Termination
	ctx         context.Context
	useDeadline bool
	deadline    time.Time
	interval    int
	steps       int
	passes      int
	stop        Stop

	// Working state
	pattern *siteswap.Pattern
	iface   *siteswap.Pattern
	found   []*siteswap.Pattern
}

func (g *Generator) newEngine(ctx context.Context, start time.Time) *engine {
	if ctx == nil {
		ctx = context.Background()
	}
	e := &engine{
		period:     g.params.Period,
		maxThrow:   g.params.MaxThrow,
		minThrow:   max(g.params.MinThrow, 0),
		objects:    g.params.Objects,
		jugglers:   g.params.Jugglers,
		filters:    g.opts.Filters,
		maxResults: max(g.opts.MaxResults, 1),
		random:     g.opts.Random,
		ctx:        ctx,
		interval:   min(max(g.opts.CheckInterval, 1), MaxCheckInterval),
		stop:       StopExhausted,
	}
	if e.random {
		e.rng = rngFromSeed(g.opts.Seed)
	}
	if d := g.timeout(); d > 0 {
		e.useDeadline = true
		e.deadline = start.Add(d)
	}

	return e
}

// timeout returns the effective run budget. Random mode has no natural
// end, so it never runs without a deadline: a disabled timeout falls back
// to DefaultTimeout there.
func (g *Generator) timeout() time.Duration {
	if g.opts.Random && g.opts.Timeout <= 0 {
		return DefaultTimeout
	}

	return g.opts.Timeout
}

// run performs the exhaustive search, or random passes until a stop.
//
// In random mode an empty range for the first position cannot change
// between passes (it only depends on the parameters), so the run ends at
// once with no results instead of restarting until the deadline.
func (e *engine) run() {
	e.reset()
	if e.random {
		if lo, hi, _ := e.bounds(0, 0); lo > hi {
			return
		}
	}
	e.backtrack(0, 0)
	if !e.random {
		return
	}
	for e.stop == StopExhausted && !e.halted() {
		e.reset()
		e.backtrack(0, 0)
	}
}

// reset starts a fresh pass with every position and beat free.
func (e *engine) reset() {
	e.passes++
	e.pattern = siteswap.Filled(e.period, siteswap.FreeThrow, e.jugglers)
	e.iface = siteswap.Filled(e.period, siteswap.FreeThrow, e.jugglers)
}

// halted checks cancellation and the deadline and records the reason.
func (e *engine) halted() bool {
	if e.ctx.Err() != nil {
		e.stop = StopCanceled
		return true
	}
	if e.useDeadline && !time.Now().Before(e.deadline) {
		e.stop = StopTimeout
		return true
	}

	return false
}

// backtrack fills position index. It returns false to abort the whole
// pass; true means the caller continues with its next value.
//
// Complexity: O(period + maxThrow) per call plus filter cost; the call
// count is what Result.Steps reports.
func (e *engine) backtrack(index, unique int) bool {
	e.steps++
	if e.steps%e.interval == 0 && e.halted() {
		return false
	}

	if index == e.period {
		// Non-canonical rotation or shorter period.
		if unique != 0 {
			return true
		}
		if !e.filters.Fulfilled(e.pattern) {
			return true
		}
		e.found = append(e.found, e.pattern.Canonical())
		if len(e.found) >= e.maxResults {
			e.stop = StopLimit
			return false
		}

		// A random pass ends with its first pattern.
		return !e.random
	}
	if index != 0 && !e.filters.PartlyFulfilled(e.pattern, index-1) {
		return true
	}

	lo, hi, limit := e.bounds(index, unique)
	if e.random {
		if lo <= hi && !e.place(index, lo+e.rng.Intn(hi-lo+1), unique, limit) {
			return false
		}
	} else {
		for v := lo; v <= hi; v++ {
			if !e.place(index, v, unique, limit) {
				return false
			}
		}
	}
	e.pattern.Set(index, siteswap.FreeThrow)

	return true
}

// place tries height v at index and recurses. Occupied landing beats are
// skipped.
func (e *engine) place(index, v, unique, limit int) bool {
	if !e.iface.At(index + v).IsFree() {
		return true
	}
	e.pattern.Set(index, siteswap.H(v))
	e.iface.Set(index+v, siteswap.H(v))

	next := 0
	if v == limit {
		next = unique + 1
	}
	if !e.backtrack(index+1, next) {
		return false
	}
	e.iface.Set(index+v, siteswap.FreeThrow)

	return true
}
