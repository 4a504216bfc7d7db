package search

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/juggle/filter"
	"github.com/katalvlaran/juggle/siteswap"
)

// ErrInvalidParams is returned by Params.Validate.
var ErrInvalidParams = errors.New("search: invalid parameters")

const (
	// DefaultMaxResults is effectively unbounded.
	DefaultMaxResults = 1_000_000_000
	// DefaultTimeout bounds a run when no timeout is configured.
	DefaultTimeout = 100 * time.Second
	// MaxCheckInterval is the largest step distance between two deadline
	// and cancellation checks.
	MaxCheckInterval = 1000
)

// Params are the generation parameters.
type Params struct {
	Period   int // number of throws per pattern
	MaxThrow int // highest admissible height
	MinThrow int // lowest admissible height; negative values count as 0
	Objects  int // number of juggled objects
	Jugglers int // number of jugglers sharing the pattern
}

// Validate rejects parameters that can never produce a pattern, and max
// throws whose results could not be written in one-character notation.
func (p Params) Validate() error {
	switch {
	case p.Period < 1:
		return fmt.Errorf("%w: period %d < 1", ErrInvalidParams, p.Period)
	case p.Jugglers < 1:
		return fmt.Errorf("%w: jugglers %d < 1", ErrInvalidParams, p.Jugglers)
	case p.MaxThrow < 0:
		return fmt.Errorf("%w: max throw %d < 0", ErrInvalidParams, p.MaxThrow)
	case p.MaxThrow > siteswap.MaxHeight:
		return fmt.Errorf("%w: max throw %d > %d has no notation", ErrInvalidParams, p.MaxThrow, siteswap.MaxHeight)
	case p.MinThrow > p.MaxThrow:
		return fmt.Errorf("%w: min throw %d > max throw %d", ErrInvalidParams, p.MinThrow, p.MaxThrow)
	case p.Objects < max(p.MinThrow, 0) || p.Objects > p.MaxThrow:
		return fmt.Errorf("%w: objects %d outside %d..%d", ErrInvalidParams, p.Objects, max(p.MinThrow, 0), p.MaxThrow)
	}

	return nil
}

// Stop tells why a run ended.
type Stop uint8

const (
	// StopExhausted means the whole space was searched.
	StopExhausted Stop = iota
	// StopLimit means MaxResults patterns were found.
	StopLimit
	// StopTimeout means the deadline passed.
	StopTimeout
	// StopCanceled means the context was canceled.
	StopCanceled
)

// String returns the metric label for s.
func (s Stop) String() string {
	switch s {
	case StopExhausted:
		return "exhausted"
	case StopLimit:
		return "limit"
	case StopTimeout:
		return "timeout"
	case StopCanceled:
		return "canceled"
	}

	return "unknown"
}

// Result is the outcome of one Generate call.
type Result struct {
	Params   Params
	Patterns []*siteswap.Pattern // canonical patterns in discovery order
	Steps    int                 // recursive steps taken
	Passes   int                 // searches started; above 1 only in random mode
	Complete bool                // the space was exhausted
	Stop     Stop
	Elapsed  time.Duration
}

// Aborted reports whether the run stopped before exhausting the space.
func (r Result) Aborted() bool { return r.Stop != StopExhausted }

// Option configures a Generator.
type Option func(*Options)

// Options holds the generator policy.
type Options struct {
	// Filters restrict accepted patterns. Nil selects filter.Defaults for
	// the juggler count; an empty non-nil list accepts everything.
	Filters filter.List

	// MaxResults stops the run once this many patterns were found.
	MaxResults int

	// Timeout bounds the run; zero or negative disables the deadline in
	// exhaustive mode and selects DefaultTimeout in random mode.
	Timeout time.Duration

	// Random switches to sampling mode; Seed feeds its RNG (0 selects a
	// fixed default seed).
	Random bool
	Seed   int64

	// CheckInterval is the number of steps between deadline checks,
	// within 1..MaxCheckInterval.
	CheckInterval int

	// Logger receives run start and finish events.
	Logger *slog.Logger

	// Metrics, if non-nil, records every finished run.
	Metrics *Metrics
}

// DefaultOptions returns:
//   - default filters for the juggler count
//   - DefaultMaxResults and DefaultTimeout
//   - exhaustive mode
//   - checks every MaxCheckInterval steps
//   - a discarding logger and no metrics
func DefaultOptions() Options {
	return Options{
		Filters:       nil,
		MaxResults:    DefaultMaxResults,
		Timeout:       DefaultTimeout,
		CheckInterval: MaxCheckInterval,
		Logger:        slog.New(slog.DiscardHandler),
	}
}

// WithFilters replaces the filter list. Called without arguments it
// disables filtering, including the defaults.
func WithFilters(fs ...filter.Filter) Option {
	return func(o *Options) {
		o.Filters = append(filter.List{}, fs...)
	}
}

// WithMaxResults caps the number of results. Values below 1 restore
// DefaultMaxResults.
func WithMaxResults(n int) Option {
	return func(o *Options) {
		if n < 1 {
			n = DefaultMaxResults
		}
		o.MaxResults = n
	}
}

// WithTimeout sets the wall-clock budget. d <= 0 disables it for
// exhaustive runs; random runs fall back to DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(o *Options) { o.Timeout = d }
}

// WithRandom enables random sampling with a deterministic seed.
func WithRandom(seed int64) Option {
	return func(o *Options) {
		o.Random = true
		o.Seed = seed
	}
}

// WithCheckInterval sets how many steps pass between deadline checks.
// The value is clamped to 1..MaxCheckInterval.
func WithCheckInterval(n int) Option {
	return func(o *Options) {
		o.CheckInterval = min(max(n, 1), MaxCheckInterval)
	}
}

// WithLogger sets the logger; nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records finished runs into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}
