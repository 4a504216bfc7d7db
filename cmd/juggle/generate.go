package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/juggle/config"
	"github.com/katalvlaran/juggle/filter"
	"github.com/katalvlaran/juggle/internal/logging"
	"github.com/katalvlaran/juggle/internal/render"
	"github.com/katalvlaran/juggle/search"
)

// errObjectsRange is returned for a malformed --objects value.
var errObjectsRange = errors.New("objects must be N or LOW-HIGH")

type generateFlags struct {
	period   int
	maxThrow int
	minThrow int
	objects  string
	jugglers int
	limit    int
	timeout  time.Duration
	random   bool
	seed     int64
	parallel int

	atLeast []string
	atMost  []string
	exactly []string
	include []string
	exclude []string

	noDefaults  bool
	transitions bool
	local       bool
	markdown    bool
	metricsAddr string
}

func newGenerateCmd(a *app) *cobra.Command {
	var flags generateFlags
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "List siteswap patterns matching the given parameters",
		Long: `Generate every valid pattern (in canonical rotation) for the given
period, throw bounds and object count, keeping the ones the filters accept.

Flags override the profile given with --config. An object range such as
--objects 3-5 runs one search per object count, --parallel at a time.

Filters:
  --at-least 5:1      at least one throw of height 5
  --exactly self:0    no self throws
  --at-most p:2       not more than two passes
  --include 5?        contains a 5 followed by anything
  --exclude 33        never two 3s in a row`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGenerate(cmd, &flags)
		},
	}

	def := config.Default()
	f := cmd.Flags()
	f.IntVarP(&flags.period, "period", "p", def.Period, "Period length")
	f.IntVarP(&flags.maxThrow, "max", "m", def.MaxThrow, "Highest throw")
	f.IntVar(&flags.minThrow, "min", def.MinThrow, "Lowest throw")
	f.StringVarP(&flags.objects, "objects", "o", strconv.Itoa(def.Objects), "Number of objects, or a range LOW-HIGH")
	f.IntVarP(&flags.jugglers, "jugglers", "j", def.Jugglers, "Number of jugglers")
	f.IntVarP(&flags.limit, "limit", "n", def.MaxResults, "Stop after this many patterns per search (0 = unlimited)")
	f.DurationVar(&flags.timeout, "timeout", def.Timeout, "Time budget per search (0 = none; random runs use the default)")
	f.BoolVar(&flags.random, "random", false, "Sample random patterns instead of listing all")
	f.Int64Var(&flags.seed, "seed", 0, "Random seed (0 = fixed default)")
	f.IntVar(&flags.parallel, "parallel", 1, "Searches to run at once for an object range (0 = all)")

	f.StringArrayVar(&flags.atLeast, "at-least", nil, "Require at least N throws VALUE (VALUE:N)")
	f.StringArrayVar(&flags.atMost, "at-most", nil, "Allow at most N throws VALUE (VALUE:N)")
	f.StringArrayVar(&flags.exactly, "exactly", nil, "Require exactly N throws VALUE (VALUE:N)")
	f.StringArrayVar(&flags.include, "include", nil, "Require a sub-pattern (wildcards s, p, ?)")
	f.StringArrayVar(&flags.exclude, "exclude", nil, "Forbid a sub-pattern (wildcards s, p, ?)")

	f.BoolVar(&flags.noDefaults, "no-default-filters", false, "Do not require a pass for several jugglers")
	f.BoolVar(&flags.transitions, "transitions", false, "Show getin and getout")
	f.BoolVar(&flags.local, "local", false, "Show every juggler's local throws")
	f.BoolVar(&flags.markdown, "markdown", false, "Render Markdown tables")
	f.StringVar(&flags.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while searching")

	return cmd
}

func (a *app) runGenerate(cmd *cobra.Command, flags *generateFlags) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	lo, hi, err := flags.apply(cmd.Flags(), cfg)
	if err != nil {
		return err
	}

	list, err := cfg.FilterList()
	if err != nil {
		return err
	}
	extra, err := flags.filters(cfg.Jugglers)
	if err != nil {
		return err
	}
	list = append(list, extra...)

	params := make([]search.Params, 0, hi-lo+1)
	for objects := lo; objects <= hi; objects++ {
		p := cfg.Params()
		p.Objects = objects
		if err := p.Validate(); err != nil {
			return err
		}
		params = append(params, p)
	}

	runID := uuid.NewString()
	logger := logging.Component(a.logger, "generate").With("run_id", runID)
	opts := []search.Option{
		search.WithFilters(list...),
		search.WithMaxResults(cfg.MaxResults),
		search.WithTimeout(cfg.Timeout),
		search.WithLogger(logger),
	}
	if cfg.Random {
		opts = append(opts, search.WithRandom(cfg.Seed))
	}
	if flags.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector())
		opts = append(opts, search.WithMetrics(search.NewMetrics(reg)))
		shutdown := serveMetrics(flags.metricsAddr, reg, logger)
		defer shutdown()
	}

	logger.Info("generation started", "searches", len(params), "filters", list.String())
	results, err := search.Sweep(cmd.Context(), params, flags.parallel, opts...)
	if err != nil {
		return err
	}

	mode := render.ASCII
	if flags.markdown {
		mode = render.Markdown
	}

	return render.Results(cmd.OutOrStdout(), results, render.ResultOptions{
		Mode:        mode,
		Transitions: flags.transitions,
		Local:       flags.local,
	})
}

// apply copies every flag set on the command line into cfg and returns
// the object range.
func (f *generateFlags) apply(fs *pflag.FlagSet, cfg *config.Config) (lo, hi int, err error) {
	if fs.Changed("period") {
		cfg.Period = f.period
	}
	if fs.Changed("max") {
		cfg.MaxThrow = f.maxThrow
	}
	if fs.Changed("min") {
		cfg.MinThrow = f.minThrow
	}
	if fs.Changed("jugglers") {
		cfg.Jugglers = f.jugglers
	}
	if fs.Changed("limit") {
		cfg.MaxResults = f.limit
	}
	if fs.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if fs.Changed("random") {
		cfg.Random = f.random
	}
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if f.noDefaults {
		cfg.DefaultFilters = false
	}
	if !fs.Changed("objects") {
		return cfg.Objects, cfg.Objects, nil
	}

	return parseRange(f.objects)
}

// filters parses the filter flags.
func (f *generateFlags) filters(jugglers int) (filter.List, error) {
	var list filter.List
	for _, group := range []struct {
		specs []string
		bound filter.Bound
	}{
		{f.atLeast, filter.AtLeast},
		{f.atMost, filter.AtMost},
		{f.exactly, filter.Exactly},
	} {
		for _, s := range group.specs {
			nf, err := filter.ParseNumber(s, group.bound)
			if err != nil {
				return nil, err
			}
			list = append(list, nf)
		}
	}
	for _, group := range []struct {
		specs []string
		mode  filter.PatternMode
	}{
		{f.include, filter.Include},
		{f.exclude, filter.Exclude},
	} {
		for _, s := range group.specs {
			pf, err := filter.ParsePattern(s, group.mode, jugglers)
			if err != nil {
				return nil, err
			}
			list = append(list, pf)
		}
	}

	return list, nil
}

// parseRange decodes "N" or "LOW-HIGH".
func parseRange(s string) (lo, hi int, err error) {
	first, second, isRange := strings.Cut(strings.TrimSpace(s), "-")
	if lo, err = strconv.Atoi(first); err != nil || lo < 0 {
		return 0, 0, fmt.Errorf("%w: %q", errObjectsRange, s)
	}
	if !isRange {
		return lo, lo, nil
	}
	if hi, err = strconv.Atoi(second); err != nil || hi < lo {
		return 0, 0, fmt.Errorf("%w: %q", errObjectsRange, s)
	}

	return lo, hi, nil
}

// serveMetrics exposes reg on addr and returns a function that stops the
// server.
func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
