package search

import "github.com/prometheus/client_golang/prometheus"

// Metrics records finished runs. A nil *Metrics records nothing.
type Metrics struct {
	runs     *prometheus.CounterVec
	steps    prometheus.Counter
	patterns prometheus.Counter
	duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered. Registering twice with the same
// registry panics, as with prometheus.MustRegister.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "juggle_search_runs_total",
				Help: "Finished pattern searches by stop reason.",
			},
			[]string{"stop"},
		),
		steps: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "juggle_search_steps_total",
			Help: "Backtracking steps taken by pattern searches.",
		}),
		patterns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "juggle_search_patterns_total",
			Help: "Patterns accepted by pattern searches.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "juggle_search_duration_seconds",
			Help:    "Wall-clock duration of pattern searches.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.runs, m.steps, m.patterns, m.duration)
	}

	return m
}

func (m *Metrics) observe(r Result) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(r.Stop.String()).Inc()
	m.steps.Add(float64(r.Steps))
	m.patterns.Add(float64(len(r.Patterns)))
	m.duration.Observe(r.Elapsed.Seconds())
}
