// Package metrics exposes Prometheus instrumentation for pipeline runs.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rtcalc/internal/diag"
)

// Collector owns a private registry so tests and multiple servers do not
// collide on the global one.
type Collector struct {
	reg *prometheus.Registry

	Runs         prometheus.Counter
	RunsWithErr  prometheus.Counter
	Records      prometheus.Counter
	Rows         prometheus.Counter
	Diagnostics  *prometheus.CounterVec // kind label
	RunDuration  prometheus.Histogram
	InputBytes   prometheus.Histogram
	HTTPRequests *prometheus.CounterVec // handler, code labels
}

// NewCollector builds and registers every metric.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rtcalc_runs_total",
			Help: "Total pipeline runs.",
		}),
		RunsWithErr: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rtcalc_runs_with_errors_total",
			Help: "Pipeline runs that reported at least one diagnostic.",
		}),
		Records: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rtcalc_records_total",
			Help: "Classified input records.",
		}),
		Rows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rtcalc_rows_total",
			Help: "Output rows emitted.",
		}),
		Diagnostics: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rtcalc_diagnostics_total",
			Help: "Diagnostics reported, by kind.",
		}, []string{"kind"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rtcalc_run_duration_seconds",
			Help:    "Duration of a parse and calculate pass.",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		InputBytes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rtcalc_input_bytes",
			Help:    "Size of pace-note text submitted per run.",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rtcalc_http_requests_total",
			Help: "HTTP API requests by handler and status code.",
		}, []string{"handler", "code"}),
	}

	reg.MustRegister(
		c.Runs, c.RunsWithErr, c.Records, c.Rows,
		c.Diagnostics, c.RunDuration, c.InputBytes, c.HTTPRequests,
	)

	// Pre-create every kind so dashboards see zeros instead of gaps.
	for _, kind := range diag.Kinds() {
		c.Diagnostics.WithLabelValues(kind.String())
	}

	return c
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for tests.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// ObserveRun records the outcome of one pipeline run.
func (c *Collector) ObserveRun(inputBytes, records, rows int, diagnostics []diag.Diagnostic, took time.Duration) {
	if c == nil {
		return
	}
	c.Runs.Inc()
	c.Records.Add(float64(records))
	c.Rows.Add(float64(rows))
	c.InputBytes.Observe(float64(inputBytes))
	c.RunDuration.Observe(took.Seconds())
	if len(diagnostics) > 0 {
		c.RunsWithErr.Inc()
	}
	for _, d := range diagnostics {
		c.Diagnostics.WithLabelValues(d.Kind.String()).Inc()
	}
}

// ObserveRequest counts one HTTP API request.
func (c *Collector) ObserveRequest(handler string, code int) {
	if c == nil {
		return
	}
	c.HTTPRequests.WithLabelValues(handler, strconv.Itoa(code)).Inc()
}
