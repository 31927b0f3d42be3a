// Package metrics exposes quote and cache counters to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector records pricing metrics on its own registry.
type Collector struct {
	registry *prometheus.Registry

	quotesTotal   *prometheus.CounterVec
	quoteDuration prometheus.Histogram
	cacheLookups  *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		quotesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moneybag_quotes_total",
				Help: "Quotes served, by pricing key and whether the default bundle applied",
			},
			[]string{"pricing_key", "default_applied"},
		),
		quoteDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "moneybag_quote_duration_seconds",
				Help:    "Time to produce a quote including config lookup and audit write",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
		),
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moneybag_cache_lookups_total",
				Help: "Cache lookups by key kind and result",
			},
			[]string{"key", "result"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "moneybag_errors_total",
				Help: "Non-fatal errors by operation and kind",
			},
			[]string{"operation", "kind"},
		),
	}
}

func (c *Collector) RecordQuote(pricingKey string, defaultApplied bool, duration time.Duration) {
	c.quotesTotal.WithLabelValues(pricingKey, strconv.FormatBool(defaultApplied)).Inc()
	c.quoteDuration.Observe(duration.Seconds())
}

func (c *Collector) RecordCacheHit(key string) {
	c.cacheLookups.WithLabelValues(key, "hit").Inc()
}

func (c *Collector) RecordCacheMiss(key string) {
	c.cacheLookups.WithLabelValues(key, "miss").Inc()
}

func (c *Collector) RecordError(op, kind string) {
	c.errorsTotal.WithLabelValues(op, kind).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
