// Package metrics exposes Prometheus collectors for the catalog service.
package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	scrapePagesTotal           *prometheus.CounterVec
	scrapeDurationSeconds      *prometheus.HistogramVec
	enrichLookupsTotal         *prometheus.CounterVec
	refreshCyclesTotal         prometheus.Counter
	refreshInFlight            prometheus.Gauge
	httpRequestsTotal          *prometheus.CounterVec
	httpRequestDurationSeconds *prometheus.HistogramVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		scrapePagesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flixapi_scrape_pages_total",
				Help: "Total number of catalog pages scraped, labeled by locale, category and status.",
			},
			[]string{"locale", "category", "status"},
		)

		scrapeDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flixapi_scrape_duration_seconds",
				Help:    "Histogram of catalog page fetch latencies, labeled by category.",
				Buckets: []float64{0.1, 0.25, 0.5, 1, 2, 5, 10},
			},
			[]string{"category"},
		)

		enrichLookupsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flixapi_enrich_lookups_total",
				Help: "Total number of cross-reference lookups, labeled by outcome.",
			},
			[]string{"outcome"},
		)

		refreshCyclesTotal = promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "flixapi_refresh_cycles_total",
				Help: "Total number of full refresh cycles started.",
			},
		)

		refreshInFlight = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "flixapi_refresh_in_flight",
				Help: "Number of refresh cycles currently running.",
			},
		)

		httpRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flixapi_http_requests_total",
				Help: "Total number of HTTP requests, labeled by method and code.",
			},
			[]string{"method", "code"},
		)

		httpRequestDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "flixapi_http_request_duration_seconds",
				Help:    "Histogram of HTTP request latencies, labeled by method and route.",
				Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "route"},
		)
	})
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveScrape records the outcome and latency of one catalog page scrape.
func ObserveScrape(locale, category, status string, duration time.Duration) {
	scrapePagesTotal.WithLabelValues(locale, category, status).Inc()
	scrapeDurationSeconds.WithLabelValues(category).Observe(duration.Seconds())
}

// ObserveEnrich records the outcome of one cross-reference lookup.
func ObserveEnrich(outcome string) {
	enrichLookupsTotal.WithLabelValues(outcome).Inc()
}

// RefreshStarted marks the beginning of a full refresh cycle.
func RefreshStarted() {
	refreshCyclesTotal.Inc()
	refreshInFlight.Inc()
}

// RefreshFinished marks the end of a full refresh cycle.
func RefreshFinished() {
	refreshInFlight.Dec()
}

// ObserveHTTPRequest increments the HTTP request metrics.
func ObserveHTTPRequest(method, route string, code int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route).Observe(duration.Seconds())
}
