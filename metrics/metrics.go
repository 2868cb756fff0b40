// Package metrics provides Prometheus metrics for the aggregator.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal is a counter of served HTTP requests.
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"endpoint", "status"},
	)

	// HTTPRequestDuration is a histogram of HTTP request latencies.
	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latencies",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"endpoint"},
	)

	// UpstreamRequestsTotal is a counter of calls to market and news providers.
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests made to data providers",
		},
		[]string{"provider", "operation", "outcome"},
	)

	// UpstreamRequestDuration is a histogram of provider call latencies.
	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Latency of requests made to data providers",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider", "operation"},
	)

	// HotStocksSkippedTotal counts hot-stock symbols dropped from a response.
	HotStocksSkippedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hot_stocks_skipped_total",
			Help: "Total number of hot-stock symbols skipped after a provider failure",
		},
		[]string{"symbol"},
	)
)

var registerOnce sync.Once

// Init registers all metrics with the default registry. Safe to call more
// than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			HTTPRequestsTotal,
			HTTPRequestDuration,
			UpstreamRequestsTotal,
			UpstreamRequestDuration,
			HotStocksSkippedTotal,
		)
	})
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(endpoint, status).Inc()
	HTTPRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordUpstream records one provider call. outcome is "ok", "empty" or "error".
func RecordUpstream(provider, operation, outcome string, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(provider, operation, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(provider, operation).Observe(duration.Seconds())
}

// RecordHotStockSkipped records a symbol dropped from /hot-stocks.
func RecordHotStockSkipped(symbol string) {
	HotStocksSkippedTotal.WithLabelValues(symbol).Inc()
}
