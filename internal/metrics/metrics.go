// Package metrics exposes Prometheus instrumentation for the storefront:
// standard HTTP request metrics plus a couple of domain counters, scraped
// from /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// RequestDuration tracks how long each HTTP request takes,
	// broken down by method, path, and status code.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "soyhub",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// RequestTotal counts all HTTP requests.
	RequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "soyhub",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	// OrdersCreated counts successful checkouts.
	OrdersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "soyhub",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of orders placed.",
	})

	// CheckoutFailures counts checkouts rejected or failed for any reason.
	CheckoutFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "soyhub",
		Subsystem: "orders",
		Name:      "checkout_failures_total",
		Help:      "Total number of failed checkout attempts.",
	})
)

var registry = prometheus.NewRegistry()

func init() {
	registry.MustRegister(
		RequestDuration,
		RequestTotal,
		OrdersCreated,
		CheckoutFailures,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler serves the scrape endpoint.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records duration and count for every request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		status := strconv.Itoa(rec.status)
		RequestTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		RequestDuration.WithLabelValues(r.Method, r.URL.Path, status).
			Observe(time.Since(start).Seconds())
	})
}
