// Package metrics provides Prometheus instrumentation for pharmadesk.
//
// Every outgoing call to the inventory API is counted and timed by the
// HTTP client. In serve mode the local dashboard exposes the registry:
//
//	r.Get("/metrics", metrics.Handler().ServeHTTP)
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
	// APICallDuration tracks how long each upstream API call takes,
	// broken down by method, endpoint and status code.
	APICallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pharmadesk",
			Subsystem: "api",
			Name:      "call_duration_seconds",
			Help:      "Duration of upstream API calls in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)

	// APICallTotal counts all upstream API calls.
	APICallTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pharmadesk",
			Subsystem: "api",
			Name:      "calls_total",
			Help:      "Total number of upstream API calls.",
		},
		[]string{"method", "endpoint", "status"},
	)

	// APICallErrors counts transport-level failures (no HTTP response).
	APICallErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pharmadesk",
			Subsystem: "api",
			Name:      "call_errors_total",
			Help:      "Total upstream API calls that failed at the transport level.",
		},
		[]string{"method", "endpoint"},
	)

	// NotificationPushes counts websocket notification frames sent in serve mode.
	NotificationPushes = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "pharmadesk",
		Subsystem: "serve",
		Name:      "notification_pushes_total",
		Help:      "Total notification frames pushed to websocket clients.",
	})
)

// DefaultRegistry is the Prometheus registry used by pharmadesk.
var DefaultRegistry = prometheus.NewRegistry()

func init() {
	DefaultRegistry.MustRegister(collectors.NewGoCollector())
	DefaultRegistry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	DefaultRegistry.MustRegister(
		APICallDuration,
		APICallTotal,
		APICallErrors,
		NotificationPushes,
	)
}

// ObserveAPICall records one completed upstream call.
func ObserveAPICall(method, endpoint string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	APICallDuration.WithLabelValues(method, endpoint, code).Observe(elapsed.Seconds())
	APICallTotal.WithLabelValues(method, endpoint, code).Inc()
}

// ObserveAPIError records one upstream call that never produced a response.
func ObserveAPIError(method, endpoint string) {
	APICallErrors.WithLabelValues(method, endpoint).Inc()
}

// Register adds a custom prometheus.Collector to the pharmadesk registry.
func Register(c prometheus.Collector) error {
	return DefaultRegistry.Register(c)
}

// Handler returns the /metrics scrape endpoint for serve mode.
func Handler() http.Handler {
	return promhttp.HandlerFor(DefaultRegistry, promhttp.HandlerOpts{})
}
