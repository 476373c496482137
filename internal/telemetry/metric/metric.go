// Package metric provides Prometheus metrics for simple-http-server.
//
// Metrics live on their own registry and, when configured, are served by
// a separate listener. The main listener only ever serves the configured
// route table, so a metrics endpoint can never shadow a route.
package metric

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all application metrics.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	routeCount      prometheus.Gauge
}

// New creates the metrics set on a fresh registry, including the standard
// Go runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "shs",
			Name:      "requests_total",
			Help:      "HTTP requests handled, by method and status code.",
		}, []string{"method", "code"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "shs",
			Name:      "request_duration_seconds",
			Help:      "HTTP request handling latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		routeCount: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "shs",
			Name:      "routes",
			Help:      "Number of routes in the compiled route table.",
		}),
	}
}

// ObserveRequest records one handled request.
func (m *Metrics) ObserveRequest(method string, code int, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(method, strconv.Itoa(code)).Inc()
	m.requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// SetRouteCount records the size of the compiled route table.
func (m *Metrics) SetRouteCount(n int) {
	m.routeCount.Set(float64(n))
}

// Handler returns the HTTP handler serving the registry in Prometheus
// exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
