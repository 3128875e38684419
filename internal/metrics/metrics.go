// Package metrics exposes Prometheus counters for document generation and
// hand-off.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "studiopos"

// Metrics is safe to use as a nil pointer; every method is then a no-op.
type Metrics struct {
	rendered       *prometheus.CounterVec
	renderFailures *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	dispatches     *prometheus.CounterVec
	httpRequests   *prometheus.CounterVec
	httpDuration   *prometheus.HistogramVec

	gatherer prometheus.Gatherer
}

// New registers the collectors with reg. Pass a fresh prometheus.Registry
// in tests.
func New(reg *prometheus.Registry) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		rendered: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_rendered_total",
			Help:      "Documents written to disk, by kind.",
		}, []string{"kind"}),
		renderFailures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_render_failures_total",
			Help:      "Documents that failed to render, by kind.",
		}, []string{"kind"}),
		renderDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "document_render_seconds",
			Help:      "Time spent drawing and writing a document.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"kind"}),
		dispatches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "document_dispatch_total",
			Help:      "Open and print requests, by action and result.",
		}, []string{"action", "result"}),
		httpRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		gatherer: reg,
	}
}

func (m *Metrics) ObserveRender(kind string, took time.Duration, err error) {
	if m == nil {
		return
	}

	m.renderDuration.WithLabelValues(kind).Observe(took.Seconds())

	if err != nil {
		m.renderFailures.WithLabelValues(kind).Inc()
		return
	}

	m.rendered.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveDispatch(action string, ok bool) {
	if m == nil {
		return
	}

	result := "ok"
	if !ok {
		result = "failed"
	}

	m.dispatches.WithLabelValues(action, result).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, took time.Duration) {
	if m == nil {
		return
	}

	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(took.Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
