// Package metrics provides Prometheus metrics for the content API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns the collectors exported on the metrics endpoint. A nil
// *Manager is valid and records nothing.
type Manager struct {
	namespace string
	buckets   []float64
	registry  *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	storeErrors         *prometheus.CounterVec
	seededRecords       *prometheus.CounterVec
	inquiriesCreated    prometheus.Counter
}

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace sets the metric namespace.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		m.namespace = namespace
	}
}

// WithHistogramBuckets sets the request duration buckets, in seconds.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		if len(buckets) > 0 {
			m.buckets = buckets
		}
	}
}

// WithRegistry registers the collectors on registry instead of a fresh one.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		if registry != nil {
			m.registry = registry
		}
	}
}

// NewManager creates a manager with its own registry, including the Go
// runtime and process collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "uniportal",
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	m.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   m.buckets,
	}, []string{"route", "method"})

	m.storeErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "store",
		Name:      "errors_total",
		Help:      "Failed requests by error class.",
	}, []string{"class"})

	m.seededRecords = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "seed",
		Name:      "records_total",
		Help:      "Demo records inserted by collection.",
	}, []string{"collection"})

	m.inquiriesCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: "inquiry",
		Name:      "created_total",
		Help:      "Visitor inquiries stored.",
	})

	m.registry.MustRegister(m.httpRequests, m.httpRequestDuration, m.storeErrors, m.seededRecords, m.inquiriesCreated)
	return m
}

// Registry returns the registry backing the metrics endpoint.
func (m *Manager) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one finished HTTP request.
func (m *Manager) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// RecordStoreError counts a failed request by error class, e.g.
// "unavailable" or "persistence".
func (m *Manager) RecordStoreError(class string) {
	if m == nil {
		return
	}
	m.storeErrors.WithLabelValues(class).Inc()
}

// RecordSeeded adds n inserted demo records for collection.
func (m *Manager) RecordSeeded(collection string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.seededRecords.WithLabelValues(collection).Add(float64(n))
}

// RecordInquiry counts a stored inquiry.
func (m *Manager) RecordInquiry() {
	if m == nil {
		return
	}
	m.inquiriesCreated.Inc()
}
