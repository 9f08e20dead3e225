package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "atodeyomu"

// Metrics holds the webhook counters on a dedicated registry
type Metrics struct {
	registry *prometheus.Registry
	payloads *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// New creates counters and registers them with the Go and process collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		payloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_payloads_total",
			Help:      "Number of decoded webhook payloads by endpoint and kind.",
		}, []string{"endpoint", "kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_failures_total",
			Help:      "Number of failed webhook requests by endpoint and HTTP status.",
		}, []string{"endpoint", "status"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.payloads,
		m.failures,
	)
	return m
}

// CountPayload records a decoded payload
func (m *Metrics) CountPayload(endpoint, kind string) {
	m.payloads.WithLabelValues(endpoint, kind).Inc()
}

// CountFailure records a request answered with an error status
func (m *Metrics) CountFailure(endpoint string, status int) {
	m.failures.WithLabelValues(endpoint, http.StatusText(status)).Inc()
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
