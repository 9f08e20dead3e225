package metrics

import "github.com/prometheus/client_golang/prometheus"

func (m *Metrics) Payloads() *prometheus.CounterVec {
	return m.payloads
}

func (m *Metrics) Failures() *prometheus.CounterVec {
	return m.failures
}
