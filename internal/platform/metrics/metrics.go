// Package metrics agrupa los colectores Prometheus del servicio.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "farm"

type Metrics struct {
	registry *prometheus.Registry

	// HTTPRequestsTotal cuenta requests por método, ruta (patrón chi) y status.
	HTTPRequestsTotal *prometheus.CounterVec
	// HTTPRequestDuration mide la latencia por método y ruta.
	HTTPRequestDuration *prometheus.HistogramVec
	// IntegrityRejections cuenta rechazos del guard por tipo
	// (client_not_found, feed_not_found, client_has_dependents, feed_has_dependents).
	IntegrityRejections *prometheus.CounterVec
}

// New crea un registry propio (no el global) con los colectores del proceso y Go.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		IntegrityRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "integrity_rejections_total",
				Help:      "Writes rejected by the referential integrity guard",
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.IntegrityRejections,
	)
	return m
}

// IntegrityRejected implementa integrity.Recorder.
func (m *Metrics) IntegrityRejected(kind string) {
	m.IntegrityRejections.WithLabelValues(kind).Inc()
}

// Handler expone el registry para /metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
