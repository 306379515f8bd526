// Package metrics holds the Prometheus collectors for the theme server.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is a private registry with the server's counters.
type Metrics struct {
	registry    *prometheus.Registry
	requests    *prometheus.CounterVec
	derivations *prometheus.CounterVec
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orgtheme_http_requests_total",
			Help: "HTTP requests served, by route pattern and status code.",
		}, []string{"route", "code"}),
		derivations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "orgtheme_derivations_total",
			Help: "Theme derivations computed, by kind.",
		}, []string{"kind"}),
	}
	m.registry.MustRegister(m.requests, m.derivations)
	return m
}

// ObserveRequest counts one served request.
func (m *Metrics) ObserveRequest(route string, code int) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
}

// ObserveDerivation counts one derivation of the given kind (adjust, bundle, chart).
func (m *Metrics) ObserveDerivation(kind string) {
	if m == nil {
		return
	}
	m.derivations.WithLabelValues(kind).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Requests exposes the request counter for tests.
func (m *Metrics) Requests() *prometheus.CounterVec { return m.requests }

// Derivations exposes the derivation counter for tests.
func (m *Metrics) Derivations() *prometheus.CounterVec { return m.derivations }
