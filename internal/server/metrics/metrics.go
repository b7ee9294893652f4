// Package metrics exposes Prometheus counters for authentication outcomes.
package metrics

import (
	"net/http"

	"github.com/dmitrijs2005/smartfridge/internal/server/auth"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OutcomeValid labels a token that passed every check.
const OutcomeValid = "valid"

// Login statuses.
const (
	LoginSuccess      = "success"
	LoginUnauthorized = "unauthorized"
	LoginError        = "error"
)

// Metrics holds the server's counters and the registry they live in.
type Metrics struct {
	registry     *prometheus.Registry
	authOutcomes *prometheus.CounterVec
	logins       *prometheus.CounterVec
}

// New creates a dedicated registry with process and Go collectors plus the
// auth counters. Every outcome label is pre-initialised at zero.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	m := &Metrics{
		registry: reg,
		authOutcomes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smartfridge_auth_outcomes_total",
				Help: "Protected request authentication outcomes",
			},
			[]string{"outcome"},
		),
		logins: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "smartfridge_logins_total",
				Help: "Login attempts by status",
			},
			[]string{"status"},
		),
	}
	reg.MustRegister(m.authOutcomes, m.logins)

	m.authOutcomes.WithLabelValues(OutcomeValid)
	for _, k := range auth.Kinds() {
		m.authOutcomes.WithLabelValues(k.String())
	}
	for _, s := range []string{LoginSuccess, LoginUnauthorized, LoginError} {
		m.logins.WithLabelValues(s)
	}

	return m
}

// RecordAuthOutcome counts one authentication attempt. A nil err is counted
// as valid; errors that are not *auth.Failure count as internal store errors.
func (m *Metrics) RecordAuthOutcome(err error) {
	if err == nil {
		m.authOutcomes.WithLabelValues(OutcomeValid).Inc()
		return
	}
	kind, ok := auth.KindOf(err)
	if !ok {
		kind = auth.FailureInternalStore
	}
	m.authOutcomes.WithLabelValues(kind.String()).Inc()
}

func (m *Metrics) RecordLogin(status string) {
	m.logins.WithLabelValues(status).Inc()
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
