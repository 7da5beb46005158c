// Package metrics registers the Prometheus instruments for the loan pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"loan-gateway/internal/domain"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	TurnsTotal            prometheus.Counter
	StageRuns             *prometheus.CounterVec
	UnderwritingDecisions *prometheus.CounterVec
	SanctionsIssued       prometheus.Counter
	TurnDuration          prometheus.Histogram
}

// New registers the metrics on the default registerer.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the metrics on the given registerer. Tests pass a fresh
// registry to avoid duplicate-registration panics.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TurnsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "loan_gateway_turns_total",
			Help: "Total number of conversational turns processed.",
		}),
		StageRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loan_gateway_stage_runs_total",
			Help: "Pipeline stage executions by stage name.",
		}, []string{"stage"}),
		UnderwritingDecisions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "loan_gateway_underwriting_decisions_total",
			Help: "Underwriting outcomes by decision.",
		}, []string{"decision"}),
		SanctionsIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "loan_gateway_sanctions_issued_total",
			Help: "Sanction letters generated.",
		}),
		TurnDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "loan_gateway_turn_duration_seconds",
			Help:    "Wall time spent processing one turn.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) ObserveTurn() {
	m.TurnsTotal.Inc()
}

func (m *Metrics) ObserveStage(stage domain.Stage) {
	m.StageRuns.WithLabelValues(string(stage)).Inc()
}

func (m *Metrics) ObserveDecision(decision domain.Decision) {
	m.UnderwritingDecisions.WithLabelValues(string(decision)).Inc()
}

func (m *Metrics) ObserveSanctionIssued() {
	m.SanctionsIssued.Inc()
}

func (m *Metrics) ObserveTurnDuration(seconds float64) {
	m.TurnDuration.Observe(seconds)
}
