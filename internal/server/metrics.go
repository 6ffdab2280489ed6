package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Comparison outcomes recorded on comparisons_total.
const (
	OutcomeSuccess     = "success"
	OutcomeBadRequest  = "bad_request"
	OutcomeInvalid     = "invalid"
	OutcomeNotAnalyzed = "not_analyzed"
	OutcomeError       = "error"
)

// Metrics provides observability for the comparison API.
type Metrics struct {
	Registry *prometheus.Registry

	// Comparison requests by outcome
	Comparisons *prometheus.CounterVec

	// Time spent projecting and assembling a report
	ComputeLatency prometheus.Histogram
}

// NewMetrics creates a Metrics instance on its own registry so several servers
// can coexist in one process.
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		Comparisons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "comparisons_total",
			Help:      "Total comparison requests by outcome",
		}, []string{"outcome"}),
		ComputeLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "comparison_duration_seconds",
			Help:      "Duration of projecting all vehicles and assembling the report",
			Buckets:   []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}),
	}
	reg.MustRegister(
		m.Comparisons,
		m.ComputeLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// IncrementOutcome records a comparison outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.Comparisons.WithLabelValues(outcome).Inc()
	}
}

// ObserveComputeLatency records the report computation duration.
func (m *Metrics) ObserveComputeLatency(d time.Duration) {
	if m != nil {
		m.ComputeLatency.Observe(d.Seconds())
	}
}
