package eventmetrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// EventMetrics records operational metrics for the event module.
type EventMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordResultFinalized(ctx context.Context)
}

type prometheusMetrics struct {
	operationAttempts *prometheus.CounterVec
	operationSuccess  *prometheus.CounterVec
	operationFailures *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	resultsFinalized  prometheus.Counter
}

// NewPrometheusMetrics registers and returns event metrics on the given registry.
func NewPrometheusMetrics(registry *prometheus.Registry) EventMetrics {
	m := &prometheusMetrics{
		operationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "event_operation_attempts_total",
			Help: "Number of event service operation attempts.",
		}, []string{"operation"}),
		operationSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "event_operation_success_total",
			Help: "Number of successful event service operations.",
		}, []string{"operation"}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "event_operation_failures_total",
			Help: "Number of failed event service operations.",
		}, []string{"operation"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "event_operation_duration_seconds",
			Help:    "Duration of event service operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		resultsFinalized: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "event_match_results_finalized_total",
			Help: "Number of authoritative match results recorded.",
		}),
	}

	registry.MustRegister(
		m.operationAttempts,
		m.operationSuccess,
		m.operationFailures,
		m.operationDuration,
		m.resultsFinalized,
	)

	return m
}

func (m *prometheusMetrics) RecordOperationAttempt(_ context.Context, operation string) {
	m.operationAttempts.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationSuccess(_ context.Context, operation string) {
	m.operationSuccess.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationFailure(_ context.Context, operation string) {
	m.operationFailures.WithLabelValues(operation).Inc()
}

func (m *prometheusMetrics) RecordOperationDuration(_ context.Context, operation string, duration time.Duration) {
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *prometheusMetrics) RecordResultFinalized(_ context.Context) {
	m.resultsFinalized.Inc()
}

// NoOpMetrics discards all measurements. Used in tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordResultFinalized(context.Context)                          {}
