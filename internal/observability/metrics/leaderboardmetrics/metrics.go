package leaderboardmetrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// LeaderboardMetrics records operational metrics for the leaderboard module.
type LeaderboardMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordRecalculation(ctx context.Context, scopeKind string, entries int)
	RecordHandlerAttempt(ctx context.Context, handler string)
	RecordHandlerFailure(ctx context.Context, handler string)
	RecordHandlerDuration(ctx context.Context, handler string, duration time.Duration)
}

type prometheusMetrics struct {
	operationAttempts *prometheus.CounterVec
	operationSuccess  *prometheus.CounterVec
	operationFailures *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	recalculations    *prometheus.CounterVec
	entriesWritten    *prometheus.CounterVec
	handlerAttempts   *prometheus.CounterVec
	handlerFailures   *prometheus.CounterVec
	handlerDuration   *prometheus.HistogramVec
}

// NewPrometheusMetrics registers and returns leaderboard metrics on the given registry.
func NewPrometheusMetrics(registry *prometheus.Registry) LeaderboardMetrics {
	m := &prometheusMetrics{
		operationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leaderboard_operation_attempts_total",
			Help: "Number of leaderboard service operation attempts.",
		}, []string{"operation"}),
		operationSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leaderboard_operation_success_total",
			Help: "Number of successful leaderboard service operations.",
		}, []string{"operation"}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leaderboard_operation_failures_total",
			Help: "Number of failed leaderboard service operations.",
		}, []string{"operation"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "leaderboard_operation_duration_seconds",
			Help:    "Duration of leaderboard service operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		recalculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leaderboard_recalculations_total",
			Help: "Number of completed leaderboard recalculations per scope kind.",
		}, []string{"scope"}),
		entriesWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leaderboard_entries_written_total",
			Help: "Number of leaderboard entries written by recalculations.",
		}, []string{"scope"}),
		handlerAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leaderboard_handler_attempts_total",
			Help: "Number of leaderboard message handler invocations.",
		}, []string{"handler"}),
		handlerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leaderboard_handler_failures_total",
			Help: "Number of failed leaderboard message handler invocations.",
		}, []string{"handler"}),
		handlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "leaderboard_handler_duration_seconds",
			Help:    "Duration of leaderboard message handler invocations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"handler"}),
	}

	registry.MustRegister(
		m.operationAttempts,
		m.operationSuccess,
		m.operationFailures,
		m.operationDuration,
		m.recalculations,
		m.entriesWritten,
		m.handlerAttempts,
		m.handlerFailures,
		m.handlerDuration,
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

func (m *prometheusMetrics) RecordRecalculation(_ context.Context, scopeKind string, entries int) {
	m.recalculations.WithLabelValues(scopeKind).Inc()
	m.entriesWritten.WithLabelValues(scopeKind).Add(float64(entries))
}

func (m *prometheusMetrics) RecordHandlerAttempt(_ context.Context, handler string) {
	m.handlerAttempts.WithLabelValues(handler).Inc()
}

func (m *prometheusMetrics) RecordHandlerFailure(_ context.Context, handler string) {
	m.handlerFailures.WithLabelValues(handler).Inc()
}

func (m *prometheusMetrics) RecordHandlerDuration(_ context.Context, handler string, duration time.Duration) {
	m.handlerDuration.WithLabelValues(handler).Observe(duration.Seconds())
}

// NoOpMetrics discards all measurements. Used in tests.
type NoOpMetrics struct{}

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                 {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration) {}
func (NoOpMetrics) RecordRecalculation(context.Context, string, int)               {}
func (NoOpMetrics) RecordHandlerAttempt(context.Context, string)                   {}
func (NoOpMetrics) RecordHandlerFailure(context.Context, string)                   {}
func (NoOpMetrics) RecordHandlerDuration(context.Context, string, time.Duration)   {}
