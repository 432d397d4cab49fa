package predictionmetrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// PredictionMetrics records operational metrics for the prediction module.
type PredictionMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordPredictionsJudged(ctx context.Context, matchID sharedtypes.MatchID, count int)
	RecordHandlerAttempt(ctx context.Context, handler string)
	RecordHandlerFailure(ctx context.Context, handler string)
	RecordHandlerDuration(ctx context.Context, handler string, duration time.Duration)
}

type prometheusMetrics struct {
	operationAttempts *prometheus.CounterVec
	operationSuccess  *prometheus.CounterVec
	operationFailures *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	predictionsJudged prometheus.Counter
	handlerAttempts   *prometheus.CounterVec
	handlerFailures   *prometheus.CounterVec
	handlerDuration   *prometheus.HistogramVec
}

// NewPrometheusMetrics registers and returns prediction metrics on the given registry.
func NewPrometheusMetrics(registry *prometheus.Registry) PredictionMetrics {
	m := &prometheusMetrics{
		operationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prediction_operation_attempts_total",
			Help: "Number of prediction service operation attempts.",
		}, []string{"operation"}),
		operationSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prediction_operation_success_total",
			Help: "Number of successful prediction service operations.",
		}, []string{"operation"}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prediction_operation_failures_total",
			Help: "Number of failed prediction service operations.",
		}, []string{"operation"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "prediction_operation_duration_seconds",
			Help:    "Duration of prediction service operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		predictionsJudged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "prediction_judged_total",
			Help: "Number of predictions judged by scoring passes.",
		}),
		handlerAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prediction_handler_attempts_total",
			Help: "Number of prediction message handler invocations.",
		}, []string{"handler"}),
		handlerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "prediction_handler_failures_total",
			Help: "Number of failed prediction message handler invocations.",
		}, []string{"handler"}),
		handlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "prediction_handler_duration_seconds",
			Help:    "Duration of prediction message handler invocations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"handler"}),
	}

	registry.MustRegister(
		m.operationAttempts,
		m.operationSuccess,
		m.operationFailures,
		m.operationDuration,
		m.predictionsJudged,
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

func (m *prometheusMetrics) RecordPredictionsJudged(_ context.Context, _ sharedtypes.MatchID, count int) {
	m.predictionsJudged.Add(float64(count))
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
func (NoOpMetrics) RecordPredictionsJudged(context.Context, sharedtypes.MatchID, int) {
}
func (NoOpMetrics) RecordHandlerAttempt(context.Context, string)                 {}
func (NoOpMetrics) RecordHandlerFailure(context.Context, string)                 {}
func (NoOpMetrics) RecordHandlerDuration(context.Context, string, time.Duration) {}
