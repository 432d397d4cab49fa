package wagermetrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// WagerMetrics records operational metrics for the wager module.
type WagerMetrics interface {
	RecordOperationAttempt(ctx context.Context, operation string)
	RecordOperationSuccess(ctx context.Context, operation string)
	RecordOperationFailure(ctx context.Context, operation string)
	RecordOperationDuration(ctx context.Context, operation string, duration time.Duration)
	RecordWagerUpsert(ctx context.Context, created bool)
	RecordWagersJudged(ctx context.Context, fightID sharedtypes.FightID, count int)
	RecordHandlerAttempt(ctx context.Context, handler string)
	RecordHandlerFailure(ctx context.Context, handler string)
	RecordHandlerDuration(ctx context.Context, handler string, duration time.Duration)
}

type prometheusMetrics struct {
	operationAttempts *prometheus.CounterVec
	operationSuccess  *prometheus.CounterVec
	operationFailures *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	wagerUpserts      *prometheus.CounterVec
	wagersJudged      prometheus.Counter
	handlerAttempts   *prometheus.CounterVec
	handlerFailures   *prometheus.CounterVec
	handlerDuration   *prometheus.HistogramVec
}

// NewPrometheusMetrics registers and returns wager metrics on the given registry.
func NewPrometheusMetrics(registry *prometheus.Registry) WagerMetrics {
	m := &prometheusMetrics{
		operationAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wager_operation_attempts_total",
			Help: "Number of wager service operation attempts.",
		}, []string{"operation"}),
		operationSuccess: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wager_operation_success_total",
			Help: "Number of successful wager service operations.",
		}, []string{"operation"}),
		operationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wager_operation_failures_total",
			Help: "Number of failed wager service operations.",
		}, []string{"operation"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wager_operation_duration_seconds",
			Help:    "Duration of wager service operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
		wagerUpserts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wager_upserts_total",
			Help: "Number of wager placements, split by whether a new row was created.",
		}, []string{"outcome"}),
		wagersJudged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "wager_judged_total",
			Help: "Number of wagers judged by fight results.",
		}),
		handlerAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wager_handler_attempts_total",
			Help: "Number of wager message handler invocations.",
		}, []string{"handler"}),
		handlerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "wager_handler_failures_total",
			Help: "Number of failed wager message handler invocations.",
		}, []string{"handler"}),
		handlerDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wager_handler_duration_seconds",
			Help:    "Duration of wager message handler invocations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"handler"}),
	}

	registry.MustRegister(
		m.operationAttempts,
		m.operationSuccess,
		m.operationFailures,
		m.operationDuration,
		m.wagerUpserts,
		m.wagersJudged,
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

func (m *prometheusMetrics) RecordWagerUpsert(_ context.Context, created bool) {
	outcome := "updated"
	if created {
		outcome = "created"
	}
	m.wagerUpserts.WithLabelValues(outcome).Inc()
}

func (m *prometheusMetrics) RecordWagersJudged(_ context.Context, _ sharedtypes.FightID, count int) {
	m.wagersJudged.Add(float64(count))
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

func (NoOpMetrics) RecordOperationAttempt(context.Context, string)                  {}
func (NoOpMetrics) RecordOperationSuccess(context.Context, string)                  {}
func (NoOpMetrics) RecordOperationFailure(context.Context, string)                  {}
func (NoOpMetrics) RecordOperationDuration(context.Context, string, time.Duration)  {}
func (NoOpMetrics) RecordWagerUpsert(context.Context, bool)                         {}
func (NoOpMetrics) RecordWagersJudged(context.Context, sharedtypes.FightID, int)    {}
func (NoOpMetrics) RecordHandlerAttempt(context.Context, string)                    {}
func (NoOpMetrics) RecordHandlerFailure(context.Context, string)                    {}
func (NoOpMetrics) RecordHandlerDuration(context.Context, string, time.Duration)    {}
