package eventservice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	eventdb "github.com/bet-buddys/betbuddys-backend/app/modules/event/infrastructure/repositories"
	"github.com/bet-buddys/betbuddys-backend/db/bundb"
	"github.com/bet-buddys/betbuddys-backend/internal/eventbus"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/eventmetrics"
)

// EventService implements the Service interface.
type EventService struct {
	repo     eventdb.Repository
	eventBus eventbus.EventBus
	logger   *slog.Logger
	metrics  eventmetrics.EventMetrics
	tracer   trace.Tracer
	db       bundb.DB
}

// NewEventService creates a new EventService.
func NewEventService(
	repo eventdb.Repository,
	eventBus eventbus.EventBus,
	logger *slog.Logger,
	metrics eventmetrics.EventMetrics,
	tracer trace.Tracer,
	db bundb.DB,
) *EventService {
	return &EventService{
		repo:     repo,
		eventBus: eventBus,
		logger:   logger,
		metrics:  metrics,
		tracer:   tracer,
		db:       db,
	}
}

// withTelemetry wraps a service operation with tracing, metrics, and panic recovery.
func withTelemetry[T any](
	s *EventService,
	ctx context.Context,
	operationName string,
	op func(ctx context.Context) (T, error),
) (result T, err error) {
	ctx, span := s.tracer.Start(ctx, operationName, trace.WithAttributes(
		attribute.String("operation", operationName),
	))
	defer span.End()

	s.metrics.RecordOperationAttempt(ctx, operationName)

	startTime := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration(ctx, operationName, time.Since(startTime))
	}()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s: %v", operationName, r)
			s.logger.ErrorContext(ctx, "Critical panic recovered",
				attr.ExtractCorrelationID(ctx),
				attr.String("operation", operationName),
				attr.Error(err),
			)
			s.metrics.RecordOperationFailure(ctx, operationName)
			span.RecordError(err)
		}
	}()

	result, err = op(ctx)
	if err != nil {
		s.metrics.RecordOperationFailure(ctx, operationName)
		span.RecordError(err)
		return result, err
	}

	s.metrics.RecordOperationSuccess(ctx, operationName)
	return result, nil
}
