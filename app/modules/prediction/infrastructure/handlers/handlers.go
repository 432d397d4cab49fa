package predictionhandlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	predictionservice "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/application"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/predictionmetrics"
)

// Handlers exposes the prediction module's message handlers.
type Handlers interface {
	HandleMatchResultFinalized(msg *message.Message) ([]*message.Message, error)
}

// PredictionHandlers handles prediction-related events.
type PredictionHandlers struct {
	service predictionservice.Service
	logger  *slog.Logger
	metrics predictionmetrics.PredictionMetrics
	tracer  trace.Tracer
}

// NewPredictionHandlers creates a new PredictionHandlers.
func NewPredictionHandlers(
	service predictionservice.Service,
	logger *slog.Logger,
	metrics predictionmetrics.PredictionMetrics,
	tracer trace.Tracer,
) Handlers {
	return &PredictionHandlers{
		service: service,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// wrapHandler adds tracing, metrics, and uniform logging around a handler.
func (h *PredictionHandlers) wrapHandler(
	handlerName string,
	handlerFunc func(ctx context.Context, msg *message.Message) ([]*message.Message, error),
) func(msg *message.Message) ([]*message.Message, error) {
	return func(msg *message.Message) ([]*message.Message, error) {
		ctx, span := h.tracer.Start(msg.Context(), handlerName)
		defer span.End()

		h.metrics.RecordHandlerAttempt(ctx, handlerName)

		startTime := time.Now()
		defer func() {
			h.metrics.RecordHandlerDuration(ctx, handlerName, time.Since(startTime))
		}()

		h.logger.InfoContext(ctx, handlerName+" triggered",
			attr.CorrelationIDFromMsg(msg),
			attr.String("message_id", msg.UUID),
		)

		result, err := handlerFunc(ctx, msg)
		if err != nil {
			h.logger.ErrorContext(ctx, "Error in "+handlerName,
				attr.CorrelationIDFromMsg(msg),
				attr.Error(err),
			)
			h.metrics.RecordHandlerFailure(ctx, handlerName)
			span.RecordError(err)
			return nil, err
		}

		h.logger.InfoContext(ctx, handlerName+" completed successfully",
			attr.CorrelationIDFromMsg(msg),
		)
		return result, nil
	}
}
