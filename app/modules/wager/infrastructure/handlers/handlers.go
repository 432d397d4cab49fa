package wagerhandlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	wagerservice "github.com/bet-buddys/betbuddys-backend/app/modules/wager/application"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/wagermetrics"
)

// Handlers exposes the wager module's message handlers.
type Handlers interface {
	HandleFightResultFinalized(msg *message.Message) ([]*message.Message, error)
}

// WagerHandlers handles wager-related events.
type WagerHandlers struct {
	service wagerservice.Service
	logger  *slog.Logger
	metrics wagermetrics.WagerMetrics
	tracer  trace.Tracer
}

// NewWagerHandlers creates a new WagerHandlers.
func NewWagerHandlers(
	service wagerservice.Service,
	logger *slog.Logger,
	metrics wagermetrics.WagerMetrics,
	tracer trace.Tracer,
) Handlers {
	return &WagerHandlers{
		service: service,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// wrapHandler adds tracing, metrics, and uniform logging around a handler.
func (h *WagerHandlers) wrapHandler(
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
