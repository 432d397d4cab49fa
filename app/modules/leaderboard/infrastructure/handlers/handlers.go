package leaderboardhandlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	leaderboardservice "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/application"
	leaderboardqueue "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/infrastructure/queue"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/leaderboardmetrics"
)

// Handlers exposes the leaderboard module's message handlers.
type Handlers interface {
	HandlePredictionBatchScored(msg *message.Message) ([]*message.Message, error)
	HandlePredictionRetracted(msg *message.Message) ([]*message.Message, error)
	HandleGroupMemberAdded(msg *message.Message) ([]*message.Message, error)
}

// LeaderboardHandlers handles leaderboard-related events.
type LeaderboardHandlers struct {
	service leaderboardservice.Service
	queue   leaderboardqueue.QueueService
	logger  *slog.Logger
	metrics leaderboardmetrics.LeaderboardMetrics
	tracer  trace.Tracer
}

// NewLeaderboardHandlers creates a new LeaderboardHandlers.
func NewLeaderboardHandlers(
	service leaderboardservice.Service,
	queue leaderboardqueue.QueueService,
	logger *slog.Logger,
	metrics leaderboardmetrics.LeaderboardMetrics,
	tracer trace.Tracer,
) Handlers {
	return &LeaderboardHandlers{
		service: service,
		queue:   queue,
		logger:  logger,
		metrics: metrics,
		tracer:  tracer,
	}
}

// wrapHandler adds tracing, metrics, and uniform logging around a handler.
func (h *LeaderboardHandlers) wrapHandler(
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
