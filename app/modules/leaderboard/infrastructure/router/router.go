package leaderboardrouter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	leaderboardservice "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/application"
	leaderboardhandlers "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/infrastructure/handlers"
	leaderboardqueue "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/infrastructure/queue"
	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	"github.com/bet-buddys/betbuddys-backend/internal/eventbus"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/leaderboardmetrics"
)

// LeaderboardRouter subscribes the leaderboard module's handlers to their topics.
type LeaderboardRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	tracer     trace.Tracer
}

// NewLeaderboardRouter creates a new LeaderboardRouter.
func NewLeaderboardRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	tracer trace.Tracer,
) *LeaderboardRouter {
	return &LeaderboardRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

// Configure registers the leaderboard handlers on the router.
func (r *LeaderboardRouter) Configure(
	ctx context.Context,
	service leaderboardservice.Service,
	queue leaderboardqueue.QueueService,
	leaderboardMetrics leaderboardmetrics.LeaderboardMetrics,
) error {
	handlers := leaderboardhandlers.NewLeaderboardHandlers(service, queue, r.logger, leaderboardMetrics, r.tracer)
	return r.RegisterHandlers(ctx, handlers)
}

// RegisterHandlers subscribes each handler to its topic.
func (r *LeaderboardRouter) RegisterHandlers(ctx context.Context, handlers leaderboardhandlers.Handlers) error {
	eventsToHandlers := map[string]func(*message.Message) ([]*message.Message, error){
		sharedevents.PredictionBatchScoredV1: handlers.HandlePredictionBatchScored,
		sharedevents.PredictionRetractedV1:   handlers.HandlePredictionRetracted,
		sharedevents.GroupMemberAddedV1:      handlers.HandleGroupMemberAdded,
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("leaderboard.%s", topic)
		r.Router.AddHandler(
			handlerName,
			topic,
			r.subscriber,
			"",
			nil,
			func(msg *message.Message) ([]*message.Message, error) {
				messages, err := handlerFunc(msg)
				if err != nil {
					r.logger.ErrorContext(ctx, "Error processing message",
						attr.String("message_id", msg.UUID),
						attr.Error(err),
					)
					return nil, err
				}
				for _, m := range messages {
					publishTopic := m.Metadata.Get("subject")
					if publishTopic == "" {
						r.logger.Error("Message missing subject metadata, dropping",
							attr.String("handler", handlerName),
							attr.String("message_id", m.UUID),
						)
						continue
					}
					if err := r.publisher.Publish(msg.Context(), publishTopic, m); err != nil {
						return nil, fmt.Errorf("failed to publish to %s: %w", publishTopic, err)
					}
				}
				return nil, nil
			},
		)
	}
	return nil
}

func (r *LeaderboardRouter) Close() error {
	return r.Router.Close()
}
