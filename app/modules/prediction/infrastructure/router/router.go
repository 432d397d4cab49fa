package predictionrouter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	predictionservice "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/application"
	predictionhandlers "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/infrastructure/handlers"
	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	"github.com/bet-buddys/betbuddys-backend/internal/eventbus"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/predictionmetrics"
)

// PredictionRouter subscribes the prediction module's handlers to their topics.
type PredictionRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	tracer     trace.Tracer
}

// NewPredictionRouter creates a new PredictionRouter.
func NewPredictionRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	tracer trace.Tracer,
) *PredictionRouter {
	return &PredictionRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

// Configure registers the prediction handlers on the router.
func (r *PredictionRouter) Configure(ctx context.Context, service predictionservice.Service, predictionMetrics predictionmetrics.PredictionMetrics) error {
	handlers := predictionhandlers.NewPredictionHandlers(service, r.logger, predictionMetrics, r.tracer)
	return r.RegisterHandlers(ctx, handlers)
}

// RegisterHandlers subscribes each handler to its topic. Returned messages
// carry their destination in the "subject" metadata and are published here.
func (r *PredictionRouter) RegisterHandlers(ctx context.Context, handlers predictionhandlers.Handlers) error {
	eventsToHandlers := map[string]func(*message.Message) ([]*message.Message, error){
		sharedevents.MatchResultFinalizedV1: handlers.HandleMatchResultFinalized,
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("prediction.%s", topic)
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

func (r *PredictionRouter) Close() error {
	return r.Router.Close()
}
