package wagerrouter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel/trace"

	wagerservice "github.com/bet-buddys/betbuddys-backend/app/modules/wager/application"
	wagerhandlers "github.com/bet-buddys/betbuddys-backend/app/modules/wager/infrastructure/handlers"
	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	"github.com/bet-buddys/betbuddys-backend/internal/eventbus"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/wagermetrics"
)

// WagerRouter subscribes the wager module's handlers to their topics.
type WagerRouter struct {
	logger     *slog.Logger
	Router     *message.Router
	subscriber eventbus.EventBus
	publisher  eventbus.EventBus
	tracer     trace.Tracer
}

// NewWagerRouter creates a new WagerRouter.
func NewWagerRouter(
	logger *slog.Logger,
	router *message.Router,
	subscriber eventbus.EventBus,
	publisher eventbus.EventBus,
	tracer trace.Tracer,
) *WagerRouter {
	return &WagerRouter{
		logger:     logger,
		Router:     router,
		subscriber: subscriber,
		publisher:  publisher,
		tracer:     tracer,
	}
}

// Configure registers the wager handlers on the router.
func (r *WagerRouter) Configure(ctx context.Context, service wagerservice.Service, wagerMetrics wagermetrics.WagerMetrics) error {
	handlers := wagerhandlers.NewWagerHandlers(service, r.logger, wagerMetrics, r.tracer)
	return r.RegisterHandlers(ctx, handlers)
}

// RegisterHandlers subscribes each handler to its topic.
func (r *WagerRouter) RegisterHandlers(ctx context.Context, handlers wagerhandlers.Handlers) error {
	eventsToHandlers := map[string]func(*message.Message) ([]*message.Message, error){
		sharedevents.FightResultFinalizedV1: handlers.HandleFightResultFinalized,
	}

	for topic, handlerFunc := range eventsToHandlers {
		handlerName := fmt.Sprintf("wager.%s", topic)
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

func (r *WagerRouter) Close() error {
	return r.Router.Close()
}
