package event

import (
	"context"
	"log/slog"
	"sync"

	"github.com/uptrace/bun"

	eventservice "github.com/bet-buddys/betbuddys-backend/app/modules/event/application"
	eventdb "github.com/bet-buddys/betbuddys-backend/app/modules/event/infrastructure/repositories"
	"github.com/bet-buddys/betbuddys-backend/internal/eventbus"
	"github.com/bet-buddys/betbuddys-backend/internal/observability"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/eventmetrics"
)

// Module wires the event service. The module only publishes facts; it has no
// message subscriptions of its own.
type Module struct {
	Service    eventservice.Service
	logger     *slog.Logger
	cancelFunc context.CancelFunc
}

// NewModule creates and configures the event module.
func NewModule(
	ctx context.Context,
	obs *observability.Observability,
	db *bun.DB,
	eventBus eventbus.EventBus,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("event")
	metrics := eventmetrics.NewPrometheusMetrics(obs.Registry)

	service := eventservice.NewEventService(&eventdb.Repo{}, eventBus, logger, metrics, tracer, db)

	return &Module{
		Service: service,
		logger:  logger,
	}, nil
}

func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting event module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Event module stopped")
}

func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
