package wager

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	wagerservice "github.com/bet-buddys/betbuddys-backend/app/modules/wager/application"
	wagerdb "github.com/bet-buddys/betbuddys-backend/app/modules/wager/infrastructure/repositories"
	wagerrouter "github.com/bet-buddys/betbuddys-backend/app/modules/wager/infrastructure/router"
	"github.com/bet-buddys/betbuddys-backend/internal/eventbus"
	"github.com/bet-buddys/betbuddys-backend/internal/observability"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/wagermetrics"
)

// Module wires the wager service, handlers, and router together.
type Module struct {
	Service    wagerservice.Service
	Router     *wagerrouter.WagerRouter
	logger     *slog.Logger
	cancelFunc context.CancelFunc
}

// NewModule creates and configures the wager module.
func NewModule(
	ctx context.Context,
	obs *observability.Observability,
	db *bun.DB,
	eventBus eventbus.EventBus,
	router *message.Router,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("wager")
	metrics := wagermetrics.NewPrometheusMetrics(obs.Registry)

	service := wagerservice.NewWagerService(&wagerdb.Repo{}, eventBus, logger, metrics, tracer, db)

	wagerRouter := wagerrouter.NewWagerRouter(logger, router, eventBus, eventBus, tracer)
	if err := wagerRouter.Configure(ctx, service, metrics); err != nil {
		return nil, fmt.Errorf("failed to configure wager router: %w", err)
	}

	return &Module{
		Service: service,
		Router:  wagerRouter,
		logger:  logger,
	}, nil
}

func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting wager module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Wager module stopped")
}

func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
