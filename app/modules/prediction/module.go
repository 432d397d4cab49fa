package prediction

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	predictionservice "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/application"
	predictiondb "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/infrastructure/repositories"
	predictionrouter "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/infrastructure/router"
	"github.com/bet-buddys/betbuddys-backend/internal/eventbus"
	"github.com/bet-buddys/betbuddys-backend/internal/observability"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/predictionmetrics"
)

// Module wires the prediction service, handlers, and router together.
type Module struct {
	Service    predictionservice.Service
	Router     *predictionrouter.PredictionRouter
	logger     *slog.Logger
	cancelFunc context.CancelFunc
}

// NewModule creates and configures the prediction module.
func NewModule(
	ctx context.Context,
	obs *observability.Observability,
	db *bun.DB,
	eventBus eventbus.EventBus,
	router *message.Router,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("prediction")
	metrics := predictionmetrics.NewPrometheusMetrics(obs.Registry)

	service := predictionservice.NewPredictionService(&predictiondb.Repo{}, eventBus, logger, metrics, tracer, db)

	predictionRouter := predictionrouter.NewPredictionRouter(logger, router, eventBus, eventBus, tracer)
	if err := predictionRouter.Configure(ctx, service, metrics); err != nil {
		return nil, fmt.Errorf("failed to configure prediction router: %w", err)
	}

	return &Module{
		Service: service,
		Router:  predictionRouter,
		logger:  logger,
	}, nil
}

func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting prediction module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	<-ctx.Done()
	m.logger.Info("Prediction module stopped")
}

func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
