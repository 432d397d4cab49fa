package leaderboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"

	leaderboardservice "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/application"
	leaderboardqueue "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/infrastructure/queue"
	leaderboarddb "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/infrastructure/repositories"
	leaderboardrouter "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/infrastructure/router"
	"github.com/bet-buddys/betbuddys-backend/internal/eventbus"
	"github.com/bet-buddys/betbuddys-backend/internal/observability"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/leaderboardmetrics"
)

// Module wires the leaderboard service, queue, handlers, and router together.
type Module struct {
	Service    leaderboardservice.Service
	Queue      leaderboardqueue.QueueService
	Router     *leaderboardrouter.LeaderboardRouter
	logger     *slog.Logger
	cancelFunc context.CancelFunc
}

// NewModule creates and configures the leaderboard module. The queue gets its
// own pgx pool from the DSN because River cannot ride the bun connection.
func NewModule(
	ctx context.Context,
	obs *observability.Observability,
	db *bun.DB,
	dsn string,
	eventBus eventbus.EventBus,
	router *message.Router,
) (*Module, error) {
	logger := obs.Logger
	tracer := obs.Tracer("leaderboard")
	metrics := leaderboardmetrics.NewPrometheusMetrics(obs.Registry)

	service := leaderboardservice.NewLeaderboardService(&leaderboarddb.Repo{}, eventBus, logger, metrics, tracer, db)

	queue, err := leaderboardqueue.NewService(ctx, dsn, service, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create leaderboard queue: %w", err)
	}

	leaderboardRouter := leaderboardrouter.NewLeaderboardRouter(logger, router, eventBus, eventBus, tracer)
	if err := leaderboardRouter.Configure(ctx, service, queue, metrics); err != nil {
		return nil, fmt.Errorf("failed to configure leaderboard router: %w", err)
	}

	return &Module{
		Service: service,
		Queue:   queue,
		Router:  leaderboardRouter,
		logger:  logger,
	}, nil
}

func (m *Module) Run(ctx context.Context, wg *sync.WaitGroup) {
	m.logger.Info("Starting leaderboard module")

	ctx, cancel := context.WithCancel(ctx)
	m.cancelFunc = cancel
	defer cancel()

	if wg != nil {
		defer wg.Done()
	}

	if err := m.Queue.Start(ctx); err != nil {
		m.logger.Error("Failed to start leaderboard queue", slog.Any("error", err))
	}

	<-ctx.Done()

	if err := m.Queue.Stop(context.Background()); err != nil {
		m.logger.Error("Failed to stop leaderboard queue", slog.Any("error", err))
	}
	m.logger.Info("Leaderboard module stopped")
}

func (m *Module) Close() error {
	if m.cancelFunc != nil {
		m.cancelFunc()
	}
	return nil
}
