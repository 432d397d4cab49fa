package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/metrics"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/uptrace/bun"

	"github.com/bet-buddys/betbuddys-backend/api"
	"github.com/bet-buddys/betbuddys-backend/app/modules/event"
	"github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard"
	"github.com/bet-buddys/betbuddys-backend/app/modules/prediction"
	"github.com/bet-buddys/betbuddys-backend/app/modules/wager"
	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	"github.com/bet-buddys/betbuddys-backend/config"
	"github.com/bet-buddys/betbuddys-backend/db/bundb"
	"github.com/bet-buddys/betbuddys-backend/internal/eventbus"
	"github.com/bet-buddys/betbuddys-backend/internal/observability"
)

// App owns every long-lived component: database, event bus, message router,
// the four modules, and the HTTP API.
type App struct {
	cfg      *config.Config
	obs      *observability.Observability
	db       *bun.DB
	eventBus eventbus.EventBus
	router   *message.Router

	eventModule       *event.Module
	predictionModule  *prediction.Module
	wagerModule       *wager.Module
	leaderboardModule *leaderboard.Module

	apiServer *api.Server
}

// New wires the whole application from configuration.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	obs, err := observability.Init(observability.Config{
		ServiceName:    "betbuddys-backend",
		Environment:    cfg.Observability.Environment,
		LogLevel:       cfg.Observability.LogLevel,
		MetricsAddress: cfg.Observability.MetricsAddress,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize observability: %w", err)
	}

	db, err := bundb.New(ctx, cfg.Postgres.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	bus, err := eventbus.New(ctx, cfg.NATS.URL, obs.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	streams := map[string]string{
		sharedevents.EventStreamName:       "event.>",
		sharedevents.PredictionStreamName:  "prediction.>",
		sharedevents.WagerStreamName:       "wager.>",
		sharedevents.LeaderboardStreamName: "leaderboard.>",
		sharedevents.GroupStreamName:       "group.>",
	}
	for stream, subjects := range streams {
		if err := bus.EnsureStream(ctx, stream, subjects); err != nil {
			return nil, fmt.Errorf("failed to provision stream %s: %w", stream, err)
		}
	}

	router, err := message.NewRouter(message.RouterConfig{}, watermill.NewSlogLogger(obs.Logger))
	if err != nil {
		return nil, fmt.Errorf("failed to create message router: %w", err)
	}

	metricsBuilder := metrics.NewPrometheusMetricsBuilder(obs.Registry, "", "")
	metricsBuilder.AddPrometheusRouterMetrics(router)

	router.AddMiddleware(
		middleware.CorrelationID,
		middleware.Recoverer,
		middleware.Retry{MaxRetries: 3}.Middleware,
	)

	eventModule, err := event.NewModule(ctx, obs, db, bus)
	if err != nil {
		return nil, fmt.Errorf("failed to create event module: %w", err)
	}

	predictionModule, err := prediction.NewModule(ctx, obs, db, bus, router)
	if err != nil {
		return nil, fmt.Errorf("failed to create prediction module: %w", err)
	}

	wagerModule, err := wager.NewModule(ctx, obs, db, bus, router)
	if err != nil {
		return nil, fmt.Errorf("failed to create wager module: %w", err)
	}

	leaderboardModule, err := leaderboard.NewModule(ctx, obs, db, cfg.Postgres.DSN, bus, router)
	if err != nil {
		return nil, fmt.Errorf("failed to create leaderboard module: %w", err)
	}

	apiServer := api.NewServer(cfg, obs.Logger, api.Services{
		Events:      eventModule.Service,
		Predictions: predictionModule.Service,
		Wagers:      wagerModule.Service,
		Leaderboard: leaderboardModule.Service,
	})

	return &App{
		cfg:               cfg,
		obs:               obs,
		db:                db,
		eventBus:          bus,
		router:            router,
		eventModule:       eventModule,
		predictionModule:  predictionModule,
		wagerModule:       wagerModule,
		leaderboardModule: leaderboardModule,
		apiServer:         apiServer,
	}, nil
}

// Run starts everything and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	var wg sync.WaitGroup

	go func() {
		if err := a.router.Run(ctx); err != nil {
			a.obs.Logger.Error("Message router stopped", slog.Any("error", err))
		}
	}()

	go func() {
		if err := a.obs.ServeMetrics(a.cfg.Observability.MetricsAddress); err != nil {
			a.obs.Logger.Error("Metrics server stopped", slog.Any("error", err))
		}
	}()

	for _, module := range []interface {
		Run(context.Context, *sync.WaitGroup)
	}{a.eventModule, a.predictionModule, a.wagerModule, a.leaderboardModule} {
		wg.Add(1)
		go module.Run(ctx, &wg)
	}

	go func() {
		if err := a.apiServer.Start(); err != nil {
			a.obs.Logger.Error("API server stopped", slog.Any("error", err))
		}
	}()

	<-ctx.Done()
	a.obs.Logger.Info("Shutdown signal received")
	wg.Wait()
	return nil
}

// Close releases every resource in reverse dependency order.
func (a *App) Close(ctx context.Context) {
	if err := a.apiServer.Shutdown(ctx); err != nil {
		a.obs.Logger.Warn("Failed to shut down API server", slog.Any("error", err))
	}
	if err := a.router.Close(); err != nil {
		a.obs.Logger.Warn("Failed to close message router", slog.Any("error", err))
	}

	_ = a.eventModule.Close()
	_ = a.predictionModule.Close()
	_ = a.wagerModule.Close()
	_ = a.leaderboardModule.Close()

	if err := a.eventBus.Close(); err != nil {
		a.obs.Logger.Warn("Failed to close event bus", slog.Any("error", err))
	}
	if err := a.db.Close(); err != nil {
		a.obs.Logger.Warn("Failed to close database", slog.Any("error", err))
	}
	if err := a.obs.Shutdown(ctx); err != nil {
		a.obs.Logger.Warn("Failed to shut down observability", slog.Any("error", err))
	}
}
