package leaderboardqueue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	leaderboardservice "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/application"
	leaderboarddomain "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/domain"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
)

const recalculateQueue = "leaderboard"

// QueueService schedules background standings recomputes.
type QueueService interface {
	EnqueueRecalculate(ctx context.Context, scope leaderboarddomain.Scope) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Service is a River-backed QueueService. River needs pgx directly, so it
// runs on its own pool next to the bun connection.
type Service struct {
	client *river.Client[pgx.Tx]
	pool   *pgxpool.Pool
	logger *slog.Logger
}

var _ QueueService = (*Service)(nil)

// NewService creates the River client and registers the recalculate worker.
func NewService(ctx context.Context, dsn string, service leaderboardservice.Service, logger *slog.Logger) (*Service, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse DSN for River: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool for River: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database for River: %w", err)
	}

	workers := river.NewWorkers()
	river.AddWorker(workers, NewRecalculateWorker(service, logger))

	client, err := river.NewClient(riverpgxv5.New(pool), &river.Config{
		Queues: map[string]river.QueueConfig{
			recalculateQueue: {MaxWorkers: 4},
		},
		Workers: workers,
	})
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to create River client: %w", err)
	}

	return &Service{
		client: client,
		pool:   pool,
		logger: logger,
	}, nil
}

// EnqueueRecalculate schedules a recompute for the scope. Duplicate enqueues
// are harmless; every run converges to the same standings.
func (s *Service) EnqueueRecalculate(ctx context.Context, scope leaderboarddomain.Scope) error {
	job := RecalculateJob{GroupID: scope.GroupID, EventID: scope.EventID}

	_, err := s.client.Insert(ctx, job, &river.InsertOpts{
		Queue:       recalculateQueue,
		MaxAttempts: 5,
	})
	if err != nil {
		return fmt.Errorf("failed to enqueue recalculation for %s: %w", scope, err)
	}

	s.logger.DebugContext(ctx, "Recalculation enqueued",
		attr.String("scope", scope.String()),
	)
	return nil
}

func (s *Service) Start(ctx context.Context) error {
	if err := s.client.Start(ctx); err != nil {
		return fmt.Errorf("failed to start River client: %w", err)
	}
	s.logger.Info("Leaderboard queue started")
	return nil
}

func (s *Service) Stop(ctx context.Context) error {
	if err := s.client.Stop(ctx); err != nil {
		return fmt.Errorf("failed to stop River client: %w", err)
	}
	s.pool.Close()
	s.logger.Info("Leaderboard queue stopped")
	return nil
}
