package leaderboardqueue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riverqueue/river"

	leaderboardservice "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/application"
	leaderboarddomain "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/domain"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
)

// RecalculateWorker runs standings recomputes in the background. Failures are
// retried by River; a retried recompute simply overwrites again.
type RecalculateWorker struct {
	river.WorkerDefaults[RecalculateJob]

	service leaderboardservice.Service
	logger  *slog.Logger
}

// NewRecalculateWorker creates a new RecalculateWorker.
func NewRecalculateWorker(service leaderboardservice.Service, logger *slog.Logger) *RecalculateWorker {
	return &RecalculateWorker{
		service: service,
		logger:  logger,
	}
}

func (w *RecalculateWorker) Work(ctx context.Context, job *river.Job[RecalculateJob]) error {
	scope := leaderboarddomain.GroupScope(job.Args.GroupID)
	if job.Args.EventID != nil {
		scope = leaderboarddomain.EventScope(job.Args.GroupID, *job.Args.EventID)
	}

	entries, err := w.service.Recalculate(ctx, scope)
	if err != nil {
		w.logger.ErrorContext(ctx, "Background recalculation failed",
			attr.String("scope", scope.String()),
			attr.Int("attempt", job.Attempt),
			attr.Error(err),
		)
		return fmt.Errorf("recalculate %s: %w", scope, err)
	}

	w.logger.InfoContext(ctx, "Background recalculation completed",
		attr.String("scope", scope.String()),
		attr.Int("entries", entries),
	)
	return nil
}
