package leaderboardservice

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"

	leaderboarddomain "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/domain"
	leaderboarddb "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/infrastructure/repositories"
	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	"github.com/bet-buddys/betbuddys-backend/internal/eventutil"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
)

// Recalculate rebuilds the standings for one scope inside a single
// transaction. The advisory lock serializes concurrent recomputes of the same
// scope; last writer wins and both produce the same converged state. Users
// with no predictions left in scope lose their row. Returns the number of
// entries written.
func (s *LeaderboardService) Recalculate(ctx context.Context, scope leaderboarddomain.Scope) (int, error) {
	return withTelemetry(s, ctx, "Recalculate", func(ctx context.Context) (int, error) {
		if scope.GroupID == "" {
			return 0, fmt.Errorf("recalculate: group id is required")
		}

		var scores []leaderboarddb.UserScore
		err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			if err := s.repo.AcquireScopeLock(ctx, tx, scope); err != nil {
				return err
			}

			var err error
			scores, err = s.repo.AggregateScores(ctx, tx, scope)
			if err != nil {
				return err
			}

			return s.repo.ReplaceEntries(ctx, tx, scope, scores)
		})
		if err != nil {
			return 0, fmt.Errorf("failed to recalculate %s: %w", scope, err)
		}

		scopeKind := "group"
		if !scope.IsGroupWide() {
			scopeKind = "event"
		}
		s.metrics.RecordRecalculation(ctx, scopeKind, len(scores))
		s.logger.InfoContext(ctx, "Leaderboard recalculated",
			attr.ExtractCorrelationID(ctx),
			attr.String("scope", scope.String()),
			attr.Int("entries", len(scores)),
		)

		payload := sharedevents.LeaderboardRecalculatedPayloadV1{
			Scope:        sharedevents.ScopeRefV1{GroupID: scope.GroupID, EventID: scope.EventID},
			EntriesCount: len(scores),
		}
		msg, err := eventutil.NewMessage(payload, sharedevents.LeaderboardRecalculatedV1)
		if err != nil {
			return 0, fmt.Errorf("failed to build recalculated message: %w", err)
		}
		if err := s.eventBus.Publish(ctx, sharedevents.LeaderboardRecalculatedV1, msg); err != nil {
			return 0, fmt.Errorf("failed to publish recalculated event: %w", err)
		}

		return len(scores), nil
	})
}
