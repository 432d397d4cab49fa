package predictionservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	predictiondb "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/infrastructure/repositories"
	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
	"github.com/bet-buddys/betbuddys-backend/internal/utils/results"
)

// ScoreMatchPredictions judges every prediction for a match against the
// authoritative result in a single transaction. Judged values are absolute,
// so replaying the same result is harmless. Zero predictions is a valid
// outcome and completes successfully without touching any scope.
func (s *PredictionService) ScoreMatchPredictions(ctx context.Context, matchID sharedtypes.MatchID, winnerID, method string) (ScoreMatchResult, error) {
	return withTelemetry(s, ctx, "ScoreMatchPredictions", func(ctx context.Context) (ScoreMatchResult, error) {
		if matchID == "" || winnerID == "" || method == "" {
			s.logger.WarnContext(ctx, "Rejecting scoring request with incomplete result",
				attr.ExtractCorrelationID(ctx),
				attr.String("match_id", string(matchID)),
			)
			return results.FailureResult[sharedevents.PredictionBatchScoredPayloadV1](sharedevents.PredictionScoringFailedPayloadV1{
				MatchID: matchID,
				Reason:  "match id, winner id, and method are all required",
			}), nil
		}

		scope, err := s.repo.GetMatchScope(ctx, s.db, matchID)
		if err != nil {
			if errors.Is(err, predictiondb.ErrMatchNotFound) {
				return results.FailureResult[sharedevents.PredictionBatchScoredPayloadV1](sharedevents.PredictionScoringFailedPayloadV1{
					MatchID: matchID,
					Reason:  "match not found",
				}), nil
			}
			return ScoreMatchResult{}, fmt.Errorf("failed to resolve match scope: %w", err)
		}

		var judgedCount int
		err = s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			predictions, err := s.repo.GetMatchPredictions(ctx, tx, matchID)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			for i := range predictions {
				prediction := &predictions[i]

				isCorrect, isCorrectMethod, points := judgePrediction(
					prediction.PredictedWinnerID, prediction.Method, winnerID, method)

				prediction.IsCorrect = &isCorrect
				prediction.IsCorrectMethod = &isCorrectMethod
				prediction.PointsEarned = &points
				prediction.UpdatedAt = &now

				if err := s.repo.UpdateJudgment(ctx, tx, prediction); err != nil {
					return err
				}
			}

			judgedCount = len(predictions)
			return nil
		})
		if err != nil {
			return ScoreMatchResult{}, fmt.Errorf("failed to judge predictions for match %s: %w", matchID, err)
		}

		s.metrics.RecordPredictionsJudged(ctx, matchID, judgedCount)
		s.logger.InfoContext(ctx, "Match predictions judged",
			attr.ExtractCorrelationID(ctx),
			attr.String("match_id", string(matchID)),
			attr.Int("judged_count", judgedCount),
		)

		payload := sharedevents.PredictionBatchScoredPayloadV1{
			MatchID:     matchID,
			WinnerID:    winnerID,
			Method:      method,
			JudgedCount: judgedCount,
		}
		if judgedCount > 0 {
			eventID := scope.EventID
			payload.TouchedScopes = []sharedevents.ScopeRefV1{
				{GroupID: scope.GroupID, EventID: &eventID},
				{GroupID: scope.GroupID},
			}
		}

		return results.SuccessResult[sharedevents.PredictionBatchScoredPayloadV1, sharedevents.PredictionScoringFailedPayloadV1](payload), nil
	})
}
