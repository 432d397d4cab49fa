package wagerservice

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	wagerdb "github.com/bet-buddys/betbuddys-backend/app/modules/wager/infrastructure/repositories"
	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
	"github.com/bet-buddys/betbuddys-backend/internal/utils/results"
)

// JudgeFightWagers judges every wager on a fight against the authoritative
// result in a single transaction. Judged values are absolute; replaying the
// same result is harmless.
func (s *WagerService) JudgeFightWagers(ctx context.Context, fightID sharedtypes.FightID, winnerName, method string) (JudgeWagersResult, error) {
	return withTelemetry(s, ctx, "JudgeFightWagers", func(ctx context.Context) (JudgeWagersResult, error) {
		if fightID == "" || winnerName == "" || method == "" {
			return results.FailureResult[sharedevents.WagerBatchJudgedPayloadV1](sharedevents.WagerJudgingFailedPayloadV1{
				FightID: fightID,
				Reason:  "fight id, winner, and method are all required",
			}), nil
		}

		fight, err := s.repo.GetFight(ctx, s.db, fightID)
		if err != nil {
			if errors.Is(err, wagerdb.ErrFightNotFound) {
				return results.FailureResult[sharedevents.WagerBatchJudgedPayloadV1](sharedevents.WagerJudgingFailedPayloadV1{
					FightID: fightID,
					Reason:  "fight not found",
				}), nil
			}
			return JudgeWagersResult{}, fmt.Errorf("failed to load fight: %w", err)
		}

		var judgedCount int
		err = s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			wagers, err := s.repo.GetFightWagers(ctx, tx, fightID)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			for i := range wagers {
				wager := &wagers[i]

				isCorrect, isCorrectMethod, points := judgeWager(
					wager.PredictedWinner, wager.Method, winnerName, method)

				wager.IsCorrect = &isCorrect
				wager.IsCorrectMethod = &isCorrectMethod
				wager.PointsEarned = &points
				wager.UpdatedAt = &now

				if err := s.repo.UpdateWagerJudgment(ctx, tx, wager); err != nil {
					return err
				}
			}

			judgedCount = len(wagers)
			return nil
		})
		if err != nil {
			return JudgeWagersResult{}, fmt.Errorf("failed to judge wagers for fight %s: %w", fightID, err)
		}

		s.metrics.RecordWagersJudged(ctx, fightID, judgedCount)
		s.logger.InfoContext(ctx, "Fight wagers judged",
			attr.ExtractCorrelationID(ctx),
			attr.String("fight_id", string(fightID)),
			attr.Int("judged_count", judgedCount),
		)

		return results.SuccessResult[sharedevents.WagerBatchJudgedPayloadV1, sharedevents.WagerJudgingFailedPayloadV1](sharedevents.WagerBatchJudgedPayloadV1{
			FightID:      fightID,
			GroupEventID: fight.GroupEventID,
			WinnerName:   winnerName,
			Method:       method,
			JudgedCount:  judgedCount,
		}), nil
	})
}
