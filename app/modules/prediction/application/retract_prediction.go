package predictionservice

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"

	predictiondb "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/infrastructure/repositories"
	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/eventutil"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
)

// RetractPrediction deletes a prediction on behalf of its owner and announces
// the retraction so standings that already counted it can re-converge.
func (s *PredictionService) RetractPrediction(ctx context.Context, predictionID sharedtypes.PredictionID, userID sharedtypes.UserID) error {
	_, err := withTelemetry(s, ctx, "RetractPrediction", func(ctx context.Context) (struct{}, error) {
		var retracted *predictiondb.Prediction
		var scope *predictiondb.MatchScope

		err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			prediction, err := s.repo.GetPrediction(ctx, tx, predictionID)
			if err != nil {
				return err
			}
			if prediction.UserID != userID {
				return ErrNotOwner
			}

			scope, err = s.repo.GetMatchScope(ctx, tx, prediction.MatchID)
			if err != nil {
				return err
			}

			if err := s.repo.DeletePrediction(ctx, tx, predictionID); err != nil {
				return err
			}
			retracted = prediction
			return nil
		})
		if err != nil {
			return struct{}{}, err
		}

		payload := sharedevents.PredictionRetractedPayloadV1{
			PredictionID: retracted.ID,
			UserID:       retracted.UserID,
			GroupID:      scope.GroupID,
			EventID:      retracted.EventID,
		}
		msg, err := eventutil.NewMessage(payload, sharedevents.PredictionRetractedV1)
		if err != nil {
			return struct{}{}, fmt.Errorf("failed to build retraction message: %w", err)
		}
		if err := s.eventBus.Publish(ctx, sharedevents.PredictionRetractedV1, msg); err != nil {
			return struct{}{}, fmt.Errorf("failed to publish retraction: %w", err)
		}

		s.logger.InfoContext(ctx, "Prediction retracted",
			attr.ExtractCorrelationID(ctx),
			attr.String("prediction_id", string(predictionID)),
			attr.String("user_id", string(userID)),
		)
		return struct{}{}, nil
	})
	return err
}
