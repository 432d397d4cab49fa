package predictionservice

import (
	"context"
	"fmt"

	predictiondb "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/infrastructure/repositories"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

func (s *PredictionService) GetMatchPredictions(ctx context.Context, matchID sharedtypes.MatchID) ([]predictiondb.Prediction, error) {
	return withTelemetry(s, ctx, "GetMatchPredictions", func(ctx context.Context) ([]predictiondb.Prediction, error) {
		predictions, err := s.repo.GetMatchPredictions(ctx, s.db, matchID)
		if err != nil {
			return nil, fmt.Errorf("failed to load match predictions: %w", err)
		}
		return predictions, nil
	})
}

func (s *PredictionService) GetUserEventPredictions(ctx context.Context, userID sharedtypes.UserID, eventID sharedtypes.EventID) ([]predictiondb.Prediction, error) {
	return withTelemetry(s, ctx, "GetUserEventPredictions", func(ctx context.Context) ([]predictiondb.Prediction, error) {
		predictions, err := s.repo.GetUserEventPredictions(ctx, s.db, userID, eventID)
		if err != nil {
			return nil, fmt.Errorf("failed to load user predictions: %w", err)
		}
		return predictions, nil
	})
}
