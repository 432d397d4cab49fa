package predictionservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	predictiondb "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/infrastructure/repositories"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
)

// CreatePrediction records a user's pick for a match. A second pick for the
// same match replaces the first and clears any earlier judgment.
func (s *PredictionService) CreatePrediction(ctx context.Context, input CreatePredictionInput) (*predictiondb.Prediction, error) {
	return withTelemetry(s, ctx, "CreatePrediction", func(ctx context.Context) (*predictiondb.Prediction, error) {
		if input.UserID == "" || input.EventID == "" || input.MatchID == "" {
			return nil, fmt.Errorf("%w: user id, event id, and match id are required", ErrInvalidPrediction)
		}
		if input.PredictedWinnerID == "" || input.Method == "" {
			return nil, fmt.Errorf("%w: predicted winner and method are required", ErrInvalidPrediction)
		}

		prediction := &predictiondb.Prediction{
			ID:                sharedtypes.PredictionID(uuid.New().String()),
			UserID:            input.UserID,
			UserName:          input.UserName,
			EventID:           input.EventID,
			MatchID:           input.MatchID,
			PredictedWinnerID: input.PredictedWinnerID,
			Method:            input.Method,
		}

		saved, err := s.repo.UpsertPrediction(ctx, s.db, prediction)
		if err != nil {
			return nil, fmt.Errorf("failed to save prediction: %w", err)
		}

		s.logger.InfoContext(ctx, "Prediction saved",
			attr.ExtractCorrelationID(ctx),
			attr.String("prediction_id", string(saved.ID)),
			attr.String("user_id", string(saved.UserID)),
			attr.String("match_id", string(saved.MatchID)),
		)
		return saved, nil
	})
}
