package predictionservice

import (
	"context"

	predictiondb "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/infrastructure/repositories"
	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/utils/results"
)

// ScoreMatchResult is the outcome of a scoring pass: either a batch-scored
// payload ready for publication or a terminal failure payload.
type ScoreMatchResult = results.OperationResult[sharedevents.PredictionBatchScoredPayloadV1, sharedevents.PredictionScoringFailedPayloadV1]

// CreatePredictionInput is the caller-supplied prediction. One prediction per
// (user, event, match); posting again replaces the earlier pick.
type CreatePredictionInput struct {
	UserID            sharedtypes.UserID
	UserName          string
	EventID           sharedtypes.EventID
	MatchID           sharedtypes.MatchID
	PredictedWinnerID string
	Method            string
}

// Service is the prediction module's application contract.
type Service interface {
	CreatePrediction(ctx context.Context, input CreatePredictionInput) (*predictiondb.Prediction, error)
	ScoreMatchPredictions(ctx context.Context, matchID sharedtypes.MatchID, winnerID, method string) (ScoreMatchResult, error)
	RetractPrediction(ctx context.Context, predictionID sharedtypes.PredictionID, userID sharedtypes.UserID) error
	GetMatchPredictions(ctx context.Context, matchID sharedtypes.MatchID) ([]predictiondb.Prediction, error)
	GetUserEventPredictions(ctx context.Context, userID sharedtypes.UserID, eventID sharedtypes.EventID) ([]predictiondb.Prediction, error)
}
