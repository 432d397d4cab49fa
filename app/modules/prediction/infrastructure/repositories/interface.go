package predictiondb

import (
	"context"

	"github.com/uptrace/bun"

	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// Repository is the data access contract for predictions. Every method takes a
// bun.IDB so callers can run several of them inside one transaction.
type Repository interface {
	UpsertPrediction(ctx context.Context, db bun.IDB, prediction *Prediction) (*Prediction, error)
	GetPrediction(ctx context.Context, db bun.IDB, predictionID sharedtypes.PredictionID) (*Prediction, error)
	GetMatchPredictions(ctx context.Context, db bun.IDB, matchID sharedtypes.MatchID) ([]Prediction, error)
	GetUserEventPredictions(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, eventID sharedtypes.EventID) ([]Prediction, error)
	UpdateJudgment(ctx context.Context, db bun.IDB, prediction *Prediction) error
	DeletePrediction(ctx context.Context, db bun.IDB, predictionID sharedtypes.PredictionID) error
	GetMatchScope(ctx context.Context, db bun.IDB, matchID sharedtypes.MatchID) (*MatchScope, error)
}
