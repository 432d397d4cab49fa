package predictionhandlers

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace/noop"

	predictionservice "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/application"
	predictiondb "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/infrastructure/repositories"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/predictionmetrics"
)

// FakePredictionService is a programmable stub for the predictionservice.Service
// interface. Inject behavior per method and inspect call order via Trace.
type FakePredictionService struct {
	trace []string

	CreatePredictionFunc        func(ctx context.Context, input predictionservice.CreatePredictionInput) (*predictiondb.Prediction, error)
	ScoreMatchPredictionsFunc   func(ctx context.Context, matchID sharedtypes.MatchID, winnerID, method string) (predictionservice.ScoreMatchResult, error)
	RetractPredictionFunc       func(ctx context.Context, predictionID sharedtypes.PredictionID, userID sharedtypes.UserID) error
	GetMatchPredictionsFunc     func(ctx context.Context, matchID sharedtypes.MatchID) ([]predictiondb.Prediction, error)
	GetUserEventPredictionsFunc func(ctx context.Context, userID sharedtypes.UserID, eventID sharedtypes.EventID) ([]predictiondb.Prediction, error)
}

func NewFakePredictionService() *FakePredictionService {
	return &FakePredictionService{trace: []string{}}
}

func (f *FakePredictionService) record(step string) {
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of service methods called.
func (f *FakePredictionService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakePredictionService) CreatePrediction(ctx context.Context, input predictionservice.CreatePredictionInput) (*predictiondb.Prediction, error) {
	f.record("CreatePrediction")
	if f.CreatePredictionFunc != nil {
		return f.CreatePredictionFunc(ctx, input)
	}
	return nil, nil
}

func (f *FakePredictionService) ScoreMatchPredictions(ctx context.Context, matchID sharedtypes.MatchID, winnerID, method string) (predictionservice.ScoreMatchResult, error) {
	f.record("ScoreMatchPredictions")
	if f.ScoreMatchPredictionsFunc != nil {
		return f.ScoreMatchPredictionsFunc(ctx, matchID, winnerID, method)
	}
	return predictionservice.ScoreMatchResult{}, nil
}

func (f *FakePredictionService) RetractPrediction(ctx context.Context, predictionID sharedtypes.PredictionID, userID sharedtypes.UserID) error {
	f.record("RetractPrediction")
	if f.RetractPredictionFunc != nil {
		return f.RetractPredictionFunc(ctx, predictionID, userID)
	}
	return nil
}

func (f *FakePredictionService) GetMatchPredictions(ctx context.Context, matchID sharedtypes.MatchID) ([]predictiondb.Prediction, error) {
	f.record("GetMatchPredictions")
	if f.GetMatchPredictionsFunc != nil {
		return f.GetMatchPredictionsFunc(ctx, matchID)
	}
	return nil, nil
}

func (f *FakePredictionService) GetUserEventPredictions(ctx context.Context, userID sharedtypes.UserID, eventID sharedtypes.EventID) ([]predictiondb.Prediction, error) {
	f.record("GetUserEventPredictions")
	if f.GetUserEventPredictionsFunc != nil {
		return f.GetUserEventPredictionsFunc(ctx, userID, eventID)
	}
	return nil, nil
}

var _ predictionservice.Service = (*FakePredictionService)(nil)

func newTestHandlers(service predictionservice.Service) *PredictionHandlers {
	return &PredictionHandlers{
		service: service,
		logger:  slog.Default(),
		metrics: predictionmetrics.NoOpMetrics{},
		tracer:  noop.NewTracerProvider().Tracer("test"),
	}
}
