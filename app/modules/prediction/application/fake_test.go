package predictionservice

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	predictiondb "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/infrastructure/repositories"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/eventbus"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/predictionmetrics"
)

// ------------------------
// Fake Repository
// ------------------------

// FakeRepository is a programmable stub for the predictiondb.Repository
// interface. Inject behavior per method and inspect calls via Trace.
type FakeRepository struct {
	trace []string

	UpsertPredictionFunc        func(ctx context.Context, db bun.IDB, prediction *predictiondb.Prediction) (*predictiondb.Prediction, error)
	GetPredictionFunc           func(ctx context.Context, db bun.IDB, predictionID sharedtypes.PredictionID) (*predictiondb.Prediction, error)
	GetMatchPredictionsFunc     func(ctx context.Context, db bun.IDB, matchID sharedtypes.MatchID) ([]predictiondb.Prediction, error)
	GetUserEventPredictionsFunc func(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, eventID sharedtypes.EventID) ([]predictiondb.Prediction, error)
	UpdateJudgmentFunc          func(ctx context.Context, db bun.IDB, prediction *predictiondb.Prediction) error
	DeletePredictionFunc        func(ctx context.Context, db bun.IDB, predictionID sharedtypes.PredictionID) error
	GetMatchScopeFunc           func(ctx context.Context, db bun.IDB, matchID sharedtypes.MatchID) (*predictiondb.MatchScope, error)
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{trace: []string{}}
}

func (f *FakeRepository) record(step string) {
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of repository methods called.
func (f *FakeRepository) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeRepository) UpsertPrediction(ctx context.Context, db bun.IDB, prediction *predictiondb.Prediction) (*predictiondb.Prediction, error) {
	f.record("UpsertPrediction")
	if f.UpsertPredictionFunc != nil {
		return f.UpsertPredictionFunc(ctx, db, prediction)
	}
	return prediction, nil
}

func (f *FakeRepository) GetPrediction(ctx context.Context, db bun.IDB, predictionID sharedtypes.PredictionID) (*predictiondb.Prediction, error) {
	f.record("GetPrediction")
	if f.GetPredictionFunc != nil {
		return f.GetPredictionFunc(ctx, db, predictionID)
	}
	return nil, predictiondb.ErrPredictionNotFound
}

func (f *FakeRepository) GetMatchPredictions(ctx context.Context, db bun.IDB, matchID sharedtypes.MatchID) ([]predictiondb.Prediction, error) {
	f.record("GetMatchPredictions")
	if f.GetMatchPredictionsFunc != nil {
		return f.GetMatchPredictionsFunc(ctx, db, matchID)
	}
	return nil, nil
}

func (f *FakeRepository) GetUserEventPredictions(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, eventID sharedtypes.EventID) ([]predictiondb.Prediction, error) {
	f.record("GetUserEventPredictions")
	if f.GetUserEventPredictionsFunc != nil {
		return f.GetUserEventPredictionsFunc(ctx, db, userID, eventID)
	}
	return nil, nil
}

func (f *FakeRepository) UpdateJudgment(ctx context.Context, db bun.IDB, prediction *predictiondb.Prediction) error {
	f.record("UpdateJudgment")
	if f.UpdateJudgmentFunc != nil {
		return f.UpdateJudgmentFunc(ctx, db, prediction)
	}
	return nil
}

func (f *FakeRepository) DeletePrediction(ctx context.Context, db bun.IDB, predictionID sharedtypes.PredictionID) error {
	f.record("DeletePrediction")
	if f.DeletePredictionFunc != nil {
		return f.DeletePredictionFunc(ctx, db, predictionID)
	}
	return nil
}

func (f *FakeRepository) GetMatchScope(ctx context.Context, db bun.IDB, matchID sharedtypes.MatchID) (*predictiondb.MatchScope, error) {
	f.record("GetMatchScope")
	if f.GetMatchScopeFunc != nil {
		return f.GetMatchScopeFunc(ctx, db, matchID)
	}
	return nil, predictiondb.ErrMatchNotFound
}

var _ predictiondb.Repository = (*FakeRepository)(nil)

// ------------------------
// Fake DB
// ------------------------

// fakeDB satisfies bundb.DB for tests. RunInTx invokes the closure with a zero
// transaction; the fake repository never touches it.
type fakeDB struct {
	bun.IDB
}

func (f *fakeDB) RunInTx(ctx context.Context, _ *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error {
	return fn(ctx, bun.Tx{})
}

// ------------------------
// Fake EventBus
// ------------------------

// FakeEventBus captures published messages per topic.
type FakeEventBus struct {
	Published map[string][]*message.Message

	PublishFunc func(ctx context.Context, topic string, msg *message.Message) error
}

func NewFakeEventBus() *FakeEventBus {
	return &FakeEventBus{Published: make(map[string][]*message.Message)}
}

func (f *FakeEventBus) Publish(ctx context.Context, topic string, msg *message.Message) error {
	if f.PublishFunc != nil {
		return f.PublishFunc(ctx, topic, msg)
	}
	f.Published[topic] = append(f.Published[topic], msg)
	return nil
}

func (f *FakeEventBus) Subscribe(_ context.Context, _ string) (<-chan *message.Message, error) {
	return nil, nil
}

func (f *FakeEventBus) EnsureStream(_ context.Context, _ string, _ ...string) error {
	return nil
}

func (f *FakeEventBus) Close() error { return nil }

var _ eventbus.EventBus = (*FakeEventBus)(nil)

// newTestService builds a PredictionService on fakes with telemetry disabled.
func newTestService(repo *FakeRepository, bus *FakeEventBus) *PredictionService {
	return NewPredictionService(
		repo,
		bus,
		slog.Default(),
		predictionmetrics.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
		&fakeDB{},
	)
}
