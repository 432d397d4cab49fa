package eventservice

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	eventdb "github.com/bet-buddys/betbuddys-backend/app/modules/event/infrastructure/repositories"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/eventbus"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/eventmetrics"
)

// ------------------------
// Fake Repository
// ------------------------

// FakeRepository is a programmable stub for the eventdb.Repository interface.
// Inject behavior per method and inspect calls via Trace.
type FakeRepository struct {
	trace []string

	CreateEventFunc     func(ctx context.Context, db bun.IDB, event *eventdb.Event) error
	GetEventFunc        func(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (*eventdb.Event, error)
	GetGroupEventsFunc  func(ctx context.Context, db bun.IDB, groupID sharedtypes.GroupID) ([]eventdb.Event, error)
	CreateMatchFunc     func(ctx context.Context, db bun.IDB, match *eventdb.Match) error
	GetMatchFunc        func(ctx context.Context, db bun.IDB, matchID sharedtypes.MatchID) (*eventdb.Match, error)
	GetEventMatchesFunc func(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) ([]eventdb.Match, error)
	SetMatchResultFunc  func(ctx context.Context, db bun.IDB, matchID sharedtypes.MatchID, winnerID, method string) error
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

func (f *FakeRepository) CreateEvent(ctx context.Context, db bun.IDB, event *eventdb.Event) error {
	f.record("CreateEvent")
	if f.CreateEventFunc != nil {
		return f.CreateEventFunc(ctx, db, event)
	}
	return nil
}

func (f *FakeRepository) GetEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (*eventdb.Event, error) {
	f.record("GetEvent")
	if f.GetEventFunc != nil {
		return f.GetEventFunc(ctx, db, eventID)
	}
	return nil, eventdb.ErrEventNotFound
}

func (f *FakeRepository) GetGroupEvents(ctx context.Context, db bun.IDB, groupID sharedtypes.GroupID) ([]eventdb.Event, error) {
	f.record("GetGroupEvents")
	if f.GetGroupEventsFunc != nil {
		return f.GetGroupEventsFunc(ctx, db, groupID)
	}
	return nil, nil
}

func (f *FakeRepository) CreateMatch(ctx context.Context, db bun.IDB, match *eventdb.Match) error {
	f.record("CreateMatch")
	if f.CreateMatchFunc != nil {
		return f.CreateMatchFunc(ctx, db, match)
	}
	return nil
}

func (f *FakeRepository) GetMatch(ctx context.Context, db bun.IDB, matchID sharedtypes.MatchID) (*eventdb.Match, error) {
	f.record("GetMatch")
	if f.GetMatchFunc != nil {
		return f.GetMatchFunc(ctx, db, matchID)
	}
	return nil, eventdb.ErrMatchNotFound
}

func (f *FakeRepository) GetEventMatches(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) ([]eventdb.Match, error) {
	f.record("GetEventMatches")
	if f.GetEventMatchesFunc != nil {
		return f.GetEventMatchesFunc(ctx, db, eventID)
	}
	return nil, nil
}

func (f *FakeRepository) SetMatchResult(ctx context.Context, db bun.IDB, matchID sharedtypes.MatchID, winnerID, method string) error {
	f.record("SetMatchResult")
	if f.SetMatchResultFunc != nil {
		return f.SetMatchResultFunc(ctx, db, matchID, winnerID, method)
	}
	return nil
}

var _ eventdb.Repository = (*FakeRepository)(nil)

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

// newTestService builds an EventService on fakes with telemetry disabled.
func newTestService(repo *FakeRepository, bus *FakeEventBus) *EventService {
	return NewEventService(
		repo,
		bus,
		slog.Default(),
		eventmetrics.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
		&fakeDB{},
	)
}
