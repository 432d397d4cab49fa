package wagerservice

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	wagerdb "github.com/bet-buddys/betbuddys-backend/app/modules/wager/infrastructure/repositories"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/eventbus"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/wagermetrics"
)

// FakeRepository is a programmable stub for the wagerdb.Repository interface.
type FakeRepository struct {
	trace []string

	CreateGroupEventFunc    func(ctx context.Context, db bun.IDB, groupEvent *wagerdb.GroupEvent) error
	GetGroupEventFunc       func(ctx context.Context, db bun.IDB, groupEventID sharedtypes.GroupEventID) (*wagerdb.GroupEvent, error)
	GetGroupEventsFunc      func(ctx context.Context, db bun.IDB, groupID sharedtypes.GroupID) ([]wagerdb.GroupEvent, error)
	CreateFightFunc         func(ctx context.Context, db bun.IDB, fight *wagerdb.Fight) error
	GetFightFunc            func(ctx context.Context, db bun.IDB, fightID sharedtypes.FightID) (*wagerdb.Fight, error)
	GetGroupEventFightsFunc func(ctx context.Context, db bun.IDB, groupEventID sharedtypes.GroupEventID) ([]wagerdb.Fight, error)
	SetFightResultFunc      func(ctx context.Context, db bun.IDB, fightID sharedtypes.FightID, winnerName, method string) error
	UpsertWagerFunc         func(ctx context.Context, db bun.IDB, wager *wagerdb.Wager) (*wagerdb.Wager, error)
	GetFightWagersFunc      func(ctx context.Context, db bun.IDB, fightID sharedtypes.FightID) ([]wagerdb.Wager, error)
	GetUserWagersFunc       func(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, groupEventID sharedtypes.GroupEventID) ([]wagerdb.Wager, error)
	GetGroupEventWagersFunc func(ctx context.Context, db bun.IDB, groupEventID sharedtypes.GroupEventID) ([]wagerdb.Wager, error)
	UpdateWagerJudgmentFunc func(ctx context.Context, db bun.IDB, wager *wagerdb.Wager) error
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

func (f *FakeRepository) CreateGroupEvent(ctx context.Context, db bun.IDB, groupEvent *wagerdb.GroupEvent) error {
	f.record("CreateGroupEvent")
	if f.CreateGroupEventFunc != nil {
		return f.CreateGroupEventFunc(ctx, db, groupEvent)
	}
	return nil
}

func (f *FakeRepository) GetGroupEvent(ctx context.Context, db bun.IDB, groupEventID sharedtypes.GroupEventID) (*wagerdb.GroupEvent, error) {
	f.record("GetGroupEvent")
	if f.GetGroupEventFunc != nil {
		return f.GetGroupEventFunc(ctx, db, groupEventID)
	}
	return nil, wagerdb.ErrGroupEventNotFound
}

func (f *FakeRepository) GetGroupEvents(ctx context.Context, db bun.IDB, groupID sharedtypes.GroupID) ([]wagerdb.GroupEvent, error) {
	f.record("GetGroupEvents")
	if f.GetGroupEventsFunc != nil {
		return f.GetGroupEventsFunc(ctx, db, groupID)
	}
	return nil, nil
}

func (f *FakeRepository) CreateFight(ctx context.Context, db bun.IDB, fight *wagerdb.Fight) error {
	f.record("CreateFight")
	if f.CreateFightFunc != nil {
		return f.CreateFightFunc(ctx, db, fight)
	}
	return nil
}

func (f *FakeRepository) GetFight(ctx context.Context, db bun.IDB, fightID sharedtypes.FightID) (*wagerdb.Fight, error) {
	f.record("GetFight")
	if f.GetFightFunc != nil {
		return f.GetFightFunc(ctx, db, fightID)
	}
	return nil, wagerdb.ErrFightNotFound
}

func (f *FakeRepository) GetGroupEventFights(ctx context.Context, db bun.IDB, groupEventID sharedtypes.GroupEventID) ([]wagerdb.Fight, error) {
	f.record("GetGroupEventFights")
	if f.GetGroupEventFightsFunc != nil {
		return f.GetGroupEventFightsFunc(ctx, db, groupEventID)
	}
	return nil, nil
}

func (f *FakeRepository) SetFightResult(ctx context.Context, db bun.IDB, fightID sharedtypes.FightID, winnerName, method string) error {
	f.record("SetFightResult")
	if f.SetFightResultFunc != nil {
		return f.SetFightResultFunc(ctx, db, fightID, winnerName, method)
	}
	return nil
}

func (f *FakeRepository) UpsertWager(ctx context.Context, db bun.IDB, wager *wagerdb.Wager) (*wagerdb.Wager, error) {
	f.record("UpsertWager")
	if f.UpsertWagerFunc != nil {
		return f.UpsertWagerFunc(ctx, db, wager)
	}
	return wager, nil
}

func (f *FakeRepository) GetFightWagers(ctx context.Context, db bun.IDB, fightID sharedtypes.FightID) ([]wagerdb.Wager, error) {
	f.record("GetFightWagers")
	if f.GetFightWagersFunc != nil {
		return f.GetFightWagersFunc(ctx, db, fightID)
	}
	return nil, nil
}

func (f *FakeRepository) GetUserWagers(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, groupEventID sharedtypes.GroupEventID) ([]wagerdb.Wager, error) {
	f.record("GetUserWagers")
	if f.GetUserWagersFunc != nil {
		return f.GetUserWagersFunc(ctx, db, userID, groupEventID)
	}
	return nil, nil
}

func (f *FakeRepository) GetGroupEventWagers(ctx context.Context, db bun.IDB, groupEventID sharedtypes.GroupEventID) ([]wagerdb.Wager, error) {
	f.record("GetGroupEventWagers")
	if f.GetGroupEventWagersFunc != nil {
		return f.GetGroupEventWagersFunc(ctx, db, groupEventID)
	}
	return nil, nil
}

func (f *FakeRepository) UpdateWagerJudgment(ctx context.Context, db bun.IDB, wager *wagerdb.Wager) error {
	f.record("UpdateWagerJudgment")
	if f.UpdateWagerJudgmentFunc != nil {
		return f.UpdateWagerJudgmentFunc(ctx, db, wager)
	}
	return nil
}

var _ wagerdb.Repository = (*FakeRepository)(nil)

// fakeDB satisfies bundb.DB for tests.
type fakeDB struct {
	bun.IDB
}

func (f *fakeDB) RunInTx(ctx context.Context, _ *sql.TxOptions, fn func(ctx context.Context, tx bun.Tx) error) error {
	return fn(ctx, bun.Tx{})
}

// FakeEventBus captures published messages per topic.
type FakeEventBus struct {
	Published map[string][]*message.Message
}

func NewFakeEventBus() *FakeEventBus {
	return &FakeEventBus{Published: make(map[string][]*message.Message)}
}

func (f *FakeEventBus) Publish(_ context.Context, topic string, msg *message.Message) error {
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

func newTestService(repo *FakeRepository, bus *FakeEventBus) *WagerService {
	return NewWagerService(
		repo,
		bus,
		slog.Default(),
		wagermetrics.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
		&fakeDB{},
	)
}
