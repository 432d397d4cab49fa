package leaderboardservice

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace/noop"

	leaderboarddomain "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/domain"
	leaderboarddb "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/infrastructure/repositories"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/eventbus"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/leaderboardmetrics"
)

// FakeRepository is a programmable stub for the leaderboarddb.Repository interface.
type FakeRepository struct {
	trace []string

	AcquireScopeLockFunc    func(ctx context.Context, db bun.IDB, scope leaderboarddomain.Scope) error
	AggregateScoresFunc     func(ctx context.Context, db bun.IDB, scope leaderboarddomain.Scope) ([]leaderboarddb.UserScore, error)
	ReplaceEntriesFunc      func(ctx context.Context, db bun.IDB, scope leaderboarddomain.Scope, scores []leaderboarddb.UserScore) error
	GetGroupLeaderboardFunc func(ctx context.Context, db bun.IDB, groupID sharedtypes.GroupID) ([]leaderboarddb.LeaderboardEntry, error)
	GetEventLeaderboardFunc func(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) ([]leaderboarddb.LeaderboardEntry, error)
	GetUserEntryFunc        func(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, scope leaderboarddomain.Scope) (*leaderboarddb.LeaderboardEntry, error)
	UpsertGroupMemberFunc   func(ctx context.Context, db bun.IDB, member *leaderboarddb.GroupMember) error
	GetGroupMembersFunc     func(ctx context.Context, db bun.IDB, groupID sharedtypes.GroupID) ([]leaderboarddb.GroupMember, error)
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

func (f *FakeRepository) AcquireScopeLock(ctx context.Context, db bun.IDB, scope leaderboarddomain.Scope) error {
	f.record("AcquireScopeLock")
	if f.AcquireScopeLockFunc != nil {
		return f.AcquireScopeLockFunc(ctx, db, scope)
	}
	return nil
}

func (f *FakeRepository) AggregateScores(ctx context.Context, db bun.IDB, scope leaderboarddomain.Scope) ([]leaderboarddb.UserScore, error) {
	f.record("AggregateScores")
	if f.AggregateScoresFunc != nil {
		return f.AggregateScoresFunc(ctx, db, scope)
	}
	return nil, nil
}

func (f *FakeRepository) ReplaceEntries(ctx context.Context, db bun.IDB, scope leaderboarddomain.Scope, scores []leaderboarddb.UserScore) error {
	f.record("ReplaceEntries")
	if f.ReplaceEntriesFunc != nil {
		return f.ReplaceEntriesFunc(ctx, db, scope, scores)
	}
	return nil
}

func (f *FakeRepository) GetGroupLeaderboard(ctx context.Context, db bun.IDB, groupID sharedtypes.GroupID) ([]leaderboarddb.LeaderboardEntry, error) {
	f.record("GetGroupLeaderboard")
	if f.GetGroupLeaderboardFunc != nil {
		return f.GetGroupLeaderboardFunc(ctx, db, groupID)
	}
	return nil, nil
}

func (f *FakeRepository) GetEventLeaderboard(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) ([]leaderboarddb.LeaderboardEntry, error) {
	f.record("GetEventLeaderboard")
	if f.GetEventLeaderboardFunc != nil {
		return f.GetEventLeaderboardFunc(ctx, db, eventID)
	}
	return nil, nil
}

func (f *FakeRepository) GetUserEntry(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, scope leaderboarddomain.Scope) (*leaderboarddb.LeaderboardEntry, error) {
	f.record("GetUserEntry")
	if f.GetUserEntryFunc != nil {
		return f.GetUserEntryFunc(ctx, db, userID, scope)
	}
	return nil, leaderboarddb.ErrEntryNotFound
}

func (f *FakeRepository) UpsertGroupMember(ctx context.Context, db bun.IDB, member *leaderboarddb.GroupMember) error {
	f.record("UpsertGroupMember")
	if f.UpsertGroupMemberFunc != nil {
		return f.UpsertGroupMemberFunc(ctx, db, member)
	}
	return nil
}

func (f *FakeRepository) GetGroupMembers(ctx context.Context, db bun.IDB, groupID sharedtypes.GroupID) ([]leaderboarddb.GroupMember, error) {
	f.record("GetGroupMembers")
	if f.GetGroupMembersFunc != nil {
		return f.GetGroupMembersFunc(ctx, db, groupID)
	}
	return nil, nil
}

var _ leaderboarddb.Repository = (*FakeRepository)(nil)

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

func newTestService(repo *FakeRepository, bus *FakeEventBus) *LeaderboardService {
	return NewLeaderboardService(
		repo,
		bus,
		slog.Default(),
		leaderboardmetrics.NoOpMetrics{},
		noop.NewTracerProvider().Tracer("test"),
		&fakeDB{},
	)
}
