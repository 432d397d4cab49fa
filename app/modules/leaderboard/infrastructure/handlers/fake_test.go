package leaderboardhandlers

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/trace/noop"

	leaderboardservice "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/application"
	leaderboarddomain "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/domain"
	leaderboarddb "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/infrastructure/repositories"
	leaderboardqueue "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/infrastructure/queue"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/metrics/leaderboardmetrics"
)

// FakeLeaderboardService is a programmable stub for the leaderboardservice.Service
// interface. Inject behavior per method and inspect call order via Trace.
type FakeLeaderboardService struct {
	trace []string

	RecalculateFunc          func(ctx context.Context, scope leaderboarddomain.Scope) (int, error)
	GetGroupLeaderboardFunc  func(ctx context.Context, groupID sharedtypes.GroupID) ([]leaderboarddb.LeaderboardEntry, error)
	GetEventLeaderboardFunc  func(ctx context.Context, eventID sharedtypes.EventID) ([]leaderboarddb.LeaderboardEntry, error)
	GetUserEntryFunc         func(ctx context.Context, userID sharedtypes.UserID, scope leaderboarddomain.Scope) (*leaderboarddb.LeaderboardEntry, error)
	AddGroupMemberFunc       func(ctx context.Context, groupID sharedtypes.GroupID, userID sharedtypes.UserID, userName string) error
	ExportGroupStandingsFunc func(ctx context.Context, groupID sharedtypes.GroupID) ([]byte, error)
	RenderStandingsChartFunc func(ctx context.Context, groupID sharedtypes.GroupID) ([]byte, error)
}

func NewFakeLeaderboardService() *FakeLeaderboardService {
	return &FakeLeaderboardService{trace: []string{}}
}

func (f *FakeLeaderboardService) record(step string) {
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of service methods called.
func (f *FakeLeaderboardService) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

func (f *FakeLeaderboardService) Recalculate(ctx context.Context, scope leaderboarddomain.Scope) (int, error) {
	f.record("Recalculate")
	if f.RecalculateFunc != nil {
		return f.RecalculateFunc(ctx, scope)
	}
	return 0, nil
}

func (f *FakeLeaderboardService) GetGroupLeaderboard(ctx context.Context, groupID sharedtypes.GroupID) ([]leaderboarddb.LeaderboardEntry, error) {
	f.record("GetGroupLeaderboard")
	if f.GetGroupLeaderboardFunc != nil {
		return f.GetGroupLeaderboardFunc(ctx, groupID)
	}
	return nil, nil
}

func (f *FakeLeaderboardService) GetEventLeaderboard(ctx context.Context, eventID sharedtypes.EventID) ([]leaderboarddb.LeaderboardEntry, error) {
	f.record("GetEventLeaderboard")
	if f.GetEventLeaderboardFunc != nil {
		return f.GetEventLeaderboardFunc(ctx, eventID)
	}
	return nil, nil
}

func (f *FakeLeaderboardService) GetUserEntry(ctx context.Context, userID sharedtypes.UserID, scope leaderboarddomain.Scope) (*leaderboarddb.LeaderboardEntry, error) {
	f.record("GetUserEntry")
	if f.GetUserEntryFunc != nil {
		return f.GetUserEntryFunc(ctx, userID, scope)
	}
	return nil, nil
}

func (f *FakeLeaderboardService) AddGroupMember(ctx context.Context, groupID sharedtypes.GroupID, userID sharedtypes.UserID, userName string) error {
	f.record("AddGroupMember")
	if f.AddGroupMemberFunc != nil {
		return f.AddGroupMemberFunc(ctx, groupID, userID, userName)
	}
	return nil
}

func (f *FakeLeaderboardService) ExportGroupStandings(ctx context.Context, groupID sharedtypes.GroupID) ([]byte, error) {
	f.record("ExportGroupStandings")
	if f.ExportGroupStandingsFunc != nil {
		return f.ExportGroupStandingsFunc(ctx, groupID)
	}
	return nil, nil
}

func (f *FakeLeaderboardService) RenderStandingsChart(ctx context.Context, groupID sharedtypes.GroupID) ([]byte, error) {
	f.record("RenderStandingsChart")
	if f.RenderStandingsChartFunc != nil {
		return f.RenderStandingsChartFunc(ctx, groupID)
	}
	return nil, nil
}

var _ leaderboardservice.Service = (*FakeLeaderboardService)(nil)

// FakeQueueService records enqueued scopes instead of touching River.
type FakeQueueService struct {
	Enqueued []leaderboarddomain.Scope

	EnqueueRecalculateFunc func(ctx context.Context, scope leaderboarddomain.Scope) error
}

func NewFakeQueueService() *FakeQueueService {
	return &FakeQueueService{}
}

func (f *FakeQueueService) EnqueueRecalculate(ctx context.Context, scope leaderboarddomain.Scope) error {
	f.Enqueued = append(f.Enqueued, scope)
	if f.EnqueueRecalculateFunc != nil {
		return f.EnqueueRecalculateFunc(ctx, scope)
	}
	return nil
}

func (f *FakeQueueService) Start(ctx context.Context) error { return nil }
func (f *FakeQueueService) Stop(ctx context.Context) error  { return nil }

var _ leaderboardqueue.QueueService = (*FakeQueueService)(nil)

func newTestHandlers(service leaderboardservice.Service, queue leaderboardqueue.QueueService) *LeaderboardHandlers {
	return &LeaderboardHandlers{
		service: service,
		queue:   queue,
		logger:  slog.Default(),
		metrics: leaderboardmetrics.NoOpMetrics{},
		tracer:  noop.NewTracerProvider().Tracer("test"),
	}
}
