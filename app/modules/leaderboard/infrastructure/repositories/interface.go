package leaderboarddb

import (
	"context"

	"github.com/uptrace/bun"

	leaderboarddomain "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/domain"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// Repository is the data access contract for the leaderboard read model.
type Repository interface {
	// AcquireScopeLock serializes recomputes per scope with a transaction-bound
	// advisory lock. Must be called inside a transaction.
	AcquireScopeLock(ctx context.Context, db bun.IDB, scope leaderboarddomain.Scope) error

	// AggregateScores computes each participating user's points, correct count,
	// and prediction count for the scope from judged predictions.
	AggregateScores(ctx context.Context, db bun.IDB, scope leaderboarddomain.Scope) ([]UserScore, error)

	// ReplaceEntries atomically swaps the scope's standings for the given set.
	// Users absent from scores lose their row, which is how retractions converge.
	ReplaceEntries(ctx context.Context, db bun.IDB, scope leaderboarddomain.Scope, scores []UserScore) error

	GetGroupLeaderboard(ctx context.Context, db bun.IDB, groupID sharedtypes.GroupID) ([]LeaderboardEntry, error)
	GetEventLeaderboard(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) ([]LeaderboardEntry, error)
	GetUserEntry(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, scope leaderboarddomain.Scope) (*LeaderboardEntry, error)

	UpsertGroupMember(ctx context.Context, db bun.IDB, member *GroupMember) error
	GetGroupMembers(ctx context.Context, db bun.IDB, groupID sharedtypes.GroupID) ([]GroupMember, error)
}
