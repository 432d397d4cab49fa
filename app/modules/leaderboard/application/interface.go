package leaderboardservice

import (
	"context"

	leaderboarddomain "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/domain"
	leaderboarddb "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/infrastructure/repositories"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// Service is the leaderboard module's application contract.
type Service interface {
	// Recalculate rebuilds one scope's standings from judged predictions.
	// Full overwrite, serialized per scope, safe to retry blindly.
	Recalculate(ctx context.Context, scope leaderboarddomain.Scope) (int, error)

	GetGroupLeaderboard(ctx context.Context, groupID sharedtypes.GroupID) ([]leaderboarddb.LeaderboardEntry, error)
	GetEventLeaderboard(ctx context.Context, eventID sharedtypes.EventID) ([]leaderboarddb.LeaderboardEntry, error)
	GetUserEntry(ctx context.Context, userID sharedtypes.UserID, scope leaderboarddomain.Scope) (*leaderboarddb.LeaderboardEntry, error)

	AddGroupMember(ctx context.Context, groupID sharedtypes.GroupID, userID sharedtypes.UserID, userName string) error

	ExportGroupStandings(ctx context.Context, groupID sharedtypes.GroupID) ([]byte, error)
	RenderStandingsChart(ctx context.Context, groupID sharedtypes.GroupID) ([]byte, error)
}
