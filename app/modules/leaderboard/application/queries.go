package leaderboardservice

import (
	"context"
	"fmt"

	leaderboarddomain "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/domain"
	leaderboarddb "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/infrastructure/repositories"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
)

func (s *LeaderboardService) GetGroupLeaderboard(ctx context.Context, groupID sharedtypes.GroupID) ([]leaderboarddb.LeaderboardEntry, error) {
	return withTelemetry(s, ctx, "GetGroupLeaderboard", func(ctx context.Context) ([]leaderboarddb.LeaderboardEntry, error) {
		entries, err := s.repo.GetGroupLeaderboard(ctx, s.db, groupID)
		if err != nil {
			return nil, fmt.Errorf("failed to load group leaderboard: %w", err)
		}
		return entries, nil
	})
}

func (s *LeaderboardService) GetEventLeaderboard(ctx context.Context, eventID sharedtypes.EventID) ([]leaderboarddb.LeaderboardEntry, error) {
	return withTelemetry(s, ctx, "GetEventLeaderboard", func(ctx context.Context) ([]leaderboarddb.LeaderboardEntry, error) {
		entries, err := s.repo.GetEventLeaderboard(ctx, s.db, eventID)
		if err != nil {
			return nil, fmt.Errorf("failed to load event leaderboard: %w", err)
		}
		return entries, nil
	})
}

func (s *LeaderboardService) GetUserEntry(ctx context.Context, userID sharedtypes.UserID, scope leaderboarddomain.Scope) (*leaderboarddb.LeaderboardEntry, error) {
	return withTelemetry(s, ctx, "GetUserEntry", func(ctx context.Context) (*leaderboarddb.LeaderboardEntry, error) {
		entry, err := s.repo.GetUserEntry(ctx, s.db, userID, scope)
		if err != nil {
			return nil, err
		}
		return entry, nil
	})
}

// AddGroupMember records a membership fact from the group layer. Memberships
// are consumed read-only; this module never decides who belongs to a group.
func (s *LeaderboardService) AddGroupMember(ctx context.Context, groupID sharedtypes.GroupID, userID sharedtypes.UserID, userName string) error {
	_, err := withTelemetry(s, ctx, "AddGroupMember", func(ctx context.Context) (struct{}, error) {
		if groupID == "" || userID == "" {
			return struct{}{}, fmt.Errorf("add group member: group id and user id are required")
		}

		member := &leaderboarddb.GroupMember{
			GroupID:  groupID,
			UserID:   userID,
			UserName: userName,
		}
		if err := s.repo.UpsertGroupMember(ctx, s.db, member); err != nil {
			return struct{}{}, fmt.Errorf("failed to save group member: %w", err)
		}

		s.logger.InfoContext(ctx, "Group member recorded",
			attr.ExtractCorrelationID(ctx),
			attr.String("group_id", string(groupID)),
			attr.String("user_id", string(userID)),
		)
		return struct{}{}, nil
	})
	return err
}
