package wagerservice

import (
	"context"
	"fmt"

	wagerdb "github.com/bet-buddys/betbuddys-backend/app/modules/wager/infrastructure/repositories"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

func (s *WagerService) GetGroupEvents(ctx context.Context, groupID sharedtypes.GroupID) ([]wagerdb.GroupEvent, error) {
	return withTelemetry(s, ctx, "GetGroupEvents", func(ctx context.Context) ([]wagerdb.GroupEvent, error) {
		groupEvents, err := s.repo.GetGroupEvents(ctx, s.db, groupID)
		if err != nil {
			return nil, fmt.Errorf("failed to load group events: %w", err)
		}
		return groupEvents, nil
	})
}

func (s *WagerService) GetGroupEventFights(ctx context.Context, groupEventID sharedtypes.GroupEventID) ([]wagerdb.Fight, error) {
	return withTelemetry(s, ctx, "GetGroupEventFights", func(ctx context.Context) ([]wagerdb.Fight, error) {
		fights, err := s.repo.GetGroupEventFights(ctx, s.db, groupEventID)
		if err != nil {
			return nil, fmt.Errorf("failed to load fights: %w", err)
		}
		return fights, nil
	})
}

func (s *WagerService) GetUserWagers(ctx context.Context, userID sharedtypes.UserID, groupEventID sharedtypes.GroupEventID) ([]wagerdb.Wager, error) {
	return withTelemetry(s, ctx, "GetUserWagers", func(ctx context.Context) ([]wagerdb.Wager, error) {
		wagers, err := s.repo.GetUserWagers(ctx, s.db, userID, groupEventID)
		if err != nil {
			return nil, fmt.Errorf("failed to load user wagers: %w", err)
		}
		return wagers, nil
	})
}

func (s *WagerService) GetGroupEventWagers(ctx context.Context, groupEventID sharedtypes.GroupEventID) ([]wagerdb.Wager, error) {
	return withTelemetry(s, ctx, "GetGroupEventWagers", func(ctx context.Context) ([]wagerdb.Wager, error) {
		wagers, err := s.repo.GetGroupEventWagers(ctx, s.db, groupEventID)
		if err != nil {
			return nil, fmt.Errorf("failed to load group event wagers: %w", err)
		}
		return wagers, nil
	})
}
