package wagerservice

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	wagerdb "github.com/bet-buddys/betbuddys-backend/app/modules/wager/infrastructure/repositories"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
)

// CreateGroupEvent creates a betting card and its fights in one transaction.
func (s *WagerService) CreateGroupEvent(ctx context.Context, groupID sharedtypes.GroupID, name string, date time.Time, fights []FightInput) (*wagerdb.GroupEvent, error) {
	return withTelemetry(s, ctx, "CreateGroupEvent", func(ctx context.Context) (*wagerdb.GroupEvent, error) {
		if groupID == "" || name == "" {
			return nil, fmt.Errorf("%w: group id and name are required", ErrInvalidEvent)
		}
		for _, fight := range fights {
			if fight.Fighter1Name == "" || fight.Fighter2Name == "" {
				return nil, fmt.Errorf("%w: every fight needs two fighters", ErrInvalidEvent)
			}
		}

		groupEvent := &wagerdb.GroupEvent{
			ID:      sharedtypes.GroupEventID(uuid.New().String()),
			GroupID: groupID,
			Name:    name,
			Date:    date,
		}

		err := s.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
			if err := s.repo.CreateGroupEvent(ctx, tx, groupEvent); err != nil {
				return err
			}
			for i, input := range fights {
				fight := &wagerdb.Fight{
					ID:           sharedtypes.FightID(uuid.New().String()),
					GroupEventID: groupEvent.ID,
					Fighter1Name: input.Fighter1Name,
					Fighter2Name: input.Fighter2Name,
					FightOrder:   i + 1,
					Status:       wagerdb.FightStatusScheduled,
				}
				if err := s.repo.CreateFight(ctx, tx, fight); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create group event: %w", err)
		}

		s.logger.InfoContext(ctx, "Group event created",
			attr.ExtractCorrelationID(ctx),
			attr.String("group_event_id", string(groupEvent.ID)),
			attr.String("group_id", string(groupID)),
			attr.Int("fights", len(fights)),
		)
		return groupEvent, nil
	})
}
