package eventservice

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	eventdb "github.com/bet-buddys/betbuddys-backend/app/modules/event/infrastructure/repositories"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
)

// CreateEvent creates an event together with its matches in one transaction.
func (s *EventService) CreateEvent(ctx context.Context, groupID sharedtypes.GroupID, title string, date time.Time, matches []MatchInput) (*eventdb.Event, error) {
	return withTelemetry(s, ctx, "CreateEvent", func(ctx context.Context) (*eventdb.Event, error) {
		if groupID == "" || strings.TrimSpace(title) == "" {
			return nil, ErrInvalidEvent
		}

		now := time.Now().UTC()
		event := &eventdb.Event{
			ID:        sharedtypes.EventID(uuid.New().String()),
			GroupID:   groupID,
			Title:     title,
			Date:      date,
			Status:    eventdb.EventStatusUpcoming,
			CreatedAt: now,
			UpdatedAt: now,
		}

		err := s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if err := s.repo.CreateEvent(ctx, tx, event); err != nil {
				return err
			}
			for _, in := range matches {
				match := &eventdb.Match{
					ID:           sharedtypes.MatchID(uuid.New().String()),
					EventID:      event.ID,
					Fighter1ID:   in.Fighter1ID,
					Fighter1Name: in.Fighter1Name,
					Fighter2ID:   in.Fighter2ID,
					Fighter2Name: in.Fighter2Name,
					Order:        in.Order,
					Status:       eventdb.MatchStatusUpcoming,
					CreatedAt:    now,
					UpdatedAt:    now,
				}
				if err := s.repo.CreateMatch(ctx, tx, match); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create event: %w", err)
		}

		s.logger.InfoContext(ctx, "Event created",
			attr.ExtractCorrelationID(ctx),
			attr.String("event_id", event.ID.String()),
			attr.String("group_id", groupID.String()),
			attr.Int("matches", len(matches)),
		)

		return event, nil
	})
}
