package eventservice

import (
	"context"
	"fmt"
	"strings"

	eventdb "github.com/bet-buddys/betbuddys-backend/app/modules/event/infrastructure/repositories"
	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/eventutil"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
)

// FinalizeMatchResult records the authoritative result for a match and
// publishes it for the scoring flow. The write is a plain overwrite so
// replaying the same fact, or correcting it, converges on the last call.
func (s *EventService) FinalizeMatchResult(ctx context.Context, matchID sharedtypes.MatchID, winnerID, method string) error {
	_, err := withTelemetry(s, ctx, "FinalizeMatchResult", func(ctx context.Context) (struct{}, error) {
		var zero struct{}

		if strings.TrimSpace(winnerID) == "" || strings.TrimSpace(method) == "" {
			return zero, ErrInvalidResult
		}

		match, err := s.repo.GetMatch(ctx, s.db, matchID)
		if err != nil {
			return zero, err
		}

		event, err := s.repo.GetEvent(ctx, s.db, match.EventID)
		if err != nil {
			return zero, err
		}

		if err := s.repo.SetMatchResult(ctx, s.db, matchID, winnerID, method); err != nil {
			return zero, err
		}
		s.metrics.RecordResultFinalized(ctx)

		payload := sharedevents.MatchResultFinalizedPayloadV1{
			MatchID:  matchID,
			EventID:  match.EventID,
			GroupID:  event.GroupID,
			WinnerID: winnerID,
			Method:   method,
		}

		msg, err := eventutil.NewMessage(payload, sharedevents.MatchResultFinalizedV1)
		if err != nil {
			return zero, fmt.Errorf("failed to build result message: %w", err)
		}
		if err := s.eventBus.Publish(ctx, sharedevents.MatchResultFinalizedV1, msg); err != nil {
			return zero, fmt.Errorf("failed to publish match result: %w", err)
		}

		s.logger.InfoContext(ctx, "Match result finalized",
			attr.ExtractCorrelationID(ctx),
			attr.String("match_id", matchID.String()),
			attr.String("winner_id", winnerID),
			attr.String("method", method),
		)

		return zero, nil
	})
	return err
}

// GetEvent returns a single event.
func (s *EventService) GetEvent(ctx context.Context, eventID sharedtypes.EventID) (*eventdb.Event, error) {
	return s.repo.GetEvent(ctx, s.db, eventID)
}

// GetEventMatches returns the matches of an event in card order.
func (s *EventService) GetEventMatches(ctx context.Context, eventID sharedtypes.EventID) ([]eventdb.Match, error) {
	return s.repo.GetEventMatches(ctx, s.db, eventID)
}

// GetGroupEvents returns a group's events, newest first.
func (s *EventService) GetGroupEvents(ctx context.Context, groupID sharedtypes.GroupID) ([]eventdb.Event, error) {
	return s.repo.GetGroupEvents(ctx, s.db, groupID)
}
