package leaderboardhandlers

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	leaderboarddomain "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/domain"
	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	"github.com/bet-buddys/betbuddys-backend/internal/eventutil"
)

// HandlePredictionRetracted re-converges the standings a deleted prediction
// may have already counted toward: the event scope inline, the group-wide
// scope in the background.
func (h *LeaderboardHandlers) HandlePredictionRetracted(msg *message.Message) ([]*message.Message, error) {
	return h.wrapHandler("HandlePredictionRetracted", func(ctx context.Context, msg *message.Message) ([]*message.Message, error) {
		_, payload, err := eventutil.UnmarshalPayload[sharedevents.PredictionRetractedPayloadV1](msg, h.logger)
		if err != nil {
			return nil, err
		}

		eventScope := leaderboarddomain.EventScope(payload.GroupID, payload.EventID)
		if _, err := h.service.Recalculate(ctx, eventScope); err != nil {
			return nil, fmt.Errorf("inline recalculation of %s: %w", eventScope, err)
		}

		groupScope := leaderboarddomain.GroupScope(payload.GroupID)
		if err := h.queue.EnqueueRecalculate(ctx, groupScope); err != nil {
			return nil, fmt.Errorf("enqueue recalculation of %s: %w", groupScope, err)
		}

		return nil, nil
	})(msg)
}
