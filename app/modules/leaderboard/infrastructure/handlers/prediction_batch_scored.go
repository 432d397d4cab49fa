package leaderboardhandlers

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	leaderboarddomain "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/domain"
	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	"github.com/bet-buddys/betbuddys-backend/internal/eventutil"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
)

// HandlePredictionBatchScored recomputes every scope a scoring pass touched.
// Event scopes are small and recomputed inline; the group-wide scope spans
// every event, so it goes through the background queue. Errors are returned
// for retry; recomputes are idempotent, so replays are safe.
func (h *LeaderboardHandlers) HandlePredictionBatchScored(msg *message.Message) ([]*message.Message, error) {
	return h.wrapHandler("HandlePredictionBatchScored", func(ctx context.Context, msg *message.Message) ([]*message.Message, error) {
		_, payload, err := eventutil.UnmarshalPayload[sharedevents.PredictionBatchScoredPayloadV1](msg, h.logger)
		if err != nil {
			return nil, err
		}

		for _, ref := range payload.TouchedScopes {
			if ref.EventID != nil {
				scope := leaderboarddomain.EventScope(ref.GroupID, *ref.EventID)
				if _, err := h.service.Recalculate(ctx, scope); err != nil {
					return nil, fmt.Errorf("inline recalculation of %s: %w", scope, err)
				}
				continue
			}

			scope := leaderboarddomain.GroupScope(ref.GroupID)
			if err := h.queue.EnqueueRecalculate(ctx, scope); err != nil {
				return nil, fmt.Errorf("enqueue recalculation of %s: %w", scope, err)
			}
		}

		h.logger.InfoContext(ctx, "Touched scopes scheduled for recompute",
			attr.CorrelationIDFromMsg(msg),
			attr.String("match_id", string(payload.MatchID)),
			attr.Int("scopes", len(payload.TouchedScopes)),
		)
		return nil, nil
	})(msg)
}
