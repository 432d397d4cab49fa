package predictionhandlers

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	"github.com/bet-buddys/betbuddys-backend/internal/eventutil"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
)

// HandleMatchResultFinalized runs the scoring pass for a finalized match and
// emits either a batch-scored or a scoring-failed message. Business failures
// are published and acked; only infrastructure errors are returned for retry.
func (h *PredictionHandlers) HandleMatchResultFinalized(msg *message.Message) ([]*message.Message, error) {
	return h.wrapHandler("HandleMatchResultFinalized", func(ctx context.Context, msg *message.Message) ([]*message.Message, error) {
		correlationID, payload, err := eventutil.UnmarshalPayload[sharedevents.MatchResultFinalizedPayloadV1](msg, h.logger)
		if err != nil {
			return nil, err
		}

		result, err := h.service.ScoreMatchPredictions(ctx, payload.MatchID, payload.WinnerID, payload.Method)
		if err != nil {
			return nil, fmt.Errorf("scoring pass failed for match %s: %w", payload.MatchID, err)
		}

		if result.IsFailure() {
			h.logger.WarnContext(ctx, "Scoring pass rejected match result",
				attr.String("correlation_id", correlationID),
				attr.String("match_id", string(payload.MatchID)),
				attr.String("reason", result.Failure.Reason),
			)
			failureMsg, err := eventutil.CreateResultMessage(msg, result.Failure, sharedevents.PredictionScoringFailedV1)
			if err != nil {
				return nil, err
			}
			return []*message.Message{failureMsg}, nil
		}

		scoredMsg, err := eventutil.CreateResultMessage(msg, result.Success, sharedevents.PredictionBatchScoredV1)
		if err != nil {
			return nil, err
		}
		return []*message.Message{scoredMsg}, nil
	})(msg)
}
