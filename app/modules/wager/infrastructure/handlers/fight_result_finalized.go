package wagerhandlers

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	"github.com/bet-buddys/betbuddys-backend/internal/eventutil"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
)

// HandleFightResultFinalized runs the judging pass for a finalized fight and
// emits either a batch-judged or a judging-failed message.
func (h *WagerHandlers) HandleFightResultFinalized(msg *message.Message) ([]*message.Message, error) {
	return h.wrapHandler("HandleFightResultFinalized", func(ctx context.Context, msg *message.Message) ([]*message.Message, error) {
		correlationID, payload, err := eventutil.UnmarshalPayload[sharedevents.FightResultFinalizedPayloadV1](msg, h.logger)
		if err != nil {
			return nil, err
		}

		result, err := h.service.JudgeFightWagers(ctx, payload.FightID, payload.WinnerName, payload.Method)
		if err != nil {
			return nil, fmt.Errorf("judging pass failed for fight %s: %w", payload.FightID, err)
		}

		if result.IsFailure() {
			h.logger.WarnContext(ctx, "Judging pass rejected fight result",
				attr.String("correlation_id", correlationID),
				attr.String("fight_id", string(payload.FightID)),
				attr.String("reason", result.Failure.Reason),
			)
			failureMsg, err := eventutil.CreateResultMessage(msg, result.Failure, sharedevents.WagerJudgingFailedV1)
			if err != nil {
				return nil, err
			}
			return []*message.Message{failureMsg}, nil
		}

		judgedMsg, err := eventutil.CreateResultMessage(msg, result.Success, sharedevents.WagerBatchJudgedV1)
		if err != nil {
			return nil, err
		}
		return []*message.Message{judgedMsg}, nil
	})(msg)
}
