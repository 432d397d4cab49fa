package leaderboardhandlers

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	"github.com/bet-buddys/betbuddys-backend/internal/eventutil"
)

// HandleGroupMemberAdded records a membership fact in the read model so the
// aggregator can resolve display names.
func (h *LeaderboardHandlers) HandleGroupMemberAdded(msg *message.Message) ([]*message.Message, error) {
	return h.wrapHandler("HandleGroupMemberAdded", func(ctx context.Context, msg *message.Message) ([]*message.Message, error) {
		_, payload, err := eventutil.UnmarshalPayload[sharedevents.GroupMemberAddedPayloadV1](msg, h.logger)
		if err != nil {
			return nil, err
		}

		if err := h.service.AddGroupMember(ctx, payload.GroupID, payload.UserID, payload.UserName); err != nil {
			return nil, fmt.Errorf("record group member: %w", err)
		}
		return nil, nil
	})(msg)
}
