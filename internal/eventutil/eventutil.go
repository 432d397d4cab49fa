package eventutil

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
)

// UnmarshalPayload decodes a message payload into T and returns the message's
// correlation id alongside it.
func UnmarshalPayload[T any](msg *message.Message, logger *slog.Logger) (string, T, error) {
	correlationID := msg.Metadata.Get(middleware.CorrelationIDMetadataKey)

	var payload T
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		logger.Error("Failed to unmarshal message payload",
			slog.String("message_id", msg.UUID),
			slog.String("correlation_id", correlationID),
			slog.Any("error", err),
		)
		return correlationID, payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return correlationID, payload, nil
}

// NewMessage marshals payload into a fresh message destined for topic. The
// topic is carried in the "subject" metadata so the JetStream publisher can
// route it without re-inspecting the payload.
func NewMessage(payload any, topic string) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload for %s: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	msg.Metadata.Set("subject", topic)
	return msg, nil
}

// CreateResultMessage builds an outgoing message from a handled incoming one,
// propagating the correlation id so a flow stays traceable across modules.
func CreateResultMessage(original *message.Message, payload any, topic string) (*message.Message, error) {
	msg, err := NewMessage(payload, topic)
	if err != nil {
		return nil, err
	}

	if original != nil {
		if correlationID := original.Metadata.Get(middleware.CorrelationIDMetadataKey); correlationID != "" {
			middleware.SetCorrelationID(correlationID, msg)
		}
		msg.SetContext(original.Context())
	}

	return msg, nil
}
