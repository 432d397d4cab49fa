package eventservice

import "errors"

// Domain errors for the event service.
var (
	// ErrInvalidResult indicates the supplied winner or method identifier is empty.
	ErrInvalidResult = errors.New("invalid match result")

	// ErrInvalidEvent indicates the event input failed validation.
	ErrInvalidEvent = errors.New("invalid event input")
)
