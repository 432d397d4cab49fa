package eventdb

import "errors"

var (
	// ErrEventNotFound indicates the referenced event does not exist.
	ErrEventNotFound = errors.New("event not found")

	// ErrMatchNotFound indicates the referenced match does not exist.
	ErrMatchNotFound = errors.New("match not found")
)
