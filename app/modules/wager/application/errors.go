package wagerservice

import "errors"

var (
	ErrValidation    = errors.New("invalid wager")
	ErrInvalidResult = errors.New("invalid fight result")
	ErrInvalidEvent  = errors.New("invalid group event")
)
