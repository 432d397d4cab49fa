package wagerdb

import "errors"

var (
	ErrGroupEventNotFound = errors.New("group event not found")
	ErrFightNotFound      = errors.New("fight not found")
	ErrWagerNotFound      = errors.New("wager not found")
)
