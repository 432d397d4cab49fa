package predictionservice

import "errors"

var (
	ErrInvalidPrediction = errors.New("invalid prediction")
	ErrInvalidResult     = errors.New("invalid match result")
	ErrNotOwner          = errors.New("prediction belongs to another user")
)
