package predictiondb

import "errors"

var (
	ErrPredictionNotFound = errors.New("prediction not found")
	ErrMatchNotFound      = errors.New("match not found")
)
