package predictionservice

import "strings"

// judgePrediction scores one prediction against an authoritative result.
// Winner ids compare exactly, methods compare case-insensitively. Points are
// absolute: 2 for winner and method, 1 for winner only, 0 otherwise. A wrong
// winner earns nothing even when the method happens to match.
func judgePrediction(predictedWinnerID, predictedMethod, winnerID, method string) (isCorrect, isCorrectMethod bool, points int) {
	isCorrect = predictedWinnerID == winnerID
	isCorrectMethod = strings.EqualFold(predictedMethod, method)

	if isCorrect {
		points = 1
		if isCorrectMethod {
			points = 2
		}
	}
	return isCorrect, isCorrectMethod, points
}
