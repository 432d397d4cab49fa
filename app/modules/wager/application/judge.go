package wagerservice

import "strings"

// judgeWager scores one wager against an authoritative fight result, mirroring
// the prediction scoring rule: winner compares exactly, method compares
// case-insensitively, points are 2 / 1 / 0. Confidence is informational and
// never changes the judgment.
func judgeWager(predictedWinner, predictedMethod, winnerName, method string) (isCorrect, isCorrectMethod bool, points int) {
	isCorrect = predictedWinner == winnerName
	isCorrectMethod = strings.EqualFold(predictedMethod, method)

	if isCorrect {
		points = 1
		if isCorrectMethod {
			points = 2
		}
	}
	return isCorrect, isCorrectMethod, points
}
