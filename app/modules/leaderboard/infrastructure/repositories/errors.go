package leaderboarddb

import "errors"

var ErrEntryNotFound = errors.New("leaderboard entry not found")
