package leaderboardqueue

import (
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// RecalculateJob asks for a background standings recompute of one scope.
// Recomputes are idempotent full overwrites, so River's at-least-once
// execution needs no dedupe on this side.
type RecalculateJob struct {
	GroupID sharedtypes.GroupID  `json:"group_id"`
	EventID *sharedtypes.EventID `json:"event_id,omitempty"`
}

// Kind returns the job type identifier for River.
func (RecalculateJob) Kind() string { return "leaderboard_recalculate" }
