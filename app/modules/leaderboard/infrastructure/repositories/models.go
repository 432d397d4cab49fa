package leaderboarddb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// LeaderboardEntry is one user's standing in one scope. A NULL event_id marks
// the group-wide row. Entries are full overwrites written by Recalculate,
// never incremented in place.
type LeaderboardEntry struct {
	bun.BaseModel `bun:"table:leaderboard_entries,alias:le"`

	ID                 int64                `bun:"id,pk,autoincrement"`
	UserID             sharedtypes.UserID   `bun:"user_id,notnull"`
	GroupID            sharedtypes.GroupID  `bun:"group_id,notnull"`
	EventID            *sharedtypes.EventID `bun:"event_id"`
	UserName           string               `bun:"user_name,notnull,default:''"`
	Points             int                  `bun:"points,notnull,default:0"`
	CorrectPredictions int                  `bun:"correct_predictions,notnull,default:0"`
	TotalPredictions   int                  `bun:"total_predictions,notnull,default:0"`
	UpdatedAt          time.Time            `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// GroupMember is the membership read model, maintained from membership facts
// published by the group layer. The aggregator joins it for display names.
type GroupMember struct {
	bun.BaseModel `bun:"table:group_members,alias:gm"`

	GroupID   sharedtypes.GroupID `bun:"group_id,pk"`
	UserID    sharedtypes.UserID  `bun:"user_id,pk"`
	UserName  string              `bun:"user_name,notnull,default:''"`
	CreatedAt time.Time           `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// UserScore is one user's aggregated judged predictions within a scope,
// produced by the aggregation query and written out as a LeaderboardEntry.
type UserScore struct {
	UserID             sharedtypes.UserID `bun:"user_id"`
	UserName           string             `bun:"user_name"`
	Points             int                `bun:"points"`
	CorrectPredictions int                `bun:"correct_predictions"`
	TotalPredictions   int                `bun:"total_predictions"`
}
