package predictiondb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// Prediction is a user's pre-match pick. Judged fields stay NULL until an
// authoritative result arrives; the scoring pass then writes absolute values,
// never increments. At most one row exists per (user_id, event_id, match_id).
type Prediction struct {
	bun.BaseModel `bun:"table:predictions,alias:p"`

	ID                sharedtypes.PredictionID `bun:"id,pk"`
	UserID            sharedtypes.UserID       `bun:"user_id,notnull"`
	UserName          string                   `bun:"user_name,notnull,default:''"`
	EventID           sharedtypes.EventID      `bun:"event_id,notnull"`
	MatchID           sharedtypes.MatchID      `bun:"match_id,notnull"`
	PredictedWinnerID string                   `bun:"predicted_winner_id,notnull"`
	Method            string                   `bun:"method,notnull"`
	IsCorrect         *bool                    `bun:"is_correct"`
	IsCorrectMethod   *bool                    `bun:"is_correct_method"`
	PointsEarned      *int                     `bun:"points_earned"`
	CreatedAt         time.Time                `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt         *time.Time               `bun:"updated_at"`
}

// MatchScope is the aggregation scope a match belongs to, resolved by joining
// matches to events on ids.
type MatchScope struct {
	EventID sharedtypes.EventID `bun:"event_id"`
	GroupID sharedtypes.GroupID `bun:"group_id"`
}
