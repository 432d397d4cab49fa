package wagerdb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

const (
	FightStatusScheduled = "scheduled"
	FightStatusFinalized = "finalized"
)

// GroupEvent is a betting card a group runs alongside (or instead of) an
// official event. Fights on a card are identified by fighter names, not ids.
type GroupEvent struct {
	bun.BaseModel `bun:"table:group_events,alias:ge"`

	ID        sharedtypes.GroupEventID `bun:"id,pk"`
	GroupID   sharedtypes.GroupID      `bun:"group_id,notnull"`
	Name      string                   `bun:"name,notnull"`
	Date      time.Time                `bun:"date,notnull"`
	CreatedAt time.Time                `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// Fight is one bout on a group event card.
type Fight struct {
	bun.BaseModel `bun:"table:fights,alias:f"`

	ID           sharedtypes.FightID      `bun:"id,pk"`
	GroupEventID sharedtypes.GroupEventID `bun:"group_event_id,notnull"`
	Fighter1Name string                   `bun:"fighter1_name,notnull"`
	Fighter2Name string                   `bun:"fighter2_name,notnull"`
	FightOrder   int                      `bun:"fight_order,notnull,default:0"`
	Status       string                   `bun:"status,notnull,default:'scheduled'"`
	WinnerName   *string                  `bun:"winner_name"`
	ResultMethod *string                  `bun:"result_method"`
	CreatedAt    time.Time                `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt    *time.Time               `bun:"updated_at"`
}

// Wager is a user's informal bet on a fight. At most one row exists per
// (user_id, fight_id); placing again overwrites the earlier wager. Judged
// fields stay NULL until the fight result is finalized.
type Wager struct {
	bun.BaseModel `bun:"table:wagers,alias:w"`

	ID              sharedtypes.WagerID      `bun:"id,pk"`
	UserID          sharedtypes.UserID       `bun:"user_id,notnull"`
	UserName        string                   `bun:"user_name,notnull,default:''"`
	GroupEventID    sharedtypes.GroupEventID `bun:"group_event_id,notnull"`
	FightID         sharedtypes.FightID      `bun:"fight_id,notnull"`
	PredictedWinner string                   `bun:"predicted_winner,notnull"`
	Method          string                   `bun:"method,notnull"`
	Confidence      int                      `bun:"confidence,notnull"`
	IsCorrect       *bool                    `bun:"is_correct"`
	IsCorrectMethod *bool                    `bun:"is_correct_method"`
	PointsEarned    *int                     `bun:"points_earned"`
	CreatedAt       time.Time                `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt       *time.Time               `bun:"updated_at"`
}
