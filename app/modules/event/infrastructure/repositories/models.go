package eventdb

import (
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// Event statuses.
const (
	EventStatusUpcoming  = "upcoming"
	EventStatusLive      = "live"
	EventStatusCompleted = "completed"
)

// Match statuses.
const (
	MatchStatusUpcoming  = "upcoming"
	MatchStatusLive      = "live"
	MatchStatusCompleted = "completed"
)

// Event is a card of matches owned by a group.
type Event struct {
	bun.BaseModel `bun:"table:events,alias:e"`

	ID        sharedtypes.EventID `bun:"id,pk"`
	GroupID   sharedtypes.GroupID `bun:"group_id,notnull"`
	Title     string              `bun:"title,notnull"`
	Date      time.Time           `bun:"date,notnull"`
	Status    string              `bun:"status,notnull,default:'upcoming'"`
	CreatedAt time.Time           `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time           `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Match is a single bout within an event. Results are recorded flat on the row;
// related rows are joined by id, never navigated.
type Match struct {
	bun.BaseModel `bun:"table:matches,alias:m"`

	ID           sharedtypes.MatchID `bun:"id,pk"`
	EventID      sharedtypes.EventID `bun:"event_id,notnull"`
	Fighter1ID   string              `bun:"fighter1_id,notnull"`
	Fighter1Name string              `bun:"fighter1_name,notnull"`
	Fighter2ID   string              `bun:"fighter2_id,notnull"`
	Fighter2Name string              `bun:"fighter2_name,notnull"`
	Order        int                 `bun:"match_order,notnull,default:0"`
	Status       string              `bun:"status,notnull,default:'upcoming'"`
	WinnerID     *string             `bun:"winner_id"`
	ResultMethod *string             `bun:"result_method"`
	CreatedAt    time.Time           `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt    time.Time           `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}
