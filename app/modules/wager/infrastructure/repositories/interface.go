package wagerdb

import (
	"context"

	"github.com/uptrace/bun"

	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// Repository is the data access contract for group events, fights, and wagers.
type Repository interface {
	CreateGroupEvent(ctx context.Context, db bun.IDB, groupEvent *GroupEvent) error
	GetGroupEvent(ctx context.Context, db bun.IDB, groupEventID sharedtypes.GroupEventID) (*GroupEvent, error)
	GetGroupEvents(ctx context.Context, db bun.IDB, groupID sharedtypes.GroupID) ([]GroupEvent, error)
	CreateFight(ctx context.Context, db bun.IDB, fight *Fight) error
	GetFight(ctx context.Context, db bun.IDB, fightID sharedtypes.FightID) (*Fight, error)
	GetGroupEventFights(ctx context.Context, db bun.IDB, groupEventID sharedtypes.GroupEventID) ([]Fight, error)
	SetFightResult(ctx context.Context, db bun.IDB, fightID sharedtypes.FightID, winnerName, method string) error
	UpsertWager(ctx context.Context, db bun.IDB, wager *Wager) (*Wager, error)
	GetFightWagers(ctx context.Context, db bun.IDB, fightID sharedtypes.FightID) ([]Wager, error)
	GetUserWagers(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, groupEventID sharedtypes.GroupEventID) ([]Wager, error)
	GetGroupEventWagers(ctx context.Context, db bun.IDB, groupEventID sharedtypes.GroupEventID) ([]Wager, error)
	UpdateWagerJudgment(ctx context.Context, db bun.IDB, wager *Wager) error
}
