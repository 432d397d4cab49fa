package wagerservice

import (
	"context"
	"time"

	wagerdb "github.com/bet-buddys/betbuddys-backend/app/modules/wager/infrastructure/repositories"
	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/utils/results"
)

// JudgeWagersResult is the outcome of a wager judging pass.
type JudgeWagersResult = results.OperationResult[sharedevents.WagerBatchJudgedPayloadV1, sharedevents.WagerJudgingFailedPayloadV1]

// FightInput describes one bout when creating a group event card.
type FightInput struct {
	Fighter1Name string
	Fighter2Name string
}

// PlaceWagerInput is a caller-supplied wager. Placing again for the same fight
// overwrites the earlier wager instead of creating a second one.
type PlaceWagerInput struct {
	UserID          sharedtypes.UserID
	UserName        string
	GroupEventID    sharedtypes.GroupEventID
	FightID         sharedtypes.FightID
	PredictedWinner string
	Method          string
	Confidence      int
}

// Service is the wager module's application contract.
type Service interface {
	CreateGroupEvent(ctx context.Context, groupID sharedtypes.GroupID, name string, date time.Time, fights []FightInput) (*wagerdb.GroupEvent, error)
	PlaceWager(ctx context.Context, input PlaceWagerInput) (*wagerdb.Wager, error)
	FinalizeFightResult(ctx context.Context, fightID sharedtypes.FightID, winnerName, method string) error
	JudgeFightWagers(ctx context.Context, fightID sharedtypes.FightID, winnerName, method string) (JudgeWagersResult, error)
	GetGroupEvents(ctx context.Context, groupID sharedtypes.GroupID) ([]wagerdb.GroupEvent, error)
	GetGroupEventFights(ctx context.Context, groupEventID sharedtypes.GroupEventID) ([]wagerdb.Fight, error)
	GetUserWagers(ctx context.Context, userID sharedtypes.UserID, groupEventID sharedtypes.GroupEventID) ([]wagerdb.Wager, error)
	GetGroupEventWagers(ctx context.Context, groupEventID sharedtypes.GroupEventID) ([]wagerdb.Wager, error)
}
