package repositoryintegrationtests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	eventdb "github.com/bet-buddys/betbuddys-backend/app/modules/event/infrastructure/repositories"
	predictiondb "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/infrastructure/repositories"
	wagerdb "github.com/bet-buddys/betbuddys-backend/app/modules/wager/infrastructure/repositories"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// truncateTables wipes every table the repository tests touch so each test
// starts from an empty database.
func truncateTables(t *testing.T, ctx context.Context) {
	t.Helper()
	_, err := testDB.NewRaw(
		"TRUNCATE leaderboard_entries, group_members, predictions, wagers, fights, group_events, matches, events",
	).Exec(ctx)
	require.NoError(t, err)
}

// seedEvent inserts an event with the given number of matches and returns it
// with its match ids.
func seedEvent(t *testing.T, ctx context.Context, groupID sharedtypes.GroupID, matchCount int) (*eventdb.Event, []sharedtypes.MatchID) {
	t.Helper()

	event := &eventdb.Event{
		ID:      sharedtypes.EventID(uuid.NewString()),
		GroupID: groupID,
		Title:   gofakeit.Sentence(3),
		Date:    time.Now().UTC().Add(24 * time.Hour),
		Status:  eventdb.EventStatusUpcoming,
	}
	_, err := testDB.NewInsert().Model(event).Exec(ctx)
	require.NoError(t, err)

	matchIDs := make([]sharedtypes.MatchID, 0, matchCount)
	for i := 0; i < matchCount; i++ {
		match := &eventdb.Match{
			ID:           sharedtypes.MatchID(uuid.NewString()),
			EventID:      event.ID,
			Fighter1ID:   fmt.Sprintf("fighter-%d-a", i),
			Fighter1Name: gofakeit.Name(),
			Fighter2ID:   fmt.Sprintf("fighter-%d-b", i),
			Fighter2Name: gofakeit.Name(),
			Order:        i + 1,
			Status:       eventdb.MatchStatusUpcoming,
		}
		_, err := testDB.NewInsert().Model(match).Exec(ctx)
		require.NoError(t, err)
		matchIDs = append(matchIDs, match.ID)
	}

	return event, matchIDs
}

// newPrediction builds an unsaved prediction for the given user and match.
func newPrediction(userID sharedtypes.UserID, userName string, eventID sharedtypes.EventID, matchID sharedtypes.MatchID, winnerID string) *predictiondb.Prediction {
	return &predictiondb.Prediction{
		ID:                sharedtypes.PredictionID(uuid.NewString()),
		UserID:            userID,
		UserName:          userName,
		EventID:           eventID,
		MatchID:           matchID,
		PredictedWinnerID: winnerID,
		Method:            "KO",
	}
}

// seedGroupEvent inserts a betting card with one scheduled fight.
func seedGroupEvent(t *testing.T, ctx context.Context, groupID sharedtypes.GroupID) (*wagerdb.GroupEvent, *wagerdb.Fight) {
	t.Helper()

	groupEvent := &wagerdb.GroupEvent{
		ID:      sharedtypes.GroupEventID(uuid.NewString()),
		GroupID: groupID,
		Name:    gofakeit.Sentence(3),
		Date:    time.Now().UTC().Add(24 * time.Hour),
	}
	_, err := testDB.NewInsert().Model(groupEvent).Exec(ctx)
	require.NoError(t, err)

	fight := &wagerdb.Fight{
		ID:           sharedtypes.FightID(uuid.NewString()),
		GroupEventID: groupEvent.ID,
		Fighter1Name: gofakeit.Name(),
		Fighter2Name: gofakeit.Name(),
		FightOrder:   1,
		Status:       wagerdb.FightStatusScheduled,
	}
	_, err = testDB.NewInsert().Model(fight).Exec(ctx)
	require.NoError(t, err)

	return groupEvent, fight
}

// newWager builds an unsaved wager on the given fight.
func newWager(userID sharedtypes.UserID, userName string, groupEvent *wagerdb.GroupEvent, fightID sharedtypes.FightID, pick string) *wagerdb.Wager {
	return &wagerdb.Wager{
		ID:              sharedtypes.WagerID(uuid.NewString()),
		UserID:          userID,
		UserName:        userName,
		GroupEventID:    groupEvent.ID,
		FightID:         fightID,
		PredictedWinner: pick,
		Method:          "Decision",
		Confidence:      gofakeit.Number(1, 100),
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(n int) *int {
	return &n
}
