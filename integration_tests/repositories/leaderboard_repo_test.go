package repositoryintegrationtests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	leaderboarddomain "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/domain"
	leaderboarddb "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/infrastructure/repositories"
	predictiondb "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/infrastructure/repositories"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// seedJudgedPrediction stores a prediction with its judged fields already set.
func seedJudgedPrediction(t *testing.T, ctx context.Context, userID sharedtypes.UserID, userName string, eventID sharedtypes.EventID, matchID sharedtypes.MatchID, correct bool, points int) {
	t.Helper()

	prediction := newPrediction(userID, userName, eventID, matchID, "fighter-0-a")
	prediction.IsCorrect = boolPtr(correct)
	prediction.IsCorrectMethod = boolPtr(false)
	prediction.PointsEarned = intPtr(points)
	_, err := testDB.NewInsert().Model(prediction).Exec(ctx)
	require.NoError(t, err)
}

func scoreByUser(scores []leaderboarddb.UserScore, userID sharedtypes.UserID) *leaderboarddb.UserScore {
	for i := range scores {
		if scores[i].UserID == userID {
			return &scores[i]
		}
	}
	return nil
}

func TestAggregateScores(t *testing.T) {
	ctx := context.Background()
	repo := &leaderboarddb.Repo{}
	predictionRepo := &predictiondb.Repo{}

	t.Run("sums judged points and counts unjudged predictions", func(t *testing.T) {
		truncateTables(t, ctx)
		event, matchIDs := seedEvent(t, ctx, "group-1", 3)

		seedJudgedPrediction(t, ctx, "alice", "alice-pick-name", event.ID, matchIDs[0], true, 2)
		seedJudgedPrediction(t, ctx, "alice", "alice-pick-name", event.ID, matchIDs[1], true, 1)
		_, err := predictionRepo.UpsertPrediction(ctx, testDB, newPrediction("alice", "alice-pick-name", event.ID, matchIDs[2], "fighter-2-a"))
		require.NoError(t, err)
		seedJudgedPrediction(t, ctx, "bob", "Bob", event.ID, matchIDs[0], false, 0)

		scores, err := repo.AggregateScores(ctx, testDB, leaderboarddomain.GroupScope("group-1"))
		require.NoError(t, err)
		require.Len(t, scores, 2)

		alice := scoreByUser(scores, "alice")
		require.NotNil(t, alice)
		assert.Equal(t, 3, alice.Points)
		assert.Equal(t, 2, alice.CorrectPredictions)
		assert.Equal(t, 3, alice.TotalPredictions)

		bob := scoreByUser(scores, "bob")
		require.NotNil(t, bob)
		assert.Equal(t, 0, bob.Points)
		assert.Equal(t, 0, bob.CorrectPredictions)
		assert.Equal(t, 1, bob.TotalPredictions)
	})

	t.Run("prefers the membership display name over the prediction one", func(t *testing.T) {
		truncateTables(t, ctx)
		event, matchIDs := seedEvent(t, ctx, "group-1", 1)

		require.NoError(t, repo.UpsertGroupMember(ctx, testDB, &leaderboarddb.GroupMember{
			GroupID:  "group-1",
			UserID:   "alice",
			UserName: "Alice Display",
		}))
		seedJudgedPrediction(t, ctx, "alice", "alice-pick-name", event.ID, matchIDs[0], true, 2)

		scores, err := repo.AggregateScores(ctx, testDB, leaderboarddomain.GroupScope("group-1"))
		require.NoError(t, err)
		require.Len(t, scores, 1)
		assert.Equal(t, "Alice Display", scores[0].UserName)
	})

	t.Run("event scope only counts that event", func(t *testing.T) {
		truncateTables(t, ctx)
		event, matchIDs := seedEvent(t, ctx, "group-1", 1)
		otherEvent, otherMatchIDs := seedEvent(t, ctx, "group-1", 1)

		seedJudgedPrediction(t, ctx, "alice", "Alice", event.ID, matchIDs[0], true, 2)
		seedJudgedPrediction(t, ctx, "alice", "Alice", otherEvent.ID, otherMatchIDs[0], true, 1)

		scores, err := repo.AggregateScores(ctx, testDB, leaderboarddomain.EventScope("group-1", event.ID))
		require.NoError(t, err)
		require.Len(t, scores, 1)
		assert.Equal(t, 2, scores[0].Points)
		assert.Equal(t, 1, scores[0].TotalPredictions)

		groupWide, err := repo.AggregateScores(ctx, testDB, leaderboarddomain.GroupScope("group-1"))
		require.NoError(t, err)
		require.Len(t, groupWide, 1)
		assert.Equal(t, 3, groupWide[0].Points)
		assert.Equal(t, 2, groupWide[0].TotalPredictions)
	})

	t.Run("another group's predictions never leak in", func(t *testing.T) {
		truncateTables(t, ctx)
		event, matchIDs := seedEvent(t, ctx, "group-1", 1)
		otherEvent, otherMatchIDs := seedEvent(t, ctx, "group-2", 1)

		seedJudgedPrediction(t, ctx, "alice", "Alice", event.ID, matchIDs[0], true, 2)
		seedJudgedPrediction(t, ctx, "mallory", "Mallory", otherEvent.ID, otherMatchIDs[0], true, 2)

		scores, err := repo.AggregateScores(ctx, testDB, leaderboarddomain.GroupScope("group-1"))
		require.NoError(t, err)
		require.Len(t, scores, 1)
		assert.Equal(t, sharedtypes.UserID("alice"), scores[0].UserID)
	})
}

func TestReplaceEntries(t *testing.T) {
	ctx := context.Background()
	repo := &leaderboarddb.Repo{}

	t.Run("standings come back ranked by points then name", func(t *testing.T) {
		truncateTables(t, ctx)
		scope := leaderboarddomain.GroupScope("group-1")

		scores := []leaderboarddb.UserScore{
			{UserID: "carol", UserName: "Carol", Points: 5, CorrectPredictions: 3, TotalPredictions: 4},
			{UserID: "alice", UserName: "Alice", Points: 2, CorrectPredictions: 1, TotalPredictions: 4},
			{UserID: "bob", UserName: "Bob", Points: 2, CorrectPredictions: 2, TotalPredictions: 4},
		}
		require.NoError(t, repo.ReplaceEntries(ctx, testDB, scope, scores))

		entries, err := repo.GetGroupLeaderboard(ctx, testDB, "group-1")
		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, sharedtypes.UserID("carol"), entries[0].UserID)
		// Ties break alphabetically by display name.
		assert.Equal(t, sharedtypes.UserID("alice"), entries[1].UserID)
		assert.Equal(t, sharedtypes.UserID("bob"), entries[2].UserID)
	})

	t.Run("recompute removes users no longer in the scope", func(t *testing.T) {
		truncateTables(t, ctx)
		scope := leaderboarddomain.GroupScope("group-1")

		require.NoError(t, repo.ReplaceEntries(ctx, testDB, scope, []leaderboarddb.UserScore{
			{UserID: "alice", UserName: "Alice", Points: 2},
			{UserID: "bob", UserName: "Bob", Points: 1},
		}))
		require.NoError(t, repo.ReplaceEntries(ctx, testDB, scope, []leaderboarddb.UserScore{
			{UserID: "alice", UserName: "Alice", Points: 2},
		}))

		entries, err := repo.GetGroupLeaderboard(ctx, testDB, "group-1")
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, sharedtypes.UserID("alice"), entries[0].UserID)
	})

	t.Run("group-wide and event snapshots do not clobber each other", func(t *testing.T) {
		truncateTables(t, ctx)
		groupScope := leaderboarddomain.GroupScope("group-1")
		eventScope := leaderboarddomain.EventScope("group-1", "event-1")

		require.NoError(t, repo.ReplaceEntries(ctx, testDB, groupScope, []leaderboarddb.UserScore{
			{UserID: "alice", UserName: "Alice", Points: 5},
		}))
		require.NoError(t, repo.ReplaceEntries(ctx, testDB, eventScope, []leaderboarddb.UserScore{
			{UserID: "alice", UserName: "Alice", Points: 2},
		}))

		groupEntries, err := repo.GetGroupLeaderboard(ctx, testDB, "group-1")
		require.NoError(t, err)
		require.Len(t, groupEntries, 1)
		assert.Equal(t, 5, groupEntries[0].Points)

		eventEntries, err := repo.GetEventLeaderboard(ctx, testDB, "event-1")
		require.NoError(t, err)
		require.Len(t, eventEntries, 1)
		assert.Equal(t, 2, eventEntries[0].Points)

		// Clearing the event scope leaves the group-wide snapshot alone.
		require.NoError(t, repo.ReplaceEntries(ctx, testDB, eventScope, nil))
		eventEntries, err = repo.GetEventLeaderboard(ctx, testDB, "event-1")
		require.NoError(t, err)
		assert.Empty(t, eventEntries)
		groupEntries, err = repo.GetGroupLeaderboard(ctx, testDB, "group-1")
		require.NoError(t, err)
		assert.Len(t, groupEntries, 1)
	})
}

func TestGetUserEntry(t *testing.T) {
	ctx := context.Background()
	repo := &leaderboarddb.Repo{}

	truncateTables(t, ctx)
	groupScope := leaderboarddomain.GroupScope("group-1")
	eventScope := leaderboarddomain.EventScope("group-1", "event-1")

	require.NoError(t, repo.ReplaceEntries(ctx, testDB, groupScope, []leaderboarddb.UserScore{
		{UserID: "alice", UserName: "Alice", Points: 5},
	}))
	require.NoError(t, repo.ReplaceEntries(ctx, testDB, eventScope, []leaderboarddb.UserScore{
		{UserID: "alice", UserName: "Alice", Points: 2},
	}))

	groupEntry, err := repo.GetUserEntry(ctx, testDB, "alice", groupScope)
	require.NoError(t, err)
	assert.Equal(t, 5, groupEntry.Points)
	assert.Nil(t, groupEntry.EventID)

	eventEntry, err := repo.GetUserEntry(ctx, testDB, "alice", eventScope)
	require.NoError(t, err)
	assert.Equal(t, 2, eventEntry.Points)

	_, err = repo.GetUserEntry(ctx, testDB, "bob", groupScope)
	assert.ErrorIs(t, err, leaderboarddb.ErrEntryNotFound)
}

func TestUpsertGroupMember(t *testing.T) {
	ctx := context.Background()
	repo := &leaderboarddb.Repo{}

	truncateTables(t, ctx)

	require.NoError(t, repo.UpsertGroupMember(ctx, testDB, &leaderboarddb.GroupMember{
		GroupID:  "group-1",
		UserID:   "alice",
		UserName: "Alice",
	}))
	// Re-adding the same member updates the display name in place.
	require.NoError(t, repo.UpsertGroupMember(ctx, testDB, &leaderboarddb.GroupMember{
		GroupID:  "group-1",
		UserID:   "alice",
		UserName: "Alice Renamed",
	}))

	members, err := repo.GetGroupMembers(ctx, testDB, "group-1")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Alice Renamed", members[0].UserName)
}

func TestAcquireScopeLock(t *testing.T) {
	ctx := context.Background()
	repo := &leaderboarddb.Repo{}

	truncateTables(t, ctx)

	// The advisory lock is transaction scoped, so it has to be taken inside one.
	err := testDB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return repo.AcquireScopeLock(ctx, tx, leaderboarddomain.GroupScope("group-1"))
	})
	require.NoError(t, err)

	// Released with the transaction, so a second run succeeds immediately.
	err = testDB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		return repo.AcquireScopeLock(ctx, tx, leaderboarddomain.GroupScope("group-1"))
	})
	require.NoError(t, err)
}
