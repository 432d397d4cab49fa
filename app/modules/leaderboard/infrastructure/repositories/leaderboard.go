package leaderboarddb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	leaderboarddomain "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/domain"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// Repo is a stateless implementation of Repository over bun.
type Repo struct{}

// AcquireScopeLock acquires a pg_advisory_xact_lock for the scope.
// Must be called within a transaction.
func (r *Repo) AcquireScopeLock(ctx context.Context, db bun.IDB, scope leaderboarddomain.Scope) error {
	_, err := db.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", scope.LockKey()).Exec(ctx)
	if err != nil {
		return fmt.Errorf("leaderboarddb.AcquireScopeLock: %w", err)
	}
	return nil
}

// AggregateScores groups judged predictions by user. Points are
// SUM(COALESCE(points_earned, 0)); unjudged predictions count toward the total
// but contribute no points yet. Display names come from the membership read
// model when present, falling back to the name recorded on the prediction.
func (r *Repo) AggregateScores(ctx context.Context, db bun.IDB, scope leaderboarddomain.Scope) ([]UserScore, error) {
	q := db.NewSelect().
		TableExpr("predictions AS p").
		ColumnExpr("p.user_id AS user_id").
		ColumnExpr("COALESCE(MAX(NULLIF(gm.user_name, '')), MAX(p.user_name), '') AS user_name").
		ColumnExpr("SUM(COALESCE(p.points_earned, 0))::int AS points").
		ColumnExpr("COUNT(*) FILTER (WHERE p.is_correct)::int AS correct_predictions").
		ColumnExpr("COUNT(*)::int AS total_predictions").
		Join("JOIN events AS e ON e.id = p.event_id").
		Join("LEFT JOIN group_members AS gm ON gm.group_id = e.group_id AND gm.user_id = p.user_id").
		Where("e.group_id = ?", scope.GroupID).
		GroupExpr("p.user_id")

	if scope.EventID != nil {
		q = q.Where("p.event_id = ?", *scope.EventID)
	}

	var scores []UserScore
	if err := q.Scan(ctx, &scores); err != nil {
		return nil, fmt.Errorf("leaderboarddb.AggregateScores: %w", err)
	}
	return scores, nil
}

// ReplaceEntries deletes the scope's rows and writes the fresh set. Callers
// hold the scope lock inside a transaction, so readers only ever see a
// complete standings snapshot.
func (r *Repo) ReplaceEntries(ctx context.Context, db bun.IDB, scope leaderboarddomain.Scope, scores []UserScore) error {
	del := db.NewDelete().
		Model((*LeaderboardEntry)(nil)).
		Where("group_id = ?", scope.GroupID)
	if scope.EventID != nil {
		del = del.Where("event_id = ?", *scope.EventID)
	} else {
		del = del.Where("event_id IS NULL")
	}
	if _, err := del.Exec(ctx); err != nil {
		return fmt.Errorf("leaderboarddb.ReplaceEntries: delete: %w", err)
	}

	if len(scores) == 0 {
		return nil
	}

	now := time.Now().UTC()
	entries := make([]LeaderboardEntry, 0, len(scores))
	for _, score := range scores {
		entries = append(entries, LeaderboardEntry{
			UserID:             score.UserID,
			GroupID:            scope.GroupID,
			EventID:            scope.EventID,
			UserName:           score.UserName,
			Points:             score.Points,
			CorrectPredictions: score.CorrectPredictions,
			TotalPredictions:   score.TotalPredictions,
			UpdatedAt:          now,
		})
	}

	if _, err := db.NewInsert().Model(&entries).Exec(ctx); err != nil {
		return fmt.Errorf("leaderboarddb.ReplaceEntries: insert: %w", err)
	}
	return nil
}

func (r *Repo) GetGroupLeaderboard(ctx context.Context, db bun.IDB, groupID sharedtypes.GroupID) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := db.NewSelect().
		Model(&entries).
		Where("group_id = ?", groupID).
		Where("event_id IS NULL").
		Order("points DESC", "user_name ASC", "user_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaderboarddb.GetGroupLeaderboard: %w", err)
	}
	return entries, nil
}

func (r *Repo) GetEventLeaderboard(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) ([]LeaderboardEntry, error) {
	var entries []LeaderboardEntry
	err := db.NewSelect().
		Model(&entries).
		Where("event_id = ?", eventID).
		Order("points DESC", "user_name ASC", "user_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaderboarddb.GetEventLeaderboard: %w", err)
	}
	return entries, nil
}

func (r *Repo) GetUserEntry(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, scope leaderboarddomain.Scope) (*LeaderboardEntry, error) {
	entry := new(LeaderboardEntry)
	q := db.NewSelect().
		Model(entry).
		Where("user_id = ?", userID).
		Where("group_id = ?", scope.GroupID)
	if scope.EventID != nil {
		q = q.Where("event_id = ?", *scope.EventID)
	} else {
		q = q.Where("event_id IS NULL")
	}

	if err := q.Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("leaderboarddb.GetUserEntry: %w", err)
	}
	return entry, nil
}

func (r *Repo) UpsertGroupMember(ctx context.Context, db bun.IDB, member *GroupMember) error {
	_, err := db.NewInsert().
		Model(member).
		On("CONFLICT (group_id, user_id) DO UPDATE").
		Set("user_name = EXCLUDED.user_name").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("leaderboarddb.UpsertGroupMember: %w", err)
	}
	return nil
}

func (r *Repo) GetGroupMembers(ctx context.Context, db bun.IDB, groupID sharedtypes.GroupID) ([]GroupMember, error) {
	var members []GroupMember
	err := db.NewSelect().
		Model(&members).
		Where("group_id = ?", groupID).
		Order("user_name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("leaderboarddb.GetGroupMembers: %w", err)
	}
	return members, nil
}
