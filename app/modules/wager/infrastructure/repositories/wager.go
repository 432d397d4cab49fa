package wagerdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// Repo is a stateless implementation of Repository over bun.
type Repo struct{}

func (r *Repo) CreateGroupEvent(ctx context.Context, db bun.IDB, groupEvent *GroupEvent) error {
	if _, err := db.NewInsert().Model(groupEvent).Exec(ctx); err != nil {
		return fmt.Errorf("wagerdb.CreateGroupEvent: %w", err)
	}
	return nil
}

func (r *Repo) GetGroupEvent(ctx context.Context, db bun.IDB, groupEventID sharedtypes.GroupEventID) (*GroupEvent, error) {
	groupEvent := new(GroupEvent)
	err := db.NewSelect().
		Model(groupEvent).
		Where("id = ?", groupEventID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGroupEventNotFound
		}
		return nil, fmt.Errorf("wagerdb.GetGroupEvent: %w", err)
	}
	return groupEvent, nil
}

func (r *Repo) GetGroupEvents(ctx context.Context, db bun.IDB, groupID sharedtypes.GroupID) ([]GroupEvent, error) {
	var groupEvents []GroupEvent
	err := db.NewSelect().
		Model(&groupEvents).
		Where("group_id = ?", groupID).
		Order("date DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("wagerdb.GetGroupEvents: %w", err)
	}
	return groupEvents, nil
}

func (r *Repo) CreateFight(ctx context.Context, db bun.IDB, fight *Fight) error {
	if _, err := db.NewInsert().Model(fight).Exec(ctx); err != nil {
		return fmt.Errorf("wagerdb.CreateFight: %w", err)
	}
	return nil
}

func (r *Repo) GetFight(ctx context.Context, db bun.IDB, fightID sharedtypes.FightID) (*Fight, error) {
	fight := new(Fight)
	err := db.NewSelect().
		Model(fight).
		Where("id = ?", fightID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFightNotFound
		}
		return nil, fmt.Errorf("wagerdb.GetFight: %w", err)
	}
	return fight, nil
}

func (r *Repo) GetGroupEventFights(ctx context.Context, db bun.IDB, groupEventID sharedtypes.GroupEventID) ([]Fight, error) {
	var fights []Fight
	err := db.NewSelect().
		Model(&fights).
		Where("group_event_id = ?", groupEventID).
		Order("fight_order ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("wagerdb.GetGroupEventFights: %w", err)
	}
	return fights, nil
}

func (r *Repo) SetFightResult(ctx context.Context, db bun.IDB, fightID sharedtypes.FightID, winnerName, method string) error {
	res, err := db.NewUpdate().
		Model((*Fight)(nil)).
		Set("winner_name = ?", winnerName).
		Set("result_method = ?", method).
		Set("status = ?", FightStatusFinalized).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", fightID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("wagerdb.SetFightResult: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("wagerdb.SetFightResult: rows affected: %w", err)
	}
	if rows == 0 {
		return ErrFightNotFound
	}
	return nil
}

// UpsertWager inserts a wager or overwrites the caller's existing one for the
// same fight. The unique index on (user_id, fight_id) makes concurrent
// placements collapse to a single row holding the last write.
func (r *Repo) UpsertWager(ctx context.Context, db bun.IDB, wager *Wager) (*Wager, error) {
	_, err := db.NewInsert().
		Model(wager).
		On("CONFLICT (user_id, fight_id) DO UPDATE").
		Set("predicted_winner = EXCLUDED.predicted_winner").
		Set("method = EXCLUDED.method").
		Set("confidence = EXCLUDED.confidence").
		Set("user_name = EXCLUDED.user_name").
		Set("is_correct = NULL").
		Set("is_correct_method = NULL").
		Set("points_earned = NULL").
		Set("updated_at = ?", time.Now().UTC()).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("wagerdb.UpsertWager: %w", err)
	}
	return wager, nil
}

func (r *Repo) GetFightWagers(ctx context.Context, db bun.IDB, fightID sharedtypes.FightID) ([]Wager, error) {
	var wagers []Wager
	err := db.NewSelect().
		Model(&wagers).
		Where("fight_id = ?", fightID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("wagerdb.GetFightWagers: %w", err)
	}
	return wagers, nil
}

func (r *Repo) GetUserWagers(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, groupEventID sharedtypes.GroupEventID) ([]Wager, error) {
	var wagers []Wager
	err := db.NewSelect().
		Model(&wagers).
		Where("user_id = ?", userID).
		Where("group_event_id = ?", groupEventID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("wagerdb.GetUserWagers: %w", err)
	}
	return wagers, nil
}

func (r *Repo) GetGroupEventWagers(ctx context.Context, db bun.IDB, groupEventID sharedtypes.GroupEventID) ([]Wager, error) {
	var wagers []Wager
	err := db.NewSelect().
		Model(&wagers).
		Where("group_event_id = ?", groupEventID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("wagerdb.GetGroupEventWagers: %w", err)
	}
	return wagers, nil
}

func (r *Repo) UpdateWagerJudgment(ctx context.Context, db bun.IDB, wager *Wager) error {
	res, err := db.NewUpdate().
		Model(wager).
		Column("is_correct", "is_correct_method", "points_earned", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("wagerdb.UpdateWagerJudgment: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("wagerdb.UpdateWagerJudgment: rows affected: %w", err)
	}
	if rows == 0 {
		return ErrWagerNotFound
	}
	return nil
}
