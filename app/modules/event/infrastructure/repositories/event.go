package eventdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
)

// Repo implements Repository.
type Repo struct{}

func NewRepo() Repository {
	return &Repo{}
}

func (r *Repo) CreateEvent(ctx context.Context, db bun.IDB, event *Event) error {
	_, err := db.NewInsert().Model(event).Exec(ctx)
	if err != nil {
		return fmt.Errorf("eventdb.CreateEvent: %w", err)
	}
	return nil
}

func (r *Repo) GetEvent(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) (*Event, error) {
	event := new(Event)
	err := db.NewSelect().
		Model(event).
		Where("id = ?", eventID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("eventdb.GetEvent: %w", err)
	}
	return event, nil
}

func (r *Repo) GetGroupEvents(ctx context.Context, db bun.IDB, groupID sharedtypes.GroupID) ([]Event, error) {
	var events []Event
	err := db.NewSelect().
		Model(&events).
		Where("group_id = ?", groupID).
		Order("date DESC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("eventdb.GetGroupEvents: %w", err)
	}
	return events, nil
}

func (r *Repo) CreateMatch(ctx context.Context, db bun.IDB, match *Match) error {
	_, err := db.NewInsert().Model(match).Exec(ctx)
	if err != nil {
		return fmt.Errorf("eventdb.CreateMatch: %w", err)
	}
	return nil
}

func (r *Repo) GetMatch(ctx context.Context, db bun.IDB, matchID sharedtypes.MatchID) (*Match, error) {
	match := new(Match)
	err := db.NewSelect().
		Model(match).
		Where("id = ?", matchID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("eventdb.GetMatch: %w", err)
	}
	return match, nil
}

func (r *Repo) GetEventMatches(ctx context.Context, db bun.IDB, eventID sharedtypes.EventID) ([]Match, error) {
	var matches []Match
	err := db.NewSelect().
		Model(&matches).
		Where("event_id = ?", eventID).
		Order("match_order ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("eventdb.GetEventMatches: %w", err)
	}
	return matches, nil
}

func (r *Repo) SetMatchResult(ctx context.Context, db bun.IDB, matchID sharedtypes.MatchID, winnerID, method string) error {
	res, err := db.NewUpdate().
		Model((*Match)(nil)).
		Set("winner_id = ?", winnerID).
		Set("result_method = ?", method).
		Set("status = ?", MatchStatusCompleted).
		Set("updated_at = ?", time.Now().UTC()).
		Where("id = ?", matchID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("eventdb.SetMatchResult: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("eventdb.SetMatchResult: rows affected: %w", err)
	}
	if affected == 0 {
		return ErrMatchNotFound
	}
	return nil
}
