package predictiondb

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

// UpsertPrediction inserts a prediction or, when the caller already has one for
// the same (user, event, match), overwrites the pick and resets any judgment so
// a re-pick before the result is scored fresh.
func (r *Repo) UpsertPrediction(ctx context.Context, db bun.IDB, prediction *Prediction) (*Prediction, error) {
	_, err := db.NewInsert().
		Model(prediction).
		On("CONFLICT (user_id, event_id, match_id) DO UPDATE").
		Set("predicted_winner_id = EXCLUDED.predicted_winner_id").
		Set("method = EXCLUDED.method").
		Set("user_name = EXCLUDED.user_name").
		Set("is_correct = NULL").
		Set("is_correct_method = NULL").
		Set("points_earned = NULL").
		Set("updated_at = ?", time.Now().UTC()).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("predictiondb.UpsertPrediction: %w", err)
	}
	return prediction, nil
}

func (r *Repo) GetPrediction(ctx context.Context, db bun.IDB, predictionID sharedtypes.PredictionID) (*Prediction, error) {
	prediction := new(Prediction)
	err := db.NewSelect().
		Model(prediction).
		Where("id = ?", predictionID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPredictionNotFound
		}
		return nil, fmt.Errorf("predictiondb.GetPrediction: %w", err)
	}
	return prediction, nil
}

func (r *Repo) GetMatchPredictions(ctx context.Context, db bun.IDB, matchID sharedtypes.MatchID) ([]Prediction, error) {
	var predictions []Prediction
	err := db.NewSelect().
		Model(&predictions).
		Where("match_id = ?", matchID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("predictiondb.GetMatchPredictions: %w", err)
	}
	return predictions, nil
}

func (r *Repo) GetUserEventPredictions(ctx context.Context, db bun.IDB, userID sharedtypes.UserID, eventID sharedtypes.EventID) ([]Prediction, error) {
	var predictions []Prediction
	err := db.NewSelect().
		Model(&predictions).
		Where("user_id = ?", userID).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("predictiondb.GetUserEventPredictions: %w", err)
	}
	return predictions, nil
}

// UpdateJudgment writes the judged fields of a single prediction. Values are
// absolute, so replaying the same judgment is a no-op at the data level.
func (r *Repo) UpdateJudgment(ctx context.Context, db bun.IDB, prediction *Prediction) error {
	res, err := db.NewUpdate().
		Model(prediction).
		Column("is_correct", "is_correct_method", "points_earned", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("predictiondb.UpdateJudgment: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("predictiondb.UpdateJudgment: rows affected: %w", err)
	}
	if rows == 0 {
		return ErrPredictionNotFound
	}
	return nil
}

func (r *Repo) DeletePrediction(ctx context.Context, db bun.IDB, predictionID sharedtypes.PredictionID) error {
	res, err := db.NewDelete().
		Model((*Prediction)(nil)).
		Where("id = ?", predictionID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("predictiondb.DeletePrediction: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("predictiondb.DeletePrediction: rows affected: %w", err)
	}
	if rows == 0 {
		return ErrPredictionNotFound
	}
	return nil
}

// GetMatchScope resolves the (event, group) scope of a match through the
// events table. Used to tag scoring results with the scopes that need a
// leaderboard recompute.
func (r *Repo) GetMatchScope(ctx context.Context, db bun.IDB, matchID sharedtypes.MatchID) (*MatchScope, error) {
	scope := new(MatchScope)
	err := db.NewSelect().
		TableExpr("matches AS m").
		ColumnExpr("m.event_id AS event_id").
		ColumnExpr("e.group_id AS group_id").
		Join("JOIN events AS e ON e.id = m.event_id").
		Where("m.id = ?", matchID).
		Scan(ctx, scope)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("predictiondb.GetMatchScope: %w", err)
	}
	return scope, nil
}
