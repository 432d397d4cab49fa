package wagerservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	wagerdb "github.com/bet-buddys/betbuddys-backend/app/modules/wager/infrastructure/repositories"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
)

const (
	minConfidence = 1
	maxConfidence = 100
)

// PlaceWager records a user's wager on a fight. At most one wager exists per
// (user, fight); placing again overwrites the pick, method, and confidence and
// clears any earlier judgment. Confidence outside [1,100] is rejected.
func (s *WagerService) PlaceWager(ctx context.Context, input PlaceWagerInput) (*wagerdb.Wager, error) {
	return withTelemetry(s, ctx, "PlaceWager", func(ctx context.Context) (*wagerdb.Wager, error) {
		if input.UserID == "" || input.GroupEventID == "" || input.FightID == "" {
			return nil, fmt.Errorf("%w: user id, group event id, and fight id are required", ErrValidation)
		}
		if input.PredictedWinner == "" || input.Method == "" {
			return nil, fmt.Errorf("%w: predicted winner and method are required", ErrValidation)
		}
		if input.Confidence < minConfidence || input.Confidence > maxConfidence {
			return nil, fmt.Errorf("%w: confidence %d outside [%d,%d]", ErrValidation, input.Confidence, minConfidence, maxConfidence)
		}

		wager := &wagerdb.Wager{
			ID:              sharedtypes.WagerID(uuid.New().String()),
			UserID:          input.UserID,
			UserName:        input.UserName,
			GroupEventID:    input.GroupEventID,
			FightID:         input.FightID,
			PredictedWinner: input.PredictedWinner,
			Method:          input.Method,
			Confidence:      input.Confidence,
		}

		saved, err := s.repo.UpsertWager(ctx, s.db, wager)
		if err != nil {
			return nil, fmt.Errorf("failed to save wager: %w", err)
		}

		// A fresh insert leaves updated_at NULL; a conflict update sets it.
		created := saved.UpdatedAt == nil
		s.metrics.RecordWagerUpsert(ctx, created)

		s.logger.InfoContext(ctx, "Wager saved",
			attr.ExtractCorrelationID(ctx),
			attr.String("wager_id", string(saved.ID)),
			attr.String("user_id", string(saved.UserID)),
			attr.String("fight_id", string(saved.FightID)),
			attr.Bool("created", created),
		)
		return saved, nil
	})
}
