package wagerservice

import (
	"context"
	"fmt"

	sharedevents "github.com/bet-buddys/betbuddys-backend/app/shared/events"
	sharedtypes "github.com/bet-buddys/betbuddys-backend/app/shared/types"
	"github.com/bet-buddys/betbuddys-backend/internal/eventutil"
	"github.com/bet-buddys/betbuddys-backend/internal/observability/attr"
)

// FinalizeFightResult records the authoritative result of a fight and
// announces it so the judging pass can run. Re-finalizing with the same result
// replays the announcement; judging is idempotent, so that is safe.
func (s *WagerService) FinalizeFightResult(ctx context.Context, fightID sharedtypes.FightID, winnerName, method string) error {
	_, err := withTelemetry(s, ctx, "FinalizeFightResult", func(ctx context.Context) (struct{}, error) {
		if fightID == "" || winnerName == "" || method == "" {
			return struct{}{}, fmt.Errorf("%w: fight id, winner, and method are required", ErrInvalidResult)
		}

		fight, err := s.repo.GetFight(ctx, s.db, fightID)
		if err != nil {
			return struct{}{}, err
		}

		if err := s.repo.SetFightResult(ctx, s.db, fightID, winnerName, method); err != nil {
			return struct{}{}, fmt.Errorf("failed to set fight result: %w", err)
		}

		payload := sharedevents.FightResultFinalizedPayloadV1{
			FightID:      fightID,
			GroupEventID: fight.GroupEventID,
			WinnerName:   winnerName,
			Method:       method,
		}
		msg, err := eventutil.NewMessage(payload, sharedevents.FightResultFinalizedV1)
		if err != nil {
			return struct{}{}, fmt.Errorf("failed to build result message: %w", err)
		}
		if err := s.eventBus.Publish(ctx, sharedevents.FightResultFinalizedV1, msg); err != nil {
			return struct{}{}, fmt.Errorf("failed to publish fight result: %w", err)
		}

		s.logger.InfoContext(ctx, "Fight result finalized",
			attr.ExtractCorrelationID(ctx),
			attr.String("fight_id", string(fightID)),
			attr.String("winner", winnerName),
			attr.String("method", method),
		)
		return struct{}{}, nil
	})
	return err
}
