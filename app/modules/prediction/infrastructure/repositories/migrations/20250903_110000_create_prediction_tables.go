package predictionmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	predictiondb "github.com/bet-buddys/betbuddys-backend/app/modules/prediction/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating predictions table...")

		if _, err := db.NewCreateTable().Model((*predictiondb.Prediction)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewRaw("CREATE UNIQUE INDEX IF NOT EXISTS uq_predictions_user_event_match ON predictions (user_id, event_id, match_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_predictions_match_id ON predictions (match_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_predictions_event_id ON predictions (event_id)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Predictions table created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping predictions table...")

		if _, err := db.NewDropTable().Model((*predictiondb.Prediction)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Predictions table dropped successfully!")
		return nil
	})
}
