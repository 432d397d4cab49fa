package eventmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	eventdb "github.com/bet-buddys/betbuddys-backend/app/modules/event/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating events and matches tables...")

		if _, err := db.NewCreateTable().Model((*eventdb.Event)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewCreateTable().Model((*eventdb.Match)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_events_group_id ON events (group_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_matches_event_id ON matches (event_id)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Event tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping events and matches tables...")

		if _, err := db.NewDropTable().Model((*eventdb.Match)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*eventdb.Event)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Event tables dropped successfully!")
		return nil
	})
}
