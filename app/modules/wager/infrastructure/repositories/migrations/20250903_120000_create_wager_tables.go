package wagermigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	wagerdb "github.com/bet-buddys/betbuddys-backend/app/modules/wager/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating group_events, fights, and wagers tables...")

		if _, err := db.NewCreateTable().Model((*wagerdb.GroupEvent)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*wagerdb.Fight)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*wagerdb.Wager)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		if _, err := db.NewRaw("CREATE UNIQUE INDEX IF NOT EXISTS uq_wagers_user_fight ON wagers (user_id, fight_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_group_events_group_id ON group_events (group_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_fights_group_event_id ON fights (group_event_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_wagers_fight_id ON wagers (fight_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_wagers_group_event_id ON wagers (group_event_id)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Wager tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping group_events, fights, and wagers tables...")

		if _, err := db.NewDropTable().Model((*wagerdb.Wager)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*wagerdb.Fight)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*wagerdb.GroupEvent)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Wager tables dropped successfully!")
		return nil
	})
}
