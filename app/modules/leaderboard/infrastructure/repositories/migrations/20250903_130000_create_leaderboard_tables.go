package leaderboardmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	leaderboarddb "github.com/bet-buddys/betbuddys-backend/app/modules/leaderboard/infrastructure/repositories"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating leaderboard_entries and group_members tables...")

		if _, err := db.NewCreateTable().Model((*leaderboarddb.LeaderboardEntry)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewCreateTable().Model((*leaderboarddb.GroupMember)(nil)).IfNotExists().Exec(ctx); err != nil {
			return err
		}

		// NULL event_id rows are the group-wide scope; the expression index keeps
		// them unique per (user, group) too.
		if _, err := db.NewRaw("CREATE UNIQUE INDEX IF NOT EXISTS uq_leaderboard_user_scope ON leaderboard_entries (user_id, group_id, COALESCE(event_id, ''))").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_leaderboard_group_id ON leaderboard_entries (group_id)").Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewRaw("CREATE INDEX IF NOT EXISTS idx_leaderboard_event_id ON leaderboard_entries (event_id)").Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Leaderboard tables created successfully!")
		return nil
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping leaderboard_entries and group_members tables...")

		if _, err := db.NewDropTable().Model((*leaderboarddb.LeaderboardEntry)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}
		if _, err := db.NewDropTable().Model((*leaderboarddb.GroupMember)(nil)).IfExists().Exec(ctx); err != nil {
			return err
		}

		fmt.Println("Leaderboard tables dropped successfully!")
		return nil
	})
}
