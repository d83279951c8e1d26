package main

import (
	"github.com/spf13/cobra"

	"github.com/Avisha2803/resort-booking-agent/internal/config"
	"github.com/Avisha2803/resort-booking-agent/internal/storage/sqlite"
	"github.com/Avisha2803/resort-booking-agent/pkg/log"
)

var seedCmd = &cobra.Command{
	Use:          "seed",
	Short:        "Load the restaurant menu into the database",
	Long:         `Inserts the standard menu into the database. Items already present are left untouched, so the command is safe to rerun.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		appCfg := config.NewAppConfig(ctx)
		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		added, skipped, err := sqlite.NewMenuRepo(db).SeedMenu(ctx)
		if err != nil {
			return err
		}

		logger.Info().Int("added", added).Int("skipped", skipped).Msg("menu seed complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
