package main

import (
	"github.com/spf13/cobra"

	"github.com/Avisha2803/resort-booking-agent/internal/config"
	"github.com/Avisha2803/resort-booking-agent/internal/service/dashboard"
	"github.com/Avisha2803/resort-booking-agent/internal/storage/sqlite"
)

var dashboardCmd = &cobra.Command{
	Use:          "dashboard",
	Short:        "Open the staff dashboard",
	Long:         `Opens a terminal dashboard for staff to review orders and service requests and move them through their statuses.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		appCfg := config.NewAppConfig(ctx)
		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		return dashboard.Run(ctx, sqlite.NewOrdersRepo(db), sqlite.NewRequestsRepo(db))
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
