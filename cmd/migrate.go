package main

import (
	"github.com/spf13/cobra"

	"taxipark/config"
	"taxipark/pkg/logger"
	"taxipark/storage/postgres"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate up|down",
	Short:     "Apply or roll back the database schema",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
		defer func() { _ = log.Sync() }()

		return postgres.Migrate(cfg.PostgresURL(), args[0] == "up", log)
	},
}
