package main

import (
	"github.com/spf13/cobra"

	"taxipark/config"
	"taxipark/pkg/logger"
	"taxipark/storage/postgres"
)

var resetDBCmd = &cobra.Command{
	Use:   "reset-db",
	Short: "Delete every manufacturer, car and driver",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
		defer func() { _ = log.Sync() }()

		pg, err := postgres.New(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer pg.Close()

		if err := pg.Truncate(cmd.Context()); err != nil {
			return err
		}
		log.Info("fleet tables truncated")
		return nil
	},
}
