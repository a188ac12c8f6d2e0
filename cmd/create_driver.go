package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"taxipark/config"
	"taxipark/pkg/forms"
	"taxipark/pkg/logger"
	"taxipark/pkg/models"
	"taxipark/pkg/notify"
	"taxipark/service"
	"taxipark/storage/postgres"
)

func init() {
	f := createDriverCmd.Flags()
	f.String("username", "", "login name (required)")
	f.String("password", "", "password (required)")
	f.String("license-number", "", "license number, e.g. ABC12345")
	f.String("first-name", "", "first name")
	f.String("last-name", "", "last name")
	_ = createDriverCmd.MarkFlagRequired("username")
	_ = createDriverCmd.MarkFlagRequired("password")
}

// createDriverCmd bootstraps an account so someone can log in to an empty
// fleet.
var createDriverCmd = &cobra.Command{
	Use:   "create-driver",
	Short: "Create a driver account that can log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		username, _ := flags.GetString("username")
		password, _ := flags.GetString("password")
		license, _ := flags.GetString("license-number")
		firstName, _ := flags.GetString("first-name")
		lastName, _ := flags.GetString("last-name")

		if license != "" {
			if msg := forms.LicenseNumberError(license); msg != "" {
				return errors.New(msg)
			}
		}

		cfg := config.Load()
		log := logger.New(cfg.ServiceName, cfg.LoggerLevel)
		defer func() { _ = log.Sync() }()

		pg, err := postgres.New(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer pg.Close()

		svc := service.New(pg, notify.Nop{}, log, cfg.PageSize)
		d, err := svc.Driver().CreateUser(cmd.Context(), &models.Driver{
			Username:      username,
			FirstName:     firstName,
			LastName:      lastName,
			LicenseNumber: license,
		}, password)
		if err != nil {
			return fmt.Errorf("create driver %q: %w", username, err)
		}

		fmt.Printf("created driver %d (%s)\n", d.ID, d.Username)
		return nil
	},
}
