// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/noldarim/portfolio/internal/archive"
	"github.com/noldarim/portfolio/internal/logger"
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the message archive schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.GetLogger("cli")

			db, err := archive.NewGormDB(&a.cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			log.Info().Str("driver", a.cfg.Database.Driver).Msg("Running archive migrations")
			if err := db.AutoMigrate(); err != nil {
				return err
			}
			if err := db.ValidateSchema(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ archive schema up to date")
			return nil
		},
	}
}
