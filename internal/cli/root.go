// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli is the portfolio command line: the web server, the terminal
// client and a few maintenance commands.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/noldarim/portfolio/internal/config"
	"github.com/noldarim/portfolio/internal/logger"
)

const (
	appName    = "portfolio"
	appVersion = "0.1.0"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	cfg        *config.AppConfig
}

// loadConfig reads configuration and installs the global logger.
func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.NewConfig(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Initialize(&cfg.Log); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.cfg = cfg
	return nil
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:               appName,
		Short:             "Personal portfolio with a contact form",
		Long:              "Serves the portfolio page over HTTP, renders it in the terminal, and delivers contact messages through EmailJS.",
		SilenceUsage:      true,
		PersistentPreRunE: a.loadConfig,
		PersistentPostRun: func(*cobra.Command, []string) { _ = logger.CloseGlobal() },
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./config.yaml)")

	root.AddCommand(
		newServeCommand(a),
		newTUICommand(a),
		newSendCommand(a),
		newContentCommand(a),
		newMigrateCommand(a),
		newVersionCommand(),
	)
	return root
}

// Execute runs the CLI application
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Needs no configuration.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, appVersion)
		},
	}
}
