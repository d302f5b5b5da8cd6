// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/noldarim/portfolio/internal/config"
	"github.com/noldarim/portfolio/internal/logger"
	"github.com/noldarim/portfolio/internal/tui"
)

func newTUICommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the portfolio in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
				a.cfg.TUI.Theme = theme
			}
			if noMouse, _ := cmd.Flags().GetBool("no-mouse"); noMouse {
				a.cfg.TUI.Mouse = false
			}
			return a.runTUI(cmd.Context())
		},
	}
	cmd.Flags().String("theme", "", "start in the dark or light theme")
	cmd.Flags().Bool("no-mouse", false, "disable mouse support")
	return cmd
}

// quietLogs keeps log lines off the terminal the client draws on. File
// outputs stay as configured.
func quietLogs(cfg *config.LogConfig) error {
	quiet := *cfg
	quiet.Output = nil
	for _, out := range cfg.Output {
		if out.Type != "console" && out.Enabled {
			quiet.Output = append(quiet.Output, out)
		}
	}
	if len(quiet.Output) == 0 {
		logger.InitializeWithWriter(&quiet, io.Discard)
		return nil
	}
	return logger.Initialize(&quiet)
}

func (a *app) runTUI(parent context.Context) error {
	if err := quietLogs(&a.cfg.Log); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGTERM, os.Interrupt)
	defer stop()

	store, watcher, err := a.openStore()
	if err != nil {
		return err
	}

	d, err := newDelivery(a.cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	var versions <-chan int
	if watcher != nil {
		versions = watcher.Reloaded
		g.Go(func() error { return watcher.Run(gctx) })
	}
	g.Go(func() error {
		// Quitting the client stops the watcher too.
		defer cancel()
		return tui.StartTUI(gctx, a.cfg.TUI, store, d.Sender, versions)
	})
	return g.Wait()
}
