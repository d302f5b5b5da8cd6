// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/noldarim/portfolio/internal/content"
	"github.com/noldarim/portfolio/internal/logger"
	"github.com/noldarim/portfolio/internal/server"
	"github.com/noldarim/portfolio/internal/telemetry"
)

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio page and contact API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
				if err := a.cfg.Server.SetAddr(addr); err != nil {
					return err
				}
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().String("addr", "", "listen address host:port (overrides server.host and server.port)")
	return cmd
}

// openStore loads content and, when configured, starts watching its file.
// The watcher is nil for built-in content.
func (a *app) openStore() (*content.Store, *content.Watcher, error) {
	store, err := content.NewStore(a.cfg.Content.Path)
	if err != nil {
		return nil, nil, err
	}
	if store.Path() == "" || !a.cfg.Content.Watch {
		return store, nil, nil
	}
	w, err := content.NewWatcher(store)
	if err != nil {
		return nil, nil, err
	}
	return store, w, nil
}

func (a *app) serve(parent context.Context) error {
	log := logger.GetLogger("cli")
	cfg := a.cfg

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	tp, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		return err
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Telemetry shutdown failed")
		}
	}()

	store, watcher, err := a.openStore()
	if err != nil {
		return err
	}

	d, err := newDelivery(cfg)
	if err != nil {
		return err
	}
	defer d.Close()

	deps := server.Deps{
		Store:    store,
		Sender:   d.Sender,
		Messages: d.Messages,
	}
	if watcher != nil {
		deps.ContentVersions = watcher.Reloaded
	}

	srv, err := server.New(&cfg.Server, deps)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	if watcher != nil {
		g.Go(func() error { return watcher.Run(gctx) })
	}
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("Server shut down")
	return nil
}
