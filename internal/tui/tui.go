// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tui is the terminal rendition of the portfolio page.
package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/noldarim/portfolio/internal/config"
	"github.com/noldarim/portfolio/internal/contact"
	"github.com/noldarim/portfolio/internal/content"
	"github.com/noldarim/portfolio/internal/logger"
	"github.com/noldarim/portfolio/internal/tui/messages"
	"github.com/noldarim/portfolio/internal/viewstate"
)

var (
	log     *zerolog.Logger
	logOnce sync.Once
)

func getLog() *zerolog.Logger {
	logOnce.Do(func() {
		l := logger.GetTUILogger()
		log = &l
	})
	return log
}

// StartTUI runs the terminal client until the user quits or ctx is
// cancelled. versions, when non-nil, delivers content reload notifications.
func StartTUI(ctx context.Context, cfg config.TUIConfig, store *content.Store, sender contact.Sender, versions <-chan int) error {
	theme, err := viewstate.ParseTheme(cfg.Theme)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	p := tea.NewProgram(NewMainModel(ctx, store, sender, theme), opts...)

	if versions != nil {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case v, ok := <-versions:
					if !ok {
						return
					}
					p.Send(messages.ContentReloadedMsg{Version: v})
				}
			}
		}()
	}

	getLog().Info().Str("theme", theme.String()).Msg("Starting terminal client")
	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
