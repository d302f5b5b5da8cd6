// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server serves the portfolio page, its JSON API and live sessions.
// Each live session owns its own view state and contact form; content
// reloads are fanned out to every connected session.
package server

import (
	"context"
	"sync"

	"github.com/noldarim/portfolio/internal/logger"

	"github.com/rs/zerolog"
)

var (
	log     *zerolog.Logger
	logOnce sync.Once
)

func getLog() *zerolog.Logger {
	logOnce.Do(func() {
		l := logger.GetAPILogger()
		log = &l
	})
	return log
}

// ContentBroadcaster reads content versions published by the content
// watcher and tells every live session to refresh.
type ContentBroadcaster struct {
	versions <-chan int
	sessions *SessionRegistry
}

// NewContentBroadcaster creates a broadcaster over versions. A nil channel
// is valid and never fires.
func NewContentBroadcaster(versions <-chan int, sessions *SessionRegistry) *ContentBroadcaster {
	return &ContentBroadcaster{
		versions: versions,
		sessions: sessions,
	}
}

// Run reads versions until the channel is closed or context is cancelled.
func (b *ContentBroadcaster) Run(ctx context.Context) {
	for {
		select {
		case version, ok := <-b.versions:
			if !ok {
				getLog().Info().Msg("Content broadcaster stopped (channel closed)")
				return
			}
			b.dispatch(version)
		case <-ctx.Done():
			getLog().Debug().Msg("Content broadcaster stopped (context cancelled)")
			return
		}
	}
}

func (b *ContentBroadcaster) dispatch(version int) {
	if b.sessions == nil {
		return
	}
	n := b.sessions.Broadcast(wsOutMessage{Type: "content", Version: version})
	getLog().Info().Int("version", version).Int("sessions", n).Msg("Content reload broadcast")
}
