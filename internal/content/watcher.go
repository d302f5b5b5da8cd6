// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 150 * time.Millisecond

// Watcher reloads a Store whenever its backing file changes.
type Watcher struct {
	store   *Store
	file    string
	watcher *fsnotify.Watcher
	// Reloaded receives the store version after each successful reload.
	// Sends never block; a full channel drops the notification.
	Reloaded chan int
}

// NewWatcher watches the directory holding the store's file. Watching the
// directory rather than the file survives editors that write via rename.
func NewWatcher(store *Store) (*Watcher, error) {
	if store.Path() == "" {
		return nil, errors.New("content store has no backing file to watch")
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	file, err := filepath.Abs(store.Path())
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to resolve content path: %w", err)
	}
	if err := fw.Add(filepath.Dir(file)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(file), err)
	}
	return &Watcher{
		store:    store,
		file:     file,
		watcher:  fw,
		Reloaded: make(chan int, 4),
	}, nil
}

// Run blocks until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	ticker := time.NewTicker(reloadDebounce)
	defer ticker.Stop()

	var pending time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.file {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < reloadDebounce {
				continue
			}
			pending = time.Time{}
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			getLog().Warn().Err(err).Msg("Content watcher error")
		}
	}
}

func (w *Watcher) reload() {
	if err := w.store.Reload(); err != nil {
		getLog().Error().Err(err).Str("path", w.file).Msg("Content reload failed, keeping previous snapshot")
		return
	}
	select {
	case w.Reloaded <- w.store.Version():
	default:
	}
}
