// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package content

import (
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
		l := logger.GetContentLogger()
		log = &l
	})
	return log
}

// Store serves the current content snapshot. Snapshots are never mutated, so
// readers may hold one for as long as they like.
type Store struct {
	mu      sync.RWMutex
	current *Content
	path    string
	version int
}

// NewStore returns a store backed by path, or by the built-in tables when
// path is empty.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// NewStaticStore wraps an already-built snapshot.
func NewStaticStore(c *Content) *Store {
	return &Store{current: c, version: 1}
}

// Snapshot returns the current tables.
func (s *Store) Snapshot() *Content {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Version increases by one on every successful reload.
func (s *Store) Version() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Path is the backing file, empty for built-in content.
func (s *Store) Path() string {
	return s.path
}

// Reload re-reads the backing file. On error the previous snapshot stays.
func (s *Store) Reload() error {
	next := Default()
	if s.path != "" {
		c, err := LoadFile(s.path)
		if err != nil {
			return err
		}
		next = c
	}

	s.mu.Lock()
	s.current = next
	s.version++
	v := s.version
	s.mu.Unlock()

	getLog().Info().Str("path", s.path).Int("version", v).
		Int("projects", len(next.Projects)).Msg("Content loaded")
	return nil
}
