// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package archive

import (
	"path/filepath"
	"testing"

	"github.com/noldarim/portfolio/internal/config"

	"github.com/stretchr/testify/require"
)

// UseFreshDatabase creates a migrated SQLite database in a temp directory
// and closes it when the test ends.
func UseFreshDatabase(t testing.TB) *GormDB {
	t.Helper()
	cfg := &config.DatabaseConfig{
		Driver:   "sqlite",
		Database: filepath.Join(t.TempDir(), "archive.db"),
	}

	db, err := NewGormDB(cfg)
	require.NoError(t, err, "Failed to create database")
	require.NoError(t, db.AutoMigrate(), "Failed to run migrations")

	t.Cleanup(func() { _ = db.Close() })
	return db
}
