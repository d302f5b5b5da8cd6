// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package archive records contact submissions in a relational database.
package archive

import (
	"context"
	"fmt"
	"sync"

	"github.com/noldarim/portfolio/internal/config"
	applogger "github.com/noldarim/portfolio/internal/logger"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	log     *zerolog.Logger
	logOnce sync.Once
)

func getLog() *zerolog.Logger {
	logOnce.Do(func() {
		l := applogger.GetDatabaseLogger()
		log = &l
	})
	return log
}

// DefaultListLimit bounds ListRecent when the caller passes zero.
const DefaultListLimit = 50

// GormDB wraps the GORM database connection
type GormDB struct {
	db *gorm.DB
}

// NewGormDB creates a new GORM database connection
func NewGormDB(cfg *config.DatabaseConfig) (*GormDB, error) {
	var dialector gorm.Dialector

	switch cfg.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.GetDSN())
	case "postgres":
		dialector = postgres.Open(cfg.GetDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	getLog().Debug().Str("driver", cfg.Driver).Msg("Archive database opened")
	return &GormDB{db: db}, nil
}

// AutoMigrate runs database migrations
func (db *GormDB) AutoMigrate() error {
	if err := db.db.AutoMigrate(&ContactMessage{}); err != nil {
		return fmt.Errorf("failed to migrate contact_messages: %w", err)
	}
	return nil
}

// ValidateSchema checks that the contact_messages table exists with every
// column the model writes.
func (db *GormDB) ValidateSchema() error {
	if !db.db.Migrator().HasTable(&ContactMessage{}) {
		return fmt.Errorf("missing tables: [contact_messages]\n\nRun 'portfolio migrate' to create the required tables")
	}

	var missing []string
	for _, col := range []string{"id", "name", "email", "message", "status", "error", "request_id", "created_at"} {
		if !db.db.Migrator().HasColumn(&ContactMessage{}, col) {
			missing = append(missing, "contact_messages."+col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing columns: %v\n\nRun 'portfolio migrate' to add the required columns", missing)
	}
	return nil
}

// Close closes the database connection
func (db *GormDB) Close() error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Record inserts one message.
func (db *GormDB) Record(ctx context.Context, msg *ContactMessage) error {
	if err := db.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to record contact message: %w", err)
	}
	return nil
}

// ListRecent returns the newest messages first.
func (db *GormDB) ListRecent(ctx context.Context, limit int) ([]ContactMessage, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	var msgs []ContactMessage
	err := db.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&msgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return msgs, nil
}

// Count returns the number of archived messages with the given status, or
// all of them when status is empty.
func (db *GormDB) Count(ctx context.Context, status string) (int64, error) {
	q := db.db.WithContext(ctx).Model(&ContactMessage{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return n, nil
}
