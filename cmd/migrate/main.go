// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"
	"os"

	"github.com/noldarim/portfolio/internal/archive"
	"github.com/noldarim/portfolio/internal/config"
)

func main() {
	// Load configuration
	cfg, err := config.NewConfig("")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	db, err := archive.NewGormDB(&cfg.Database)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	fmt.Println("🚀 Starting archive migration...")
	fmt.Printf("Driver: %s\n", cfg.Database.Driver)

	if err := db.AutoMigrate(); err != nil {
		fmt.Printf("❌ Migration failed: %v\n", err)
		os.Exit(1)
	}

	if err := db.ValidateSchema(); err != nil {
		fmt.Printf("⚠️  Schema validation failed after migration: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("✅ contact_messages is ready to use")
}
