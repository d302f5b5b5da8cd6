// Copyright (C) 2025-2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package logger

import (
	"github.com/rs/zerolog"
)

// Static logger getters that map directly to config.yaml log.levels

// GetAPILogger returns a logger for the HTTP server and live sessions
func GetAPILogger() zerolog.Logger {
	return GetLogger("api")
}

// GetContactLogger returns a logger for contact delivery
func GetContactLogger() zerolog.Logger {
	return GetLogger("contact")
}

// GetContentLogger returns a logger for content loading and reloads
func GetContentLogger() zerolog.Logger {
	return GetLogger("content")
}

// GetDatabaseLogger returns a logger for the message archive
func GetDatabaseLogger() zerolog.Logger {
	return GetLogger("database")
}

// GetTelemetryLogger returns a logger for trace export
func GetTelemetryLogger() zerolog.Logger {
	return GetLogger("telemetry")
}

// GetTUILogger returns a logger for TUI components
func GetTUILogger() zerolog.Logger {
	return GetLogger("tui")
}
