// Copyright (C) 2026 Noldarim
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
)

// AppConfig holds all application configuration.
// It is instantiated by NewConfig() and passed to components that need it (dependency injection).
type AppConfig struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Database  DatabaseConfig  `mapstructure:"database"`
	EmailJS   EmailJSConfig   `mapstructure:"emailjs"`
	Content   ContentConfig   `mapstructure:"content"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
	TUI       TUIConfig       `mapstructure:"tui"`
}

// DatabaseConfig holds the message archive database configuration.
// The archive is off unless Enabled is set.
type DatabaseConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

// LogConfig holds comprehensive logging configuration
type LogConfig struct {
	Level    string            `mapstructure:"level"`
	Format   string            `mapstructure:"format"`
	Output   []LogOutputConfig `mapstructure:"output"`
	Levels   map[string]string `mapstructure:"levels"`
	Context  LogContextConfig  `mapstructure:"context"`
	Sampling LogSamplingConfig `mapstructure:"sampling"`
}

// LogOutputConfig defines where logs are written
type LogOutputConfig struct {
	Type    string          `mapstructure:"type"` // "file" or "console"
	Enabled bool            `mapstructure:"enabled"`
	Path    string          `mapstructure:"path"`
	Rotate  LogRotateConfig `mapstructure:"rotate"` // For file output
}

// LogRotateConfig defines log rotation settings
type LogRotateConfig struct {
	MaxSizeMB  int  `mapstructure:"max_size_mb"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAgeDays int  `mapstructure:"max_age_days"`
	Compress   bool `mapstructure:"compress"`
}

// LogContextConfig defines what context to include in logs
type LogContextConfig struct {
	IncludeCaller     bool   `mapstructure:"include_caller"`
	IncludeTimestamp  bool   `mapstructure:"include_timestamp"`
	IncludeStackTrace string `mapstructure:"include_stack_trace"`
}

// LogSamplingConfig defines log sampling settings
type LogSamplingConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	Initial    uint32        `mapstructure:"initial"`
	Thereafter uint32        `mapstructure:"thereafter"`
	Tick       time.Duration `mapstructure:"tick"`
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"` // Empty = allow all (development); set for production
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
	AdminToken     string        `mapstructure:"admin_token"` // Enables GET /api/v1/messages when set
	DevMode        bool          `mapstructure:"dev_mode"`    // Re-parse templates from disk on every request
	TemplatesDir   string        `mapstructure:"templates_dir"`
	ShutdownGrace  time.Duration `mapstructure:"shutdown_grace"`
}

// EmailJSConfig holds the delivery credentials. The three identifiers are
// opaque values issued by the EmailJS dashboard.
type EmailJSConfig struct {
	BaseURL    string        `mapstructure:"base_url"`
	ServiceID  string        `mapstructure:"service_id"`
	TemplateID string        `mapstructure:"template_id"`
	PublicKey  string        `mapstructure:"public_key"`
	PrivateKey string        `mapstructure:"private_key"` // Optional accessToken for strict mode
	Timeout    time.Duration `mapstructure:"timeout"`     // Zero means wait for the API
}

// ContentConfig points at an optional YAML override for the portfolio tables.
type ContentConfig struct {
	Path  string `mapstructure:"path"`
	Watch bool   `mapstructure:"watch"`
}

// TelemetryConfig configures OTLP trace export. Empty endpoint disables it.
type TelemetryConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	Insecure    bool   `mapstructure:"insecure"`
	ServiceName string `mapstructure:"service_name"`
}

// TUIConfig holds terminal client settings.
type TUIConfig struct {
	Theme     string `mapstructure:"theme"` // "dark" or "light"
	AltScreen bool   `mapstructure:"alt_screen"`
	Mouse     bool   `mapstructure:"mouse"`
}

// NewConfig creates a new AppConfig by reading from a file, environment variables,
// and applying defaults.
func NewConfig(configPath string) (*AppConfig, error) {
	cfg := defaultConfig()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/portfolio/")
		v.AddConfigPath("$HOME/.portfolio")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindEnv(v)

	// Read the config file. It's okay if it doesn't exist.
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.expandPaths()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// bindEnv registers keys that have no config-file value so AutomaticEnv can
// still populate them during Unmarshal.
func bindEnv(v *viper.Viper) {
	for _, key := range []string{
		"emailjs.service_id",
		"emailjs.template_id",
		"emailjs.public_key",
		"emailjs.private_key",
		"server.admin_token",
		"telemetry.endpoint",
		"database.password",
	} {
		_ = v.BindEnv(key)
	}
}

// defaultConfig returns an AppConfig with default values.
func defaultConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Host:          "127.0.0.1",
			Port:          8080,
			MaxBodyBytes:  1 << 20,
			ShutdownGrace: 15 * time.Second,
		},
		Log: LogConfig{
			Level:  "INFO",
			Format: "console",
			Output: []LogOutputConfig{
				{
					Type:    "console",
					Enabled: true,
				},
				{
					Type:    "file",
					Enabled: false,
					Path:    "./logs/portfolio.log",
					Rotate: LogRotateConfig{
						MaxSizeMB:  100,
						MaxBackups: 7,
						MaxAgeDays: 30,
						Compress:   true,
					},
				},
			},
			Levels: map[string]string{
				"api":       "INFO",
				"contact":   "INFO",
				"content":   "INFO",
				"database":  "INFO",
				"telemetry": "WARN",
				"tui":       "WARN",
			},
			Context: LogContextConfig{
				IncludeCaller:     false,
				IncludeTimestamp:  true,
				IncludeStackTrace: "ERROR",
			},
			Sampling: LogSamplingConfig{
				Enabled:    false,
				Initial:    100,
				Thereafter: 100,
				Tick:       time.Second,
			},
		},
		Database: DatabaseConfig{
			Enabled:  false,
			Driver:   "sqlite",
			Database: "portfolio.db",
			Host:     "localhost",
			Port:     5432,
			SSLMode:  "disable",
		},
		EmailJS: EmailJSConfig{
			BaseURL:    "https://api.emailjs.com",
			TemplateID: "contact_form",
		},
		Content: ContentConfig{
			Watch: true,
		},
		Telemetry: TelemetryConfig{
			ServiceName: "portfolio",
		},
		TUI: TUIConfig{
			Theme:     "dark",
			AltScreen: true,
			Mouse:     true,
		},
	}
}

// expandPaths expands ~ and environment variables in path configuration values
func (c *AppConfig) expandPaths() {
	if c.Content.Path != "" {
		c.Content.Path = expandPath(c.Content.Path)
	}
	if c.Server.TemplatesDir != "" {
		c.Server.TemplatesDir = expandPath(c.Server.TemplatesDir)
	}
	for i := range c.Log.Output {
		if c.Log.Output[i].Path != "" {
			c.Log.Output[i].Path = expandPath(c.Log.Output[i].Path)
		}
	}
	if c.Database.Driver == "sqlite" && c.Database.Database != ":memory:" {
		c.Database.Database = expandPath(c.Database.Database)
	}
}

// expandPath expands ~ to home directory and environment variables
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(homeDir, path[1:])
		}
	}

	return os.ExpandEnv(path)
}

// validate checks if the configuration is valid.
func (c *AppConfig) validate() error {
	validLogLevels := map[string]bool{
		"TRACE": true, "DEBUG": true, "INFO": true, "WARN": true, "ERROR": true, "FATAL": true, "PANIC": true,
	}
	if !validLogLevels[strings.ToUpper(c.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("server.max_body_bytes must be positive, got: %d", c.Server.MaxBodyBytes)
	}

	if c.Database.Enabled {
		switch c.Database.Driver {
		case "sqlite", "postgres":
		case "":
			return errors.New("database driver is required when the archive is enabled")
		default:
			return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
		}
	}

	if c.EmailJS.BaseURL == "" {
		return errors.New("emailjs.base_url is required")
	}
	if c.EmailJS.Timeout < 0 {
		return fmt.Errorf("emailjs.timeout must not be negative, got: %s", c.EmailJS.Timeout)
	}

	if c.TUI.Theme != "dark" && c.TUI.Theme != "light" {
		return fmt.Errorf("tui.theme must be 'dark' or 'light', got: %s", c.TUI.Theme)
	}

	return nil
}

// Configured reports whether all three delivery credentials are present.
func (ec *EmailJSConfig) Configured() bool {
	return ec.ServiceID != "" && ec.TemplateID != "" && ec.PublicKey != ""
}

// Addr returns the listen address.
func (sc *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", sc.Host, sc.Port)
}

// SetAddr overrides Host and Port from a host:port string.
func (sc *ServerConfig) SetAddr(addr string) error {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid listen address %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return fmt.Errorf("invalid listen port %q", portStr)
	}
	sc.Host, sc.Port = host, port
	return nil
}

// GetDSN returns the database connection string.
func (dc *DatabaseConfig) GetDSN() string {
	switch dc.Driver {
	case "sqlite":
		dsn := dc.Database
		if dsn == ":memory:" {
			dsn = "file::memory:?cache=shared"
		}
		return dsn
	case "postgres":
		return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			dc.Host, dc.Port, dc.Username, dc.Password, dc.Database, dc.SSLMode)
	default:
		return dc.Database
	}
}
