package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds process-wide settings for the CLI and HTTP server.
type Config struct {
	DBPath   string
	HTTPAddr string
	Notify   bool
	Log      LogConfig
}

// LogConfig controls slog output. An empty File logs to stderr.
type LogConfig struct {
	File       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Default returns a Config with sensible defaults. The database lives in
// ~/.releaser unless the home directory cannot be resolved.
func Default() Config {
	dbPath := "releaser.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".releaser", "releaser.db")
	}
	return Config{
		DBPath:   dbPath,
		HTTPAddr: ":8080",
		Notify:   true,
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 30,
		},
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset or malformed values.
func Load() Config {
	cfg := Default()

	if v := os.Getenv("RELEASER_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("RELEASER_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("RELEASER_NOTIFY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Notify = b
		}
	}
	if v := os.Getenv("RELEASER_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("RELEASER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = strings.ToLower(v)
	}
	applyIntEnv(&cfg.Log.MaxSizeMB, "RELEASER_LOG_MAX_SIZE_MB", 1)
	applyIntEnv(&cfg.Log.MaxBackups, "RELEASER_LOG_MAX_BACKUPS", 0)
	applyIntEnv(&cfg.Log.MaxAgeDays, "RELEASER_LOG_MAX_AGE_DAYS", 1)

	return cfg
}

func applyIntEnv(dst *int, envName string, min int) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < min {
		return
	}
	*dst = n
}
