package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Contains(t, cfg.DBPath, "releaser.db")
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.True(t, cfg.Notify)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	t.Setenv("RELEASER_DB", "/tmp/r.db")
	t.Setenv("RELEASER_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("RELEASER_NOTIFY", "false")
	t.Setenv("RELEASER_LOG_FILE", "/tmp/r.log")
	t.Setenv("RELEASER_LOG_LEVEL", "DEBUG")
	t.Setenv("RELEASER_LOG_MAX_SIZE_MB", "50")
	t.Setenv("RELEASER_LOG_MAX_BACKUPS", "0")

	cfg := Load()
	assert.Equal(t, "/tmp/r.db", cfg.DBPath)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.False(t, cfg.Notify)
	assert.Equal(t, "/tmp/r.log", cfg.Log.File)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 50, cfg.Log.MaxSizeMB)
	assert.Equal(t, 0, cfg.Log.MaxBackups)
}

func TestLoad_MalformedValuesKeepDefaults(t *testing.T) {
	t.Setenv("RELEASER_NOTIFY", "sometimes")
	t.Setenv("RELEASER_LOG_MAX_SIZE_MB", "huge")
	t.Setenv("RELEASER_LOG_MAX_BACKUPS", "-2")
	t.Setenv("RELEASER_LOG_MAX_AGE_DAYS", "0")

	cfg := Load()
	def := Default()
	assert.True(t, cfg.Notify)
	assert.Equal(t, def.Log.MaxSizeMB, cfg.Log.MaxSizeMB)
	assert.Equal(t, def.Log.MaxBackups, cfg.Log.MaxBackups)
	assert.Equal(t, def.Log.MaxAgeDays, cfg.Log.MaxAgeDays)
}
