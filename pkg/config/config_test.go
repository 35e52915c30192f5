package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/serenity/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, ":8080", cfg.GetString("API_ADDRESS"))
	assert.Equal(t, "memory", cfg.GetString("STORAGE_DRIVER"))
	assert.Equal(t, 24*time.Hour, cfg.GetDuration("TOKEN_TTL"))
	assert.Equal(t, 0, cfg.GetInt("REDIS_DB"))
	assert.Equal(t, "gpt-4o-mini", cfg.GetString("LLM_MODEL"))
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
	assert.Equal(t, time.Local, cfg.Location())
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "STORAGE_DRIVER=redis\nREDIS_DB=3\nTOKEN_TTL=2h\nLOG_LEVEL=debug\nTIMEZONE=UTC\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	for _, key := range []string{"STORAGE_DRIVER", "REDIS_DB", "TOKEN_TTL", "LOG_LEVEL", "TIMEZONE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	cfg := config.Load(path)
	assert.Equal(t, "redis", cfg.GetString("STORAGE_DRIVER"))
	assert.Equal(t, 3, cfg.GetInt("REDIS_DB"))
	assert.Equal(t, 2*time.Hour, cfg.GetDuration("TOKEN_TTL"))
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestEnvironmentWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_VERSION=0.0.1\n"), 0o600))
	t.Setenv("APP_VERSION", "2.1.0")
	cfg := config.Load(path)
	assert.Equal(t, "2.1.0", cfg.GetString("APP_VERSION"))
}

func TestUnknownValuesFallBack(t *testing.T) {
	t.Setenv("TIMEZONE", "Mars/Olympus_Mons")
	t.Setenv("LOG_LEVEL", "loud")
	cfg := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Equal(t, time.Local, cfg.Location())
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}
