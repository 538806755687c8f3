package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"HTTP_ADDR", "STORE_DRIVER", "SQLITE_PATH", "POSTGRES_CONN", "CATALOG_URL", "CATALOG_TIMEOUT", "SUBMIT_DELAY", "LOG_LEVEL", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "data/freelancer.db", cfg.SQLitePath)
	assert.Equal(t, 500*time.Millisecond, cfg.SubmitDelay)
	assert.Equal(t, 5*time.Second, cfg.CatalogTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "MEMORY")
	t.Setenv("SUBMIT_DELAY", "0s")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("CATALOG_URL", "http://localhost:3000/data/projects.json")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, time.Duration(0), cfg.SubmitDelay)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "http://localhost:3000/data/projects.json", cfg.CatalogURL)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("HTTP_ADDR")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR=:9090\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown driver":        {"STORE_DRIVER": "mongo"},
		"postgres without dsn":  {"STORE_DRIVER": "postgres"},
		"bad duration":          {"SUBMIT_DELAY": "soon"},
		"negative delay":        {"SUBMIT_DELAY": "-1s"},
		"bad log level":         {"LOG_LEVEL": "chatty"},
		"catalog url not a url": {"CATALOG_URL": "not a url"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
			assert.Error(t, err)
		})
	}
}
