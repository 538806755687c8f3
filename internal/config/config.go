package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string        `validate:"required"`
	StoreDriver     string        `validate:"oneof=sqlite postgres memory"`
	SQLitePath      string        `validate:"required_if=StoreDriver sqlite"`
	PostgresConn    string        `validate:"required_if=StoreDriver postgres"`
	CatalogURL      string        `validate:"omitempty,url"`
	CatalogTimeout  time.Duration `validate:"gt=0"`
	SubmitDelay     time.Duration `validate:"gte=0"`
	LogLevel        slog.Level
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load reads an optional .env file and then the environment.
func Load(envFiles ...string) (*Config, error) {
	const op = "config.Load"

	// A missing .env is normal outside development.
	_ = godotenv.Load(envFiles...)

	cfg := &Config{
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		StoreDriver:  strings.ToLower(getEnv("STORE_DRIVER", "sqlite")),
		SQLitePath:   getEnv("SQLITE_PATH", "data/freelancer.db"),
		PostgresConn: getEnv("POSTGRES_CONN", ""),
		CatalogURL:   getEnv("CATALOG_URL", ""),
	}

	var err error
	if cfg.CatalogTimeout, err = getDuration("CATALOG_TIMEOUT", 5*time.Second); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if cfg.SubmitDelay, err = getDuration("SUBMIT_DELAY", 500*time.Millisecond); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = cfg.LogLevel.UnmarshalText([]byte(getEnv("LOG_LEVEL", "debug"))); err != nil {
		return nil, fmt.Errorf("%s: LOG_LEVEL: %w", op, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := getEnv(key, "")
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
