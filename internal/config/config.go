package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains runtime settings for the API server
type Config struct {
	Port            string // PORT, default 8080
	DatabaseURL     string // DATABASE_URL
	LogLevel        string // LOG_LEVEL, default info
	SchemaPath      string // SCHEMA_PATH
	APITokens       []string
	ShutdownTimeout time.Duration
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv without touching .env files.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		Port:            "8080",
		LogLevel:        "info",
		SchemaPath:      "internal/store/schema.sql",
		ShutdownTimeout: 10 * time.Second,
	}

	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv("SCHEMA_PATH"); v != "" {
		cfg.SchemaPath = v
	}
	if v := getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid SHUTDOWN_TIMEOUT %q: %w", v, err)
		}
		cfg.ShutdownTimeout = d
	}

	cfg.DatabaseURL = getenv("DATABASE_URL")
	cfg.APITokens = splitList(getenv("API_TOKENS"))

	var missingVars []string
	if cfg.DatabaseURL == "" {
		missingVars = append(missingVars, "DATABASE_URL")
	}
	if len(missingVars) > 0 {
		return cfg, fmt.Errorf("missing required environment variables: %s", strings.Join(missingVars, ", "))
	}

	return cfg, nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
