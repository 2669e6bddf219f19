// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath        string
	ProfileID     string
	WindowDays    int
	WeightSamples int
	LogLevel      slog.Level
	LogUseCases   bool
	HTTPAddr      string
}

// DefaultConfig returns the settings used when no variable is set. The
// database lives under ~/.meridian.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath:        filepath.Join(home, ".meridian", "meridian.db"),
		ProfileID:     "default",
		WindowDays:    7,
		WeightSamples: 8,
		LogLevel:      slog.LevelWarn,
		HTTPAddr:      "127.0.0.1:8787",
	}, nil
}

// LoadDotEnv loads variables from path into the environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// LoadConfig reads MERIDIAN_* variables, falling back to defaults for any
// unset or malformed value.
func LoadConfig() (Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv("MERIDIAN_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("MERIDIAN_PROFILE"); v != "" {
		cfg.ProfileID = v
	}
	if v := os.Getenv("MERIDIAN_WINDOW_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WindowDays = n
		}
	}
	if v := os.Getenv("MERIDIAN_WEIGHT_SAMPLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 2 {
			cfg.WeightSamples = n
		}
	}
	if v := os.Getenv("MERIDIAN_LOG_LEVEL"); v != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.ToUpper(v))); err == nil {
			cfg.LogLevel = level
		}
	}
	if v := os.Getenv("MERIDIAN_LOG_USECASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("MERIDIAN_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	return cfg, nil
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}
