package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	for _, k := range []string{"MERIDIAN_DB", "MERIDIAN_PROFILE", "MERIDIAN_WINDOW_DAYS", "MERIDIAN_WEIGHT_SAMPLES", "MERIDIAN_LOG_LEVEL", "MERIDIAN_LOG_USECASES", "MERIDIAN_HTTP_ADDR"} {
		t.Setenv(k, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join("/home/tester", ".meridian", "meridian.db"), cfg.DBPath)
	assert.Equal(t, "default", cfg.ProfileID)
	assert.Equal(t, 7, cfg.WindowDays)
	assert.Equal(t, 8, cfg.WeightSamples)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, "127.0.0.1:8787", cfg.HTTPAddr)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("MERIDIAN_DB", "/tmp/m.db")
	t.Setenv("MERIDIAN_PROFILE", "alice")
	t.Setenv("MERIDIAN_WINDOW_DAYS", "14")
	t.Setenv("MERIDIAN_WEIGHT_SAMPLES", "4")
	t.Setenv("MERIDIAN_LOG_LEVEL", "debug")
	t.Setenv("MERIDIAN_LOG_USECASES", "true")
	t.Setenv("MERIDIAN_HTTP_ADDR", ":9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/m.db", cfg.DBPath)
	assert.Equal(t, "alice", cfg.ProfileID)
	assert.Equal(t, 14, cfg.WindowDays)
	assert.Equal(t, 4, cfg.WeightSamples)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	t.Setenv("MERIDIAN_WINDOW_DAYS", "-3")
	t.Setenv("MERIDIAN_WEIGHT_SAMPLES", "1")
	t.Setenv("MERIDIAN_LOG_LEVEL", "loud")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.WindowDays)
	assert.Equal(t, 8, cfg.WeightSamples)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("MERIDIAN_PROFILE=fromfile\nMERIDIAN_HTTP_ADDR=:1234\n"), 0o600))

	t.Setenv("MERIDIAN_HTTP_ADDR", ":5555")
	t.Setenv("MERIDIAN_PROFILE", "")
	os.Unsetenv("MERIDIAN_PROFILE")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "fromfile", os.Getenv("MERIDIAN_PROFILE"))
	assert.Equal(t, ":5555", os.Getenv("MERIDIAN_HTTP_ADDR"), "existing variables win")

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}

func TestConfig_LoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := Config{LogLevel: slog.LevelWarn}.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("rule_skipped", "rule_id", "critical_sleep")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "rule_id=critical_sleep")
}
