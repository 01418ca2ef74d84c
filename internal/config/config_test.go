package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.ServerPort)
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.GeneratorModelName)
	assert.InDelta(t, 0.3, float64(cfg.Temperature), 0.0001)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	// Absence of the API key is not an error at load time.
	assert.Empty(t, cfg.GeminiAPIKey)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	content := "SERVER_PORT=9000\nGEMINI_API_KEY=test-key\nLOG_LEVEL=debug\nALLOWED_ORIGINS=https://example.org\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0600))

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "test-key", cfg.GeminiAPIKey)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, []string{"https://example.org"}, cfg.AllowedOrigins)
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want slog.Level
	}{
		{"debug", "debug", slog.LevelDebug},
		{"warn", "warn", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"info", "info", slog.LevelInfo},
		{"mixed case", "DEBUG", slog.LevelDebug},
		{"unknown falls back to info", "loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLogLevel(tt.raw))
		})
	}
}

func TestSplitOrigins(t *testing.T) {
	assert.Equal(t,
		[]string{"http://localhost:3000", "http://localhost:5173"},
		splitOrigins(" http://localhost:3000 ,http://localhost:5173,"))
	assert.Empty(t, splitOrigins("  ,  "))
}
