package logging

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jask/cardcheck/internal/config"
)

func TestNewRespectsLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, config.LogConfig{Level: "warn", Format: "json"})

	logger.Info("hidden")
	logger.Warn("shown", "kind", "InvalidCode")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"kind":"InvalidCode"`)
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	require.Equal(t, slog.LevelError, ParseLevel(" error "))
	require.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestOpenTUIWithoutFileDiscards(t *testing.T) {
	cfg := config.Default()
	logger, closer, err := Open(cfg)
	require.NoError(t, err)
	require.NotNil(t, logger)
	require.NoError(t, closer.Close())
}

func TestOpenWritesFile(t *testing.T) {
	cfg := config.Default()
	cfg.Log.File = filepath.Join(t.TempDir(), "cardcheck.log")

	logger, closer, err := Open(cfg)
	require.NoError(t, err)
	logger.Info("started", "mode", cfg.UI.Mode)
	require.NoError(t, closer.Close())
	require.FileExists(t, cfg.Log.File)
}
