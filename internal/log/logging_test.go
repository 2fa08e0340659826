package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelTrace, ParseLevel("trace"))
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("loud"))
}

func TestSetupSplitsConsoleByLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger, closers, err := setup(&stdout, &stderr, "debug", "text", "")
	require.NoError(t, err)
	assert.Empty(t, closers)

	logger.Debug("decoded pin", "pin", "pin03")
	logger.Error("save failed")

	assert.Contains(t, stdout.String(), "decoded pin")
	assert.NotContains(t, stdout.String(), "save failed")
	assert.Contains(t, stderr.String(), "save failed")
	assert.NotContains(t, stderr.String(), "decoded pin")
}

func TestSetupWithFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "gpiomap.log")
	logger, closers, err := setup(&stdout, &stderr, "info", "json", path)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Info("assigned", "pin", "pin05")
	logger.Debug("hidden")
	require.NoError(t, closers[0].Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"assigned"`)
	assert.NotContains(t, string(data), "hidden")
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "assigned")
}

func TestSetupRejectsUnknownFormat(t *testing.T) {
	_, _, err := setup(&bytes.Buffer{}, &bytes.Buffer{}, "info", "xml", "")
	assert.Error(t, err)
}
