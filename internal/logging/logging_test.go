package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func TestNewWritesToConfiguredFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stockroom.log")

	logger, err := New(types.LogConfig{Level: "debug", File: path}, OutputStderr)
	require.NoError(t, err)

	logger.Warn("update rejected")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "update rejected")
	assert.Contains(t, string(data), "stockroom")
}

func TestNewFallbackOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fallback.log")

	logger, err := New(types.LogConfig{}, path)
	require.NoError(t, err)

	logger.Debug("hidden at info level")
	logger.Info("shown")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden at info level")
	assert.Contains(t, string(data), "shown")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(types.LogConfig{Level: "chatty"}, "")
	assert.Error(t, err)
}

