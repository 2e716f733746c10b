package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	cfg, err := NewConfig(Config{ConfigPath: "grid.hcl", HealthcheckPort: 8080})
	require.NoError(t, err)
	assert.Equal(t, "grid.hcl", cfg.ConfigPath)

	_, err = NewConfig(Config{})
	assert.ErrorContains(t, err, "ConfigPath is a required")

	_, err = NewConfig(Config{ConfigPath: "x", HealthcheckPort: 70000})
	assert.ErrorContains(t, err, "out of range")
}

func TestParseLogLevel(t *testing.T) {
	level, ok := ParseLogLevel("WARN")
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)

	_, ok = ParseLogLevel("verbose")
	assert.False(t, ok)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("debug", "json", &buf)
	logger.Debug("hello", "k", "v")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "v", rec["k"])

	buf.Reset()
	logger = newLogger("nonsense", "text", &buf)
	logger.Debug("hidden")
	logger.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}
