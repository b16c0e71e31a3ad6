package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range testCases {
		assert.Equal(t, tt.expected, ParseLevel(tt.level))
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(&buf, "info", "json")

	Debug("hidden")
	Info("statement rendered", "customer", "Smith")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "statement rendered", entry["msg"])
	assert.Equal(t, "Smith", entry["customer"])
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(&buf, "warn", "text")

	Info("hidden")
	Warn("unused movie", "title", "Regent")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=\"unused movie\" title=Regent")
}
