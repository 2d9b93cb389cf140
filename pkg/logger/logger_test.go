package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(buf *bytes.Buffer) *Logger {
	return NewWithHandler(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, getLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, getLogLevel("warning"))
	assert.Equal(t, slog.LevelError, getLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, getLogLevel(""))
}

func TestLogGuestSeatedFields(t *testing.T) {
	var buf bytes.Buffer
	l := captureLogger(&buf)

	table := 2
	l.LogGuestSeated(context.Background(), "e1", "g1", &table, "walk-in")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "Guest Seated", line["msg"])
	assert.Equal(t, "e1", line["event_id"])
	assert.Equal(t, float64(2), line["table_id"])
	assert.Equal(t, "walk-in", line["reason"])
}

func TestLogGuestSeatedWithoutTable(t *testing.T) {
	var buf bytes.Buffer
	l := captureLogger(&buf)

	l.LogGuestSeated(context.Background(), "e1", "g1", nil, "")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.NotContains(t, line, "table_id")
	assert.NotContains(t, line, "reason")
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	l := captureLogger(&buf).WithRequestID("req-1")

	l.LogSyncProcessed(context.Background(), "device-1", 3, 3)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-1", line["request_id"])
	assert.Equal(t, float64(3), line["conflicts"])
}
