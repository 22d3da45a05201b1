package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, slog.LevelWarn, false)

	l.Info("hidden")
	l.Warn("shown", "radius", 10)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "radius=10")
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, slog.LevelInfo, true)

	l.Info("reset", "objects", 12)

	assert.Contains(t, buf.String(), `"objects":12`)
}

func TestWithAttachesAttributes(t *testing.T) {
	var buf bytes.Buffer
	prev := logger
	logger = newLogger(&buf, slog.LevelInfo, false)
	t.Cleanup(func() { logger = prev })

	With("field", "targets").Info("objects reinitialized", "objects", 14)

	out := buf.String()
	assert.Contains(t, out, "field=targets")
	assert.Contains(t, out, "objects=14")
}
