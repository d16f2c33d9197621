package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}

	return out
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    LogLevel
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"", LevelInfo, false},
		{" warning ", LevelWarn, false},
		{"error", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoggerLevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelInfo, Format: "json", Output: &buf})

	ctx := WithRequestID(context.Background(), "req-123")
	logger.Debug(ctx, "hidden")
	logger.WithComponent("catalog").With("count", 4).Info(ctx, "loaded")
	logger.Error(ctx, errors.New("boom"), "failed", "path", "/examples")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)

	assert.Equal(t, "loaded", lines[0]["msg"])
	assert.Equal(t, "catalog", lines[0]["component"])
	assert.Equal(t, "req-123", lines[0]["request_id"])
	assert.EqualValues(t, 4, lines[0]["count"])

	assert.Equal(t, "ERROR", lines[1]["level"])
	assert.Equal(t, "boom", lines[1]["error"])
	assert.Equal(t, "/examples", lines[1]["path"])
}

func TestWithDoesNotLeakIntoParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf})
	_ = parent.With("child", true)

	parent.Info(context.Background(), "plain")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	_, ok := lines[0]["child"]
	assert.False(t, ok)
}

func TestRequestID(t *testing.T) {
	assert.Empty(t, RequestIDFrom(context.Background()))

	id := NewRequestID()
	assert.Len(t, id, 36)
	assert.NotEqual(t, id, NewRequestID())

	ctx := WithRequestID(context.Background(), id)
	assert.Equal(t, id, RequestIDFrom(ctx))
}

func TestSanitizeForLog(t *testing.T) {
	assert.Equal(t, "theme=darkinjected", SanitizeForLog("theme=dark\r\ninjected"))
	assert.Equal(t, "plain", SanitizeForLog("plain"))

	long := strings.Repeat("a", 300)
	got := SanitizeForLog(long)
	assert.True(t, strings.HasSuffix(got, "...[TRUNCATED]"))
	assert.Len(t, got, 256+len("...[TRUNCATED]"))
}

func TestPerfLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelInfo, Format: "json", Output: &buf})

	op := logger.StartOperation("generate")
	op.End(context.Background(), "examples", 3)

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "generate", lines[0]["operation"])
	assert.EqualValues(t, 3, lines[0]["examples"])
	assert.Contains(t, lines[0], "duration_ms")
}

func TestNewTestLoggerDiscards(t *testing.T) {
	logger := NewTestLogger()
	assert.NotPanics(t, func() {
		logger.Error(context.Background(), errors.New("x"), "nothing")
	})
}
