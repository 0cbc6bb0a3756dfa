package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test", zerolog.InfoLevel)
	require.NotNil(t, l)
}

// TestNew_RoleField verifies that every log entry contains the "role" field.
func TestNew_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test-role", zerolog.DebugLevel)

	l.Info().Msg("hello")

	assert.Equal(t, "test-role", decodeEntry(t, &buf)["role"])
}

func TestNew_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "ts-role", zerolog.DebugLevel)

	l.Info().Msg("ts check")

	_, hasTime := decodeEntry(t, &buf)["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNew_CallerField verifies that the caller is recorded under "func" as a
// function name.
func TestNew_CallerField(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "caller-role", zerolog.DebugLevel)

	l.Info().Msg("caller")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	fn, ok := decodeEntry(t, &buf)["func"].(string)
	require.True(t, ok)
	assert.Contains(t, fn, "TestNew_CallerField")
}

// TestNew_LevelFilters verifies that entries below the configured level are
// dropped.
func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "level-role", zerolog.WarnLevel)

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Equal(t, "warn", decodeEntry(t, &buf)["level"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "inherited-role", zerolog.DebugLevel)

	child := parent.GetChildLogger()
	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeEntry(t, &buf)["role"])
}

func TestGetChildLogger_DoesNotLeakFieldsToParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(&buf, "parent", zerolog.DebugLevel)

	child := parent.GetChildLogger()
	child.Logger = child.With().Str("item_id", "abc").Logger()

	parent.Info().Msg("parent message")
	_, has := decodeEntry(t, &buf)["item_id"]
	assert.False(t, has)
}

// TestFromContext_NotNil verifies that FromContext never returns nil, even
// when no logger has been explicitly attached to the context.
func TestFromContext_NotNil(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "ctx-role", zerolog.DebugLevel)
	ctx := l.WithContext(context.Background())

	got := FromContext(ctx)
	require.NotNil(t, got)
	got.Info().Msg("from context")

	assert.Equal(t, "ctx-role", decodeEntry(t, &buf)["role"])
}
