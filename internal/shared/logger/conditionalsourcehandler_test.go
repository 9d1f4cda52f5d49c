package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferedLogger(levels ...slog.Level) (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(NewConditionalSourceHandler(base, levels...)), buf
}

func TestConditionalSourceHandler_AddsSourceForConfiguredLevels(t *testing.T) {
	log, buf := newBufferedLogger(slog.LevelError)

	log.Error("boom")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry, slog.SourceKey)
}

func TestConditionalSourceHandler_OmitsSourceForOtherLevels(t *testing.T) {
	log, buf := newBufferedLogger(slog.LevelError)

	log.Info("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotContains(t, entry, slog.SourceKey)
}

func TestConditionalSourceHandler_PreservesAttrsAndGroups(t *testing.T) {
	buf := &bytes.Buffer{}
	base := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	handler := NewConditionalSourceHandler(base).WithAttrs([]slog.Attr{slog.String("app", "solvia")})

	slog.New(handler).Info("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "solvia", entry["app"])
}
