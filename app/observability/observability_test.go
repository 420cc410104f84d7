package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/XdrBOBX/rating-widget/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.ObservabilityConfig{ServiceName: "svc", LogLevel: "warn"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"service":"svc"`)
}

func TestNewLogger_DevelopmentUsesText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(config.ObservabilityConfig{Environment: "development", LogLevel: "bogus"}, &buf)

	logger.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelError, parseLevel("ERROR"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}

func TestNew_WithoutEndpointIsNoop(t *testing.T) {
	var buf bytes.Buffer
	obs, err := New(context.Background(), config.ObservabilityConfig{ServiceName: "svc"}, &buf)
	require.NoError(t, err)

	_, span := obs.Tracer("test").Start(context.Background(), "op")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	families, err := obs.Registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
	assert.NoError(t, obs.Shutdown(context.Background()))
}
