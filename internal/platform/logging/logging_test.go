package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	return entry
}

func TestFromContext_Fallbacks(t *testing.T) {
	assert.Equal(t, defaultLogger, FromContext(nil)) //nolint:staticcheck // nil guard
	assert.Equal(t, defaultLogger, FromContext(context.Background()))

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	assert.Equal(t, custom, FromContext(WithContext(context.Background(), custom)))
}

func TestContextIDs(t *testing.T) {
	var buf bytes.Buffer

	ctx := WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	ctx = WithRequestID(ctx, "req-123")
	ctx = WithCorrelationID(ctx, "corr-789")

	FromContext(ctx).InfoContext(ctx, "browse settled")

	entry := decode(t, &buf)
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "corr-789", entry["correlation_id"])
}

func TestWithSpan(t *testing.T) {
	var buf bytes.Buffer

	base := WithContext(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	assert.Equal(t, base, WithSpan(base), "no span leaves context untouched")

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	sc := trace.NewSpanContext(trace.SpanContextConfig{TraceID: traceID, SpanID: spanID})

	ctx := WithSpan(trace.ContextWithSpanContext(base, sc))
	FromContext(ctx).Info("with span")

	entry := decode(t, &buf)
	assert.Equal(t, "4bf92f3577b34da6a3ce929d0e0e4736", entry["trace_id"])
	assert.Equal(t, "00f067aa0ba902b7", entry["span_id"])
}

func TestSetDefault(t *testing.T) {
	original := defaultLogger
	t.Cleanup(func() { SetDefault(original) })

	custom := slog.New(slog.NewTextHandler(io.Discard, nil))
	SetDefault(custom)

	assert.Equal(t, custom, FromContext(context.Background()))
	assert.Equal(t, custom, slog.Default())
}

func TestNewWithWriter_Formats(t *testing.T) {
	tests := []struct {
		format string
		level  string
	}{
		{format: "json", level: "info"},
		{format: "text", level: "debug"},
		{format: "pretty", level: "info"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer

			logger := NewWithWriter(&Config{
				Level:   tt.level,
				Format:  tt.format,
				Service: "novamuse",
				Version: "1.0.0",
			}, &buf)

			logger.Info("quote of the day loaded", slog.String("author", "Mark Twain"))

			assert.Contains(t, buf.String(), "quote of the day loaded")
			assert.Contains(t, buf.String(), "Mark Twain")
		})
	}
}

func TestNewWithWriter_DefaultAttrs(t *testing.T) {
	var buf bytes.Buffer

	NewWithWriter(&Config{Level: "info", Format: "json", Service: "novamuse", Version: "1.2.3"}, &buf).
		Info("started")

	entry := decode(t, &buf)
	assert.Equal(t, "novamuse", entry["service_name"])
	assert.Equal(t, "1.2.3", entry["service_version"])
}

func TestNewWithWriter_PrettyRedacts(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "info", Format: "pretty"}, &buf)
	logger.With(slog.String("session_id", "sess-abc")).
		Info("signed in", slog.String("bearer_token", "tok-secret"))

	assert.Contains(t, buf.String(), "signed in")
	assert.NotContains(t, buf.String(), "tok-secret")
	assert.NotContains(t, buf.String(), "sess-abc")
}

func TestNewWithWriter_TraceLevel(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(&Config{Level: "trace", Format: "json"}, &buf)
	logger.Log(context.Background(), LevelTrace, "fetch issued")

	assert.Contains(t, buf.String(), "fetch issued")

	buf.Reset()
	NewWithWriter(&Config{Level: "debug", Format: "json"}, &buf).
		Log(context.Background(), LevelTrace, "fetch issued")
	assert.Empty(t, buf.String())
}

func TestNewWithWriter_File(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "novamuse.log")

	var buf bytes.Buffer

	logger := NewWithWriter(&Config{
		Level:  "info",
		Format: "pretty",
		File: FileConfig{
			Enabled:    true,
			Path:       logFile,
			MaxSizeMB:  1,
			MaxBackups: 1,
			MaxAgeDays: 1,
		},
	}, &buf)

	logger.Info("written twice")

	assert.Contains(t, buf.String(), "written twice")

	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"written twice"`)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   LevelTrace,
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"loud":    slog.LevelInfo,
	}

	for input, expected := range tests {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, expected, parseLevel(input))
		})
	}
}

func TestSlogToCharmLevel(t *testing.T) {
	assert.Equal(t, log.DebugLevel, slogToCharmLevel(LevelTrace))
	assert.Equal(t, log.DebugLevel, slogToCharmLevel(slog.LevelDebug))
	assert.Equal(t, log.InfoLevel, slogToCharmLevel(slog.LevelInfo))
	assert.Equal(t, log.WarnLevel, slogToCharmLevel(slog.LevelWarn))
	assert.Equal(t, log.ErrorLevel, slogToCharmLevel(slog.LevelError))
	assert.Equal(t, log.ErrorLevel, slogToCharmLevel(slog.Level(12)))
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("disk full") }

func TestMultiHandler(t *testing.T) {
	var debugBuf, infoBuf bytes.Buffer

	multi := NewMultiHandler(
		slog.NewJSONHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
	)

	assert.True(t, multi.Enabled(context.Background(), slog.LevelDebug))
	assert.False(t, multi.Enabled(context.Background(), LevelTrace))

	logger := slog.New(multi.WithAttrs([]slog.Attr{slog.String("view", "search")}).WithGroup("fetch"))
	logger.Debug("issued", slog.Int("seq", 3))

	assert.Contains(t, debugBuf.String(), `"view":"search"`)
	assert.Contains(t, debugBuf.String(), `"fetch":{"seq":3}`)
	assert.Empty(t, infoBuf.String())
}

func TestMultiHandler_HandleJoinsErrors(t *testing.T) {
	var buf bytes.Buffer

	ok := slog.NewJSONHandler(&buf, nil)
	multi := NewMultiHandler(failingHandler{ok}, ok)

	err := multi.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "x", 0))

	require.EqualError(t, err, "disk full")
	assert.Contains(t, buf.String(), `"msg":"x"`, "later handlers still run")
}

func TestNewReplaceAttr(t *testing.T) {
	tests := []struct {
		field  string
		value  string
		redact bool
	}{
		{field: "bearer_token", value: "opaque-token", redact: true},
		{field: "id_token", value: "opaque-id-token", redact: true},
		{field: "session_id", value: "0b3c9d1e", redact: true},
		{field: "verifier", value: "pkce-verifier", redact: true},
		{field: "code", value: "auth-code", redact: true},
		{field: "client_secret", value: "s3cr3t", redact: true},
		{field: "secret_config", value: "prefixed", redact: true},
		{field: "authorization", value: "Bearer abc123xyz456", redact: true},
		{
			field:  "header",
			value:  "eyJhbGciOiJIUzI1NiJ9.eyJlbWFpbCI6InJAZXhhbXBsZS5jb20ifQ.c2ln",
			redact: true,
		},
		{field: "author", value: "Mark Twain", redact: false},
		{field: "email", value: "reader@example.com", redact: false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			var buf bytes.Buffer

			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{ReplaceAttr: NewReplaceAttr()}))
			logger.Info("test", slog.String(tt.field, tt.value))

			assert.Contains(t, buf.String(), tt.field)

			if tt.redact {
				assert.NotContains(t, buf.String(), tt.value)
			} else {
				assert.Contains(t, buf.String(), tt.value)
			}
		})
	}
}
