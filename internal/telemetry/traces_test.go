package telemetry

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestSpanNameFormatter(t *testing.T) {
	tests := map[string]struct {
		pattern  string
		expected string
	}{
		"matched-route":   {pattern: "GET /api/mood-check/status", expected: "GET /api/mood-check/status"},
		"unmatched-route": {pattern: "", expected: "GET /api/mood-check/status"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/mood-check/status?user_id=x", nil)
			req.Pattern = tt.pattern
			assert.Equal(t, tt.expected, SpanNameFormatter("", req))
		})
	}
}

func TestRecordErrorAndStatus(t *testing.T) {
	span := &recordingSpan{}
	assert.True(t, RecordErrorAndStatus(span, errors.New("index unavailable")))
	assert.Equal(t, "index unavailable", span.lastError)
	assert.Equal(t, "index unavailable", span.statusMsg)
	assert.Equal(t, codes.Error, span.statusCode)

	span = &recordingSpan{}
	assert.False(t, RecordErrorAndStatus(span, nil))
	assert.Empty(t, span.lastError)
	assert.Equal(t, "OK", span.statusMsg)
	assert.Equal(t, codes.Ok, span.statusCode)
}

func TestStart(t *testing.T) {
	userID := uuid.MustParse("5f1c0a2e-8d7b-4c1a-9e3f-2b6d4a8c0e11")

	tests := map[string]struct {
		opts      []trace.SpanStartOption
		wantAttrs int
	}{
		"no-options":   {},
		"with-user":    {opts: []trace.SpanStartOption{WithUserID(userID)}, wantAttrs: 1},
		"nil-user-off": {opts: []trace.SpanStartOption{WithUserID(uuid.Nil)}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			exporter := tracetest.NewInMemoryExporter()
			tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)))
			previous := tracer
			tracer = tp.Tracer("test-tracer")
			t.Cleanup(func() { tracer = previous })

			_, span := Start(t.Context(), tt.opts...)
			span.End()

			spans := exporter.GetSpans()
			require.Len(t, spans, 1)
			assert.Contains(t, spans[0].Name, "telemetry::TestStart")
			require.Len(t, spans[0].Attributes, tt.wantAttrs)
			if tt.wantAttrs > 0 {
				assert.Equal(t, AttrUserID, spans[0].Attributes[0].Key)
				assert.Equal(t, userID.String(), spans[0].Attributes[0].Value.AsString())
			}
		})
	}
}

type recordingSpan struct {
	trace.Span
	lastError  string
	statusCode codes.Code
	statusMsg  string
}

func (m *recordingSpan) RecordError(err error, _ ...trace.EventOption) {
	m.lastError = err.Error()
}

func (m *recordingSpan) SetStatus(code codes.Code, msg string) {
	m.statusCode = code
	m.statusMsg = msg
}
