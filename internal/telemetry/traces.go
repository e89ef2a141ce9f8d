package telemetry

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "github.com/cleitonmarx/bomi"

	// AttrUserID is the span attribute carrying the user of a mood operation.
	AttrUserID = attribute.Key("bomi.user_id")
)

var tracer = otel.Tracer(tracerName)

// SpanNameFormatter names HTTP spans after the matched route pattern,
// falling back to "METHOD /path" for unmatched requests.
func SpanNameFormatter(_ string, r *http.Request) string {
	return httpRoute(r)
}

func httpRoute(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
}

// Start opens a span named after the calling function, e.g. "usecases::AnalyzeEmotionImpl::Execute".
func Start(ctx context.Context, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, callerName(2), opts...)
}

// WithUserID tags the span with the given user. The nil UUID is not recorded.
func WithUserID(userID uuid.UUID) trace.SpanStartOption {
	if userID == uuid.Nil {
		return trace.WithAttributes()
	}
	return trace.WithAttributes(AttrUserID.String(userID.String()))
}

// RecordErrorAndStatus records err on the span and marks it failed.
// With a nil err the span is marked OK. It reports whether err was recorded.
func RecordErrorAndStatus(span trace.Span, err error) bool {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return true
	}
	span.SetStatus(codes.Ok, "OK")
	return false
}

// Middleware instruments an HTTP handler chain with traces and request metrics.
func Middleware(operation string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(
		operation,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
		otelhttp.WithMetricAttributesFn(WithHttpMetricAttributes),
	)
}

func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	parts := strings.Split(fn.Name(), "/")
	return strings.ReplaceAll(parts[len(parts)-1], ".", "::")
}

func newTracerProvider(ctx context.Context, res *resource.Resource) (*sdktrace.TracerProvider, sdktrace.SpanExporter, error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(time.Second)),
		sdktrace.WithResource(res),
	)
	return provider, exporter, nil
}
