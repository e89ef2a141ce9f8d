package telemetry

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// InitOpenTelemetry is a component that sets up OpenTelemetry tracing and metrics.
// An endpoint set to "-" disables the matching exporter.
type InitOpenTelemetry struct {
	Logger          *log.Logger `resolve:""`
	ServiceName     string      `config:"OTEL_SERVICE_NAME" default:"bomi"`
	TracesEndpoint  string      `config:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT" default:"-"`
	MetricsEndpoint string      `config:"OTEL_EXPORTER_OTLP_METRICS_ENDPOINT" default:"-"`
	tp              *sdktrace.TracerProvider
	se              sdktrace.SpanExporter
	mp              *sdkmetric.MeterProvider
	me              sdkmetric.Exporter
}

// Initialize sets up OpenTelemetry tracing and exporting.
func (o *InitOpenTelemetry) Initialize(ctx context.Context) (context.Context, error) {
	var err error
	// Set up propagator.
	prop := newPropagator()
	otel.SetTextMapPropagator(prop)

	// Set up resource.
	res, err := newAppResource(ctx, o.ServiceName)
	if err != nil {
		return ctx, err
	}

	if o.TracesEndpoint != "-" && o.TracesEndpoint != "" {
		// Set up trace provider.
		o.tp, o.se, err = newTracerProvider(ctx, res)
		if err != nil {
			return ctx, err
		}
		otel.SetTracerProvider(o.tp)
	}

	if o.MetricsEndpoint != "-" && o.MetricsEndpoint != "" {
		// Set up meter provider.
		o.mp, o.me, err = newMeterProvider(ctx, res)
		if err != nil {
			return ctx, err
		}
		otel.SetMeterProvider(o.mp)
	}

	return ctx, nil
}

// Close shuts down the providers and exporters that were started.
func (o *InitOpenTelemetry) Close() {
	if o.tp == nil && o.mp == nil {
		return
	}

	cancelCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if o.tp != nil {
		if err := o.tp.Shutdown(cancelCtx); err != nil {
			o.Logger.Printf("Error shutting down tracer provider: %v", err)
		}
		if err := o.se.Shutdown(cancelCtx); err != nil {
			o.Logger.Printf("Error shutting down span exporter: %v", err)
		}
	}
	if o.mp != nil {
		if err := o.mp.Shutdown(cancelCtx); err != nil {
			o.Logger.Printf("Error shutting down meter provider: %v", err)
		}
		if err := o.me.Shutdown(cancelCtx); err != nil {
			o.Logger.Printf("Error shutting down meter exporter: %v", err)
		}
	}
}

// InitHttpClient initializes an HTTP client instrumented with OpenTelemetry
// and with retry capabilities.
type InitHttpClient struct {
	Logger       *log.Logger   `resolve:""`
	RetryMax     int           `config:"HTTP_CLIENT_RETRY_MAX" default:"3"`
	RetryWaitMax time.Duration `config:"HTTP_CLIENT_RETRY_WAIT_MAX" default:"5s"`
	Timeout      time.Duration `config:"HTTP_CLIENT_TIMEOUT" default:"60s"`
}

// Initialize registers the instrumented *http.Client in the dependency container.
func (i InitHttpClient) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register(NewHttpClient(i.Logger, i.RetryMax, i.RetryWaitMax, i.Timeout))
	return ctx, nil
}

// NewHttpClient builds a retrying HTTP client whose transport emits client spans.
func NewHttpClient(logger *log.Logger, retryMax int, retryWaitMax, timeout time.Duration) *http.Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryWaitMax = retryWaitMax
	retryClient.RetryMax = retryMax
	retryClient.CheckRetry = dontRetry500StatusPolicy(retryablehttp.ErrorPropagatedRetryPolicy)
	if logger != nil {
		retryClient.Logger = logger
	}

	stdClient := retryClient.StandardClient()
	stdClient.Timeout = timeout
	stdClient.Transport = otelhttp.NewTransport(
		stdClient.Transport,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
	)
	return stdClient
}

// newPropagator creates a new composite text map propagator.
func newPropagator() propagation.TextMapPropagator {
	return propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	)
}

func newAppResource(ctx context.Context, serviceName string) (*resource.Resource, error) {
	if serviceName == "" {
		serviceName = "bomi"
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceNameKey.String(serviceName),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

// dontRetry500StatusPolicy is a retry policy for the retryablehttp client that prevents
// retries on HTTP 500 Internal Server Error responses.
func dontRetry500StatusPolicy(policy retryablehttp.CheckRetry) retryablehttp.CheckRetry {
	return func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		// do not retry on context.Canceled or context.DeadlineExceeded
		if ctx.Err() != nil {
			return false, ctx.Err()
		}

		if resp != nil && resp.StatusCode == http.StatusInternalServerError {
			return false, err
		}
		return policy(ctx, resp, err)
	}
}
