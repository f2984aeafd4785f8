package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont-ai-directory/internal/domain"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/cleitonmarx/symbiont-ai-directory"

var tracer = otel.Tracer(instrumentationName)

// SpanNameFormatter names HTTP spans after the matched route pattern, so
// record IDs in the path do not explode span cardinality.
func SpanNameFormatter(_ string, r *http.Request) string {
	return httpRoute(r)
}

func httpRoute(r *http.Request) string {
	if r.Pattern != "" {
		return r.Pattern
	}
	return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
}

// Start a new span named after the calling function.
func Start(ctx context.Context, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return tracer.Start(ctx, callerName(2), opts...)
}

// RecordErrorAndStatus records err on the span and marks it as failed.
// Provider failures also carry their kind, and expected caller errors
// (not found, validation) are recorded without failing the span.
// Returns true if an error was recorded.
func RecordErrorAndStatus(span trace.Span, err error) bool {
	if err == nil {
		span.SetStatus(codes.Ok, "OK")
		return false
	}

	span.RecordError(err)
	span.SetAttributes(attribute.String("error.type", errorType(err)))

	var (
		notFound   *domain.NotFoundErr
		validation *domain.ValidationErr
	)
	if errors.As(err, &notFound) || errors.As(err, &validation) {
		span.SetStatus(codes.Unset, err.Error())
		return true
	}

	span.SetStatus(codes.Error, err.Error())
	return true
}

func errorType(err error) string {
	if kind, ok := domain.ProviderErrorKindOf(err); ok {
		return "provider." + strings.ToLower(string(kind))
	}

	var (
		notFound   *domain.NotFoundErr
		validation *domain.ValidationErr
	)
	switch {
	case errors.As(err, &notFound):
		return "not_found"
	case errors.As(err, &validation):
		return "validation"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "internal"
}

// Middleware returns an HTTP middleware that instruments handlers with OpenTelemetry.
func Middleware(operation string) func(http.Handler) http.Handler {
	return otelhttp.NewMiddleware(
		operation,
		otelhttp.WithSpanNameFormatter(SpanNameFormatter),
		otelhttp.WithMetricAttributesFn(WithHttpMetricAttributes),
	)
}

// callerName turns "github.com/x/y/pkg.Type.Method" into "pkg::Type::Method".
func callerName(skip int) string {
	pc, _, _, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}

	name := fn.Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	return strings.ReplaceAll(name, ".", "::")
}

func newTracerProvider(ctx context.Context, res *resource.Resource) (*sdktrace.TracerProvider, sdktrace.SpanExporter, error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(time.Second)),
		sdktrace.WithResource(res),
	)
	return tp, exporter, nil
}
