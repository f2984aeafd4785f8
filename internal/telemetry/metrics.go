package telemetry

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"
)

// providerLatencyBuckets covers both fast vector lookups and slow chat completions.
var providerLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60}

// WithHttpMetricAttributes labels HTTP metrics with the route and, for
// directory endpoints, the collection being served.
func WithHttpMetricAttributes(r *http.Request) []attribute.KeyValue {
	attrs := []attribute.KeyValue{semconv.HTTPRoute(httpRoute(r))}
	if collection := r.PathValue("collection"); collection != "" {
		attrs = append(attrs, attribute.String("directory.collection", collection))
	}
	return attrs
}

func newMeterProvider(ctx context.Context, res *resource.Resource) (*sdkmetric.MeterProvider, sdkmetric.Exporter, error) {
	exporter, err := otlpmetrichttp.New(ctx, otlpmetrichttp.WithInsecure())
	if err != nil {
		return nil, nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))),
		sdkmetric.WithView(sdkmetric.NewView(
			sdkmetric.Instrument{Name: "*duration*"},
			sdkmetric.Stream{
				Aggregation: sdkmetric.AggregationExplicitBucketHistogram{Boundaries: providerLatencyBuckets},
			},
		)),
	)
	return mp, exporter, nil
}
