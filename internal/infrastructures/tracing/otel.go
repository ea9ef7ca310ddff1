package tracing

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/jaeger"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	tracesdk "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

// Provider is the part of the SDK tracer provider main needs to shut it down.
type Provider interface {
	Shutdown(ctx context.Context) error
}

type noopProvider struct{}

func (noopProvider) Shutdown(context.Context) error { return nil }

// InitTracer installs a global tracer provider exporting to the Jaeger collector.
// An empty collector leaves the global noop provider in place.
func InitTracer(serviceName, collector string) (Provider, error) {
	if strings.TrimSpace(collector) == "" {
		return noopProvider{}, nil
	}

	exp, err := jaeger.New(jaeger.WithCollectorEndpoint(
		jaeger.WithEndpoint(NormalizeJaegerCollector(collector)),
	))
	if err != nil {
		return nil, fmt.Errorf("tracing.InitTracer: %w", err)
	}

	tp := tracesdk.NewTracerProvider(
		tracesdk.WithBatcher(exp),
		tracesdk.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		)),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))
	return tp, nil
}

func NormalizeJaegerCollector(value string) string {
	const defaultEndpoint = "http://localhost:14268/api/traces"
	endpoint := strings.TrimSpace(value)
	if endpoint == "" {
		return defaultEndpoint
	}

	if !strings.Contains(endpoint, "://") {
		endpoint = "http://" + endpoint
	}
	if strings.HasSuffix(endpoint, "/api/traces") {
		return endpoint
	}

	return fmt.Sprintf("%s/api/traces", strings.TrimSuffix(endpoint, "/"))
}
