// Package trace exports presentation sessions to an OTLP endpoint: one root
// span per session and one child span per slide shown.
package trace

import (
	"context"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// EndpointEnv enables export when set.
const EndpointEnv = "OTEL_EXPORTER_OTLP_ENDPOINT"

// OTLPExporter exports presentation sessions.
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPExporter creates an exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil if the endpoint is not configured (disabled). A nil
// *OTLPExporter is safe to use.
func NewOTLPExporter(ctx context.Context, serviceName string) (*OTLPExporter, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}
	return NewWithOptions(serviceName, sdktrace.WithBatcher(exporter)), nil
}

// NewWithOptions builds an exporter around a tracer provider configured by
// opts (typically sdktrace.WithBatcher or, in tests, sdktrace.WithSyncer).
func NewWithOptions(serviceName string, opts ...sdktrace.TracerProviderOption) *OTLPExporter {
	if serviceName == "" {
		serviceName = "tracey"
	}
	res := resource.NewSchemaless(attribute.String("service.name", serviceName))
	provider := sdktrace.NewTracerProvider(append(opts, sdktrace.WithResource(res))...)
	return &OTLPExporter{
		provider: provider,
		tracer:   provider.Tracer("traceytext/present"),
	}
}

// Shutdown flushes and closes the exporter.
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
