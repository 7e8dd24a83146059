// Copyright 2026 ChurchOps Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"time"

	"go.opentelemetry.io/contrib/propagators/jaeger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/churchops/appcontext-service/internal/logging"
)

const tracerName = "appcontext-service"

var _ TracingInterface = (*Tracer)(nil)

type Tracer struct {
	tracer trace.Tracer

	logger logging.LoggerInterface
}

func (t *Tracer) Start(ctx context.Context, spanName string) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, spanName)
}

// NewTracer wires the global OTel tracer provider. Exporter preference is
// gRPC endpoint, then HTTP endpoint, then stdout.
func NewTracer(config *Config) *Tracer {
	t := new(Tracer)
	t.logger = config.Logger

	if !config.Enabled {
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	exporter, err := newExporter(config)
	if err != nil {
		config.Logger.Errorf("failed to create trace exporter: %v", err)
		t.tracer = noop.NewTracerProvider().Tracer(tracerName)
		return t
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter, sdktrace.WithBatchTimeout(5*time.Second)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(
		propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
			jaeger.Jaeger{},
		),
	)

	t.tracer = provider.Tracer(tracerName)
	return t
}

func NewNoopTracer() *Tracer {
	return &Tracer{
		tracer: noop.NewTracerProvider().Tracer(tracerName),
		logger: logging.NewNoopLogger(),
	}
}

func newExporter(config *Config) (sdktrace.SpanExporter, error) {
	ctx := context.Background()

	if config.OtelGRPCEndpoint != "" {
		return otlptracegrpc.New(
			ctx,
			otlptracegrpc.WithEndpoint(config.OtelGRPCEndpoint),
			otlptracegrpc.WithInsecure(),
		)
	}

	if config.OtelHTTPEndpoint != "" {
		return otlptracehttp.New(
			ctx,
			otlptracehttp.WithEndpoint(config.OtelHTTPEndpoint),
			otlptracehttp.WithInsecure(),
		)
	}

	// No collector configured, spans go to stdout so local runs still
	// produce something inspectable.
	return stdouttrace.New(stdouttrace.WithPrettyPrint())
}
