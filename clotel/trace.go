package clotel

import (
	"context"
	"fmt"

	"github.com/go-logr/zapr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"go.uber.org/zap"
)

// NewTracerProvider inits a tracer provider.
func NewTracerProvider(
	cfg Config,
	logs *zap.Logger,
	exp sdktrace.SpanExporter,
	res *resource.Resource,
	idg sdktrace.IDGenerator,
	txtp propagation.TextMapPropagator,
) *sdktrace.TracerProvider {
	// we handle otel errors by logging it with our zap logger. This is unfortunately a global
	// setting so it may confuse testing setups
	otel.SetErrorHandler(otel.ErrorHandlerFunc(func(err error) {
		logs.Error("otel error", zap.Error(err))
	}))

	// for sdk logging we also need to set a global value
	otel.SetLogger(zapr.NewLogger(logs))
	// set the global text map propagator
	otel.SetTextMapPropagator(txtp)

	trp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exp, sdktrace.WithExportTimeout(cfg.ExporterTimeout)),
		sdktrace.WithIDGenerator(idg),
	)

	// set it globally, but code should prefer to inject it during construction
	otel.SetTracerProvider(trp)

	return trp
}

// NewResource detects the resource that describes this process, with a timeout.
func NewResource(cfg Config, logs *zap.Logger) (*resource.Resource, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.DetectorDetectTimeout)
	defer cancel()

	res, err := resource.New(ctx,
		resource.WithProcessRuntimeName(),
		resource.WithProcessRuntimeVersion(),
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)))
	if err != nil {
		return nil, fmt.Errorf("failed to detect resource: %w", err)
	}

	logs.Info("detected resource", zap.Stringer("attributes", res))

	return res, nil
}

// NewSpanExporter returns the grpc exporter when telemetry is enabled, and an exporter that drops
// everything otherwise.
func NewSpanExporter(cfg Config) (sdktrace.SpanExporter, error) {
	if !cfg.Enabled {
		return tracetest.NewNoopExporter(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ExporterTimeout)
	defer cancel()

	exp, err := otlptracegrpc.New(ctx,
		otlptracegrpc.WithInsecure(),
		otlptracegrpc.WithTimeout(cfg.ExporterTimeout),
		otlptracegrpc.WithEndpoint(cfg.ExporterEndpoint),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to init exporter: %w", err)
	}

	return exp, nil
}
